package combat

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/runes-api/internal/engine/affinity"
	"github.com/KirkDiggler/runes-api/internal/engine/combatmath"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/repositories/battles"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

// Resolution of a monster skill draw: a d1000 against cumulative chances
const drawResolution = 1000

var basicAttack = entities.MonsterSkill{Name: "Attack", DamageMultiplier: 1.0, Chance: 1}

// UseSkill validates and resolves a player action. A rejected action leaves
// the session untouched. When the monster survives, its reply is scheduled
// and the turn lock stays held until that reply finishes.
func (o *orchestrator) UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SkillID == "" {
		return nil, errors.InvalidArgument("skill ID is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	output, epoch, err := o.playerAction(ctx, sess, input.SkillID)
	if err != nil {
		return nil, err
	}

	if output.MonsterReplyScheduled {
		o.scheduler.Schedule(sess.ctx, o.balance.MonsterReplyDelay, func(ctx context.Context) {
			o.monsterTurn(ctx, sess, epoch)
		})
	}

	return output, nil
}

// playerAction is the locked half of UseSkill. It returns the epoch the
// monster reply must match. A panic while resolving hands the turn back to
// the player and surfaces as InconsistentState.
func (o *orchestrator) playerAction(
	ctx context.Context,
	sess *session,
	skillID string,
) (output *UseSkillOutput, epoch uint64, err error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	skill, err := o.checkPlayerAction(sess, skillID)
	if err != nil {
		return nil, 0, err
	}

	defer func() {
		if r := recover(); r != nil {
			sess.releaseTurn()
			slog.Error("Player action failed",
				"session_id", sess.id,
				"skill_id", skillID,
				"panic", r,
				"code", errors.CodeInconsistentState,
			)
			output, epoch = nil, 0
			err = errors.InconsistentState("the action could not be resolved").WithMeta("session_id", sess.id)
		}
	}()

	sess.combatLocked = true
	sess.isPlayerTurn = false
	sess.turns++
	sess.player.SpendMana(skill.ManaCost)

	action := o.resolveSkill(sess, skill)

	output = &UseSkillOutput{Action: action}
	if !sess.monster.IsAlive() {
		output.Victory = o.victory(ctx, sess)
		sess.releaseTurn()
	} else {
		output.MonsterReplyScheduled = true
	}
	output.Session = sess.snapshot()

	return output, sess.epoch, nil
}

// checkPlayerAction returns the skill to use or an InvalidAction error.
// Caller holds sess.mu.
func (o *orchestrator) checkPlayerAction(sess *session, skillID string) (*entities.Skill, error) {
	switch {
	case sess.isGameOver:
		return nil, o.reject(sess, "The game is over.")
	case sess.combatLocked:
		return nil, o.reject(sess, "Wait for the current action to finish.")
	case !sess.isPlayerTurn:
		return nil, o.reject(sess, "It is not your turn.")
	case !sess.inBattle():
		return nil, o.reject(sess, "There is nothing to fight.")
	}

	skill, ok := sess.player.FindSkill(skillID)
	if !ok {
		return nil, o.reject(sess, "You don't know %q.", skillID)
	}
	if !skill.IsMelee() && sess.player.Mana < skill.ManaCost {
		return nil, o.reject(sess, "Not enough mana for %s (%d/%d).", skill.Name, sess.player.Mana, skill.ManaCost)
	}
	return skill, nil
}

// resolveSkill applies a player skill's effects in fixed order: damage with
// life drain, heal, mana regen, self buff, enemy debuff.
func (o *orchestrator) resolveSkill(sess *session, skill *entities.Skill) *ActionResult {
	player, monster := sess.player, sess.monster
	effects := skill.Effects

	action := &ActionResult{
		ActorID:   player.ID,
		SkillID:   skill.ID,
		SkillName: skill.Name,
		Element:   o.calc.SkillElement(player, skill),
		ManaSpent: skill.ManaCost,
	}
	o.presenter.LogMessage(fmt.Sprintf("%s uses %s!", player.Name, skill.Name), notify.CategoryInfo)

	if effects.Damage != nil {
		damage := o.calc.ResolvePlayerSkillDamage(player, skill, monster)
		action.Damage = monster.TakeDamage(damage)
		o.presenter.LogMessage(
			fmt.Sprintf("%s takes %d damage%s.", monster.Name, action.Damage, effectiveness(action.Element, monster.Element)),
			notify.CategoryDamage)
		o.presenter.StatsChanged(&monster.Combatant)

		if drained := player.Heal(combatmath.LifeDrain(action.Damage, effects.Damage.HealPercentOfDamage)); drained > 0 {
			action.Healed += drained
			o.presenter.LogMessage(fmt.Sprintf("You drain %d HP.", drained), notify.CategoryHeal)
		}
	}

	if effects.Heal != nil {
		healed := player.Heal(o.calc.PlayerHeal(player, skill))
		action.Healed += healed
		o.presenter.LogMessage(fmt.Sprintf("You recover %d HP.", healed), notify.CategoryHeal)
	}

	if effects.ManaRegen > 0 {
		action.ManaRestored = player.RestoreMana(effects.ManaRegen)
	}

	if buff := effects.Buff; buff != nil {
		o.registry.Apply(&player.Combatant, buff.Effect, buff.Value, buff.Duration, skill.Name)
		action.BuffApplied = buff.Effect
		o.presenter.LogMessage(fmt.Sprintf("You gain %s.", buff.Effect), notify.CategoryBuff)
	}

	if debuff := effects.Debuff; debuff != nil && monster.IsAlive() {
		o.registry.Apply(&monster.Combatant, debuff.Effect, debuff.Value, debuff.Duration, skill.Name)
		action.DebuffApplied = debuff.Effect
		o.presenter.LogMessage(fmt.Sprintf("%s suffers %s.", monster.Name, debuff.Effect), notify.CategoryDebuff)
	}

	action.TargetDefeated = !monster.IsAlive()
	o.presenter.StatsChanged(&player.Combatant)

	slog.Debug("Skill resolved",
		"session_id", sess.id,
		"skill_id", skill.ID,
		"damage", action.Damage,
		"healed", action.Healed,
		"monster_hp", monster.HP,
	)

	return action
}

// monsterTurn is the scheduled reply to a player action. It always releases
// the turn lock, even if resolution panics.
func (o *orchestrator) monsterTurn(ctx context.Context, sess *session, epoch uint64) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if ctx.Err() != nil || sess.epoch != epoch {
		slog.Debug("Discarding stale monster reply", "session_id", sess.id)
		return
	}

	defer func() {
		sess.releaseTurn()
		if r := recover(); r != nil {
			slog.Error("Monster turn failed",
				"session_id", sess.id,
				"panic", r,
				"code", errors.CodeInconsistentState,
			)
			o.presenter.LogMessage("Something went wrong. It is your turn.", notify.CategoryError)
		}
	}()

	if !sess.inBattle() {
		slog.Warn("Monster reply without a living monster",
			"session_id", sess.id,
			"code", errors.CodeInconsistentState,
		)
		return
	}

	sess.lastMonsterAction = o.monsterAct(sess)

	if !sess.player.IsAlive() && !o.playerDefeated(ctx, sess) {
		return
	}

	o.tickEffects(sess)

	if !sess.player.IsAlive() && !o.playerDefeated(ctx, sess) {
		return
	}
	if !sess.monster.IsAlive() {
		o.victory(ctx, sess)
	}
}

// monsterAct resolves the monster's action against the player
func (o *orchestrator) monsterAct(sess *session) *ActionResult {
	player, monster := sess.player, sess.monster
	action := &ActionResult{ActorID: monster.ID}

	if evasion := o.registry.Find(&player.Combatant, entities.EffectEvasionUp); evasion != nil {
		if o.chance(evasion.Value) {
			action.Evaded = true
			action.SkillName = "Attack"
			o.presenter.LogMessage(fmt.Sprintf("You evade %s's attack!", monster.Name), notify.CategoryBuff)
			return action
		}
	}

	skill := o.pickMonsterSkill(monster)
	action.SkillName = skill.Name
	action.Element = skill.Element
	if action.Element == "" {
		action.Element = monster.Element
	}
	o.presenter.LogMessage(fmt.Sprintf("%s uses %s!", monster.Name, skill.Name), notify.CategoryInfo)

	if skill.DamageMultiplier > 0 {
		damage := o.calc.MonsterSkillDamage(monster, skill, player)
		action.Damage = player.TakeDamage(damage)
		o.presenter.LogMessage(
			fmt.Sprintf("You take %d damage%s.", action.Damage, effectiveness(action.Element, player.Rune)),
			notify.CategoryDamage)
		o.presenter.StatsChanged(&player.Combatant)

		if drained := monster.Heal(combatmath.LifeDrain(action.Damage, skill.HealPercentOfDamage)); drained > 0 {
			action.Healed = drained
			o.presenter.LogMessage(fmt.Sprintf("%s drains %d HP.", monster.Name, drained), notify.CategoryHeal)
			o.presenter.StatsChanged(&monster.Combatant)
		}
	}

	if buff := skill.Buff; buff != nil {
		o.registry.Apply(&monster.Combatant, buff.Effect, buff.Value, buff.Duration, skill.Name)
		action.BuffApplied = buff.Effect
		o.presenter.LogMessage(fmt.Sprintf("%s gains %s.", monster.Name, buff.Effect), notify.CategoryBuff)
	}

	if debuff := skill.Debuff; debuff != nil && player.IsAlive() {
		o.registry.Apply(&player.Combatant, debuff.Effect, debuff.Value, debuff.Duration, skill.Name)
		action.DebuffApplied = debuff.Effect
		o.presenter.LogMessage(fmt.Sprintf("You suffer %s.", debuff.Effect), notify.CategoryDebuff)
	}

	action.TargetDefeated = !player.IsAlive()
	return action
}

// pickMonsterSkill draws a skill weighted by chance. Probability mass the
// chances leave over falls to the last skill.
func (o *orchestrator) pickMonsterSkill(monster *entities.Monster) *entities.MonsterSkill {
	if len(monster.Skills) == 0 {
		return &basicAttack
	}
	if len(monster.Skills) == 1 {
		return &monster.Skills[0]
	}

	roll, err := o.roller.Roll(drawResolution)
	if err != nil {
		slog.Warn("Skill draw failed, using first skill", "monster_id", monster.ID, "error", err)
		return &monster.Skills[0]
	}

	point := float64(roll) / drawResolution
	cumulative := 0.0
	for i := range monster.Skills {
		cumulative += monster.Skills[i].Chance
		if point <= cumulative {
			return &monster.Skills[i]
		}
	}
	return &monster.Skills[len(monster.Skills)-1]
}

// chance rolls against a probability in [0, 1]
func (o *orchestrator) chance(p float64) bool {
	if p <= 0 {
		return false
	}
	roll, err := o.roller.Roll(drawResolution)
	if err != nil {
		slog.Warn("Chance roll failed", "error", err)
		return false
	}
	return float64(roll) <= p*drawResolution
}

// tickEffects runs end-of-round status processing for both sides
func (o *orchestrator) tickEffects(sess *session) {
	for _, c := range []*entities.Combatant{&sess.player.Combatant, &sess.monster.Combatant} {
		result := o.registry.Tick(c)
		if result.PoisonDamage > 0 {
			o.presenter.LogMessage(fmt.Sprintf("%s takes %d poison damage.", c.Name, result.PoisonDamage),
				notify.CategoryDamage)
			o.presenter.StatsChanged(c)
		}
		for _, expired := range result.Expired {
			o.presenter.LogMessage(fmt.Sprintf("%s's %s wears off.", c.Name, expired), notify.CategoryInfo)
		}
	}
}

// playerDefeated handles the player reaching 0 HP. It returns true when a
// revival stone saved them.
func (o *orchestrator) playerDefeated(ctx context.Context, sess *session) bool {
	player := sess.player

	if player.HasRevivalStone {
		player.HasRevivalStone = false
		player.HP = max(int(math.Floor(float64(player.MaxHP)*o.balance.RevivalHPPercent)), 1)
		player.ClampHP()
		sess.revived = true
		sess.lastOutcome = OutcomeRevived

		slog.Info("Player revived", "session_id", sess.id, "hp", player.HP)
		o.presenter.LogMessage("Your revival stone shatters and you rise again!", notify.CategoryHeal)
		o.presenter.StatsChanged(&player.Combatant)
		return true
	}

	sess.isGameOver = true
	sess.isPlayerTurn = false
	sess.lastOutcome = OutcomeDefeat

	slog.Info("Player defeated", "session_id", sess.id, "level", player.Level)
	o.presenter.CombatantDefeated(&player.Combatant)
	o.presenter.LogMessage("You have been defeated.", notify.CategoryDefeat)

	o.recordBattle(ctx, sess, battles.OutcomeDefeat, nil)
	return false
}

// victory pays out rewards, clears the fight and arms the boss interval.
// Caller holds sess.mu and releases the turn.
func (o *orchestrator) victory(ctx context.Context, sess *session) *VictoryResult {
	player, monster := sess.player, sess.monster

	o.presenter.CombatantDefeated(&monster.Combatant)
	o.presenter.LogMessage(fmt.Sprintf("%s is defeated!", monster.Name), notify.CategoryVictory)

	o.registry.Clear(&player.Combatant)

	result := &VictoryResult{
		MonsterName:     monster.Name,
		WasBoss:         monster.IsBoss,
		ExpGained:       monster.ExpReward,
		GoldGained:      monster.GoldReward,
		CanContinue:     true,
		CanReturnToTown: true,
	}

	result.LevelUp = o.progression.AddExperience(player, monster.ExpReward)
	o.progression.AddGold(player, monster.GoldReward)
	o.presenter.LogMessage(fmt.Sprintf("You gain %d EXP and %d gold.", monster.ExpReward, monster.GoldReward),
		notify.CategoryLoot)
	if result.LevelUp.LeveledUp() {
		o.presenter.LogMessage(fmt.Sprintf("Level up! You are now level %d.", result.LevelUp.NewLevel),
			notify.CategoryLevel)
	}

	result.Drop = o.rollDrop(ctx, sess)

	player.Heal(int(math.Floor(float64(player.MaxHP) * o.balance.VictoryHealPercent)))
	player.RestoreMana(int(math.Floor(float64(player.MaxMana) * o.balance.VictoryManaPercent)))
	o.presenter.StatsChanged(&player.Combatant)

	if !monster.IsBoss {
		sess.regularKills++
		if sess.regularKills%o.balance.BossInterval == 0 {
			sess.bossPending = true
			o.presenter.LogMessage("The ground trembles. Something powerful approaches...", notify.CategoryInfo)
		}
	}
	result.BossNext = sess.bossPending

	sess.lastOutcome = OutcomeVictory
	o.recordBattle(ctx, sess, battles.OutcomeVictory, result)
	sess.monster = nil

	slog.Info("Monster defeated",
		"session_id", sess.id,
		"monster", monster.Name,
		"boss", monster.IsBoss,
		"exp", monster.ExpReward,
		"gold", monster.GoldReward,
		"regular_kills", sess.regularKills,
	)

	return result
}

// rollDrop may hand one of the area's drops to the inventory
func (o *orchestrator) rollDrop(ctx context.Context, sess *session) *entities.Item {
	area, err := o.catalog.GetArea(sess.areaID)
	if err != nil || len(area.Drops) == 0 {
		return nil
	}
	if !o.chance(o.balance.ItemDropChance) {
		return nil
	}

	idx := 0
	if len(area.Drops) > 1 {
		roll, err := o.roller.Roll(len(area.Drops))
		if err != nil {
			slog.Warn("Drop roll failed", "session_id", sess.id, "error", err)
			return nil
		}
		idx = min(max(roll-1, 0), len(area.Drops)-1)
	}

	item := area.Drops[idx]
	if _, err := o.inventory.AddItem(ctx, inventory.AddItemInput{SessionID: sess.id, Item: &item}); err != nil {
		slog.Warn("Failed to store drop", "session_id", sess.id, "item_id", item.ID, "error", err)
		return nil
	}

	o.presenter.LogMessage(fmt.Sprintf("%s dropped %s!", sess.monster.Name, item.Name), notify.CategoryLoot)
	return &item
}

// recordBattle stores the fight's outcome when a repository is configured
func (o *orchestrator) recordBattle(
	ctx context.Context,
	sess *session,
	outcome battles.Outcome,
	victory *VictoryResult,
) {
	if o.battles == nil || sess.monster == nil {
		return
	}

	record := &battles.Record{
		ID:           o.idGen.Generate(),
		SessionID:    sess.id,
		PlayerName:   sess.player.Name,
		PlayerLevel:  sess.player.Level,
		Rune:         sess.player.Rune,
		AreaID:       sess.areaID,
		MonsterName:  sess.monster.Name,
		TemplateID:   sess.monster.TemplateID,
		MonsterLevel: sess.monster.Level,
		IsBoss:       sess.monster.IsBoss,
		Outcome:      outcome,
		Turns:        sess.turns,
		Revived:      sess.revived,
		StartedAt:    sess.startedAt,
		EndedAt:      o.clock.Now(),
	}
	if victory != nil {
		record.ExpGained = victory.ExpGained
		record.GoldGained = victory.GoldGained
		record.LevelsGained = victory.LevelUp.LevelsGained
		if victory.Drop != nil {
			record.DropItemID = victory.Drop.ID
		}
	}

	if _, err := o.battles.Save(ctx, battles.SaveInput{Record: record}); err != nil {
		slog.Warn("Failed to save battle record",
			"session_id", sess.id,
			"error", err,
		)
	}
}

func effectiveness(attacker, defender entities.Element) string {
	switch m := affinity.Multiplier(attacker, defender); {
	case m == 0:
		return " (no effect)"
	case m > 1:
		return " (super effective)"
	case m < 1:
		return " (not very effective)"
	default:
		return ""
	}
}
