// Package combatmath computes damage and healing.
//
// Order of operations for player damage is fixed: base, rune boost, one-shot
// skill boost, elemental multiplier, truncate, flat defense, clamp. Defense
// comes last so elemental multipliers always act on unmitigated damage.
// Every step truncates toward zero; nothing rounds.
package combatmath

import (
	"math"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/affinity"
	"github.com/KirkDiggler/runes-api/internal/engine/status"
	"github.com/KirkDiggler/runes-api/internal/entities"
)

// Calculator computes combat numbers from the balance table
type Calculator struct {
	balance  config.Balance
	registry *status.Registry
}

// NewCalculator creates a calculator. registry is only used to consume
// one-shot boosts in ResolvePlayerSkillDamage.
func NewCalculator(balance config.Balance, registry *status.Registry) *Calculator {
	if registry == nil {
		registry = status.NewRegistry(nil)
	}
	return &Calculator{
		balance:  balance,
		registry: registry,
	}
}

// SkillElement returns the element a player skill hits with
func (c *Calculator) SkillElement(player *entities.Player, skill *entities.Skill) entities.Element {
	if skill.Effects.Damage == nil || skill.Effects.Damage.Element == "" {
		return player.Rune
	}
	return skill.Effects.Damage.Element
}

// PlayerSkillDamage is the pure damage formula. boost is the value of a
// consumed skill_boost effect, zero when none was active.
func (c *Calculator) PlayerSkillDamage(
	player *entities.Player,
	skill *entities.Skill,
	target *entities.Monster,
	boost float64,
) int {
	dmg := skill.Effects.Damage
	if dmg == nil || target == nil {
		return 0
	}

	var base float64
	if skill.IsMelee() {
		percent := dmg.BasePercent
		if percent == 0 {
			percent = c.balance.MeleeBasePercent
		}
		base = float64(player.Attack) * percent
	} else {
		base = dmg.Base + float64(player.Level-1)*c.balance.SkillDamageScaling
	}

	element := c.SkillElement(player, skill)
	if element == player.Rune && player.ElementalBoostPercent > 0 {
		base *= 1 + player.ElementalBoostPercent
	}

	if boost > 0 {
		base *= 1 + boost
	}

	multiplier := affinity.Multiplier(element, target.Element)
	return mitigate(base*multiplier, multiplier, target.Defense)
}

// ResolvePlayerSkillDamage consumes the player's skill_boost, if any, and
// computes damage with it. This is the only function here with a side effect.
func (c *Calculator) ResolvePlayerSkillDamage(
	player *entities.Player,
	skill *entities.Skill,
	target *entities.Monster,
) int {
	if skill.Effects.Damage == nil {
		return 0
	}
	var boost float64
	if effect := c.registry.FindOneShot(&player.Combatant, entities.EffectSkillBoost); effect != nil {
		boost = effect.Value
	}
	return c.PlayerSkillDamage(player, skill, target, boost)
}

// PlayerHeal returns the HP a healing skill restores
func (c *Calculator) PlayerHeal(player *entities.Player, skill *entities.Skill) int {
	if skill.Effects.Heal == nil {
		return 0
	}
	amount := skill.Effects.Heal.Amount + float64(player.Level-1)*c.balance.HealScaling
	if amount < 0 {
		return 0
	}
	return int(math.Floor(amount))
}

// MonsterSkillDamage returns the damage a monster skill deals to the player
func (c *Calculator) MonsterSkillDamage(
	monster *entities.Monster,
	skill *entities.MonsterSkill,
	player *entities.Player,
) int {
	if monster == nil || skill == nil || player == nil {
		return 0
	}
	element := skill.Element
	if element == "" {
		element = monster.Element
	}

	base := float64(monster.Attack) * skill.DamageMultiplier
	multiplier := affinity.Multiplier(element, player.Rune)
	return mitigate(base*multiplier, multiplier, player.Defense)
}

// LifeDrain returns the HP healed back from dealt damage
func LifeDrain(damage int, percent float64) int {
	if damage <= 0 || percent <= 0 {
		return 0
	}
	return int(math.Floor(float64(damage) * percent))
}

func mitigate(raw, multiplier float64, defense int) int {
	damage := int(math.Floor(raw)) - defense
	minimum := 1
	if multiplier == 0 {
		minimum = 0
	}
	if damage < minimum {
		return minimum
	}
	return damage
}
