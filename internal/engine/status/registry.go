// Package status applies, ticks and expires status effects on combatants.
package status

import (
	"log/slog"

	"github.com/KirkDiggler/runes-api/internal/entities"
)

const (
	minAttack  = 1
	minDefense = 0
)

// Observer is told whenever a combatant's effect list changes
type Observer func(target *entities.Combatant)

// TickResult reports what an end-of-turn pass did
type TickResult struct {
	Changed      bool
	Died         bool
	PoisonDamage int
	Expired      []entities.EffectType
}

// Registry owns the rules for status effects. It holds no per-combatant
// state; effects live on the combatant itself.
type Registry struct {
	observer Observer
}

// NewRegistry creates a registry. observer may be nil.
func NewRegistry(observer Observer) *Registry {
	return &Registry{observer: observer}
}

// Apply attaches an effect, replacing any effect of the same type.
// Stat effects snapshot the stat before changing it so expiry can restore it exactly.
func (r *Registry) Apply(
	target *entities.Combatant,
	effectType entities.EffectType,
	value float64,
	duration int,
	description string,
) *entities.StatusEffect {
	if target == nil {
		return nil
	}

	r.remove(target, effectType)

	effect := &entities.StatusEffect{
		Type:        effectType,
		Duration:    duration,
		Value:       value,
		Description: description,
	}

	if effectType.IsStatEffect() {
		stat := statPointer(target, effectType)
		original := *stat
		effect.OriginalValue = &original
		*stat = shift(effectType, original, value)
	}

	target.StatusEffects = append(target.StatusEffects, effect)

	slog.Debug("Status effect applied",
		"target", target.ID,
		"effect", effectType,
		"value", value,
		"duration", duration,
	)

	r.notify(target)
	return effect
}

// Tick runs one end-of-turn pass: poison damages, durations count down and
// expired effects are removed. A poison kill stops the pass for this target.
func (r *Registry) Tick(target *entities.Combatant) TickResult {
	var result TickResult
	if target == nil || len(target.StatusEffects) == 0 {
		return result
	}

	resist := 0
	if e := r.Find(target, entities.EffectPoisonResist); e != nil {
		resist = int(e.Value)
	}

	pass := append([]*entities.StatusEffect(nil), target.StatusEffects...)
	for _, effect := range pass {
		if effect.Type == entities.EffectPoison {
			damage := int(effect.Value) - resist
			if damage < 1 {
				damage = 1
			}
			result.PoisonDamage += target.TakeDamage(damage)
			result.Changed = true
			if !target.IsAlive() {
				result.Died = true
				break
			}
		}

		effect.Duration--
		if effect.Duration <= 0 {
			r.removeEffect(target, effect)
			result.Expired = append(result.Expired, effect.Type)
			result.Changed = true
		}
	}

	if result.Changed {
		r.notify(target)
	}
	return result
}

// FindOneShot removes and returns a single-use effect, or nil if absent
func (r *Registry) FindOneShot(target *entities.Combatant, effectType entities.EffectType) *entities.StatusEffect {
	effect := r.Find(target, effectType)
	if effect == nil {
		return nil
	}
	r.removeEffect(target, effect)
	r.notify(target)
	return effect
}

// Find returns the active effect of a type without consuming it
func (r *Registry) Find(target *entities.Combatant, effectType entities.EffectType) *entities.StatusEffect {
	if target == nil {
		return nil
	}
	for _, e := range target.StatusEffects {
		if e.Type == effectType {
			return e
		}
	}
	return nil
}

// Remove drops an effect, restoring any stat it changed
func (r *Registry) Remove(target *entities.Combatant, effectType entities.EffectType) bool {
	if !r.remove(target, effectType) {
		return false
	}
	r.notify(target)
	return true
}

// Clear removes every effect, restoring stats to their pre-effect values
func (r *Registry) Clear(target *entities.Combatant) {
	if target == nil || len(target.StatusEffects) == 0 {
		return
	}
	for _, stat := range []entities.EffectType{entities.EffectAttackUp, entities.EffectDefenseUp} {
		if base, ok := chainBase(target, stat); ok {
			*statPointer(target, stat) = base
		}
	}
	target.StatusEffects = nil
	r.notify(target)
}

// Reapply rebases stat effects on the current stat values. Call it after
// stats were recomputed from scratch (level up, equipment change) so active
// buffs and debuffs still apply and still expire back to the new base.
func (r *Registry) Reapply(target *entities.Combatant) {
	if target == nil {
		return
	}
	restack(target, entities.EffectAttackUp, target.Attack)
	restack(target, entities.EffectDefenseUp, target.Defense)
}

func (r *Registry) remove(target *entities.Combatant, effectType entities.EffectType) bool {
	effect := r.Find(target, effectType)
	if effect == nil {
		return false
	}
	r.removeEffect(target, effect)
	return true
}

// removeEffect unlinks an effect. For stat effects the remaining effects on
// the same stat are replayed from the oldest snapshot, so the stat never
// drifts however applications and expiries interleave.
func (r *Registry) removeEffect(target *entities.Combatant, effect *entities.StatusEffect) {
	var base int
	var hasBase bool
	if effect.Type.IsStatEffect() {
		base, hasBase = chainBase(target, effect.Type)
	}

	kept := target.StatusEffects[:0]
	for _, e := range target.StatusEffects {
		if e != effect {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(target.StatusEffects); i++ {
		target.StatusEffects[i] = nil
	}
	target.StatusEffects = kept

	if hasBase {
		restack(target, effect.Type, base)
	}
}

func (r *Registry) notify(target *entities.Combatant) {
	if r.observer != nil {
		r.observer(target)
	}
}

// chainBase returns the pre-effect value of the stat touched by effectType,
// taken from the oldest effect on that stat
func chainBase(target *entities.Combatant, effectType entities.EffectType) (int, bool) {
	for _, e := range target.StatusEffects {
		if sameStat(e.Type, effectType) && e.OriginalValue != nil {
			return *e.OriginalValue, true
		}
	}
	return 0, false
}

// restack sets the stat to base and replays every effect on it in order
func restack(target *entities.Combatant, effectType entities.EffectType, base int) {
	stat := statPointer(target, effectType)
	*stat = base
	for _, e := range target.StatusEffects {
		if !sameStat(e.Type, effectType) {
			continue
		}
		original := *stat
		e.OriginalValue = &original
		*stat = shift(e.Type, original, e.Value)
	}
}

func shift(effectType entities.EffectType, current int, value float64) int {
	delta := int(value)
	switch effectType {
	case entities.EffectAttackUp, entities.EffectDefenseUp:
		return current + delta
	case entities.EffectAttackDown:
		return max(current-delta, minAttack)
	case entities.EffectDefenseDown:
		return max(current-delta, minDefense)
	default:
		return current
	}
}

func isAttack(t entities.EffectType) bool {
	return t == entities.EffectAttackUp || t == entities.EffectAttackDown
}

func sameStat(a, b entities.EffectType) bool {
	if !a.IsStatEffect() || !b.IsStatEffect() {
		return false
	}
	return isAttack(a) == isAttack(b)
}

func statPointer(target *entities.Combatant, effectType entities.EffectType) *int {
	if isAttack(effectType) {
		return &target.Attack
	}
	return &target.Defense
}
