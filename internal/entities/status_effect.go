package entities

// EffectType identifies a status effect. A combatant holds at most one effect per type.
type EffectType string

// Known effect types
const (
	EffectAttackUp     EffectType = "attack_up"
	EffectAttackDown   EffectType = "attack_down"
	EffectDefenseUp    EffectType = "defense_up"
	EffectDefenseDown  EffectType = "defense_down"
	EffectPoison       EffectType = "poison_dot"
	EffectPoisonResist EffectType = "poison_resist"
	EffectEvasionUp    EffectType = "evasion_up"
	EffectSkillBoost   EffectType = "skill_boost"
)

// StatusEffect is a timed or one-shot modifier attached to a combatant
type StatusEffect struct {
	Type EffectType

	// Turns remaining. Decremented once per end-of-turn pass of the owner.
	Duration int

	// Magnitude. Flat stat delta for stat effects, damage for poison,
	// probability or multiplier fraction for evasion and skill boosts.
	Value float64

	// Stat value before the effect was applied. Only set for stat effects.
	OriginalValue *int

	Description string
}

// IsStatEffect reports whether the effect type mutates attack or defense
func (t EffectType) IsStatEffect() bool {
	switch t {
	case EffectAttackUp, EffectAttackDown, EffectDefenseUp, EffectDefenseDown:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the effect
func (e *StatusEffect) Clone() *StatusEffect {
	if e == nil {
		return nil
	}
	c := *e
	if e.OriginalValue != nil {
		v := *e.OriginalValue
		c.OriginalValue = &v
	}
	return &c
}
