package entities

// MeleeSkillID is the built-in attack every rune skill set starts with
const MeleeSkillID = "melee"

// EffectKind names one variant of a skill's effects
type EffectKind string

// Skill effect variants
const (
	KindDamage    EffectKind = "damage"
	KindHeal      EffectKind = "heal"
	KindManaRegen EffectKind = "mana_regen"
	KindBuff      EffectKind = "buff"
	KindDebuff    EffectKind = "debuff"
)

// Skill is a player action
type Skill struct {
	ID          string
	Name        string
	Description string
	ManaCost    int
	Effects     SkillEffects
}

// SkillEffects is a tagged union of what a skill does. Any combination of
// variants may be present; resolution order is fixed by the combat engine.
type SkillEffects struct {
	Damage    *DamageEffect
	Heal      *HealEffect
	ManaRegen int
	Buff      *StatusGrant // applied to the user
	Debuff    *StatusGrant // applied to the enemy
}

// DamageEffect deals damage to the enemy
type DamageEffect struct {
	// Empty means the user's rune
	Element Element

	// Flat base damage for rune skills
	Base float64

	// Fraction of attack used by melee. Zero falls back to the balance default.
	BasePercent float64

	// Life drain: fraction of dealt damage healed back to the user
	HealPercentOfDamage float64
}

// HealEffect restores the user's HP
type HealEffect struct {
	Amount float64
}

// StatusGrant describes a status effect a skill applies
type StatusGrant struct {
	Effect   EffectType
	Value    float64
	Duration int
}

// IsMelee reports whether this is the built-in attack
func (s *Skill) IsMelee() bool {
	return s.ID == MeleeSkillID
}

// Kinds lists the variants present, in resolution order
func (e SkillEffects) Kinds() []EffectKind {
	var kinds []EffectKind
	if e.Damage != nil {
		kinds = append(kinds, KindDamage)
	}
	if e.Heal != nil {
		kinds = append(kinds, KindHeal)
	}
	if e.ManaRegen > 0 {
		kinds = append(kinds, KindManaRegen)
	}
	if e.Buff != nil {
		kinds = append(kinds, KindBuff)
	}
	if e.Debuff != nil {
		kinds = append(kinds, KindDebuff)
	}
	return kinds
}

// MonsterSkill is an action a monster picks by weighted draw
type MonsterSkill struct {
	Name string

	// Element of the attack. Empty means the monster's own element.
	Element Element

	DamageMultiplier    float64
	HealPercentOfDamage float64

	// Selection weight in [0, 1]. Mass left over falls to the last skill.
	Chance float64

	Buff   *StatusGrant // applied to the monster
	Debuff *StatusGrant // applied to the player
}
