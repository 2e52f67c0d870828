// Package entities provides the combat data model for runes-api.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types reported through core.Entity
const (
	EntityTypePlayer  = "player"
	EntityTypeMonster = "monster"
)

// Combatant is the shape shared by the player and monsters
type Combatant struct {
	ID      string
	Name    string
	Kind    string // EntityTypePlayer or EntityTypeMonster
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	Element Element

	// Insertion order is application order
	StatusEffects []*StatusEffect
}

var _ core.Entity = (*Combatant)(nil)

// GetID returns the combatant ID for rpg-toolkit
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Combatant) GetType() string {
	return c.Kind
}

// IsAlive reports whether the combatant has HP left
func (c *Combatant) IsAlive() bool {
	return c.HP > 0
}

// TakeDamage removes HP and returns the amount actually lost
func (c *Combatant) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP -= amount
	c.ClampHP()
	return before - c.HP
}

// Heal restores HP and returns the amount actually gained
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.HP
	c.HP += amount
	c.ClampHP()
	return c.HP - before
}

// ClampHP keeps HP inside [0, MaxHP]
func (c *Combatant) ClampHP() {
	if c.MaxHP < 0 {
		c.MaxHP = 0
	}
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	if c.HP < 0 {
		c.HP = 0
	}
}

// CloneCombatant returns a deep copy including status effects
func (c *Combatant) CloneCombatant() Combatant {
	out := *c
	out.StatusEffects = make([]*StatusEffect, len(c.StatusEffects))
	for i, e := range c.StatusEffects {
		out.StatusEffects[i] = e.Clone()
	}
	return out
}
