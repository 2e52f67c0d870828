// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/runes-api/internal/entities"
)

// PlayerBuilder provides a fluent interface for building test Player instances
type PlayerBuilder struct {
	player *entities.Player
}

// NewPlayerBuilder creates a builder for a level 1 Fire player with
// 100 HP, 50 mana, 7 attack and 3 defense
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		player: &entities.Player{
			Combatant: entities.Combatant{
				ID:      "player-test-1",
				Name:    "Tester",
				Kind:    entities.EntityTypePlayer,
				HP:      100,
				MaxHP:   100,
				Attack:  7,
				Defense: 3,
				Element: entities.ElementFire,
			},
			Level:        1,
			Mana:         50,
			MaxMana:      50,
			NextLevelExp: 100,
			Rune:         entities.ElementFire,
		},
	}
}

// WithID sets the player ID
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.player.ID = id
	return b
}

// WithRune sets the rune and the matching element
func (b *PlayerBuilder) WithRune(element entities.Element) *PlayerBuilder {
	b.player.Rune = element
	b.player.Element = element
	return b
}

// WithLevel sets the level without touching stats
func (b *PlayerBuilder) WithLevel(level int) *PlayerBuilder {
	b.player.Level = level
	return b
}

// WithHP sets current and max HP
func (b *PlayerBuilder) WithHP(hp, maxHP int) *PlayerBuilder {
	b.player.HP = hp
	b.player.MaxHP = maxHP
	return b
}

// WithMana sets current and max mana
func (b *PlayerBuilder) WithMana(mana, maxMana int) *PlayerBuilder {
	b.player.Mana = mana
	b.player.MaxMana = maxMana
	return b
}

// WithStats sets attack and defense
func (b *PlayerBuilder) WithStats(attack, defense int) *PlayerBuilder {
	b.player.Attack = attack
	b.player.Defense = defense
	return b
}

// WithElementalBoost sets the elemental boost percent
func (b *PlayerBuilder) WithElementalBoost(percent float64) *PlayerBuilder {
	b.player.ElementalBoostPercent = percent
	return b
}

// WithSkills sets the skill list
func (b *PlayerBuilder) WithSkills(skills ...entities.Skill) *PlayerBuilder {
	b.player.Skills = append([]entities.Skill(nil), skills...)
	return b
}

// WithRevivalStone gives the player a revival stone
func (b *PlayerBuilder) WithRevivalStone() *PlayerBuilder {
	b.player.HasRevivalStone = true
	return b
}

// Build returns the constructed player
func (b *PlayerBuilder) Build() *entities.Player {
	return b.player
}

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *entities.Monster
}

// NewMonsterBuilder creates a builder for a Normal monster with 50 HP,
// 8 attack and no defense
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &entities.Monster{
			Combatant: entities.Combatant{
				ID:      "monster-test-1",
				Name:    "Dummy",
				Kind:    entities.EntityTypeMonster,
				HP:      50,
				MaxHP:   50,
				Attack:  8,
				Element: entities.ElementNormal,
			},
			TemplateID: "dummy",
			Level:      1,
		},
	}
}

// WithName sets the monster name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithElement sets the monster element
func (b *MonsterBuilder) WithElement(element entities.Element) *MonsterBuilder {
	b.monster.Element = element
	return b
}

// WithHP sets current and max HP
func (b *MonsterBuilder) WithHP(hp, maxHP int) *MonsterBuilder {
	b.monster.HP = hp
	b.monster.MaxHP = maxHP
	return b
}

// WithStats sets attack and defense
func (b *MonsterBuilder) WithStats(attack, defense int) *MonsterBuilder {
	b.monster.Attack = attack
	b.monster.Defense = defense
	return b
}

// WithSkills sets the monster's skill list
func (b *MonsterBuilder) WithSkills(skills ...entities.MonsterSkill) *MonsterBuilder {
	b.monster.Skills = append([]entities.MonsterSkill(nil), skills...)
	return b
}

// AsBoss marks the monster as a boss
func (b *MonsterBuilder) AsBoss() *MonsterBuilder {
	b.monster.IsBoss = true
	return b
}

// Build returns the constructed monster
func (b *MonsterBuilder) Build() *entities.Monster {
	return b.monster
}
