// Package config loads the combat balance table.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/runes-api/internal/errors"
)

// Balance holds every tunable number the combat core reads.
type Balance struct {
	// Player skills
	SkillDamageScaling float64 `yaml:"skill_damage_scaling"` // flat damage per level above 1
	HealScaling        float64 `yaml:"heal_scaling"`         // flat heal per level above 1
	MeleeBasePercent   float64 `yaml:"melee_base_percent"`
	MeleeManaRegen     int     `yaml:"melee_mana_regen"`

	// Experience curve: floor(Initial * Factor^(L-1) + Flat*(L-1))
	ExpCurveInitial float64 `yaml:"exp_curve_initial"`
	ExpCurveFactor  float64 `yaml:"exp_curve_factor"`
	ExpCurveFlat    float64 `yaml:"exp_curve_flat"`
	MaxLevel        int     `yaml:"max_level"`

	// Player stats per level
	PlayerStats LevelStats `yaml:"player_stats"`

	// Monster scaling per level above 1
	MonsterHPScaling      float64 `yaml:"monster_hp_scaling"`
	MonsterAttackScaling  float64 `yaml:"monster_attack_scaling"`
	MonsterDefenseScaling float64 `yaml:"monster_defense_scaling"`
	MonsterRewardScaling  float64 `yaml:"monster_reward_scaling"` // reward growth per level above 1
	BossStatMultiplier    float64 `yaml:"boss_stat_multiplier"`
	BossRewardMultiplier  float64 `yaml:"boss_reward_multiplier"`
	BossInterval          int     `yaml:"boss_interval"` // regular kills before a forced boss

	// Win/loss transitions
	RevivalHPPercent   float64 `yaml:"revival_hp_percent"`
	VictoryHealPercent float64 `yaml:"victory_heal_percent"`
	VictoryManaPercent float64 `yaml:"victory_mana_percent"`
	ItemDropChance     float64 `yaml:"item_drop_chance"`

	// Delay before the monster answers a player action
	MonsterReplyDelay time.Duration `yaml:"monster_reply_delay"`
}

// LevelStats describes a stat line as base + increment*(level-1).
type LevelStats struct {
	BaseHP          int `yaml:"base_hp"`
	HPPerLevel      int `yaml:"hp_per_level"`
	BaseMana        int `yaml:"base_mana"`
	ManaPerLevel    int `yaml:"mana_per_level"`
	BaseAttack      int `yaml:"base_attack"`
	AttackPerLevel  int `yaml:"attack_per_level"`
	BaseDefense     int `yaml:"base_defense"`
	DefensePerLevel int `yaml:"defense_per_level"`
}

// DefaultBalance returns the balance the game ships with.
func DefaultBalance() Balance {
	return Balance{
		SkillDamageScaling: 3.5,
		HealScaling:        4,
		MeleeBasePercent:   1.0,
		MeleeManaRegen:     5,

		ExpCurveInitial: 100,
		ExpCurveFactor:  1.5,
		ExpCurveFlat:    20,
		MaxLevel:        99,

		PlayerStats: LevelStats{
			BaseHP:          100,
			HPPerLevel:      20,
			BaseMana:        50,
			ManaPerLevel:    10,
			BaseAttack:      7,
			AttackPerLevel:  2,
			BaseDefense:     3,
			DefensePerLevel: 1,
		},

		MonsterHPScaling:      15,
		MonsterAttackScaling:  2,
		MonsterDefenseScaling: 1,
		MonsterRewardScaling:  0.1,
		BossStatMultiplier:    1.5,
		BossRewardMultiplier:  3,
		BossInterval:          10,

		RevivalHPPercent:   0.5,
		VictoryHealPercent: 0.2,
		VictoryManaPercent: 0.2,
		ItemDropChance:     0.1,

		MonsterReplyDelay: 800 * time.Millisecond,
	}
}

// Validate checks that the table cannot produce degenerate combat.
func (b *Balance) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("melee_base_percent", b.MeleeBasePercent, vb)
	errors.ValidatePositive("exp_curve_initial", b.ExpCurveInitial, vb)
	if b.ExpCurveFactor < 1 {
		vb.Fieldf("exp_curve_factor", "must be at least 1, got %g", b.ExpCurveFactor)
	}
	errors.ValidateRange("max_level", b.MaxLevel, 1, 1000, vb)
	errors.ValidateRange("boss_interval", b.BossInterval, 1, 1000, vb)
	errors.ValidatePositive("boss_stat_multiplier", b.BossStatMultiplier, vb)
	errors.ValidateFraction("revival_hp_percent", b.RevivalHPPercent, vb)
	errors.ValidateFraction("victory_heal_percent", b.VictoryHealPercent, vb)
	errors.ValidateFraction("victory_mana_percent", b.VictoryManaPercent, vb)
	errors.ValidateFraction("item_drop_chance", b.ItemDropChance, vb)
	if b.PlayerStats.BaseHP <= 0 {
		vb.Field("player_stats.base_hp", "must be positive")
	}
	if b.PlayerStats.BaseAttack <= 0 {
		vb.Field("player_stats.base_attack", "must be positive")
	}
	if b.MonsterReplyDelay < 0 {
		vb.Field("monster_reply_delay", "must not be negative")
	}

	return vb.Build()
}

// LoadBalance loads a balance table from a YAML file.
// If the file doesn't exist, returns defaults. Keys missing from the file
// keep their default values.
func LoadBalance(path string) (Balance, error) {
	cfg := DefaultBalance()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading balance %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing balance %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid balance %s", path)
	}

	return cfg, nil
}
