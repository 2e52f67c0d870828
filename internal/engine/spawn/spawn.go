// Package spawn builds monster instances from templates.
package spawn

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/pkg/idgen"
)

// Config holds the dependencies for a Factory
type Config struct {
	Balance     config.Balance
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Factory turns templates into scaled monsters
type Factory struct {
	balance config.Balance
	roller  dice.Roller
	idGen   idgen.Generator
}

// NewFactory creates a spawn factory
func NewFactory(cfg *Config) (*Factory, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid spawn factory config")
	}
	return &Factory{
		balance: cfg.Balance,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
	}, nil
}

// Spawn builds a monster from a template. Stats grow linearly with
// scalingLevel and are multiplied by intensity, then by the boss
// multiplier for bosses.
func (f *Factory) Spawn(
	template *entities.MonsterTemplate,
	scalingLevel int,
	intensity float64,
	boss bool,
) *entities.Monster {
	if scalingLevel < 1 {
		scalingLevel = 1
	}
	if intensity <= 0 {
		intensity = 1
	}
	steps := float64(scalingLevel - 1)

	statMult := intensity
	if boss {
		statMult *= f.balance.BossStatMultiplier
	}
	stat := func(base int, perLevel float64) int {
		return max(int(math.Round((float64(base)+steps*perLevel)*statMult)), 1)
	}

	rewardMult := (1 + f.balance.MonsterRewardScaling*steps) * intensity
	if boss {
		rewardMult *= f.balance.BossRewardMultiplier
	}
	reward := func(base int) int {
		return max(int(math.Round(float64(base)*rewardMult)), 0)
	}

	maxHP := stat(template.BaseMaxHP, f.balance.MonsterHPScaling)
	name := template.Name
	if boss {
		name = "Boss " + name
	}

	return &entities.Monster{
		Combatant: entities.Combatant{
			ID:      f.idGen.Generate(),
			Name:    name,
			Kind:    entities.EntityTypeMonster,
			HP:      maxHP,
			MaxHP:   maxHP,
			Attack:  stat(template.BaseAttack, f.balance.MonsterAttackScaling),
			Defense: stat(template.BaseDefense, f.balance.MonsterDefenseScaling),
			Element: template.Element,
		},
		TemplateID: template.ID,
		Level:      scalingLevel,
		ExpReward:  reward(template.BaseExp),
		GoldReward: reward(template.BaseGold),
		IsBoss:     boss,
		Skills:     append([]entities.MonsterSkill(nil), template.Skills...),
	}
}

// SpawnForArea picks a template from the area and spawns it. Monsters scale
// with the player but never below the area's recommended level. An area
// without a boss list promotes one of its regular monsters.
func (f *Factory) SpawnForArea(area *entities.Area, playerLevel int, boss bool) (*entities.Monster, error) {
	if area == nil {
		return nil, errors.InvalidArgument("area is required")
	}

	pool := area.Monsters
	if boss && len(area.Bosses) > 0 {
		pool = area.Bosses
	}
	if len(pool) == 0 {
		return nil, errors.FailedPrecondition("area has no monsters").WithMeta("area_id", area.ID)
	}

	idx := 0
	if len(pool) > 1 {
		roll, err := f.roller.Roll(len(pool))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick monster template")
		}
		idx = min(max(roll-1, 0), len(pool)-1)
	}

	level := max(playerLevel, area.RecommendedLevel)
	monster := f.Spawn(&pool[idx], level, area.Intensity, boss)

	slog.Debug("Monster spawned",
		"area_id", area.ID,
		"template_id", monster.TemplateID,
		"level", monster.Level,
		"boss", boss,
	)

	return monster, nil
}
