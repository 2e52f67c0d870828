package spawn_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/spawn"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/pkg/idgen"
	"github.com/KirkDiggler/runes-api/internal/testutils"
)

type SpawnTestSuite struct {
	suite.Suite
	roller   *testutils.ScriptedRoller
	factory  *spawn.Factory
	slime    entities.MonsterTemplate
	wolf     entities.MonsterTemplate
	treeKing entities.MonsterTemplate
}

func TestSpawnSuite(t *testing.T) {
	suite.Run(t, new(SpawnTestSuite))
}

func (s *SpawnTestSuite) SetupTest() {
	s.roller = testutils.NewScriptedRoller()
	factory, err := spawn.NewFactory(&spawn.Config{
		Balance:     config.DefaultBalance(),
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("mon"),
	})
	s.Require().NoError(err)
	s.factory = factory

	s.slime = entities.MonsterTemplate{
		ID: "slime", Name: "Slime", Element: entities.ElementNature,
		BaseMaxHP: 30, BaseAttack: 6, BaseDefense: 2, BaseExp: 20, BaseGold: 10,
		Skills: []entities.MonsterSkill{{Name: "Ooze", DamageMultiplier: 1.2, Chance: 1}},
	}
	s.wolf = entities.MonsterTemplate{
		ID: "wolf", Name: "Wolf", Element: entities.ElementNormal,
		BaseMaxHP: 40, BaseAttack: 8, BaseDefense: 1, BaseExp: 25, BaseGold: 8,
	}
	s.treeKing = entities.MonsterTemplate{
		ID: "tree_king", Name: "Tree King", Element: entities.ElementNature,
		BaseMaxHP: 120, BaseAttack: 12, BaseDefense: 6, BaseExp: 100, BaseGold: 80,
	}
}

func (s *SpawnTestSuite) TestNewFactoryValidation() {
	_, err := spawn.NewFactory(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = spawn.NewFactory(&spawn.Config{})
	s.Error(err)
	s.Contains(err.Error(), "Roller")
}

func (s *SpawnTestSuite) TestSpawnScalesLinearly() {
	m := s.factory.Spawn(&s.slime, 3, 1.0, false)

	s.Equal(60, m.MaxHP)
	s.Equal(60, m.HP)
	s.Equal(10, m.Attack)
	s.Equal(4, m.Defense)
	s.Equal(24, m.ExpReward)
	s.Equal(12, m.GoldReward)
	s.Equal(3, m.Level)
	s.Equal(entities.ElementNature, m.Element)
	s.Equal(entities.EntityTypeMonster, m.GetType())
	s.Equal("slime", m.TemplateID)
	s.False(m.IsBoss)
	s.Equal("mon_1", m.ID)
}

func (s *SpawnTestSuite) TestBossMultipliers() {
	m := s.factory.Spawn(&s.slime, 3, 1.0, true)

	s.True(m.IsBoss)
	s.Equal(90, m.MaxHP)
	s.Equal(15, m.Attack)
	s.Equal(6, m.Defense)
	s.Equal(72, m.ExpReward)
	s.Equal(36, m.GoldReward)
	s.Equal("Boss Slime", m.Name)
}

func (s *SpawnTestSuite) TestIntensityRounds() {
	m := s.factory.Spawn(&s.slime, 1, 1.25, false)

	s.Equal(38, m.MaxHP)
	s.Equal(8, m.Attack)
	s.Equal(3, m.Defense)
	s.Equal(25, m.ExpReward)
	s.Equal(13, m.GoldReward)
}

func (s *SpawnTestSuite) TestStatFloors() {
	empty := entities.MonsterTemplate{ID: "wisp", Name: "Wisp"}
	m := s.factory.Spawn(&empty, 1, 0.1, false)

	s.Equal(1, m.MaxHP)
	s.Equal(1, m.Attack)
	s.Equal(1, m.Defense)
	s.GreaterOrEqual(m.ExpReward, 0)
}

func (s *SpawnTestSuite) TestSkillsAreCopied() {
	m := s.factory.Spawn(&s.slime, 1, 1, false)
	m.Skills[0].Name = "changed"
	s.Equal("Ooze", s.slime.Skills[0].Name)
}

func (s *SpawnTestSuite) TestSpawnForAreaPicksTemplateAndLevel() {
	area := &entities.Area{
		ID: "forest", RecommendedLevel: 4, Intensity: 1,
		Monsters: []entities.MonsterTemplate{s.slime, s.wolf},
	}
	s.roller.Push(2)

	m, err := s.factory.SpawnForArea(area, 1, false)
	s.Require().NoError(err)

	s.Equal("wolf", m.TemplateID)
	s.Equal(4, m.Level)
	s.Equal([]int{2}, s.roller.Sizes)

	m, err = s.factory.SpawnForArea(area, 7, false)
	s.Require().NoError(err)
	s.Equal(7, m.Level)
}

func (s *SpawnTestSuite) TestSpawnForAreaBoss() {
	area := &entities.Area{
		ID: "forest", RecommendedLevel: 1, Intensity: 1,
		Monsters: []entities.MonsterTemplate{s.slime, s.wolf},
		Bosses:   []entities.MonsterTemplate{s.treeKing},
	}

	m, err := s.factory.SpawnForArea(area, 1, true)
	s.Require().NoError(err)
	s.Equal("tree_king", m.TemplateID)
	s.True(m.IsBoss)
	s.Empty(s.roller.Sizes, "single candidate needs no roll")

	area.Bosses = nil
	s.roller.Push(1)
	m, err = s.factory.SpawnForArea(area, 1, true)
	s.Require().NoError(err)
	s.Equal("slime", m.TemplateID)
	s.True(m.IsBoss)
}

func (s *SpawnTestSuite) TestSpawnForAreaErrors() {
	_, err := s.factory.SpawnForArea(nil, 1, false)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.factory.SpawnForArea(&entities.Area{ID: "void"}, 1, false)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}
