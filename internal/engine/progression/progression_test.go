package progression_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/progression"
	"github.com/KirkDiggler/runes-api/internal/engine/status"
	"github.com/KirkDiggler/runes-api/internal/entities"
)

type ProgressionTestSuite struct {
	suite.Suite
	balance  config.Balance
	registry *status.Registry
	engine   *progression.Engine
	player   *entities.Player
}

func TestProgressionSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}

func (s *ProgressionTestSuite) SetupTest() {
	s.balance = config.DefaultBalance()
	s.registry = status.NewRegistry(nil)
	s.engine = progression.NewEngine(s.balance, s.registry)
	s.player = s.engine.NewPlayer("p1", "Aria", entities.ElementFire, nil)
}

func (s *ProgressionTestSuite) TestNewPlayer() {
	s.Equal(1, s.player.Level)
	s.Equal(100, s.player.MaxHP)
	s.Equal(100, s.player.HP)
	s.Equal(50, s.player.Mana)
	s.Equal(7, s.player.Attack)
	s.Equal(3, s.player.Defense)
	s.Equal(100, s.player.NextLevelExp)
	s.Equal(entities.ElementFire, s.player.Element)
	s.Equal(entities.EntityTypePlayer, s.player.GetType())
}

func (s *ProgressionTestSuite) TestNextLevelExpCurve() {
	s.Equal(100, s.engine.NextLevelExp(1))
	s.Equal(170, s.engine.NextLevelExp(2))
	s.Equal(265, s.engine.NextLevelExp(3))
	s.Equal(100, s.engine.NextLevelExp(0))
}

func (s *ProgressionTestSuite) TestBelowThreshold() {
	result := s.engine.AddExperience(s.player, 99)
	s.False(result.LeveledUp())
	s.Equal(99, s.player.Exp)
	s.Equal(1, s.player.Level)
}

func (s *ProgressionTestSuite) TestMultiLevelGrantCarriesRemainder() {
	s.player.HP = 10
	s.player.Mana = 0

	result := s.engine.AddExperience(s.player, 300)

	s.True(result.LeveledUp())
	s.Equal(2, result.LevelsGained)
	s.Equal(1, result.OldLevel)
	s.Equal(3, result.NewLevel)
	s.Equal(30, s.player.Exp)
	s.Equal(265, s.player.NextLevelExp)
	s.Less(s.player.Exp, s.player.NextLevelExp)

	s.Equal(140, s.player.MaxHP)
	s.Equal(140, s.player.HP)
	s.Equal(70, s.player.Mana)
	s.Equal(11, s.player.Attack)
	s.Equal(5, s.player.Defense)
}

func (s *ProgressionTestSuite) TestLevelMonotonicAcrossGrants() {
	prevLevel := s.player.Level
	prevNext := s.player.NextLevelExp
	for i := 0; i < 50; i++ {
		s.engine.AddExperience(s.player, 137)
		s.GreaterOrEqual(s.player.Level, prevLevel)
		s.GreaterOrEqual(s.player.NextLevelExp, prevNext)
		s.Less(s.player.Exp, s.player.NextLevelExp)
		prevLevel = s.player.Level
		prevNext = s.player.NextLevelExp
	}
}

func (s *ProgressionTestSuite) TestMaxLevelCapsLoop() {
	s.balance.MaxLevel = 3
	engine := progression.NewEngine(s.balance, nil)
	p := engine.NewPlayer("p2", "Cap", entities.ElementWater, nil)

	result := engine.AddExperience(p, 1_000_000)

	s.Equal(3, p.Level)
	s.Equal(2, result.LevelsGained)
}

func (s *ProgressionTestSuite) TestSteepCurveSaturates() {
	s.balance.ExpCurveFactor = 10
	s.balance.ExpCurveFlat = 0
	s.balance.MaxLevel = 100
	engine := progression.NewEngine(s.balance, nil)

	s.Equal(100, engine.NextLevelExp(1))
	s.Equal(1000, engine.NextLevelExp(2))
	s.Equal(math.MaxInt, engine.NextLevelExp(30))
	s.Equal(math.MaxInt, engine.NextLevelExp(98))

	p := engine.NewPlayer("p3", "Steep", entities.ElementEarth, nil)
	p.Level = 30
	p.NextLevelExp = engine.NextLevelExp(30)
	p.Exp = 5

	result := engine.AddExperience(p, math.MaxInt)
	s.Equal(1, result.LevelsGained)
	s.Equal(31, p.Level)
	s.Equal(0, p.Exp)
	s.Equal(math.MaxInt, p.NextLevelExp)

	result = engine.AddExperience(p, 1000)
	s.False(result.LeveledUp())
	s.Equal(1000, p.Exp)
}

func (s *ProgressionTestSuite) TestEquipmentAndBoost() {
	s.player.Equipment.Set(entities.SlotWeapon, &entities.Item{ID: "w", Attack: 5})
	s.player.Equipment.Set(entities.SlotAccessory, &entities.Item{
		ID: "a", MaxMana: 20, ElementalBoostPercent: 0.25,
	})
	s.player.Equipment.Set(entities.SlotArmor, &entities.Item{ID: "r", Defense: 4, MaxHP: 30})

	s.engine.RecalculateStats(s.player)

	s.Equal(12, s.player.Attack)
	s.Equal(7, s.player.Defense)
	s.Equal(130, s.player.MaxHP)
	s.Equal(70, s.player.MaxMana)
	s.InDelta(0.25, s.player.ElementalBoostPercent, 1e-9)
	s.Equal(100, s.player.HP, "recalculation does not refill")
}

func (s *ProgressionTestSuite) TestUnequipClampsCurrentValues() {
	s.player.Equipment.Set(entities.SlotArmor, &entities.Item{ID: "r", MaxHP: 50})
	s.engine.RecalculateStats(s.player)
	s.player.HP = 150

	s.player.Equipment.Set(entities.SlotArmor, nil)
	s.engine.RecalculateStats(s.player)

	s.Equal(100, s.player.HP)
}

func (s *ProgressionTestSuite) TestRecalculateKeepsActiveBuff() {
	s.registry.Apply(&s.player.Combatant, entities.EffectAttackUp, 4, 2, "Rage")
	s.Equal(11, s.player.Attack)

	s.engine.AddExperience(s.player, 100)
	s.Equal(13, s.player.Attack, "level 2 attack 9 plus buff")

	s.registry.Remove(&s.player.Combatant, entities.EffectAttackUp)
	s.Equal(9, s.player.Attack)
}

func (s *ProgressionTestSuite) TestAddGold() {
	s.Equal(25, s.engine.AddGold(s.player, 25))
	s.Equal(25, s.engine.AddGold(s.player, -10))
}
