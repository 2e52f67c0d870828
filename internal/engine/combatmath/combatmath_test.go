package combatmath_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/affinity"
	"github.com/KirkDiggler/runes-api/internal/engine/combatmath"
	"github.com/KirkDiggler/runes-api/internal/engine/status"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/testutils/builders"
)

type CombatMathTestSuite struct {
	suite.Suite
	registry *status.Registry
	calc     *combatmath.Calculator
	player   *entities.Player
	melee    *entities.Skill
	fireball *entities.Skill
}

func TestCombatMathSuite(t *testing.T) {
	suite.Run(t, new(CombatMathTestSuite))
}

func (s *CombatMathTestSuite) SetupTest() {
	s.registry = status.NewRegistry(nil)
	s.calc = combatmath.NewCalculator(config.DefaultBalance(), s.registry)
	s.player = builders.NewPlayerBuilder().Build()
	s.melee = &entities.Skill{
		ID:      entities.MeleeSkillID,
		Effects: entities.SkillEffects{Damage: &entities.DamageEffect{BasePercent: 1.0}, ManaRegen: 5},
	}
	s.fireball = &entities.Skill{
		ID:       "fireball",
		ManaCost: 10,
		Effects: entities.SkillEffects{Damage: &entities.DamageEffect{
			Element: entities.ElementFire,
			Base:    12,
		}},
	}
}

func (s *CombatMathTestSuite) monster(element entities.Element, defense int) *entities.Monster {
	return builders.NewMonsterBuilder().WithElement(element).WithStats(8, defense).Build()
}

func (s *CombatMathTestSuite) TestMeleeAgainstWeakElement() {
	// floor(7 * 1.0 * 2.0) - 2 = 12
	damage := s.calc.PlayerSkillDamage(s.player, s.melee, s.monster(entities.ElementNature, 2), 0)
	s.Equal(12, damage)
}

func (s *CombatMathTestSuite) TestFireSkillAgainstResistantElement() {
	// floor(12 * 0.5) - 1 = 5
	damage := s.calc.PlayerSkillDamage(s.player, s.fireball, s.monster(entities.ElementWater, 1), 0)
	s.Equal(5, damage)
}

func (s *CombatMathTestSuite) TestLevelScalingIsFlatAdditive() {
	s.player.Level = 3
	// (12 + 2*3.5) = 19, neutral, minus 0
	damage := s.calc.PlayerSkillDamage(s.player, s.fireball, s.monster(entities.ElementNormal, 0), 0)
	s.Equal(19, damage)
}

func (s *CombatMathTestSuite) TestTruncatesInsteadOfRounding() {
	s.player.Level = 2
	// 12 + 3.5 = 15.5 -> 15, not 16
	damage := s.calc.PlayerSkillDamage(s.player, s.fireball, s.monster(entities.ElementNormal, 0), 0)
	s.Equal(15, damage)
}

func (s *CombatMathTestSuite) TestRuneBoostAppliesOnlyToRuneElement() {
	s.player.ElementalBoostPercent = 0.5
	neutral := s.monster(entities.ElementNormal, 0)

	s.Equal(18, s.calc.PlayerSkillDamage(s.player, s.fireball, neutral, 0))

	s.player.Rune = entities.ElementWater
	s.Equal(12, s.calc.PlayerSkillDamage(s.player, s.fireball, neutral, 0))
}

func (s *CombatMathTestSuite) TestBoostOrderBeforeElementBeforeDefense() {
	s.player.ElementalBoostPercent = 0.5
	// 12 * 1.5 * (1 + 1.0) * 2.0 = 72, minus 10
	damage := s.calc.PlayerSkillDamage(s.player, s.fireball, s.monster(entities.ElementNature, 10), 1.0)
	s.Equal(62, damage)
}

func (s *CombatMathTestSuite) TestMinimumDamage() {
	s.Equal(1, s.calc.PlayerSkillDamage(s.player, s.melee, s.monster(entities.ElementNormal, 500), 0))
}

func (s *CombatMathTestSuite) TestImmunityAllowsZero() {
	s.player.Rune = entities.ElementLightning
	s.Equal(0, s.calc.PlayerSkillDamage(s.player, s.melee, s.monster(entities.ElementEarth, 0), 0))
}

func (s *CombatMathTestSuite) TestResolveConsumesSkillBoostOnce() {
	s.registry.Apply(&s.player.Combatant, entities.EffectSkillBoost, 1.0, 3, "Focus")
	target := s.monster(entities.ElementNormal, 0)

	s.Require().NotNil(s.registry.Find(&s.player.Combatant, entities.EffectSkillBoost))
	s.Equal(24, s.calc.ResolvePlayerSkillDamage(s.player, s.fireball, target))
	s.Nil(s.registry.Find(&s.player.Combatant, entities.EffectSkillBoost))
	s.Equal(12, s.calc.ResolvePlayerSkillDamage(s.player, s.fireball, target))
}

func (s *CombatMathTestSuite) TestResolveKeepsBoostForNonDamageSkill() {
	s.registry.Apply(&s.player.Combatant, entities.EffectSkillBoost, 1.0, 3, "Focus")
	heal := &entities.Skill{ID: "mend", Effects: entities.SkillEffects{Heal: &entities.HealEffect{Amount: 10}}}

	s.Equal(0, s.calc.ResolvePlayerSkillDamage(s.player, heal, s.monster(entities.ElementNormal, 0)))
	s.NotNil(s.registry.Find(&s.player.Combatant, entities.EffectSkillBoost))
}

func (s *CombatMathTestSuite) TestPlayerHeal() {
	heal := &entities.Skill{ID: "mend", Effects: entities.SkillEffects{Heal: &entities.HealEffect{Amount: 20}}}
	s.Equal(20, s.calc.PlayerHeal(s.player, heal))

	s.player.Level = 4
	s.Equal(32, s.calc.PlayerHeal(s.player, heal))

	s.Equal(0, s.calc.PlayerHeal(s.player, s.fireball))
}

func (s *CombatMathTestSuite) TestMonsterSkillDamage() {
	m := s.monster(entities.ElementWater, 0)
	bite := &entities.MonsterSkill{Name: "Tidal Bite", DamageMultiplier: 1.5}

	// 8 * 1.5 = 12, water vs fire rune 2.0 = 24, minus player defense 3
	s.Equal(21, s.calc.MonsterSkillDamage(m, bite, s.player))

	bite.Element = entities.ElementNature
	// 12 * 0.5 = 6, minus 3
	s.Equal(3, s.calc.MonsterSkillDamage(m, bite, s.player))

	s.Equal(0, s.calc.MonsterSkillDamage(m, nil, s.player))
}

func (s *CombatMathTestSuite) TestLifeDrain() {
	s.Equal(5, combatmath.LifeDrain(11, 0.5))
	s.Equal(0, combatmath.LifeDrain(0, 0.5))
	s.Equal(0, combatmath.LifeDrain(10, 0))
}

func (s *CombatMathTestSuite) TestDamageFloorProperty() {
	rng := rand.New(rand.NewPCG(7, 11))
	elements := entities.AllElements()

	for i := 0; i < 2000; i++ {
		s.player.Level = 1 + rng.IntN(30)
		s.player.Attack = 1 + rng.IntN(60)
		s.player.Rune = elements[rng.IntN(len(elements))]
		s.player.ElementalBoostPercent = float64(rng.IntN(3)) * 0.25

		skill := s.fireball
		if rng.IntN(2) == 0 {
			skill = s.melee
		}
		target := s.monster(elements[rng.IntN(len(elements))], rng.IntN(200))
		boost := float64(rng.IntN(3)) * 0.5

		damage := s.calc.PlayerSkillDamage(s.player, skill, target, boost)
		multiplier := affinity.Multiplier(s.calc.SkillElement(s.player, skill), target.Element)

		s.GreaterOrEqual(damage, 0)
		if multiplier != 0 {
			s.GreaterOrEqual(damage, 1)
		}
	}
}
