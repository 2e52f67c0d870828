// Package progression handles experience, leveling and derived player stats.
package progression

import (
	"log/slog"
	"math"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/status"
	"github.com/KirkDiggler/runes-api/internal/entities"
)

// LevelUpResult reports what an experience grant did
type LevelUpResult struct {
	LevelsGained int
	OldLevel     int
	NewLevel     int
	ExpGained    int
}

// LeveledUp reports whether at least one level was gained
func (r LevelUpResult) LeveledUp() bool {
	return r.LevelsGained > 0
}

// Engine applies the leveling rules from the balance table
type Engine struct {
	balance  config.Balance
	registry *status.Registry
}

// NewEngine creates a progression engine. registry rebases active stat
// effects after a recalculation and may be nil.
func NewEngine(balance config.Balance, registry *status.Registry) *Engine {
	if registry == nil {
		registry = status.NewRegistry(nil)
	}
	return &Engine{
		balance:  balance,
		registry: registry,
	}
}

// NextLevelExp returns the experience needed to leave the given level.
// Steep curves saturate at math.MaxInt; the result is never below 1.
func (e *Engine) NextLevelExp(level int) int {
	if level < 1 {
		level = 1
	}
	steps := float64(level - 1)
	need := math.Floor(e.balance.ExpCurveInitial*math.Pow(e.balance.ExpCurveFactor, steps) +
		e.balance.ExpCurveFlat*steps)
	switch {
	case math.IsNaN(need) || need >= math.MaxInt:
		return math.MaxInt
	case need < 1:
		return 1
	}
	return int(need)
}

// NewPlayer builds a fresh level-1 player
func (e *Engine) NewPlayer(id, name string, element entities.Element, skills []entities.Skill) *entities.Player {
	p := &entities.Player{
		Combatant: entities.Combatant{
			ID:      id,
			Name:    name,
			Kind:    entities.EntityTypePlayer,
			Element: element,
		},
		Level:  1,
		Rune:   element,
		Skills: append([]entities.Skill(nil), skills...),
	}
	p.NextLevelExp = e.NextLevelExp(1)
	e.RecalculateStats(p)
	p.HP = p.MaxHP
	p.Mana = p.MaxMana
	return p
}

// AddExperience grants experience and processes every level it buys.
// The surplus carries over. A level up fully restores HP and mana.
func (e *Engine) AddExperience(player *entities.Player, amount int) LevelUpResult {
	result := LevelUpResult{OldLevel: player.Level, NewLevel: player.Level}
	if amount <= 0 {
		return result
	}

	if player.Exp > math.MaxInt-amount {
		player.Exp = math.MaxInt
	} else {
		player.Exp += amount
	}
	result.ExpGained = amount

	if player.NextLevelExp <= 0 {
		player.NextLevelExp = e.NextLevelExp(player.Level)
	}

	for player.Exp >= player.NextLevelExp && player.Level < e.balance.MaxLevel {
		player.Exp -= player.NextLevelExp
		player.Level++
		player.NextLevelExp = e.NextLevelExp(player.Level)
		result.LevelsGained++
	}

	if result.LevelsGained == 0 {
		return result
	}

	result.NewLevel = player.Level
	e.RecalculateStats(player)
	player.HP = player.MaxHP
	player.Mana = player.MaxMana

	slog.Info("Player leveled up",
		"player_id", player.ID,
		"old_level", result.OldLevel,
		"new_level", result.NewLevel,
		"levels", result.LevelsGained,
	)

	return result
}

// AddGold credits gold and returns the new balance
func (e *Engine) AddGold(player *entities.Player, amount int) int {
	if amount > 0 {
		player.Gold += amount
	}
	return player.Gold
}

// RecalculateStats derives max HP, max mana, attack, defense and the
// elemental boost from level and equipment. Current HP and mana are clamped
// but not refilled.
func (e *Engine) RecalculateStats(player *entities.Player) {
	stats := e.balance.PlayerStats
	steps := player.Level - 1

	player.MaxHP = stats.BaseHP + stats.HPPerLevel*steps
	player.MaxMana = stats.BaseMana + stats.ManaPerLevel*steps
	player.Attack = stats.BaseAttack + stats.AttackPerLevel*steps
	player.Defense = stats.BaseDefense + stats.DefensePerLevel*steps
	player.ElementalBoostPercent = 0

	for _, item := range player.Equipment.Items() {
		player.MaxHP += item.MaxHP
		player.MaxMana += item.MaxMana
		player.Attack += item.Attack
		player.Defense += item.Defense
		player.ElementalBoostPercent += item.ElementalBoostPercent
	}

	player.MaxHP = max(player.MaxHP, 1)
	player.MaxMana = max(player.MaxMana, 0)
	player.Attack = max(player.Attack, 1)
	player.Defense = max(player.Defense, 0)

	e.registry.Reapply(&player.Combatant)

	player.ClampHP()
	player.ClampMana()
}
