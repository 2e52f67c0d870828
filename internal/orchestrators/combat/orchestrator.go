// Package combat implements the turn engine that drives a play session:
// rune selection, area travel, the player/monster turn cycle, victory and
// defeat transitions, and town actions between fights.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/runes-api/internal/orchestrators/combat Service
//go:generate mockgen -destination=mock/mock_catalog.go -package=combatmock github.com/KirkDiggler/runes-api/internal/orchestrators/combat Catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/runes-api/internal/config"
	"github.com/KirkDiggler/runes-api/internal/engine/combatmath"
	"github.com/KirkDiggler/runes-api/internal/engine/progression"
	"github.com/KirkDiggler/runes-api/internal/engine/spawn"
	"github.com/KirkDiggler/runes-api/internal/engine/status"
	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/notify"
	"github.com/KirkDiggler/runes-api/internal/pkg/clock"
	"github.com/KirkDiggler/runes-api/internal/pkg/idgen"
	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
	"github.com/KirkDiggler/runes-api/internal/repositories/battles"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

// Service defines the interface for play session operations
type Service interface {
	// StartSession creates a level 1 player bound to a rune
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// SelectRune swaps the player's rune and replaces the skill list
	SelectRune(ctx context.Context, input *SelectRuneInput) (*SelectRuneOutput, error)

	// EnterArea travels to a hunting area and spawns the first monster
	EnterArea(ctx context.Context, input *EnterAreaInput) (*EnterAreaOutput, error)

	// UseSkill resolves a player action and schedules the monster's reply
	UseSkill(ctx context.Context, input *UseSkillInput) (*UseSkillOutput, error)

	// ContinueBattle spawns the next monster in the current area
	ContinueBattle(ctx context.Context, input *ContinueBattleInput) (*ContinueBattleOutput, error)

	// ReturnToTown leaves the area, abandoning any fight in progress
	ReturnToTown(ctx context.Context, input *ReturnToTownInput) (*ReturnToTownOutput, error)

	// BuyItem spends gold on a catalog item and puts it in the bag
	BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error)

	// EquipItem moves an item from the bag into its slot
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// UnequipItem moves an equipped item back into the bag
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// GrantRevivalStone gives the player a revival stone
	GrantRevivalStone(ctx context.Context, input *GrantRevivalStoneInput) (*GrantRevivalStoneOutput, error)

	// Restart replaces a defeated player with a fresh one
	Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error)

	// GetSession returns a snapshot of the session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ForceUnlock clears a stuck turn lock and discards pending replies
	ForceUnlock(ctx context.Context, input *ForceUnlockInput) (*ForceUnlockOutput, error)

	// EndSession tears the session down and cancels pending replies
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}

// Catalog provides the static game data the engine reads
type Catalog interface {
	GetArea(id string) (*entities.Area, error)
	SkillsForRune(element entities.Element) ([]entities.Skill, error)
	GetItem(id string) (*entities.Item, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Balance     config.Balance
	Catalog     Catalog
	Roller      dice.Roller
	Scheduler   schedule.Scheduler
	IDGenerator idgen.Generator

	// Optional
	Clock     clock.Clock
	Presenter notify.Presenter
	Inventory inventory.Repository
	Battles   battles.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if err := c.Balance.Validate(); err != nil {
		vb.InvalidField("Balance", errors.GetMessage(err))
	}

	return vb.Build()
}

type orchestrator struct {
	balance   config.Balance
	catalog   Catalog
	roller    dice.Roller
	scheduler schedule.Scheduler
	idGen     idgen.Generator
	clock     clock.Clock
	presenter notify.Presenter
	inventory inventory.Repository
	battles   battles.Repository

	registry    *status.Registry
	calc        *combatmath.Calculator
	progression *progression.Engine
	spawner     *spawn.Factory

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		balance:   cfg.Balance,
		catalog:   cfg.Catalog,
		roller:    cfg.Roller,
		scheduler: cfg.Scheduler,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		presenter: cfg.Presenter,
		inventory: cfg.Inventory,
		battles:   cfg.Battles,
		sessions:  make(map[string]*session),
	}

	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.presenter == nil {
		slog.Warn("No presenter configured, notifications are discarded",
			"code", errors.CodeMissingCollaborator)
		o.presenter = notify.Nop{}
	}
	if o.inventory == nil {
		slog.Warn("No inventory configured, using in-memory bags",
			"code", errors.CodeMissingCollaborator)
		o.inventory = inventory.NewInMemory()
	}
	if o.battles == nil {
		slog.Warn("No battle repository configured, battle records are not kept",
			"code", errors.CodeMissingCollaborator)
	}

	o.registry = status.NewRegistry(func(c *entities.Combatant) {
		o.presenter.StatusEffectsChanged(c)
	})
	o.calc = combatmath.NewCalculator(cfg.Balance, o.registry)
	o.progression = progression.NewEngine(cfg.Balance, o.registry)

	spawner, err := spawn.NewFactory(&spawn.Config{
		Balance:     cfg.Balance,
		Roller:      cfg.Roller,
		IDGenerator: cfg.IDGenerator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create spawn factory")
	}
	o.spawner = spawner

	return o, nil
}

func (o *orchestrator) getSession(id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	sess, ok := o.sessions[id]
	if !ok {
		return nil, errors.NotFoundf("session %s not found", id)
	}
	return sess, nil
}

// reject reports an illegal action to the player and builds the error.
// Nothing about the session has been changed when this is called.
func (o *orchestrator) reject(sess *session, format string, args ...interface{}) error {
	err := errors.InvalidActionf(format, args...)
	o.presenter.LogMessage(err.Message, notify.CategoryError)
	slog.Debug("Action rejected", "session_id", sess.id, "reason", err.Message)
	return err.WithMeta("session_id", sess.id).WithMeta("state", string(sess.state()))
}

// StartSession creates a session with a fresh player
func (o *orchestrator) StartSession(_ context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_name", input.PlayerName, vb)
	errors.ValidateRequired("rune", string(input.Rune), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	skills, err := o.catalog.SkillsForRune(input.Rune)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load skills for rune %s", input.Rune)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		ctx:          ctx,
		cancel:       cancel,
		id:           o.idGen.Generate(),
		isPlayerTurn: true,
	}
	sess.player = o.progression.NewPlayer(o.idGen.Generate(), input.PlayerName, input.Rune, skills)

	o.mu.Lock()
	o.sessions[sess.id] = sess
	o.mu.Unlock()

	slog.Info("Session started",
		"session_id", sess.id,
		"player", input.PlayerName,
		"rune", input.Rune,
	)
	o.presenter.LogMessage(fmt.Sprintf("%s binds the %s rune.", input.PlayerName, input.Rune), notify.CategoryInfo)
	o.presenter.StatsChanged(&sess.player.Combatant)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return &StartSessionOutput{Session: sess.snapshot()}, nil
}

// SelectRune replaces the player's skills with the new rune's set
func (o *orchestrator) SelectRune(_ context.Context, input *SelectRuneInput) (*SelectRuneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Rune == "" {
		return nil, errors.InvalidArgument("rune is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.isGameOver {
		return nil, o.reject(sess, "The game is over.")
	}
	if sess.combatLocked {
		return nil, o.reject(sess, "You cannot change runes while an action is resolving.")
	}

	skills, err := o.catalog.SkillsForRune(input.Rune)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load skills for rune %s", input.Rune)
	}

	sess.player.Rune = input.Rune
	sess.player.Element = input.Rune
	sess.player.Skills = skills

	slog.Info("Rune selected", "session_id", sess.id, "rune", input.Rune)
	o.presenter.LogMessage(fmt.Sprintf("You attune to the %s rune.", input.Rune), notify.CategoryInfo)
	o.presenter.StatsChanged(&sess.player.Combatant)

	return &SelectRuneOutput{Session: sess.snapshot()}, nil
}

// EnterArea travels to an area and starts a fight there
func (o *orchestrator) EnterArea(_ context.Context, input *EnterAreaInput) (*EnterAreaOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AreaID == "" {
		return nil, errors.InvalidArgument("area ID is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	monster, err := o.startFight(sess, input.AreaID)
	if err != nil {
		return nil, err
	}

	return &EnterAreaOutput{Monster: monster.Clone(), Session: sess.snapshot()}, nil
}

// ContinueBattle starts the next fight in the current area
func (o *orchestrator) ContinueBattle(_ context.Context, input *ContinueBattleInput) (*ContinueBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.areaID == "" {
		return nil, o.reject(sess, "You are in town. Choose an area first.")
	}

	monster, err := o.startFight(sess, sess.areaID)
	if err != nil {
		return nil, err
	}

	return &ContinueBattleOutput{Monster: monster.Clone(), Session: sess.snapshot()}, nil
}

// startFight spawns a monster and hands the first turn to the player.
// A pending boss is consumed here. Caller holds sess.mu.
func (o *orchestrator) startFight(sess *session, areaID string) (*entities.Monster, error) {
	if sess.isGameOver {
		return nil, o.reject(sess, "The game is over.")
	}
	if sess.combatLocked {
		return nil, o.reject(sess, "Wait for the current action to finish.")
	}
	if sess.inBattle() {
		return nil, o.reject(sess, "You are already fighting %s.", sess.monster.Name)
	}

	area, err := o.catalog.GetArea(areaID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load area %s", areaID)
	}

	boss := sess.bossPending
	monster, err := o.spawner.SpawnForArea(area, sess.player.Level, boss)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn monster in %s", areaID)
	}

	sess.areaID = area.ID
	sess.monster = monster
	sess.bossPending = false
	sess.isPlayerTurn = true
	sess.turns = 0
	sess.startedAt = o.clock.Now()
	sess.revived = false
	sess.lastOutcome = OutcomeNone
	sess.lastMonsterAction = nil

	slog.Info("Monster spawned",
		"session_id", sess.id,
		"area_id", area.ID,
		"monster", monster.Name,
		"level", monster.Level,
		"boss", boss,
	)

	if boss {
		o.presenter.LogMessage(fmt.Sprintf("%s blocks your path!", monster.Name), notify.CategoryInfo)
	} else {
		o.presenter.LogMessage(fmt.Sprintf("A wild %s appears!", monster.Name), notify.CategoryInfo)
	}
	o.presenter.StatsChanged(&monster.Combatant)

	return monster, nil
}

// ReturnToTown leaves the current area
func (o *orchestrator) ReturnToTown(_ context.Context, input *ReturnToTownInput) (*ReturnToTownOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.isGameOver {
		return nil, o.reject(sess, "The game is over.")
	}
	if sess.combatLocked {
		return nil, o.reject(sess, "Wait for the current action to finish.")
	}

	fled := sess.inBattle()
	sess.monster = nil
	sess.areaID = ""
	sess.isPlayerTurn = true
	o.registry.Clear(&sess.player.Combatant)

	if fled {
		o.presenter.LogMessage("You flee back to town.", notify.CategoryInfo)
	} else {
		o.presenter.LogMessage("You return to town.", notify.CategoryInfo)
	}
	o.presenter.StatsChanged(&sess.player.Combatant)

	slog.Info("Returned to town", "session_id", sess.id, "fled", fled)

	return &ReturnToTownOutput{Fled: fled, Session: sess.snapshot()}, nil
}

// Restart replaces a defeated player with a fresh level 1 player
func (o *orchestrator) Restart(ctx context.Context, input *RestartInput) (*RestartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.isGameOver {
		return nil, o.reject(sess, "Restart is only possible after a defeat.")
	}

	element := input.Rune
	if element == "" {
		element = sess.player.Rune
	}
	skills, err := o.catalog.SkillsForRune(element)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load skills for rune %s", element)
	}

	if _, err := o.inventory.Delete(ctx, inventory.DeleteInput{SessionID: sess.id}); err != nil {
		slog.Warn("Failed to clear inventory on restart", "session_id", sess.id, "error", err)
	}

	sess.player = o.progression.NewPlayer(o.idGen.Generate(), sess.player.Name, element, skills)
	sess.monster = nil
	sess.areaID = ""
	sess.regularKills = 0
	sess.bossPending = false
	sess.isGameOver = false
	sess.combatLocked = false
	sess.isPlayerTurn = true
	sess.turns = 0
	sess.lastOutcome = OutcomeNone
	sess.lastMonsterAction = nil
	sess.epoch++

	slog.Info("Session restarted", "session_id", sess.id, "rune", element)
	o.presenter.LogMessage("A new adventure begins.", notify.CategoryInfo)
	o.presenter.StatsChanged(&sess.player.Combatant)

	return &RestartOutput{Session: sess.snapshot()}, nil
}

// GetSession returns a snapshot of the session
func (o *orchestrator) GetSession(_ context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &GetSessionOutput{Session: sess.snapshot()}, nil
}

// ForceUnlock recovers a session whose turn lock was never released
func (o *orchestrator) ForceUnlock(_ context.Context, input *ForceUnlockInput) (*ForceUnlockOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.getSession(input.SessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	wasLocked := sess.combatLocked
	if wasLocked {
		sess.epoch++
		sess.releaseTurn()
		slog.Warn("Turn lock forcibly released",
			"session_id", sess.id,
			"code", errors.CodeInconsistentState,
		)
		o.presenter.LogMessage("Combat was stuck; it is your turn.", notify.CategoryInfo)
	}

	return &ForceUnlockOutput{WasLocked: wasLocked, Session: sess.snapshot()}, nil
}

// EndSession removes the session and cancels its pending replies
func (o *orchestrator) EndSession(_ context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	sess, ok := o.sessions[input.SessionID]
	delete(o.sessions, input.SessionID)
	o.mu.Unlock()

	if !ok {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	sess.cancel()
	slog.Info("Session ended", "session_id", input.SessionID)

	return &EndSessionOutput{}, nil
}
