package combat

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/runes-api/internal/entities"
)

// session is the mutable state of one play session. Every field is guarded
// by mu; combatLocked is the turn token on top of it.
type session struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc

	id           string
	player       *entities.Player
	monster      *entities.Monster
	isPlayerTurn bool
	combatLocked bool
	isGameOver   bool

	areaID       string
	regularKills int
	bossPending  bool

	// Per-fight bookkeeping
	turns             int
	startedAt         time.Time
	revived           bool
	lastOutcome       Outcome
	lastMonsterAction *ActionResult

	// Bumped whenever pending monster replies must be discarded
	epoch uint64
}

func (s *session) state() State {
	switch {
	case s.isGameOver:
		return StateDefeat
	case s.combatLocked:
		return StateResolving
	case s.monster == nil:
		return StateIdle
	default:
		return StatePlayerTurn
	}
}

func (s *session) inBattle() bool {
	return s.monster != nil && s.monster.IsAlive()
}

func (s *session) snapshot() *Session {
	out := &Session{
		ID:           s.id,
		Player:       s.player.Clone(),
		Monster:      s.monster.Clone(),
		State:        s.state(),
		IsPlayerTurn: s.isPlayerTurn,
		CombatLocked: s.combatLocked,
		IsGameOver:   s.isGameOver,
		AreaID:       s.areaID,
		RegularKills: s.regularKills,
		BossPending:  s.bossPending,
		Turns:        s.turns,
		LastOutcome:  s.lastOutcome,
	}
	if s.lastMonsterAction != nil {
		action := *s.lastMonsterAction
		out.LastMonsterAction = &action
	}
	return out
}

// releaseTurn hands control back to the player unless the game is over
func (s *session) releaseTurn() {
	s.combatLocked = false
	s.isPlayerTurn = !s.isGameOver
}
