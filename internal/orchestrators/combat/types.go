package combat

import (
	"github.com/KirkDiggler/runes-api/internal/engine/progression"
	"github.com/KirkDiggler/runes-api/internal/entities"
)

// State is the turn state of a session
type State string

// Session states
const (
	// StateIdle means no monster is present: town, or between fights
	StateIdle State = "idle"
	// StatePlayerTurn means the player may act
	StatePlayerTurn State = "player_turn"
	// StateResolving means an action or the monster's reply is in flight
	StateResolving State = "resolving"
	// StateDefeat is terminal until Restart
	StateDefeat State = "defeat"
)

// Outcome is how the last fight ended
type Outcome string

// Fight outcomes
const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
	OutcomeRevived Outcome = "revived"
)

// Session is a read-only snapshot of a play session
type Session struct {
	ID      string
	Player  *entities.Player
	Monster *entities.Monster // nil when no fight is active

	State        State
	IsPlayerTurn bool
	CombatLocked bool
	IsGameOver   bool

	AreaID       string
	RegularKills int
	BossPending  bool
	Turns        int
	LastOutcome  Outcome

	// What the monster did on its most recent turn
	LastMonsterAction *ActionResult
}

// ActionResult describes one side's resolved action
type ActionResult struct {
	ActorID   string
	SkillID   string
	SkillName string
	Element   entities.Element

	Damage        int // HP actually removed from the target
	Healed        int // HP the actor gained, life drain included
	ManaSpent     int
	ManaRestored  int
	BuffApplied   entities.EffectType
	DebuffApplied entities.EffectType

	Evaded         bool
	TargetDefeated bool
}

// VictoryResult describes the rewards for defeating a monster
type VictoryResult struct {
	MonsterName string
	WasBoss     bool
	ExpGained   int
	GoldGained  int
	LevelUp     progression.LevelUpResult
	Drop        *entities.Item
	BossNext    bool

	// Choices now open to the player
	CanContinue     bool
	CanReturnToTown bool
}

// StartSessionInput defines the request for starting a session
type StartSessionInput struct {
	PlayerName string
	Rune       entities.Element
}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	Session *Session
}

// SelectRuneInput defines the request for changing the active rune
type SelectRuneInput struct {
	SessionID string
	Rune      entities.Element
}

// SelectRuneOutput defines the response for changing the active rune
type SelectRuneOutput struct {
	Session *Session
}

// EnterAreaInput defines the request for entering a hunting area
type EnterAreaInput struct {
	SessionID string
	AreaID    string
}

// EnterAreaOutput defines the response for entering a hunting area
type EnterAreaOutput struct {
	Monster *entities.Monster
	Session *Session
}

// UseSkillInput defines the request for a player action
type UseSkillInput struct {
	SessionID string
	SkillID   string
}

// UseSkillOutput defines the response for a player action
type UseSkillOutput struct {
	Action  *ActionResult
	Victory *VictoryResult // set when the action defeated the monster

	// True when the monster's reply was handed to the scheduler
	MonsterReplyScheduled bool

	// Snapshot taken before the monster's reply runs
	Session *Session
}

// ContinueBattleInput defines the request for fighting again in the same area
type ContinueBattleInput struct {
	SessionID string
}

// ContinueBattleOutput defines the response for fighting again
type ContinueBattleOutput struct {
	Monster *entities.Monster
	Session *Session
}

// ReturnToTownInput defines the request for leaving the area
type ReturnToTownInput struct {
	SessionID string
}

// ReturnToTownOutput defines the response for leaving the area
type ReturnToTownOutput struct {
	Fled    bool // a living monster was left behind
	Session *Session
}

// BuyItemInput defines the request for buying an item in town
type BuyItemInput struct {
	SessionID string
	ItemID    string
}

// BuyItemOutput defines the response for buying an item
type BuyItemOutput struct {
	Item    *entities.Item
	Session *Session
}

// EquipItemInput defines the request for equipping an item from the bag
type EquipItemInput struct {
	SessionID string
	ItemID    string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Equipped   *entities.Item
	Unequipped *entities.Item // previous occupant of the slot, now in the bag
	Session    *Session
}

// UnequipItemInput defines the request for emptying an equipment slot
type UnequipItemInput struct {
	SessionID string
	Slot      entities.Slot
}

// UnequipItemOutput defines the response for emptying an equipment slot
type UnequipItemOutput struct {
	Unequipped *entities.Item
	Session    *Session
}

// GrantRevivalStoneInput defines the request for giving the player a revival stone
type GrantRevivalStoneInput struct {
	SessionID string
}

// GrantRevivalStoneOutput defines the response for giving a revival stone
type GrantRevivalStoneOutput struct {
	Session *Session
}

// RestartInput defines the request for starting over after a defeat
type RestartInput struct {
	SessionID string
	Rune      entities.Element // empty keeps the previous rune
}

// RestartOutput defines the response for starting over
type RestartOutput struct {
	Session *Session
}

// GetSessionInput defines the request for reading a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for reading a session
type GetSessionOutput struct {
	Session *Session
}

// ForceUnlockInput defines the request for clearing a stuck turn lock
type ForceUnlockInput struct {
	SessionID string
}

// ForceUnlockOutput defines the response for clearing a stuck turn lock
type ForceUnlockOutput struct {
	WasLocked bool
	Session   *Session
}

// EndSessionInput defines the request for tearing a session down
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the response for tearing a session down
type EndSessionOutput struct{}
