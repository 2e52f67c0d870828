// Package battles stores the outcome of finished fights
package battles

import (
	"context"
	"time"

	"github.com/KirkDiggler/runes-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/runes-api/internal/repositories/battles Repository

// Outcome is how a fight ended
type Outcome string

// Battle outcomes
const (
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// Record is a finished fight
type Record struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	PlayerName  string           `json:"player_name"`
	PlayerLevel int              `json:"player_level"`
	Rune        entities.Element `json:"rune"`

	AreaID       string `json:"area_id"`
	MonsterName  string `json:"monster_name"`
	TemplateID   string `json:"template_id"`
	MonsterLevel int    `json:"monster_level"`
	IsBoss       bool   `json:"is_boss"`

	Outcome      Outcome `json:"outcome"`
	Turns        int     `json:"turns"`
	Revived      bool    `json:"revived"`
	ExpGained    int     `json:"exp_gained"`
	GoldGained   int     `json:"gold_gained"`
	LevelsGained int     `json:"levels_gained"`
	DropItemID   string  `json:"drop_item_id,omitempty"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// SaveInput contains the record to store
type SaveInput struct {
	Record *Record
}

// SaveOutput contains the stored record
type SaveOutput struct {
	Record *Record
}

// GetInput identifies a record
type GetInput struct {
	ID string
}

// GetOutput contains the requested record
type GetOutput struct {
	Record *Record
}

// ListBySessionInput selects records for one session
type ListBySessionInput struct {
	SessionID string
	Limit     int // zero means no limit
}

// ListBySessionOutput contains records, newest first
type ListBySessionOutput struct {
	Records []*Record
}

// ListRecentInput selects the newest records across sessions
type ListRecentInput struct {
	Limit int // zero means no limit
}

// ListRecentOutput contains records, newest first
type ListRecentOutput struct {
	Records []*Record
}

// Repository stores battle records
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	ListBySession(ctx context.Context, input ListBySessionInput) (*ListBySessionOutput, error)
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}
