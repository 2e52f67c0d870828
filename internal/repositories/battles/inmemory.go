package battles

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Record
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Record),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a record
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}
	if input.Record.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	record := *input.Record
	if record.EndedAt.IsZero() {
		record.EndedAt = r.clock.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := record
	r.store[record.ID] = &stored

	return &SaveOutput{Record: &record}, nil
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("battle record %s not found", input.ID)
	}

	out := *record
	return &GetOutput{Record: &out}, nil
}

// ListBySession returns a session's records, newest first
func (r *InMemoryRepository) ListBySession(
	_ context.Context,
	input ListBySessionInput,
) (*ListBySessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	return &ListBySessionOutput{
		Records: r.list(func(rec *Record) bool { return rec.SessionID == input.SessionID }, input.Limit),
	}, nil
}

// ListRecent returns the newest records across all sessions
func (r *InMemoryRepository) ListRecent(_ context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	return &ListRecentOutput{
		Records: r.list(func(*Record) bool { return true }, input.Limit),
	}, nil
}

func (r *InMemoryRepository) list(match func(*Record) bool, limit int) []*Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []*Record{}
	for _, rec := range r.store {
		if match(rec) {
			out := *rec
			records = append(records, &out)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].EndedAt.Equal(records[j].EndedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].EndedAt.After(records[j].EndedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
