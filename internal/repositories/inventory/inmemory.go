package inventory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu   sync.Mutex
	bags map[string][]entities.Item
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		bags: make(map[string][]entities.Item),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// AddItem stores a copy of the item
func (r *InMemoryRepository) AddItem(_ context.Context, input AddItemInput) (*AddItemOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bags[input.SessionID] = append(r.bags[input.SessionID], *input.Item)
	return &AddItemOutput{Count: len(r.bags[input.SessionID])}, nil
}

// TakeItem removes the first item with the given ID
func (r *InMemoryRepository) TakeItem(_ context.Context, input TakeItemInput) (*TakeItemOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bag := r.bags[input.SessionID]
	for i := range bag {
		if bag[i].ID == input.ItemID {
			item := bag[i]
			r.bags[input.SessionID] = append(bag[:i:i], bag[i+1:]...)
			return &TakeItemOutput{Item: &item}, nil
		}
	}

	return nil, errors.NotFoundf("item %s not in inventory", input.ItemID)
}

// List returns copies of the bag's items
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bag := r.bags[input.SessionID]
	items := make([]*entities.Item, len(bag))
	for i := range bag {
		item := bag[i]
		items[i] = &item
	}
	return &ListOutput{Items: items}, nil
}

// Delete empties the bag
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bags, input.SessionID)
	return &DeleteOutput{}, nil
}
