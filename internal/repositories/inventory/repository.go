// Package inventory provides persistence for the items a session carries
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/KirkDiggler/runes-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/KirkDiggler/runes-api/internal/entities"
)

// Repository defines the interface for inventory persistence
type Repository interface {
	// AddItem puts an item in the session's bag
	// Returns errors.InvalidArgument for an empty session ID or nil item
	AddItem(ctx context.Context, input AddItemInput) (*AddItemOutput, error)

	// TakeItem removes one item with the given ID and returns it
	// Returns errors.NotFound if the bag holds no such item
	TakeItem(ctx context.Context, input TakeItemInput) (*TakeItemOutput, error)

	// List returns the bag in insertion order. An unknown session has an empty bag.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete empties the session's bag
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// AddItemInput defines the input for adding an item
type AddItemInput struct {
	SessionID string
	Item      *entities.Item
}

// AddItemOutput defines the output for adding an item
type AddItemOutput struct {
	Count int // bag size after the add
}

// TakeItemInput defines the input for taking an item
type TakeItemInput struct {
	SessionID string
	ItemID    string
}

// TakeItemOutput defines the output for taking an item
type TakeItemOutput struct {
	Item *entities.Item
}

// ListInput defines the input for listing a bag
type ListInput struct {
	SessionID string
}

// ListOutput defines the output for listing a bag
type ListOutput struct {
	Items []*entities.Item
}

// DeleteInput defines the input for emptying a bag
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for emptying a bag
type DeleteOutput struct{}
