package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/runes-api/internal/entities"
	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/repositories/inventory"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemory()

	charm := &entities.Item{ID: "charm", Name: "Charm", Slot: entities.SlotAccessory}
	for _, item := range []*entities.Item{charm, charm, {ID: "gem", Name: "Gem"}} {
		_, err := repo.AddItem(ctx, inventory.AddItemInput{SessionID: "s1", Item: item})
		require.NoError(t, err)
	}

	charm.Name = "mutated"
	list, err := repo.List(ctx, inventory.ListInput{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Charm", list.Items[0].Name)
	assert.Equal(t, "gem", list.Items[2].ID)

	taken, err := repo.TakeItem(ctx, inventory.TakeItemInput{SessionID: "s1", ItemID: "charm"})
	require.NoError(t, err)
	assert.Equal(t, "charm", taken.Item.ID)

	list, err = repo.List(ctx, inventory.ListInput{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "charm", list.Items[0].ID)

	_, err = repo.TakeItem(ctx, inventory.TakeItemInput{SessionID: "s1", ItemID: "sword"})
	assert.True(t, errors.IsNotFound(err))

	other, err := repo.List(ctx, inventory.ListInput{SessionID: "s2"})
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	_, err = repo.Delete(ctx, inventory.DeleteInput{SessionID: "s1"})
	require.NoError(t, err)
	list, err = repo.List(ctx, inventory.ListInput{SessionID: "s1"})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestInMemoryRepository_Validation(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewInMemory()

	_, err := repo.AddItem(ctx, inventory.AddItemInput{Item: &entities.Item{ID: "gem"}})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.AddItem(ctx, inventory.AddItemInput{SessionID: "s1"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.TakeItem(ctx, inventory.TakeItemInput{SessionID: "s1"})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = repo.Delete(ctx, inventory.DeleteInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
