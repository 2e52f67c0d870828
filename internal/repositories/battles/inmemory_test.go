package battles_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/runes-api/internal/errors"
	"github.com/KirkDiggler/runes-api/internal/pkg/clock"
	"github.com/KirkDiggler/runes-api/internal/repositories/battles"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	c := clock.NewFixed(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	repo := battles.NewInMemory(c)

	for _, id := range []string{"b1", "b2"} {
		_, err := repo.Save(ctx, battles.SaveInput{Record: &battles.Record{ID: id, SessionID: "s1"}})
		require.NoError(t, err)
		c.Advance(time.Second)
	}
	_, err := repo.Save(ctx, battles.SaveInput{Record: &battles.Record{ID: "b3", SessionID: "s2"}})
	require.NoError(t, err)

	got, err := repo.Get(ctx, battles.GetInput{ID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", got.Record.SessionID)

	got.Record.SessionID = "mutated"
	again, err := repo.Get(ctx, battles.GetInput{ID: "b1"})
	require.NoError(t, err)
	assert.Equal(t, "s1", again.Record.SessionID)

	list, err := repo.ListBySession(ctx, battles.ListBySessionInput{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, list.Records, 2)
	assert.Equal(t, "b2", list.Records[0].ID)

	recent, err := repo.ListRecent(ctx, battles.ListRecentInput{Limit: 2})
	require.NoError(t, err)
	require.Len(t, recent.Records, 2)
	assert.Equal(t, "b3", recent.Records[0].ID)

	_, err = repo.Get(ctx, battles.GetInput{ID: "nope"})
	assert.True(t, errors.IsNotFound(err))
}
