package schedule_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/runes-api/internal/pkg/schedule"
)

func TestInline_RunsImmediately(t *testing.T) {
	ran := false
	schedule.NewInline().Schedule(context.Background(), time.Hour, func(context.Context) {
		ran = true
	})
	assert.True(t, ran)
}

func TestInline_SkipsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	schedule.NewInline().Schedule(ctx, 0, func(context.Context) { ran = true })
	assert.False(t, ran)
}

func TestManual_QueuesUntilFlush(t *testing.T) {
	m := schedule.NewManual()
	var order []int

	m.Schedule(context.Background(), 800*time.Millisecond, func(context.Context) {
		order = append(order, 1)
		m.Schedule(context.Background(), 0, func(context.Context) { order = append(order, 3) })
	})
	m.Schedule(context.Background(), 0, func(context.Context) { order = append(order, 2) })

	assert.Equal(t, 2, m.Pending())
	assert.Equal(t, time.Duration(0), m.LastDelay())
	assert.Empty(t, order)

	assert.Equal(t, 3, m.Flush())
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.False(t, m.Step())
}

func TestManual_DropsCanceled(t *testing.T) {
	m := schedule.NewManual()
	ctx, cancel := context.WithCancel(context.Background())

	ran := false
	m.Schedule(ctx, 0, func(context.Context) { ran = true })
	cancel()

	assert.Equal(t, 0, m.Flush())
	assert.False(t, ran)
	assert.Equal(t, 0, m.Pending())
}

func TestTimer_RunsAfterDelay(t *testing.T) {
	timer := schedule.NewTimer()
	var calls atomic.Int32

	timer.Schedule(context.Background(), 5*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	timer.Schedule(ctx, 50*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	cancel()

	timer.Wait()
	require.Equal(t, int32(1), calls.Load())
}
