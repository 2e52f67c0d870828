// Package schedule runs deferred work such as the monster's reply to a
// player action.
package schedule

import (
	"context"
	"sync"
	"time"
)

// Func is a scheduled continuation. It receives the context it was
// scheduled with.
type Func func(ctx context.Context)

// Scheduler runs a continuation after a delay. A continuation whose context
// is canceled before it fires is dropped.
type Scheduler interface {
	Schedule(ctx context.Context, delay time.Duration, fn Func)
}

// Timer schedules continuations on their own goroutine with time.AfterFunc
type Timer struct {
	wg sync.WaitGroup
}

// NewTimer returns a real-time scheduler
func NewTimer() *Timer {
	return &Timer{}
}

// Schedule implements Scheduler
func (t *Timer) Schedule(ctx context.Context, delay time.Duration, fn Func) {
	t.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer t.wg.Done()
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})
}

// Wait blocks until every scheduled continuation has run or been dropped
func (t *Timer) Wait() {
	t.wg.Wait()
}

// Inline runs continuations immediately on the caller's goroutine,
// ignoring the delay
type Inline struct{}

// NewInline returns a scheduler with no delay
func NewInline() *Inline {
	return &Inline{}
}

// Schedule implements Scheduler
func (Inline) Schedule(ctx context.Context, _ time.Duration, fn Func) {
	if ctx.Err() != nil {
		return
	}
	fn(ctx)
}

type pending struct {
	ctx   context.Context
	delay time.Duration
	fn    Func
}

// Manual queues continuations until Flush or Step is called
type Manual struct {
	mu    sync.Mutex
	queue []pending
}

// NewManual returns a scheduler driven by the caller
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler
func (m *Manual) Schedule(ctx context.Context, delay time.Duration, fn Func) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, pending{ctx: ctx, delay: delay, fn: fn})
}

// Pending returns the number of queued continuations
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

// LastDelay returns the delay of the most recently queued continuation
func (m *Manual) LastDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return 0
	}
	return m.queue[len(m.queue)-1].delay
}

// Step runs the oldest queued continuation and reports whether one ran.
// Canceled continuations are discarded without running.
func (m *Manual) Step() bool {
	m.mu.Lock()
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return false
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()

	if next.ctx.Err() != nil {
		return false
	}
	next.fn(next.ctx)
	return true
}

// Flush runs queued continuations, including ones they schedule, until the
// queue is empty. It returns how many ran.
func (m *Manual) Flush() int {
	ran := 0
	for m.Pending() > 0 {
		if m.Step() {
			ran++
		}
	}
	return ran
}
