package testutils

import (
	"sync"
)

// ScriptedRoller is a dice.Roller that returns queued results in order.
// Once the queue is empty every roll returns Fallback, or the die size when
// Fallback is zero. Results are clamped to [1, size].
type ScriptedRoller struct {
	mu       sync.Mutex
	queue    []int
	Fallback int
	Sizes    []int // die sizes requested, in call order
}

// NewScriptedRoller creates a roller that will return rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{queue: rolls}
}

// Push appends results to the queue
func (r *ScriptedRoller) Push(rolls ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, rolls...)
}

// Remaining reports how many queued results are left
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

// Roll returns the next scripted result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size), nil
}

// RollN returns the next count scripted results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, count)
	for i := range out {
		out[i] = r.next(size)
	}
	return out, nil
}

func (r *ScriptedRoller) next(size int) int {
	r.Sizes = append(r.Sizes, size)
	v := r.Fallback
	if len(r.queue) > 0 {
		v = r.queue[0]
		r.queue = r.queue[1:]
	}
	if v <= 0 || v > size {
		if v <= 0 {
			return max(size, 1)
		}
		return size
	}
	return v
}
