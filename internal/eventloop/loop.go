// Package eventloop delivers the results of background work back onto the
// single goroutine that owns controller state.
package eventloop

import "sync"

// Task runs off the owning goroutine and returns the completion that must be
// applied on it. A nil completion is ignored.
type Task func() func()

type Loop interface {
	Go(Task)
}

// Immediate runs the task and its completion synchronously on the caller.
type Immediate struct{}

func (Immediate) Go(task Task) {
	if done := task(); done != nil {
		done()
	}
}

// Manual runs each task when it is submitted but holds its completion until
// the caller releases it, so tests can choose the order responses "arrive".
type Manual struct {
	mu      sync.Mutex
	pending []func()
	done    []bool
}

func (m *Manual) Go(task Task) {
	completion := task()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, completion)
	m.done = append(m.done, false)
}

// Pending is the number of submitted completions not yet released.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, d := range m.done {
		if !d {
			n++
		}
	}

	return n
}

// Complete applies the i-th submitted completion. It reports false if the
// index is unknown or was already applied.
func (m *Manual) Complete(i int) bool {
	m.mu.Lock()
	if i < 0 || i >= len(m.pending) || m.done[i] {
		m.mu.Unlock()
		return false
	}
	m.done[i] = true
	completion := m.pending[i]
	m.mu.Unlock()

	if completion != nil {
		completion()
	}

	return true
}

// CompleteAll applies every outstanding completion in submission order,
// including ones submitted by completions applied during the call.
func (m *Manual) CompleteAll() {
	for i := 0; ; i++ {
		m.mu.Lock()
		n := len(m.pending)
		m.mu.Unlock()
		if i >= n {
			return
		}
		m.Complete(i)
	}
}
