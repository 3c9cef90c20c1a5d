package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// Timers arms a single callback at an absolute instant. The returned Timer cancels it.
type Timers interface {
	Clock
	At(t time.Time, fn func()) Timer
}

type Timer interface {
	// Stop reports whether the call prevented the callback from running.
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func NewRealTimers() Timers {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// At fires immediately (on its own goroutine) when t is not in the future.
func (c *RealClock) At(t time.Time, fn func()) Timer {
	d := time.Until(t)
	if d < 0 {
		d = 0
	}
	return time.AfterFunc(d, fn)
}

// MockClock is a manually advanced clock. Callbacks run on the goroutine that
// advances the clock, never while the clock's own lock is held.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	seq         uint64
	pending     map[uint64]*mockTimer
}

type mockTimer struct {
	clock *MockClock
	id    uint64
	at    time.Time
	fn    func()
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t, pending: make(map[uint64]*mockTimer)}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) At(t time.Time, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	mt := &mockTimer{clock: c, id: c.seq, at: t, fn: fn}
	c.pending[mt.id] = mt
	return mt
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.currentTime = t
	c.mu.Unlock()
	c.fireDue()
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.currentTime = c.currentTime.Add(d)
	c.mu.Unlock()
	c.fireDue()
}

// Pending returns the number of armed, not yet fired timers.
func (c *MockClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// fireDue runs due callbacks in deadline order. Callbacks armed by a callback
// are picked up in the same pass when they are already due.
func (c *MockClock) fireDue() {
	for {
		c.mu.Lock()
		var due []*mockTimer
		for _, mt := range c.pending {
			if !mt.at.After(c.currentTime) {
				due = append(due, mt)
			}
		}
		if len(due) == 0 {
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at.Equal(due[j].at) {
				return due[i].id < due[j].id
			}
			return due[i].at.Before(due[j].at)
		})
		next := due[0]
		delete(c.pending, next.id)
		c.mu.Unlock()

		next.fn()
	}
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if _, ok := t.clock.pending[t.id]; !ok {
		return false
	}
	delete(t.clock.pending, t.id)
	return true
}
