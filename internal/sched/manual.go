package sched

import (
	"sort"
	"time"
)

// Manual is a Scheduler driven by an explicit clock. Callbacks run on the
// goroutine calling Advance, ordered by deadline and then by registration, the
// same order a browser uses for timers sharing a deadline.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m        *Manual
	seq      uint64
	deadline time.Duration
	period   time.Duration
	fn       func()
	stopped  bool
}

// NewManual returns a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Now is the elapsed virtual time.
func (m *Manual) Now() time.Duration { return m.now }

// Pending is the number of timers that have not fired or been stopped.
func (m *Manual) Pending() int { return len(m.pending) }

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	return m.add(d, 0, f)
}

func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, period time.Duration, f func()) *manualTimer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, seq: m.seq, deadline: m.now + d, period: period, fn: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that comes due,
// including ones scheduled by callbacks during the advance.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		t := m.next()
		if t == nil || t.deadline > target {
			break
		}
		m.now = t.deadline
		if t.period > 0 {
			m.seq++
			t.seq = m.seq
			t.deadline += t.period
		} else {
			m.remove(t)
		}
		t.fn()
	}
	m.now = target
}

func (m *Manual) next() *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		a, b := m.pending[i], m.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	return m.pending[0]
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	for _, p := range t.m.pending {
		if p == t {
			t.m.remove(t)
			return true
		}
	}
	return false
}
