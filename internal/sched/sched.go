// Package sched abstracts the page's timers so controllers can be driven by the
// browser event loop or by a manual clock in tests.
package sched

import "time"

// Timer is a scheduled callback. Stop reports whether the call prevented a
// future firing.
type Timer interface {
	Stop() bool
}

// Scheduler runs callbacks later on the same logical thread as event handlers.
type Scheduler interface {
	// AfterFunc calls f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every calls f every d until the returned Timer is stopped.
	Every(d time.Duration, f func()) Timer
}

// StopAll stops every timer in ts and returns an empty slice reusing its storage.
func StopAll(ts []Timer) []Timer {
	for _, t := range ts {
		t.Stop()
	}
	return ts[:0]
}
