package ui

import (
	"log/slog"
	"time"

	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/sched"
)

const (
	typeStartDelay = 1000 * time.Millisecond
	typeDelay      = 100 * time.Millisecond
	deleteDelay    = 50 * time.Millisecond
	pauseDwell     = 2000 * time.Millisecond
	pauseEndDelay  = 1000 * time.Millisecond
)

type typeState int

const (
	typing typeState = iota
	pausedAtFull
	deleting
)

// Typewriter cycles the role titles through an element, typing one rune per
// tick, dwelling on the full title, then deleting it. It runs for the life of
// the page.
type Typewriter struct {
	el    dom.Element
	sched sched.Scheduler
	log   *slog.Logger

	roles [][]rune
	role  int // index into roles
	chars int // runes of roles[role] on display
	state typeState
}

func NewTypewriter(el dom.Element, s sched.Scheduler, roles []string, log *slog.Logger) *Typewriter {
	t := &Typewriter{el: el, sched: s, log: log}
	for _, r := range roles {
		if r == "" {
			continue
		}
		t.roles = append(t.roles, []rune(r))
	}
	return t
}

// Start schedules the first tick. Without roles the typewriter stays idle.
func (t *Typewriter) Start() {
	if len(t.roles) == 0 {
		t.log.Info("typewriter idle: no roles")
		return
	}
	t.sched.AfterFunc(typeStartDelay, t.tick)
}

func (t *Typewriter) tick() {
	t.sched.AfterFunc(t.step(), t.tick)
}

// step performs one tick and returns the delay before the next one.
func (t *Typewriter) step() time.Duration {
	role := t.roles[t.role]
	switch t.state {
	case pausedAtFull:
		t.state = deleting
		return pauseEndDelay
	case deleting:
		t.chars--
		t.el.SetText(string(role[:t.chars]))
		if t.chars > 0 {
			return deleteDelay
		}
		t.role = (t.role + 1) % len(t.roles)
		t.state = typing
		return typeDelay
	default:
		t.chars++
		t.el.SetText(string(role[:t.chars]))
		if t.chars < len(role) {
			return typeDelay
		}
		t.state = pausedAtFull
		t.log.Debug("role typed", "role", string(role))
		return pauseDwell
	}
}
