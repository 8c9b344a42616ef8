package ui

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/sched"
)

const (
	// revealMargin is how far above the viewport bottom a section's top must be
	// before its animations run.
	revealMargin = 100

	counterSteps    = 100
	counterInterval = 20 * time.Millisecond
	staggerStep     = 100 * time.Millisecond
)

// Reveal runs the scroll-triggered animations: skill bars fill once, stat
// counters count up once at load, and visible project cards fade in with a
// stagger every time the projects section is in view.
type Reveal struct {
	doc      dom.Document
	sched    sched.Scheduler
	skills   dom.Element
	projects dom.Element
	log      *slog.Logger

	skillsAnimated bool
	statsAnimated  bool
}

func NewReveal(doc dom.Document, s sched.Scheduler, skills, projects dom.Element, log *slog.Logger) *Reveal {
	return &Reveal{doc: doc, sched: s, skills: skills, projects: projects, log: log}
}

func (r *Reveal) Bind() {
	r.doc.On("scroll", func(dom.Event) { r.Check() })
}

// Init empties the skill bars, starts the counters and checks the initial
// scroll position.
func (r *Reveal) Init() {
	for _, level := range r.doc.QueryAll(dom.SelSkillLevel) {
		level.SetStyle("width", "0")
	}
	r.AnimateStats()
	r.Check()
}

// Check runs the animations whose section is in view.
func (r *Reveal) Check() {
	threshold := r.doc.InnerHeight() - revealMargin
	if r.skills.BoundingTop() < threshold {
		r.AnimateSkillBars()
	}
	if r.projects.BoundingTop() < threshold {
		r.staggerCards()
	}
}

// AnimateSkillBars sets every bar to its data-level width, once.
func (r *Reveal) AnimateSkillBars() {
	if r.skillsAnimated {
		return
	}
	levels := r.doc.QueryAll(dom.SelSkillLevel)
	for _, level := range levels {
		level.SetStyle("width", level.Attr(dom.AttrLevel)+"%")
	}
	r.skillsAnimated = true
	r.log.Debug("skill bars animated", "bars", len(levels))
}

// AnimateStats starts one counter per hero stat and visual-panel stat, once.
func (r *Reveal) AnimateStats() {
	if r.statsAnimated {
		return
	}
	for _, el := range r.doc.QueryAll(dom.SelStatNumber) {
		r.count(el, el.Attr(dom.AttrTarget))
	}
	for _, el := range r.doc.QueryAll(dom.SelStatValue) {
		r.count(el, el.Attr(dom.AttrValue))
	}
	r.statsAnimated = true
}

// count animates el from 0 to the integer in raw. A value that does not
// parse counts as NaN: the display reads NaN and the timer never settles.
func (r *Reveal) count(el dom.Element, raw string) {
	target := parseInt(raw)
	increment := target / counterSteps
	current := 0.0

	var timer sched.Timer
	timer = r.sched.Every(counterInterval, func() {
		current += increment
		if current >= target {
			el.SetText(formatNumber(target))
			timer.Stop()
			return
		}
		el.SetText(formatNumber(math.Floor(current)))
	})
}

func (r *Reveal) staggerCards() {
	cards := r.doc.QueryAll(dom.SelProjectCard + ":not(." + dom.ClassHidden + ")")
	for i, c := range cards {
		r.sched.AfterFunc(time.Duration(i)*staggerStep, func() {
			showCard(c)
		})
	}
}

// parseInt reads a leading, optionally signed, decimal integer and returns NaN
// when there is none, the way the page's data attributes were always read.
func parseInt(s string) float64 {
	s = strings.TrimSpace(s)
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return sign * n
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
