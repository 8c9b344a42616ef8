package ui

import (
	"log/slog"
	"strings"

	"github.com/Zachkp/zach-dev/internal/dom"
)

// headerOffset keeps scrolled-to sections clear of the fixed header.
const headerOffset = 80

// SmoothScroll replaces in-page anchor jumps with a smooth scroll.
type SmoothScroll struct {
	doc dom.Document
	log *slog.Logger
}

func NewSmoothScroll(doc dom.Document, log *slog.Logger) *SmoothScroll {
	return &SmoothScroll{doc: doc, log: log}
}

func (s *SmoothScroll) Bind() {
	s.doc.On("click", func(ev dom.Event) {
		if a := closest(ev, dom.SelAnchor); a != nil {
			ev.PreventDefault()
			s.ScrollTo(a.Attr(dom.AttrHref))
		}
	})
}

// ScrollTo scrolls to the element named by an in-page href. A bare "#" and
// unknown ids are ignored.
func (s *SmoothScroll) ScrollTo(href string) {
	id := strings.TrimPrefix(href, "#")
	if id == "" {
		return
	}
	target := s.doc.ByID(id)
	if target == nil {
		s.log.Debug("scroll target not found", "href", href)
		return
	}
	s.doc.ScrollTo(target.OffsetTop()-headerOffset, true)
}
