package ui

import "github.com/Zachkp/zach-dev/internal/dom"

// VisibleProjects is how many cards stay in layout before the disclosure
// toggle is used.
const VisibleProjects = 6

const (
	cardOffset     = "translateY(20px)"
	cardRest       = "translateY(0)"
	cardTransition = "opacity 0.5s ease, transform 0.5s ease"
)

// showCard and fadeCard always set opacity and transform together, so the
// controllers sharing the cards never depend on each other's partial state.
func showCard(c dom.Element) {
	c.SetStyle("opacity", "1")
	c.SetStyle("transform", cardRest)
}

func fadeCard(c dom.Element) {
	c.SetStyle("opacity", "0")
	c.SetStyle("transform", cardOffset)
}

// initCards applies the page-load card state: everything faded and offset,
// cards past VisibleProjects out of layout.
func initCards(doc dom.Document) {
	for i, c := range doc.QueryAll(dom.SelProjectCard) {
		if i >= VisibleProjects {
			c.AddClass(dom.ClassHidden)
		}
		fadeCard(c)
		c.SetStyle("transition", cardTransition)
	}
}
