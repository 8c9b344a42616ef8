package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/dom/htmldom"
	"github.com/Zachkp/zach-dev/internal/sched"
)

// xCards are the indices of the nine fixture cards tagged "X"; the rest are "Y".
var xCards = map[int]bool{0: true, 4: true, 7: true}

type fixture struct {
	showMore bool
	typing   bool
}

func defaultFixture() fixture { return fixture{showMore: true, typing: true} }

func (f fixture) html() string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body>
<nav>
  <button class="menu-toggle"><i class="fas fa-bars"></i></button>
  <ul class="nav-links">
    <li><a href="#home">Home</a></li>
    <li><a href="#about">About</a></li>
    <li><a href="#skills">Skills</a></li>
    <li><a href="#projects">Projects</a></li>
    <li><a href="#contact">Contact</a></li>
  </ul>
</nav>
<section id="home">`)
	if f.typing {
		b.WriteString(`<h2><span class="typing-text"></span></h2>`)
	}
	b.WriteString(`
  <div class="stat"><span class="stat-number" data-target="25">0</span></div>
  <div class="stat"><span class="stat-number" data-target="3">0</span></div>
  <a href="#" class="logo">Top</a>
</section>
<section id="about"><div class="stat-value" data-value="500">0</div></section>
<section id="skills">
  <div class="skill-level" data-level="80"></div>
  <div class="skill-level" data-level="65"></div>
</section>
<section id="projects">
  <button class="filter-btn active" data-filter="all">All</button>
  <button class="filter-btn" data-filter="X">X</button>
  <button class="filter-btn" data-filter="Y">Y</button>
  <div class="projects-grid">
`)
	for i := 0; i < 9; i++ {
		cat := "Y"
		if xCards[i] {
			cat = "X"
		}
		fmt.Fprintf(&b, `    <div class="project-card" id="card-%d" data-category="%s"><h3>Project %d</h3></div>
`, i, cat, i)
	}
	b.WriteString("  </div>\n")
	if f.showMore {
		b.WriteString(`  <button id="showMoreBtn"><i class="fas fa-plus"></i> Show More Projects</button>`)
	}
	b.WriteString(`
</section>
<section id="contact"><a href="#missing">Nowhere</a></section>
</body></html>`)
	return b.String()
}

// Section tops used by every fixture document; the viewport is 800 high.
var sectionTops = map[string]float64{
	"home":     0,
	"about":    800,
	"skills":   1600,
	"projects": 2400,
	"contact":  3200,
}

func newDoc(t *testing.T, f fixture) *htmldom.Document {
	t.Helper()
	doc, err := htmldom.ParseString(f.html())
	require.NoError(t, err)
	for id, top := range sectionTops {
		require.NoError(t, doc.Place(id, top))
	}
	doc.SetInnerHeight(800)
	return doc
}

func mount(t *testing.T, f fixture, roles ...string) (*htmldom.Document, *sched.Manual, *Page) {
	t.Helper()
	doc := newDoc(t, f)
	clock := sched.NewManual()
	page, err := Mount(doc, clock, roles)
	require.NoError(t, err)
	return doc, clock, page
}

// laidOut reports whether a card takes part in layout: an inline display wins
// over the hidden class, as it does in the stylesheet cascade.
func laidOut(c dom.Element) bool {
	switch c.Style("display") {
	case "none":
		return false
	case "":
		return !c.HasClass(dom.ClassHidden)
	default:
		return true
	}
}

func laidOutIndices(doc dom.Document) []int {
	var out []int
	for i, c := range doc.QueryAll(dom.SelProjectCard) {
		if laidOut(c) {
			out = append(out, i)
		}
	}
	return out
}

func hiddenIndices(doc dom.Document) []int {
	var out []int
	for i, c := range doc.QueryAll(dom.SelProjectCard) {
		if c.HasClass(dom.ClassHidden) {
			out = append(out, i)
		}
	}
	return out
}

func filterButton(t *testing.T, doc *htmldom.Document, tag string) dom.Element {
	t.Helper()
	btn := doc.Query(fmt.Sprintf(`.filter-btn[data-filter=%q]`, tag))
	require.NotNil(t, btn, "filter button %q", tag)
	return btn
}

func indicesWhere(n int, keep func(int) bool) []int {
	var out []int
	for i := 0; i < n; i++ {
		if keep(i) {
			out = append(out, i)
		}
	}
	return out
}

func setAttr(el dom.Element, key, val string) error {
	e, ok := el.(*htmldom.Element)
	if !ok {
		return fmt.Errorf("not an htmldom element: %T", el)
	}
	e.SetAttr(key, val)
	return nil
}
