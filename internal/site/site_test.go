package site

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev/internal/content"
	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/dom/htmldom"
	"github.com/Zachkp/zach-dev/internal/logging"
)

func newSite(t *testing.T) (*Site, *content.Content) {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	s, err := New(c)
	require.NoError(t, err)
	return s, c
}

func renderDoc(t *testing.T, s *Site) *htmldom.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	doc, err := htmldom.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderContract(t *testing.T) {
	s, c := newSite(t)
	doc := renderDoc(t, s)

	cards := doc.QueryAll(dom.SelProjectCard)
	require.Len(t, cards, len(c.Projects))
	assert.Equal(t, "tools", cards[0].Attr(dom.AttrCategory))

	buttons := doc.QueryAll(dom.SelFilterBtn)
	require.Len(t, buttons, len(c.Categories())+1)
	assert.Equal(t, content.FilterAll, buttons[0].Attr(dom.AttrFilter))
	assert.True(t, buttons[0].HasClass(dom.ClassActive))
	assert.False(t, buttons[1].HasClass(dom.ClassActive))

	assert.Len(t, doc.QueryAll(dom.SelNavLink), len(c.Sections))
	assert.Len(t, doc.QueryAll(dom.SelStatNumber), len(c.Stats))
	assert.Len(t, doc.QueryAll(dom.SelStatValue), len(c.Highlights))
	assert.Equal(t, "90", doc.Query(dom.SelSkillLevel).Attr(dom.AttrLevel))
	assert.NotNil(t, doc.Query(dom.SelTypingText))
	assert.NotNil(t, doc.ByID(dom.IDShowMore))
	for _, id := range []string{dom.IDHome, dom.IDSkills, dom.IDProjects} {
		assert.NotNil(t, doc.ByID(id), id)
	}
}

func TestRenderMarkdown(t *testing.T) {
	s, _ := newSite(t)
	doc := renderDoc(t, s)

	assert.NotNil(t, doc.Query(".tagline strong"))
	assert.NotNil(t, doc.Query(".project-description em"))
}

func TestMarkdownEscapesRawHTML(t *testing.T) {
	c, err := content.Parse([]byte(`
sections: [{id: home}, {id: skills}, {id: projects}]
projects:
  - title: Sneaky
    category: web
    description: <script>alert(1)</script>
`))
	require.NoError(t, err)
	s, err := New(c)
	require.NoError(t, err)

	doc := renderDoc(t, s)
	assert.Nil(t, doc.Query(".project-description script"))
}

func TestShowMoreOnlyWhenNeeded(t *testing.T) {
	c, err := content.Parse([]byte(`
sections: [{id: home}, {id: skills}, {id: projects}]
projects:
  - {title: One, category: web}
  - {title: Two, category: ml}
`))
	require.NoError(t, err)
	s, err := New(c)
	require.NoError(t, err)

	assert.False(t, s.Page().ShowMore)
	assert.Nil(t, renderDoc(t, s).ByID(dom.IDShowMore))
	require.NoError(t, s.CheckContract(c.Roles, logging.NewNop()))
}

func TestCheckContract(t *testing.T) {
	s, c := newSite(t)
	require.NoError(t, s.CheckContract(c.Roles, logging.NewNop()))
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("/css/style.css")
	require.NoError(t, err)
	defer f.Close()
	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(raw), ".project-card.hidden")
}

func TestRenderEmbedsRoles(t *testing.T) {
	s, c := newSite(t)
	doc := renderDoc(t, s)

	script := doc.ByID(dom.IDRoles)
	require.NotNil(t, script)
	roles, err := content.ParseRoles([]byte(script.Text()))
	require.NoError(t, err)
	assert.Equal(t, c.Roles, roles)
}
