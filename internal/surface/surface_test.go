package surface

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility(t *testing.T) {
	n := NewNode("DIV")
	assert.True(t, n.Visible())

	n.Style.Display = "none"
	assert.False(t, n.Visible())

	n.Style.Display = ""
	n.Style.Visibility = "hidden"
	assert.False(t, n.Visible())
}

func TestDispatchBubbles(t *testing.T) {
	parent := NewNode("DIV")
	child := NewNode("BUTTON")
	parent.Append(child)

	var order []string
	child.On("click", func(ev Event) {
		order = append(order, "child")
		assert.Same(t, child, ev.Target)
	})
	parent.On("click", func(ev Event) {
		order = append(order, "parent")
		assert.Same(t, child, ev.Target)
	})

	child.Dispatch(Event{Type: "click"})
	assert.Equal(t, []string{"child", "parent"}, order)
}

func TestSetScrollClamps(t *testing.T) {
	n := NewNode("UL")
	n.ScrollHeight = 500
	n.ClientHeight = 100
	n.ScrollWidth = 100
	n.ClientWidth = 100

	n.SetScroll(10000, 50)
	assert.Equal(t, 400.0, n.ScrollTop)
	assert.Equal(t, 0.0, n.ScrollLeft, "no horizontal overflow to scroll into")

	n.SetScroll(-20, 0)
	assert.Equal(t, 0.0, n.ScrollTop)
}

func TestFocusMovesAndNotifies(t *testing.T) {
	doc := NewDocument(800, 600)
	a := NewNode("INPUT")
	b := NewNode("INPUT")
	doc.Root.Append(a, b)

	var events []string
	a.On("focus", func(Event) { events = append(events, "a-focus") })
	a.On("blur", func(Event) { events = append(events, "a-blur") })
	b.On("focus", func(Event) { events = append(events, "b-focus") })

	doc.Focus(a)
	doc.Focus(a) // refocusing is a no-op
	doc.Focus(b)

	assert.Same(t, b, doc.ActiveElement())
	assert.Equal(t, []string{"a-focus", "a-blur", "b-focus"}, events)
}

func TestScrollIntoViewCentersSubtree(t *testing.T) {
	doc := NewDocument(1000, 800)
	n := NewNode("BUTTON")
	n.Rect = Rect{X: 0, Y: 2000, Width: 100, Height: 50}
	child := NewNode("SPAN")
	child.Rect = Rect{X: 10, Y: 2010, Width: 40, Height: 20}
	n.Append(child)
	doc.Root.Append(n)

	doc.ScrollIntoView(n)

	cx, cy := n.Rect.Center()
	assert.Equal(t, 500.0, cx)
	assert.Equal(t, 400.0, cy)
	// Children move with their parent.
	assert.Equal(t, 460.0, child.Rect.X)
}

func TestLoadPage(t *testing.T) {
	const page = `
viewport:
  width: 900
  height: 700
body:
  - tag: nav
    rect: {x: 0, y: 0, width: 900, height: 50}
    children:
      - tag: a
        text: Home
        attrs: {href: "/"}
        rect: {x: 10, y: 10, width: 80, height: 30}
  - tag: select
    rect: {x: 100, y: 100, width: 120, height: 30}
    options:
      - {value: us, text: United States}
      - {value: de, text: Germany}
  - tag: ul
    rect: {x: 0, y: 200, width: 300, height: 100}
    scroll: {width: 300, height: 900, clientWidth: 300, clientHeight: 100}
`
	doc, err := LoadPage(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, 900.0, doc.ViewportWidth)
	require.Len(t, doc.Root.Children, 3)

	nav := doc.Root.Children[0]
	assert.Equal(t, "NAV", nav.Tag)
	require.Len(t, nav.Children, 1)
	assert.Equal(t, "/", nav.Children[0].Attr("href"))

	sel := doc.Root.Children[1]
	require.Len(t, sel.Options, 2)
	assert.Equal(t, "de", sel.Options[1].Value)

	list := doc.Root.Children[2]
	assert.True(t, list.ScrollableY())
	assert.False(t, list.ScrollableX())
}

func TestLoadPageRejectsMissingTag(t *testing.T) {
	_, err := LoadPage(strings.NewReader("body:\n  - text: orphan\n"))
	assert.Error(t, err)
}
