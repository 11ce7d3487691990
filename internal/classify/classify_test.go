package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

func TestNonInteractiveTagsGetNothing(t *testing.T) {
	for _, tag := range []string{"DIV", "SPAN", "P", "IMG", "UL", "NAV", "H1"} {
		n := surface.NewNode(tag)
		n.Text = "some text"
		n.Draggable = true // attributes never make a non-listed tag interactive

		res := Classify(n)
		assert.False(t, res.Interactive, "tag %s", tag)
		assert.Empty(t, res.Interactions, "tag %s", tag)
	}
}

func TestBaseCapabilities(t *testing.T) {
	res := Classify(surface.NewNode("BUTTON"))
	require.True(t, res.Interactive)
	assert.Equal(t, []Interaction{Hover, Focus, Click, RightClick, DoubleClick}, res.Interactions)
}

func TestTypeTextRules(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		inputType string
		want      bool
	}{
		{"textarea always types", "TEXTAREA", "", true},
		{"input with no declared subtype defaults to text", "INPUT", "", true},
		{"explicit text input", "INPUT", "text", true},
		{"search input", "INPUT", "search", true},
		{"checkbox never types", "INPUT", "checkbox", false},
		{"radio never types", "INPUT", "radio", false},
		{"submit never types", "INPUT", "submit", false},
		{"range never types", "INPUT", "range", false},
		{"file never types", "INPUT", "file", false},
		{"hidden never types", "INPUT", "hidden", false},
		{"image never types", "INPUT", "image", false},
		{"button subtype never types", "INPUT", "button", false},
		{"button element never types", "BUTTON", "", false},
		{"hyperlink never types", "A", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := surface.NewNode(tt.tag)
			if tt.inputType != "" {
				n.SetAttr("type", tt.inputType)
			}
			res := Classify(n)
			require.True(t, res.Interactive)
			assert.Equal(t, tt.want, contains(res.Interactions, TypeText))
		})
	}
}

func TestSelectGetsOptionsAndSelectOption(t *testing.T) {
	n := surface.NewNode("SELECT")
	n.Options = []surface.Option{
		{Value: "us", Text: "United States"},
		{Value: "zz", Text: "Unknown"},
	}

	res := Classify(n)
	require.True(t, res.Interactive)
	assert.True(t, contains(res.Interactions, SelectOption))
	assert.Equal(t, n.Options, res.Options)
}

func TestDragRequiresDraggableFlag(t *testing.T) {
	n := surface.NewNode("BUTTON")
	assert.False(t, contains(Classify(n).Interactions, Drag))

	n.Draggable = true
	assert.True(t, contains(Classify(n).Interactions, Drag))
}

func TestScrollRequiresOverflow(t *testing.T) {
	n := surface.NewNode("TEXTAREA")
	n.ClientHeight = 100
	n.ScrollHeight = 100
	assert.False(t, contains(Classify(n).Interactions, Scroll))

	n.ScrollHeight = 300
	assert.True(t, contains(Classify(n).Interactions, Scroll))

	// Horizontal overflow counts too.
	h := surface.NewNode("TEXTAREA")
	h.ClientWidth = 100
	h.ScrollWidth = 250
	assert.True(t, contains(Classify(h).Interactions, Scroll))
}

func TestStableInteractionOrder(t *testing.T) {
	n := surface.NewNode("TEXTAREA")
	n.Draggable = true
	n.ClientHeight = 10
	n.ScrollHeight = 50

	first := Classify(n)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Interactions, Classify(n).Interactions)
	}
	assert.Equal(t,
		[]Interaction{Hover, Focus, Click, RightClick, DoubleClick, TypeText, Drag, Scroll},
		first.Interactions)
}

func contains(in []Interaction, want Interaction) bool {
	for _, i := range in {
		if i == want {
			return true
		}
	}
	return false
}
