// Package classify decides, for a single interface node, whether it is
// interactive and which interactions it plausibly supports. It is a pure
// function of the node's current attributes and layout; nothing here
// touches the rest of the tree.
package classify

import (
	"strings"

	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// Interaction is one kind of interaction an element can support.
type Interaction string

const (
	Hover        Interaction = "hover"
	Focus        Interaction = "focus"
	Click        Interaction = "click"
	RightClick   Interaction = "right-click"
	DoubleClick  Interaction = "double-click"
	TypeText     Interaction = "type-text"
	SelectOption Interaction = "select-option"
	Drag         Interaction = "drag"
	Scroll       Interaction = "scroll"
	Wait         Interaction = "wait"
)

// interactiveTags is the closed allow-list of interactive element kinds.
// Anything else is non-interactive regardless of its attributes.
var interactiveTags = map[string]bool{
	"BUTTON":   true,
	"INPUT":    true,
	"A":        true,
	"SELECT":   true,
	"TEXTAREA": true,
}

// nonTextInputTypes are the INPUT subtypes that never accept typed text.
var nonTextInputTypes = map[string]bool{
	"checkbox": true,
	"radio":    true,
	"button":   true,
	"submit":   true,
	"range":    true,
	"file":     true,
	"hidden":   true,
	"image":    true,
}

// Result is the classification of one node.
type Result struct {
	Interactive  bool
	Interactions []Interaction
	Options      []surface.Option
}

// IsInteractive reports whether the tag is on the interactive allow-list.
func IsInteractive(tag string) bool {
	return interactiveTags[strings.ToUpper(tag)]
}

// Classify inspects a single node. For interactive nodes the returned
// interactions are emitted in a fixed order so repeated snapshots of an
// unchanged page are reproducible.
func Classify(n *surface.Node) Result {
	if !IsInteractive(n.Tag) {
		return Result{}
	}

	// Base capabilities assumed available to any interactive element.
	interactions := []Interaction{Hover, Focus, Click, RightClick, DoubleClick}

	if acceptsText(n) {
		interactions = append(interactions, TypeText)
	}
	if n.Tag == "SELECT" {
		interactions = append(interactions, SelectOption)
	}
	if n.Draggable {
		interactions = append(interactions, Drag)
	}
	if n.ScrollableY() || n.ScrollableX() {
		interactions = append(interactions, Scroll)
	}

	res := Result{Interactive: true, Interactions: interactions}
	if n.Tag == "SELECT" {
		res.Options = append(res.Options, n.Options...)
	}
	return res
}

// acceptsText implements the default-subtype rule: a TEXTAREA always
// accepts text, an INPUT does unless its declared type is one of the
// non-text subtypes, and an INPUT with no declared type is a plain text
// input.
func acceptsText(n *surface.Node) bool {
	switch n.Tag {
	case "TEXTAREA":
		return true
	case "INPUT":
		return !nonTextInputTypes[strings.ToLower(n.Attr("type"))]
	}
	return false
}
