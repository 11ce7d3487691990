// Package surface models the live hierarchical interface the automation
// engine operates on: a tree of nodes with layout boxes, visibility,
// scrollable extents and synthetic event dispatch. It is the in-memory
// stand-in for a rendered page; the engine never reaches outside it.
package surface

import (
	"strings"
)

// Rect is an axis-aligned layout box in viewport coordinates.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Center returns the geometric center of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Option is one entry of a choice-list node.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Text  string `yaml:"text" json:"text"`
}

// Style carries the two visibility-affecting properties the engine honors.
type Style struct {
	Display    string `yaml:"display,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`
}

// EventListener receives a synthesized event dispatched to a node.
type EventListener func(ev Event)

// Event is a synthesized interface event. Only the fields relevant to the
// event type are populated.
type Event struct {
	Type   string
	Target *Node
	// Pointer coordinates for mouse-family events.
	X, Y float64
	// Key for keydown/keyup events.
	Key string
	// Detail counts consecutive activations (2 for dblclick).
	Detail int
}

// Node is one element of the live interface tree. Mutating a Node mutates
// the "page"; snapshots taken afterwards observe the new state.
type Node struct {
	Tag   string
	Text  string
	Attrs map[string]string
	Style Style
	Rect  Rect

	// Scrollable content extents. A node scrolls when its scroll extent
	// exceeds its client extent on either axis.
	ScrollWidth  float64
	ScrollHeight float64
	ClientWidth  float64
	ClientHeight float64
	ScrollTop    float64
	ScrollLeft   float64

	// Form state.
	Value     string
	Options   []Option
	Selected  string
	Draggable bool

	Parent   *Node
	Children []*Node

	listeners map[string][]EventListener
	doc       *Document
}

// NewNode creates a detached node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: strings.ToUpper(tag), Attrs: map[string]string{}}
}

// Append attaches children to n, re-parenting them.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		c.setDocument(n.doc)
		n.Children = append(n.Children, c)
	}
	return n
}

func (n *Node) setDocument(d *Document) {
	n.doc = d
	for _, c := range n.Children {
		c.setDocument(d)
	}
}

// Attr returns the attribute value, or "" when absent.
func (n *Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// SetAttr sets an attribute, allocating the map on first use.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[name] = value
	return n
}

// Visible reports whether the node participates in rendering. Hidden nodes
// hide their whole subtree.
func (n *Node) Visible() bool {
	return n.Style.Display != "none" && n.Style.Visibility != "hidden"
}

// ScrollableY reports whether vertical content overflows the client box.
func (n *Node) ScrollableY() bool {
	return n.ScrollHeight > n.ClientHeight
}

// ScrollableX reports whether horizontal content overflows the client box.
func (n *Node) ScrollableX() bool {
	return n.ScrollWidth > n.ClientWidth
}

// On registers a listener for the given event type.
func (n *Node) On(eventType string, fn EventListener) {
	if n.listeners == nil {
		n.listeners = map[string][]EventListener{}
	}
	n.listeners[eventType] = append(n.listeners[eventType], fn)
}

// Dispatch delivers a synthesized event to the node's listeners and then
// bubbles it up through the ancestor chain.
func (n *Node) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	for cur := n; cur != nil; cur = cur.Parent {
		for _, fn := range cur.listeners[ev.Type] {
			fn(ev)
		}
	}
}

// SetScroll clamps and applies new scroll offsets.
func (n *Node) SetScroll(top, left float64) {
	maxTop := n.ScrollHeight - n.ClientHeight
	maxLeft := n.ScrollWidth - n.ClientWidth
	n.ScrollTop = clamp(top, 0, maxTop)
	n.ScrollLeft = clamp(left, 0, maxLeft)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TrimmedText returns the node's visible text with surrounding whitespace
// removed.
func (n *Node) TrimmedText() string {
	return strings.TrimSpace(n.Text)
}
