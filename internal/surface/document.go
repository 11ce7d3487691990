package surface

// ChromeAttr marks a node as part of the automation engine's own control
// surface (the inspector panel, the synthetic pointer overlay). Snapshot
// builds skip any node carrying it so the engine never observes itself.
const ChromeAttr = "data-screenpilot"

// Document is one live interface instance: a content tree, a viewport, the
// current input focus and the synthetic pointer overlay.
type Document struct {
	Root *Node

	ViewportWidth  float64
	ViewportHeight float64

	// PointerLayer is the overlay node the synthetic pointer is drawn on.
	// It lives outside Root and is excluded from snapshots by ChromeAttr.
	PointerLayer *Node

	active *Node
}

// NewDocument creates a document with an empty root sized to the viewport.
func NewDocument(width, height float64) *Document {
	root := NewNode("DIV")
	root.Rect = Rect{Width: width, Height: height}

	pointer := NewNode("DIV")
	pointer.SetAttr(ChromeAttr, "pointer")
	pointer.Rect = Rect{Width: 16, Height: 16}

	d := &Document{
		Root:           root,
		ViewportWidth:  width,
		ViewportHeight: height,
		PointerLayer:   pointer,
	}
	root.setDocument(d)
	pointer.setDocument(d)
	return d
}

// ActiveElement returns the node holding input focus, or nil.
func (d *Document) ActiveElement() *Node { return d.active }

// Focus moves input focus to n, emitting blur/focus events.
func (d *Document) Focus(n *Node) {
	if d.active == n {
		return
	}
	if d.active != nil {
		d.active.Dispatch(Event{Type: "blur", Target: d.active})
	}
	d.active = n
	if n != nil {
		n.Dispatch(Event{Type: "focus", Target: n})
	}
}

// ScrollIntoView translates the node's subtree so the node is centered in
// the viewport, the way a smooth centered scroll would leave it. Ancestors
// are untouched; only layout boxes move.
func (d *Document) ScrollIntoView(n *Node) {
	cx, cy := n.Rect.Center()
	dx := d.ViewportWidth/2 - cx
	dy := d.ViewportHeight/2 - cy
	if dx == 0 && dy == 0 {
		return
	}
	translate(n, dx, dy)
}

func translate(n *Node, dx, dy float64) {
	n.Rect.X += dx
	n.Rect.Y += dy
	for _, c := range n.Children {
		translate(c, dx, dy)
	}
}

// MovePointer places the pointer overlay at the given position.
func (d *Document) MovePointer(x, y float64) {
	d.PointerLayer.Rect.X = x
	d.PointerLayer.Rect.Y = y
}
