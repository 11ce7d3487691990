package snapshot

import (
	"errors"
	"fmt"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// ErrTargetNotFound reports an item id that is absent from the snapshot's
// arena, typically because the interface changed since the snapshot was
// taken. It aborts the current interaction only.
var ErrTargetNotFound = errors.New("snapshot: target not found")

// Snapshot is the result of one builder pass: the flat item sequence in id
// assignment order, plus the id to live node arena used for resolution.
// A snapshot is immutable once returned and is discarded wholesale after
// any interaction that might have changed the interface.
type Snapshot struct {
	Items []Item

	arena map[int]*surface.Node
	byID  map[int]Item
}

// Resolve maps an item id back to the live node that produced it.
func (s *Snapshot) Resolve(id int) (*surface.Node, error) {
	n, ok := s.arena[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrTargetNotFound, id)
	}
	return n, nil
}

// Lookup returns the item with the given id, if present.
func (s *Snapshot) Lookup(id int) (Item, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Builder produces snapshots of a live document. It holds no state between
// builds; every Build walks the tree from scratch.
type Builder struct{}

// NewBuilder creates a snapshot builder.
func NewBuilder() *Builder { return &Builder{} }

// Build walks the document depth first, children before parent, and
// returns the classified item sequence. An empty interface yields an empty
// snapshot, never an error.
func (b *Builder) Build(doc *surface.Document) *Snapshot {
	w := &walker{
		snap: &Snapshot{
			arena: map[int]*surface.Node{},
			byID:  map[int]Item{},
		},
	}
	if doc != nil && doc.Root != nil {
		w.visit(doc.Root)
	}
	return w.snap
}

type walker struct {
	snap   *Snapshot
	nextID int
}

// visit classifies one node and returns the assigned item id, or nil when
// the node produced no item.
func (w *walker) visit(n *surface.Node) *int {
	// The engine must not observe its own control surface or the pointer
	// overlay, and hidden nodes hide their whole subtree.
	if n == nil || n.Attr(surface.ChromeAttr) != "" || !n.Visible() {
		return nil
	}

	var childIDs []int
	for _, c := range n.Children {
		if id := w.visit(c); id != nil {
			childIDs = append(childIDs, *id)
		}
	}

	// Zero-size rejection happens after recursion: an invisible wrapper is
	// dropped even when it has valid children.
	if n.Rect.Width == 0 && n.Rect.Height == 0 {
		return nil
	}

	res := classify.Classify(n)
	switch {
	case res.Interactive:
		return w.emit(n, childIDs, newAction(n, res))
	case len(childIDs) > 0:
		return w.emit(n, childIDs, &Container{ChildIDs: childIDs})
	case n.TrimmedText() != "":
		return w.emit(n, nil, newInfo(n))
	default:
		return nil
	}
}

// emit finalizes an item: the id is assigned here, at the point the node
// is determined to produce an item, keeping id-to-subtree correspondence
// deterministic for a given tree shape.
func (w *walker) emit(n *surface.Node, childIDs []int, it Item) *int {
	w.nextID++
	id := w.nextID

	base := it.Base()
	base.ID = id
	base.X = n.Rect.X
	base.Y = n.Rect.Y
	base.Width = n.Rect.Width
	base.Height = n.Rect.Height
	base.TagName = n.Tag
	base.TextContent = n.TrimmedText()
	switch it.(type) {
	case *Container:
		base.Type = KindContainer
		base.TextContent = ""
	case *Action:
		base.Type = KindAction
	case *Info:
		base.Type = KindInfo
	}

	// Children were classified before their parent had an id; link them
	// back now that it exists.
	for _, cid := range childIDs {
		if child, ok := w.snap.byID[cid]; ok {
			pid := id
			child.Base().ParentID = &pid
		}
	}

	w.snap.arena[id] = n
	w.snap.byID[id] = it
	w.snap.Items = append(w.snap.Items, it)
	return &id
}

func newAction(n *surface.Node, res classify.Result) *Action {
	a := &Action{
		PossibleInteractions: res.Interactions,
		SelectOptions:        res.Options,
	}
	if v := n.Attr("placeholder"); v != "" {
		a.Placeholder = &v
	}
	if v := n.Attr("href"); v != "" {
		a.Href = &v
	}
	return a
}

func newInfo(n *surface.Node) *Info {
	info := &Info{}
	if v := n.Attr("alt"); v != "" {
		info.Alt = &v
	}
	return info
}
