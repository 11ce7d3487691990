// Package snapshot turns the live interface tree into a flat, typed,
// JSON-serializable sequence of screen items, and owns the arena that maps
// item ids back to live nodes for later interaction.
package snapshot

import (
	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// Kind discriminates the three screen item variants.
type Kind string

const (
	KindInfo      Kind = "info"
	KindAction    Kind = "action"
	KindContainer Kind = "container"
)

// ItemBase carries the fields shared by every screen item variant. IDs are
// unique within one snapshot only; a rebuild may assign different ids to
// structurally identical items.
type ItemBase struct {
	ID          int     `json:"id"`
	Type        Kind    `json:"type"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	TagName     string  `json:"tagName"`
	TextContent string  `json:"textContent"`
	ParentID    *int    `json:"parentId"`
}

// Item is the closed sum of the three screen item variants. Consumers
// switch on the concrete type; no other implementations exist.
type Item interface {
	Base() *ItemBase
	screenItem()
}

// Info is non-interactive leaf content (text, images).
type Info struct {
	ItemBase
	Alt *string `json:"alt"`
}

// Action is interactive content together with the interactions it supports.
type Action struct {
	ItemBase
	Placeholder          *string                `json:"placeholder"`
	Href                 *string                `json:"href"`
	PossibleInteractions []classify.Interaction `json:"possibleInteractions"`
	SelectOptions        []surface.Option       `json:"selectOptions,omitempty"`
}

// Container groups at least one classified child. Its own text is cleared
// so child text is not double counted.
type Container struct {
	ItemBase
	ChildIDs []int `json:"childIds"`
}

func (i *Info) Base() *ItemBase      { return &i.ItemBase }
func (a *Action) Base() *ItemBase    { return &a.ItemBase }
func (c *Container) Base() *ItemBase { return &c.ItemBase }

func (*Info) screenItem()      {}
func (*Action) screenItem()    {}
func (*Container) screenItem() {}
