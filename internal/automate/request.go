package automate

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/motion"
)

var (
	// ErrBusy rejects a request arriving while another interaction is in
	// flight. The in-flight interaction is unaffected.
	ErrBusy = errors.New("automate: an interaction is already in progress")

	// ErrInvalidRequest rejects a malformed request before the state
	// machine leaves Idle.
	ErrInvalidRequest = errors.New("automate: invalid interaction request")

	// ErrEffectFailed wraps any failure while synthesizing an effect. The
	// interaction aborts but the engine still settles and re-snapshots.
	ErrEffectFailed = errors.New("automate: effect dispatch failed")
)

// Request describes one interaction to perform. Per-kind parameter fields
// are ignored by kinds that do not use them.
type Request struct {
	// ID correlates log lines for one interaction; assigned when empty.
	ID uuid.UUID `json:"id,omitempty"`

	// TargetID names the snapshot item to act on. Required for every kind
	// except wait, which must not carry one.
	TargetID *int `json:"targetId"`

	Kind classify.Interaction `json:"kind"`

	// Text to type, for type-text.
	Text string `json:"text,omitempty"`

	// Duration of a hover or wait pause.
	Duration time.Duration `json:"duration,omitempty"`

	// Scroll offsets, for scroll.
	ScrollTop  float64 `json:"scrollTop,omitempty"`
	ScrollLeft float64 `json:"scrollLeft,omitempty"`

	// Option value to choose, for select-option.
	Value string `json:"value,omitempty"`

	// Drag destination: a second item to drop onto, or fixed coordinates.
	// Exactly one of the two must be set.
	DropTargetID *int             `json:"dropTargetId,omitempty"`
	DropTo       *motion.Vector2D `json:"dropTo,omitempty"`
}

// knownKinds is the closed set of interaction kinds the executor
// dispatches. Anything else is logged and treated as a no-op.
var knownKinds = map[classify.Interaction]bool{
	classify.Click:        true,
	classify.RightClick:   true,
	classify.DoubleClick:  true,
	classify.TypeText:     true,
	classify.Drag:         true,
	classify.Hover:        true,
	classify.Focus:        true,
	classify.Scroll:       true,
	classify.SelectOption: true,
	classify.Wait:         true,
}

// Validate checks target presence against the requested kind. It runs
// before the state machine enters Homing.
func (r *Request) Validate() error {
	if !knownKinds[r.Kind] {
		// Unsupported kinds are not validation failures; the caller skips
		// them as no-ops.
		return nil
	}
	if r.Kind == classify.Wait {
		if r.TargetID != nil {
			return fmt.Errorf("%w: wait takes no target", ErrInvalidRequest)
		}
		return nil
	}
	if r.TargetID == nil {
		return fmt.Errorf("%w: %s requires a target", ErrInvalidRequest, r.Kind)
	}
	if r.Kind == classify.Drag {
		if (r.DropTargetID == nil) == (r.DropTo == nil) {
			return fmt.Errorf("%w: drag needs exactly one of dropTargetId or dropTo", ErrInvalidRequest)
		}
	}
	return nil
}
