package automate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/motion"
	"github.com/screenpilot/screenpilot-cli/internal/snapshot"
	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// performEffect dispatches the effect for one interaction kind. The
// pointer is already parked on the target (except for wait).
func (e *Engine) performEffect(ctx context.Context, req Request, node *surface.Node, snap *snapshot.Snapshot) error {
	switch req.Kind {
	case classify.Click:
		e.setMode(ModeHand)
		e.press(node, 1)
		e.release(node, 1)
		e.dispatchAt(node, "click", 1)
		return nil

	case classify.RightClick:
		e.setMode(ModeHand)
		e.dispatchAt(node, "contextmenu", 1)
		return nil

	case classify.DoubleClick:
		e.setMode(ModeHand)
		e.press(node, 1)
		e.release(node, 1)
		e.press(node, 2)
		e.release(node, 2)
		e.dispatchAt(node, "dblclick", 2)
		return nil

	case classify.TypeText:
		e.setMode(ModeText)
		return e.typeText(ctx, node, req.Text)

	case classify.Drag:
		e.setMode(ModeHand)
		return e.drag(ctx, req, node, snap)

	case classify.Hover:
		d := req.Duration
		if d <= 0 {
			d = e.cfg.Engine.DefaultHover
		}
		return e.frames.Sleep(ctx, d)

	case classify.Focus:
		e.doc.Focus(node)
		return nil

	case classify.Scroll:
		node.SetScroll(req.ScrollTop, req.ScrollLeft)
		node.Dispatch(surface.Event{Type: "scroll", Target: node})
		return nil

	case classify.SelectOption:
		e.selectOption(node, req.Value)
		return nil

	case classify.Wait:
		return e.frames.Sleep(ctx, req.Duration)
	}

	// Unreachable: unknown kinds are filtered before Homing.
	return fmt.Errorf("%w: unhandled kind %q", ErrEffectFailed, req.Kind)
}

func (e *Engine) pointerPos() motion.Vector2D {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pointer.Pos
}

func (e *Engine) press(node *surface.Node, detail int) {
	e.dispatchAt(node, "mousedown", detail)
}

func (e *Engine) release(node *surface.Node, detail int) {
	e.dispatchAt(node, "mouseup", detail)
}

func (e *Engine) dispatchAt(node *surface.Node, eventType string, detail int) {
	pos := e.pointerPos()
	node.Dispatch(surface.Event{
		Type:   eventType,
		Target: node,
		X:      pos.X,
		Y:      pos.Y,
		Detail: detail,
	})
}

// typeText appends the text one character at a time: key-down, value
// mutation, value-changed notification, key-up, then a jittered pause
// modeling human cadence.
func (e *Engine) typeText(ctx context.Context, node *surface.Node, text string) error {
	e.doc.Focus(node)
	for _, r := range text {
		key := string(r)
		node.Dispatch(surface.Event{Type: "keydown", Target: node, Key: key})
		node.Value += key
		node.Dispatch(surface.Event{Type: "input", Target: node})
		node.Dispatch(surface.Event{Type: "keyup", Target: node, Key: key})

		if err := e.frames.Sleep(ctx, e.keyDelay()); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) keyDelay() time.Duration {
	min, max := e.cfg.Typing.KeyDelayMin, e.cfg.Typing.KeyDelayMax
	if max <= min {
		return min
	}
	e.mu.Lock()
	jitter := time.Duration(e.rng.Int63n(int64(max - min)))
	e.mu.Unlock()
	return min + jitter
}

// drag presses down on the source, flies the pointer to either fixed
// coordinates or the center of a second resolved item, then releases.
func (e *Engine) drag(ctx context.Context, req Request, node *surface.Node, snap *snapshot.Snapshot) error {
	e.press(node, 1)

	target := node
	var dest motion.Vector2D
	if req.DropTargetID != nil {
		drop, err := snap.Resolve(*req.DropTargetID)
		if err != nil {
			// Release before aborting so no phantom button stays held.
			e.release(node, 1)
			return fmt.Errorf("resolving drop target: %w", err)
		}
		cx, cy := drop.Rect.Center()
		dest = motion.Vector2D{X: cx, Y: cy}
		target = drop
	} else {
		dest = *req.DropTo
	}

	if err := e.animate(ctx, dest); err != nil {
		e.release(node, 1)
		return err
	}
	e.release(target, 1)
	return nil
}

// selectOption makes the option with the matching value the node's
// selection. A value absent from the options is a silent no-op: no
// selection change, no notification.
func (e *Engine) selectOption(node *surface.Node, value string) {
	for _, opt := range node.Options {
		if opt.Value == value {
			node.Selected = opt.Value
			node.Value = opt.Value
			node.Dispatch(surface.Event{Type: "change", Target: node})
			return
		}
	}
	e.logger.Debug("select-option value not present; no-op", zap.String("value", value))
}
