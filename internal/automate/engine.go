// Package automate orchestrates one interaction at a time against the live
// interface: resolve the target, bring it into view, animate the synthetic
// pointer, perform the effect, then rebuild the snapshot. The state machine
// is Idle -> Homing -> Acquiring -> Performing -> Settling -> Idle; every
// failure path still unwinds through Settling so the engine is never left
// stuck in an automating state.
package automate

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/screenpilot/screenpilot-cli/internal/classify"
	"github.com/screenpilot/screenpilot-cli/internal/config"
	"github.com/screenpilot/screenpilot-cli/internal/motion"
	"github.com/screenpilot/screenpilot-cli/internal/snapshot"
	"github.com/screenpilot/screenpilot-cli/internal/surface"
)

// Phase is the executor's state machine position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHoming
	PhaseAcquiring
	PhasePerforming
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHoming:
		return "homing"
	case PhaseAcquiring:
		return "acquiring"
	case PhasePerforming:
		return "performing"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// PointerMode is the synthetic pointer's visual mode.
type PointerMode string

const (
	ModePointer PointerMode = "pointer"
	ModeHand    PointerMode = "hand"
	ModeText    PointerMode = "text"
)

// Pointer is the synthetic pointer's observable state.
type Pointer struct {
	Pos  motion.Vector2D
	Mode PointerMode
}

// Engine drives interactions against one live document.
type Engine struct {
	doc     *surface.Document
	builder *snapshot.Builder
	frames  FrameScheduler
	cfg     *config.Config
	logger  *zap.Logger
	rng     *rand.Rand

	// Perlin drift overlaid on the drawn pointer; never applied to the
	// planner's logical path.
	tremorX, tremorY *perlin.Perlin
	tremorT          float64

	mu      sync.Mutex
	phase   Phase
	pointer Pointer
	snap    *snapshot.Snapshot
}

// New creates an engine for the given document. A nil scheduler gets the
// production frame scheduler from configuration.
func New(doc *surface.Document, cfg *config.Config, logger *zap.Logger, frames FrameScheduler) *Engine {
	if frames == nil {
		frames = NewFrameScheduler(cfg.Pointer.FrameInterval)
	}
	seed := time.Now().UnixNano()
	return &Engine{
		doc:     doc,
		builder: snapshot.NewBuilder(),
		frames:  frames,
		cfg:     cfg,
		logger:  logger.Named("automate"),
		rng:     rand.New(rand.NewSource(seed)),
		tremorX: perlin.NewPerlin(2, 2, 3, seed),
		tremorY: perlin.NewPerlin(2, 2, 3, seed+1),
		pointer: Pointer{Mode: ModePointer},
	}
}

// Snapshot rebuilds and returns the current snapshot. Every call is a full
// rebuild; nothing is cached across calls.
func (e *Engine) Snapshot() *snapshot.Snapshot {
	snap := e.builder.Build(e.doc)
	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()
	return snap
}

// SetPointerPosition records the last known real pointer position, used as
// the synthetic pointer's start when an interaction begins.
func (e *Engine) SetPointerPosition(x, y float64) {
	e.mu.Lock()
	e.pointer.Pos = motion.Vector2D{X: x, Y: y}
	e.mu.Unlock()
	e.doc.MovePointer(x, y)
}

// PointerState returns the synthetic pointer's current state.
func (e *Engine) PointerState() Pointer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pointer
}

// Automating reports whether an interaction is in flight.
func (e *Engine) Automating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase != PhaseIdle
}

// Perform runs one interaction end to end. Only one may be in flight at a
// time; a request arriving while not Idle fails with ErrBusy and leaves
// the in-flight interaction untouched. Each interaction is attempted
// exactly once, and regardless of outcome the engine settles and rebuilds
// the snapshot before returning.
func (e *Engine) Perform(ctx context.Context, req Request) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	log := e.logger.With(
		zap.String("request", req.ID.String()),
		zap.String("kind", string(req.Kind)),
	)

	if !knownKinds[req.Kind] {
		log.Warn("Unsupported interaction kind; treating as no-op")
		return nil
	}
	if err := req.Validate(); err != nil {
		log.Error("Rejecting interaction request", zap.Error(err))
		return err
	}

	// Idle -> Homing. The synthetic pointer starts from the last known
	// real pointer position.
	e.mu.Lock()
	if e.phase != PhaseIdle {
		busy := e.phase
		e.mu.Unlock()
		log.Warn("Interaction refused while automating", zap.Stringer("phase", busy))
		return ErrBusy
	}
	e.phase = PhaseHoming
	e.pointer.Mode = ModePointer
	snap := e.snap
	e.mu.Unlock()

	// Settling always runs: clear automating state, reset the pointer
	// mode, rebuild the now-stale snapshot.
	defer e.settle(log)

	if snap == nil {
		snap = e.Snapshot()
	}

	var node *surface.Node
	if req.Kind != classify.Wait {
		var err error
		node, err = snap.Resolve(*req.TargetID)
		if err != nil {
			log.Error("Target resolution failed", zap.Int("target", *req.TargetID), zap.Error(err))
			return err
		}

		// Homing -> Acquiring: center the target, give the interface a
		// settle period, then re-measure and fly the pointer there.
		e.setPhase(PhaseAcquiring)
		e.doc.ScrollIntoView(node)
		if err := e.frames.Sleep(ctx, e.cfg.Engine.SettleDelay); err != nil {
			return err
		}
		cx, cy := node.Rect.Center()
		if err := e.animate(ctx, motion.Vector2D{X: cx, Y: cy}); err != nil {
			return err
		}
	}

	e.setPhase(PhasePerforming)
	if err := e.performSafely(ctx, req, node, snap); err != nil {
		log.Error("Interaction failed", zap.Error(err))
		return err
	}
	log.Debug("Interaction performed")
	return nil
}

func (e *Engine) setPhase(p Phase) {
	e.mu.Lock()
	e.phase = p
	e.mu.Unlock()
}

func (e *Engine) setMode(m PointerMode) {
	e.mu.Lock()
	e.pointer.Mode = m
	e.mu.Unlock()
}

func (e *Engine) settle(log *zap.Logger) {
	e.mu.Lock()
	e.phase = PhaseSettling
	e.pointer.Mode = ModePointer
	e.mu.Unlock()

	// The interaction may have changed the interface; the previous
	// snapshot must not be reused.
	e.Snapshot()
	e.setPhase(PhaseIdle)
	log.Debug("Settled; snapshot rebuilt")
}

// performSafely converts panics out of effect listeners into soft
// failures, so a broken page callback cannot wedge the state machine.
func (e *Engine) performSafely(ctx context.Context, req Request, node *surface.Node, snap *snapshot.Snapshot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrEffectFailed, r)
		}
	}()
	return e.performEffect(ctx, req, node, snap)
}

// animate flies the synthetic pointer from its current position to the
// target, one planner step per frame. The logical position follows the
// planner exactly; the drawn overlay may carry a small perlin tremor.
func (e *Engine) animate(ctx context.Context, target motion.Vector2D) error {
	e.mu.Lock()
	start := e.pointer.Pos
	e.mu.Unlock()

	planner, err := motion.NewPlanner(start, target, e.cfg.Pointer.Speed)
	if err != nil {
		return err
	}

	for {
		pos, ok := planner.Next()
		if !ok {
			break
		}
		if err := e.frames.Tick(ctx); err != nil {
			return err
		}

		e.mu.Lock()
		e.pointer.Pos = pos
		e.mu.Unlock()

		drawn := pos
		if amp := e.cfg.Pointer.TremorAmplitude; amp > 0 {
			e.tremorT += 0.07
			drawn = pos.Add(motion.Vector2D{
				X: e.tremorX.Noise1D(e.tremorT) * amp,
				Y: e.tremorY.Noise1D(e.tremorT) * amp,
			})
		}
		e.doc.MovePointer(drawn.X, drawn.Y)
	}

	// Park the overlay exactly on the final logical position.
	e.doc.MovePointer(target.X, target.Y)
	return nil
}
