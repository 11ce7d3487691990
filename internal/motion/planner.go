// Package motion computes frame-by-frame pointer trajectories. It is
// purely numeric; nothing here knows about the interface tree or how the
// positions it yields are consumed.
package motion

import (
	"fmt"
	"math"
)

// Planner lazily yields intermediate positions from a start point to a
// target at a fixed per-step speed (distance per animation tick). Each
// planner is specific to one (start, target, speed) triple and is not
// restartable.
type Planner struct {
	current Vector2D
	target  Vector2D
	speed   float64
	done    bool
}

// NewPlanner creates a planner. Speed must be positive; zero or negative
// speed is a configuration error, not a condition normal callers produce.
func NewPlanner(start, target Vector2D, speed float64) (*Planner, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("motion: speed must be positive, got %v", speed)
	}
	return &Planner{current: start, target: target, speed: speed}, nil
}

// Next advances one tick. While more than one step remains, the position
// moves by speed along the straight-line bearing to the target. Once the
// remainder fits within a single step, the target itself is yielded
// exactly once and the sequence terminates, so the path always ends
// exactly on the target with no overshoot.
func (p *Planner) Next() (Vector2D, bool) {
	if p.done {
		return Vector2D{}, false
	}
	if p.current.Dist(p.target) <= p.speed {
		p.current = p.target
		p.done = true
		return p.target, true
	}
	angle := p.target.Sub(p.current).Angle()
	p.current = p.current.Add(Vector2D{
		X: math.Cos(angle) * p.speed,
		Y: math.Sin(angle) * p.speed,
	})
	return p.current, true
}
