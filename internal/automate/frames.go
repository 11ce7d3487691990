package automate

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// FrameScheduler is the host scheduling primitive the engine suspends on.
// Every pause and every animation step goes through it, which keeps the
// engine cooperative and lets tests run interactions instantly.
type FrameScheduler interface {
	// Tick blocks until the next animation frame is due.
	Tick(ctx context.Context) error
	// Sleep pauses for a fixed duration, respecting cancellation.
	Sleep(ctx context.Context, d time.Duration) error
}

type frameScheduler struct {
	limiter *rate.Limiter
}

// NewFrameScheduler returns the production scheduler, pacing animation
// ticks at one per interval.
func NewFrameScheduler(interval time.Duration) FrameScheduler {
	return &frameScheduler{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

func (s *frameScheduler) Tick(ctx context.Context) error {
	return s.limiter.Wait(ctx)
}

func (s *frameScheduler) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
