package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, p *Planner) []Vector2D {
	t.Helper()
	var out []Vector2D
	for {
		pos, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, pos)
		require.Less(t, len(out), 100000, "planner did not terminate")
	}
}

func TestRejectsNonPositiveSpeed(t *testing.T) {
	for _, speed := range []float64{0, -1, -0.001} {
		_, err := NewPlanner(Vector2D{}, Vector2D{X: 10}, speed)
		assert.Error(t, err, "speed %v", speed)
	}
}

func TestEndsExactlyOnTarget(t *testing.T) {
	tests := []struct {
		name          string
		start, target Vector2D
		speed         float64
	}{
		{"long horizontal", Vector2D{}, Vector2D{X: 100}, 7},
		{"diagonal", Vector2D{X: 3, Y: 4}, Vector2D{X: -120, Y: 77.5}, 11.3},
		{"speed larger than distance", Vector2D{}, Vector2D{X: 2, Y: 1}, 50},
		{"exact multiple of speed", Vector2D{}, Vector2D{X: 30}, 10},
		{"already at target", Vector2D{X: 5, Y: 5}, Vector2D{X: 5, Y: 5}, 4},
		{"tiny speed", Vector2D{}, Vector2D{X: 1}, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlanner(tt.start, tt.target, tt.speed)
			require.NoError(t, err)

			steps := collect(t, p)
			require.NotEmpty(t, steps)
			assert.Equal(t, tt.target, steps[len(steps)-1], "final position must be the target exactly")

			// Intermediate step count is ceil(distance/speed) - 1.
			dist := tt.start.Dist(tt.target)
			wantIntermediate := int(math.Ceil(dist/tt.speed)) - 1
			if wantIntermediate < 0 {
				wantIntermediate = 0
			}
			assert.Equal(t, wantIntermediate, len(steps)-1)
		})
	}
}

func TestStepsAdvanceBySpeedAlongBearing(t *testing.T) {
	start := Vector2D{X: 10, Y: 20}
	target := Vector2D{X: 110, Y: 95}
	const speed = 12.5

	p, err := NewPlanner(start, target, speed)
	require.NoError(t, err)

	prev := start
	steps := collect(t, p)
	for i, s := range steps[:len(steps)-1] {
		assert.InDelta(t, speed, prev.Dist(s), 1e-9, "step %d", i)
		prev = s
	}
	// The last hop is the snap and is at most one step long.
	assert.LessOrEqual(t, prev.Dist(target), speed+1e-9)
}

func TestNotRestartable(t *testing.T) {
	p, err := NewPlanner(Vector2D{}, Vector2D{X: 5}, 10)
	require.NoError(t, err)

	_, ok := p.Next()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok = p.Next()
		assert.False(t, ok, "exhausted planner must stay exhausted")
	}
}
