package inspect

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runningwild/secretary/pkg/stopping"
)

func TestPositionToD(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
		want int
	}{
		{name: "Middle", x: 0.5, n: 100, want: 50},
		{name: "RoundsUp", x: 0.376, n: 100, want: 38},
		{name: "RoundsDown", x: 0.374, n: 100, want: 37},
		{name: "LeftEdge", x: 0, n: 100, want: 1},
		{name: "RightEdge", x: 1, n: 100, want: 99},
		{name: "PastRight", x: 1.7, n: 10, want: 9},
		{name: "Negative", x: -0.3, n: 10, want: 1},
		{name: "Two", x: 0.9, n: 2, want: 1},
		{name: "Infinite", x: math.Inf(1), n: 10, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PositionToD(tt.x, tt.n)
			require.NoError(t, err)
			if got != tt.want {
				t.Errorf("PositionToD(%v, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestPositionToDInvalid(t *testing.T) {
	if _, err := PositionToD(0.5, 1); !errors.Is(err, stopping.ErrInvalidArgument) {
		t.Errorf("n=1: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := PositionToD(math.NaN(), 10); !errors.Is(err, stopping.ErrInvalidArgument) {
		t.Errorf("NaN: error = %v, want ErrInvalidArgument", err)
	}
}

func TestReadout(t *testing.T) {
	in := New(nil)
	readings, err := in.ReadoutAt(0.3, 10)
	require.NoError(t, err)
	require.Len(t, readings, 3)

	wantBest := map[int]int{1: 3, 3: 2, 5: 1}
	for _, r := range readings {
		assert.Equal(t, 3, r.D)
		assert.Equal(t, wantBest[r.K], r.BestD, "k=%d", r.K)
		assert.GreaterOrEqual(t, r.Gap(), 0.0)
	}
	assert.InDelta(t, 0.398690476190476, readings[0].P, 1e-12)
	assert.Zero(t, readings[0].Gap())

	// Hovering again at the same n reuses the cached curves.
	_, err = in.Readout(10, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, in.Cache.Computed())
}

func TestReadoutInvalid(t *testing.T) {
	in := New([]int{1})
	_, err := in.Readout(10, 10)
	assert.ErrorIs(t, err, stopping.ErrInvalidArgument)
}
