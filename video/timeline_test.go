package video

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateEvenSplit(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	durations := a.Allocate(3, 9.0)

	require.Len(t, durations, 3)
	assert.Equal(t, []float64{3.0, 3.0, 3.0}, durations)
}

func TestAllocateFloorBinds(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	// base = 6.0/5 = 1.2 → floor to 2.0; allocated total 10.0 > 6.0 audio,
	// documented overrun, no residual correction fires.
	durations := a.Allocate(5, 6.0)

	require.Len(t, durations, 5)
	for i, d := range durations {
		assert.Equal(t, 2.0, d, "segment %d", i)
	}
}

func TestAllocateZeroDuration(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	durations := a.Allocate(1, 0)

	assert.Equal(t, []float64{2.0}, durations)
}

func TestAllocateZeroSegments(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	assert.Empty(t, a.Allocate(0, 42.0))
}

func TestAllocateResidualGoesToLast(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	// 10.0/3 is not exactly representable; the rounding shortfall lands
	// on the last segment so the sum covers the audio exactly.
	durations := a.Allocate(3, 10.0)

	require.Len(t, durations, 3)
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	assert.InDelta(t, 10.0, sum, 1e-9)
	assert.GreaterOrEqual(t, durations[2], durations[0])
}

func TestAllocateProperties(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	cases := []struct {
		n int
		d float64
	}{
		{1, 0}, {1, 1.5}, {2, 60.0}, {7, 13.37}, {10, 100.0}, {25, 3.0},
	}

	for _, tc := range cases {
		durations := a.Allocate(tc.n, tc.d)
		require.Len(t, durations, tc.n)

		sum := 0.0
		for _, dur := range durations {
			assert.GreaterOrEqual(t, dur, a.MinSegmentSeconds)
			sum += dur
		}
		assert.GreaterOrEqual(t, sum, tc.d-1e-9, "n=%d d=%f", tc.n, tc.d)

		if tc.d/float64(tc.n) >= a.MinSegmentSeconds {
			assert.InDelta(t, tc.d, sum, 1e-9, "n=%d d=%f", tc.n, tc.d)
		}
	}
}

func TestAllocateIdempotent(t *testing.T) {
	a := NewTimelineAllocator(2.0)

	first := a.Allocate(7, 33.3)
	second := a.Allocate(7, 33.3)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, math.Abs(first[i]-second[i]) == 0)
	}
}

func TestNewTimelineAllocatorDefault(t *testing.T) {
	assert.Equal(t, DefaultMinSegmentSeconds, NewTimelineAllocator(0).MinSegmentSeconds)
	assert.Equal(t, 1.5, NewTimelineAllocator(1.5).MinSegmentSeconds)
}
