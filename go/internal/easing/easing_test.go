package easing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuadraticInOutEndpoints(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 0.0, QuadraticInOut(0), 1e-12)
	require.InDelta(t, 0.5, QuadraticInOut(0.5), 1e-12)
	require.InDelta(t, 1.0, QuadraticInOut(1), 1e-12)
}

func TestQuadraticInOutIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := -1.0
	for i := 0; i <= 1000; i++ {
		v := QuadraticInOut(float64(i) / 1000)
		require.Greater(t, v, prev, "sample %d", i)
		prev = v
	}
}

func TestInverseQuadraticInOutRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range []float64{0, 0.1, 0.25, 0.49, 0.5, 0.51, 0.75, 0.9, 1} {
		require.InDelta(t, p, InverseQuadraticInOut(QuadraticInOut(p)), 1e-9, "p=%v", p)
	}
}

func TestInverseQuadraticInOutClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, InverseQuadraticInOut(-3))
	require.InDelta(t, 1.0, InverseQuadraticInOut(7), 1e-12)
}

func TestCircularInOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, CircularInOut(tt.p), 1e-12)
	}
	require.Less(t, CircularInOut(0.25), 0.25)
	require.Greater(t, CircularInOut(0.75), 0.75)
}
