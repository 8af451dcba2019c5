package streamstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunning(t *testing.T) {
	t.Run("running sum", func(t *testing.T) {
		assert.Equal(t, []float64{1, 3, 6}, Running(NewSum(), []float64{1, 2, 3}))
	})

	t.Run("running mean", func(t *testing.T) {
		assert.Equal(t, []float64{1, 1.5, 2}, Running(NewMean(), []float64{1, 2, 3}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Running(NewSum(), nil))
	})
}

func TestRunningBivariate(t *testing.T) {
	out := RunningBivariate(NewCovariance(), []float64{-2.1, -1, 4.3}, []float64{3, 1.1, 0.12})
	assert.Len(t, out, 3)
	assert.InDelta(t, -4.286, out[2], 1e-12)
}

func TestStream(t *testing.T) {
	s := NewStream(NewMax(), NewSliceSource([]float64{1, 2, 3, 2}))

	var out []float64
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	assert.Equal(t, []float64{1, 2, 3, 3}, out)

	// Drained streams stay drained.
	_, ok := s.Next()
	assert.False(t, ok)
}
