package quantile

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/streamstat-go/streamstat-go"
)

func TestSketch(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = rng.Float64() * 10
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s, err := NewSketch(0.5)
	require.NoError(t, err)
	for _, x := range values {
		s.Add(x)
	}

	truth := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	assert.InDelta(t, truth, s.Value(), 0.1)
	assert.Equal(t, uint(len(values)), s.Size())
}

func TestSketchEmpty(t *testing.T) {
	s, err := NewSketch(0.9)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Value())
}

func TestSketchValidation(t *testing.T) {
	_, err := NewSketch(-0.5)
	assert.ErrorIs(t, err, streamstat.ErrInvalidQuantile)
	_, err = NewSketch(2)
	assert.ErrorIs(t, err, streamstat.ErrInvalidQuantile)
}

// The two approximate estimators should broadly agree on the same stream.
func TestSketchAgreesWithPSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	s, err := NewSketch(0.5)
	require.NoError(t, err)
	p := NewMedian()

	for i := 0; i < 10000; i++ {
		x := rng.NormFloat64()
		s.Add(x)
		p.Add(x)
	}
	assert.InDelta(t, s.Value(), p.Value(), 0.05)
}
