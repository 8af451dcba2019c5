package streamstat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestEWMean(t *testing.T) {
	data := []float64{1, 3, 5, 4, 6, 8, 7, 9, 11}
	e := NewEWMean(0.5)
	for _, x := range data {
		e.Add(x)
	}
	assert.InDelta(t, 9.4296875, e.Value(), 1e-12)
}

func TestEWMeanSeedsFromFirstValue(t *testing.T) {
	e := NewEWMean(0.1)
	e.Add(100)
	assert.Equal(t, 100.0, e.Value())
	e.Add(0)
	assert.InDelta(t, 90.0, e.Value(), 1e-12)
}

func TestEWVariance(t *testing.T) {
	data := []float64{1, 3, 5, 4, 6, 8, 7, 9, 11}
	e := NewEWVariance(0.5)
	for _, x := range data {
		e.Add(x)
	}
	assert.InDelta(t, 3.56536865234375, e.Value(), 1e-12)
}

func TestEWVarianceConstantStream(t *testing.T) {
	e := NewEWVariance(0.3)
	for i := 0; i < 20; i++ {
		e.Add(7)
	}
	assert.InDelta(t, 0.0, e.Value(), 1e-9)
}

func TestFEWMeanZeroFadingEqualsMean(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	values := make([]float64, 200)
	f := NewFEWMean(0)
	for i := range values {
		values[i] = rng.Float64() * 100
		f.Add(values[i])
	}
	assert.InDelta(t, stat.Mean(values, nil), f.Value(), 1e-9)
}

func TestFEWMean(t *testing.T) {
	f := NewFEWMean(0.5)
	f.Add(1)
	assert.Equal(t, 1.0, f.Value())

	// weight = 0.5, mean = (0.5*1 + 3) / 1.5
	f.Add(3)
	assert.InDelta(t, 3.5/1.5, f.Value(), 1e-12)
}
