// Package quantile provides streaming quantile estimators: the P-square
// algorithm, which tracks five markers instead of storing observations, an
// interquartile range built from two estimators, and a t-digest backed
// sketch for callers that prefer accuracy over constant memory.
package quantile

import (
	"math"
	"sort"

	"github.com/streamstat-go/streamstat-go"
)

// Quantile estimates a quantile of a stream with the P-square algorithm.
// The estimator seeds itself from the first five observations; from then on
// each observation adjusts at most one of five markers, so memory stays
// constant regardless of stream length.
//
// The fields are exported as data for snapshotting; mutate only through
// Add.
//
// This type is not concurrency safe.
type Quantile struct {
	// Q is the tracked quantile fraction.
	Q float64
	// Desired holds the continuous desired marker positions.
	Desired [5]float64
	// Increment holds the fixed per-observation advance of each desired
	// position.
	Increment [5]float64
	// Position holds the actual marker positions, integers stored as
	// float64.
	Position [5]float64
	// Heights holds the marker heights, non-decreasing once seeded.
	Heights []float64
	// Seeded reports whether five observations have arrived and the
	// heights were sorted.
	Seeded bool
}

// New returns a P-square estimator for the quantile fraction q, or
// streamstat.ErrInvalidQuantile when q is outside [0, 1].
func New(q float64) (*Quantile, error) {
	if q < 0 || q > 1 {
		return nil, streamstat.ErrInvalidQuantile
	}
	return &Quantile{
		Q:         q,
		Desired:   [5]float64{1, 1 + 2*q, 1 + 4*q, 3 + 2*q, 5},
		Increment: [5]float64{0, q / 2, q, (1 + q) / 2, 1},
		Position:  [5]float64{1, 2, 3, 4, 5},
		Heights:   make([]float64, 0, 5),
	}, nil
}

// NewMedian returns a P-square estimator of the median.
func NewMedian() *Quantile {
	q, _ := New(0.5)
	return q
}

func (e *Quantile) Add(x float64) {
	if len(e.Heights) < 5 {
		e.Heights = append(e.Heights, x)
		if len(e.Heights) == 5 {
			sort.Float64s(e.Heights)
			e.Seeded = true
		}
		return
	}

	k := e.bracket(x)
	for i := k; i < 5; i++ {
		e.Position[i]++
	}
	for i := range e.Desired {
		e.Desired[i] += e.Increment[i]
	}
	e.adjust()
}

// Value returns the current estimate of the q-quantile: the middle marker
// height once seeded, a sorted-index fallback over the observations seen so
// far before that, and 0 on an empty estimator.
func (e *Quantile) Value() float64 {
	if e.Seeded {
		return e.Heights[2]
	}
	if len(e.Heights) == 0 {
		return 0
	}
	heights := make([]float64, len(e.Heights))
	copy(heights, e.Heights)
	sort.Float64s(heights)
	length := float64(len(heights))
	idx := int(math.Max(0, math.Min(length*e.Q, length-1)))
	return heights[idx]
}

// bracket locates the marker interval containing x, extending the extreme
// marker heights when x falls outside the current bounds.
func (e *Quantile) bracket(x float64) int {
	if x < e.Heights[0] {
		e.Heights[0] = x
		return 1
	}
	for i := 1; i <= 4; i++ {
		if e.Heights[i-1] <= x && x < e.Heights[i] {
			return i
		}
	}
	if e.Heights[4] < x {
		e.Heights[4] = x
	}
	return 4
}

// adjust moves each interior marker at most one position towards its
// desired position, preferring the parabolic P-square estimate and falling
// back to linear interpolation when the parabola would break the height
// ordering.
func (e *Quantile) adjust() {
	for i := 1; i < 4; i++ {
		n := e.Position[i]
		d := e.Desired[i] - n
		if (d >= 1 && e.Position[i+1]-n > 1) || (d <= -1 && e.Position[i-1]-n < -1) {
			d = math.Copysign(1, d)
			qn := parabolic(e.Heights[i+1], e.Heights[i], e.Heights[i-1], d, e.Position[i+1], n, e.Position[i-1])
			if e.Heights[i-1] < qn && qn < e.Heights[i+1] {
				e.Heights[i] = qn
			} else {
				j := i + int(d)
				e.Heights[i] += d * (e.Heights[j] - e.Heights[i]) / (e.Position[j] - n)
			}
			e.Position[i] = n + d
		}
	}
}

func parabolic(qp1, q, qm1, d, np1, n, nm1 float64) float64 {
	outer := d / (np1 - nm1)
	innerLeft := (n - nm1 + d) * (qp1 - q) / (np1 - n)
	innerRight := (np1 - n - d) * (q - qm1) / (n - nm1)
	return q + outer*(innerLeft+innerRight)
}
