package quantile

import (
	"github.com/influxdata/tdigest"

	"github.com/streamstat-go/streamstat-go"
)

// Sketch estimates a quantile with a t-digest. It trades the P-square
// estimator's constant five-marker state for a compressed digest of the
// whole distribution, which is more accurate in the tails and answers any
// quantile after the fact.
//
// This type is not concurrency safe.
type Sketch struct {
	q    float64
	size uint
	*tdigest.TDigest
}

// NewSketch returns a t-digest backed estimator for the quantile fraction
// q, or streamstat.ErrInvalidQuantile when q is outside [0, 1].
func NewSketch(q float64) (*Sketch, error) {
	if q < 0 || q > 1 {
		return nil, streamstat.ErrInvalidQuantile
	}
	return &Sketch{q: q, TDigest: tdigest.New()}, nil
}

func (s *Sketch) Add(x float64) {
	s.TDigest.Add(x, 1)
	s.size++
}

// Value returns the current estimate of the q-quantile, or 0 before the
// first observation.
func (s *Sketch) Value() float64 {
	if s.size == 0 {
		return 0
	}
	return s.TDigest.Quantile(s.q)
}

// Size returns the number of observations added.
func (s *Sketch) Size() uint {
	return s.size
}
