package moments

import "math"

// Skew is a running skewness.
//
// This type is not concurrency safe.
type Skew struct {
	Moments CentralMoments
	Biased  bool
}

// NewSkew returns a running skewness. With biased false the estimate is
// corrected for statistical bias once more than two observations have been
// added; below that the biased estimate is returned, since the correction
// factor is undefined there.
func NewSkew(biased bool) *Skew {
	return &Skew{Biased: biased}
}

func (s *Skew) Add(x float64) {
	s.Moments.observe(x, 3)
}

func (s *Skew) Value() float64 {
	n := s.Moments.N.Value()
	var skew float64
	if s.Moments.M2 != 0 {
		skew = math.Sqrt(n) * s.Moments.M3 / math.Pow(s.Moments.M2, 1.5)
	}
	if !s.Biased && n > 2 {
		return math.Sqrt(n*(n-1)) / (n - 2) * skew
	}
	return skew
}
