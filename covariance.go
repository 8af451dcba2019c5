package streamstat

import "math"

// Covariance is a running covariance over a stream of (x, y) pairs,
// normalized by max(1, n - ddof).
//
// This type is not concurrency safe.
type Covariance struct {
	DDOF  uint
	MeanX Mean
	MeanY Mean
	C     float64
	Cov   float64
}

// NewCovariance returns a running sample covariance (ddof 1).
func NewCovariance() *Covariance {
	return &Covariance{DDOF: 1}
}

// NewCovarianceWithDDOF returns a running covariance normalized by
// max(1, n - ddof).
func NewCovarianceWithDDOF(ddof uint) *Covariance {
	return &Covariance{DDOF: ddof}
}

func (c *Covariance) Add(x, y float64) {
	dx := x - c.MeanX.Value()
	c.MeanX.Add(x)
	c.MeanY.Add(y)
	c.C += dx * (y - c.MeanY.Value())
	c.Cov = c.C / math.Max(1, c.MeanX.N.Value()-float64(c.DDOF))
}

func (c *Covariance) Value() float64 {
	return c.Cov
}
