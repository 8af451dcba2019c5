// Package moments provides running higher-order statistics derived from a
// numerically stable central-moment accumulator.
package moments

import "github.com/streamstat-go/streamstat-go"

// CentralMoments maintains Welford-style power sums of deviations from the
// running mean, up to order 4. M2, M3 and M4 are the unnormalized central
// moment sums: at count n, M2 equals (n-1) times the sample variance.
//
// The fields are exported as data for snapshotting; mutate only through
// observe, which applies the updates in dependency order (count, delta,
// m1, sum of deltas, then m4, m3, m2 — each mk consumes the pre-update
// values of the lower-order sums).
type CentralMoments struct {
	Delta    float64
	SumDelta float64
	M1       float64
	M2       float64
	M3       float64
	M4       float64
	N        streamstat.Count
}

// observe incorporates one observation, updating moment sums up to the
// given order (3 for skewness, 4 for kurtosis).
func (c *CentralMoments) observe(x float64, order int) {
	c.N.Add(x)
	n := c.N.Value()
	c.Delta = (x - c.SumDelta) / n
	c.M1 = (x - c.SumDelta) * c.Delta * (n - 1)
	c.SumDelta += c.Delta
	if order >= 4 {
		d2 := c.Delta * c.Delta
		c.M4 += c.M1*d2*(n*n-3*n+3) + 6*d2*c.M2 - 4*c.Delta*c.M3
	}
	c.M3 += c.M1*c.Delta*(n-2) - 3*c.Delta*c.M2
	c.M2 += c.M1
}
