package moments

// Kurtosis is a running excess kurtosis.
//
// This type is not concurrency safe.
type Kurtosis struct {
	Moments CentralMoments
	Biased  bool
}

// NewKurtosis returns a running excess kurtosis. With biased false the
// estimate is corrected for statistical bias once more than three
// observations have been added; below that the biased estimate is
// returned, since the correction divides by (n-2)(n-3).
func NewKurtosis(biased bool) *Kurtosis {
	return &Kurtosis{Biased: biased}
}

func (k *Kurtosis) Add(x float64) {
	k.Moments.observe(x, 4)
}

func (k *Kurtosis) Value() float64 {
	n := k.Moments.N.Value()
	var kurt float64
	if k.Moments.M2 != 0 {
		kurt = n * k.Moments.M4 / (k.Moments.M2 * k.Moments.M2)
	}
	if !k.Biased && n > 3 {
		return ((n*n-1)*kurt - 3*(n-1)*(n-1)) / ((n - 2) * (n - 3))
	}
	return kurt - 3
}
