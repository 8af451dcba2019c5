package streamstat

// Variance is a running variance computed with Welford's algorithm. The
// divisor is n - ddof: a ddof of 1 yields the unbiased sample variance, 0
// the population variance. Value returns 0 until more than ddof
// observations have been added.
//
// This type is not concurrency safe.
type Variance struct {
	Mean  Mean
	DDOF  uint
	State float64
}

// NewVariance returns a running sample variance (ddof 1).
func NewVariance() *Variance {
	return &Variance{DDOF: 1}
}

// NewVarianceWithDDOF returns a running variance normalized by n - ddof.
func NewVarianceWithDDOF(ddof uint) *Variance {
	return &Variance{DDOF: ddof}
}

func (v *Variance) Add(x float64) {
	meanOld := v.Mean.Value()
	v.Mean.Add(x)
	v.State += (x - meanOld) * (x - v.Mean.Value())
}

func (v *Variance) Value() float64 {
	n := v.Mean.N.Value()
	if n > float64(v.DDOF) {
		return v.State / (n - float64(v.DDOF))
	}
	return 0
}

func (v *Variance) Revert(x float64) error {
	meanOld := v.Mean.Value()
	if err := v.Mean.Revert(x); err != nil {
		return err
	}
	v.State -= (x - meanOld) * (x - v.Mean.Value())
	return nil
}
