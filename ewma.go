package streamstat

// EWMean is an exponentially weighted mean. The closer alpha is to 1, the
// more the statistic adapts to recent values. The first observation seeds
// the mean directly; a mean of exactly zero is treated as the initial
// state, which keeps the struct a flat snapshotable record.
//
// This type is not concurrency safe.
type EWMean struct {
	Mean  float64
	Alpha float64
}

func NewEWMean(alpha float64) *EWMean {
	return &EWMean{Alpha: alpha}
}

func (e *EWMean) Add(x float64) {
	if e.Mean == 0 {
		e.Mean = x
		return
	}
	e.Mean = e.Alpha*x + (1-e.Alpha)*e.Mean
}

func (e *EWMean) Value() float64 {
	return e.Mean
}

// EWVariance is an exponentially weighted variance, computed as
// E[x^2] - E[x]^2 over two exponentially weighted means.
//
// This type is not concurrency safe.
type EWVariance struct {
	Mean   EWMean
	SqMean EWMean
	Alpha  float64
}

func NewEWVariance(alpha float64) *EWVariance {
	return &EWVariance{
		Mean:   EWMean{Alpha: alpha},
		SqMean: EWMean{Alpha: alpha},
		Alpha:  alpha,
	}
}

func (e *EWVariance) Add(x float64) {
	e.Mean.Add(x)
	e.SqMean.Add(x * x)
}

func (e *EWVariance) Value() float64 {
	m := e.Mean.Value()
	return e.SqMean.Value() - m*m
}

// FEWMean is a fading exponentially weighted mean. Unlike EWMean, which
// converges towards a finite-window mean asymptotically, FEWMean tracks a
// decaying weight sum so its first updates equal the exact mean of the
// observations seen so far. Smaller fading factors give more weight to past
// data; a fading factor of 0 reproduces the arithmetic mean exactly.
//
// This type is not concurrency safe.
type FEWMean struct {
	Mean         float64
	FadingFactor float64
	WeightSum    float64
}

func NewFEWMean(fadingFactor float64) *FEWMean {
	return &FEWMean{FadingFactor: fadingFactor}
}

func (f *FEWMean) Add(x float64) {
	if f.WeightSum == 0 {
		f.Mean = x
		f.WeightSum = 1
		return
	}
	weight := (1 - f.FadingFactor) * f.WeightSum
	f.Mean = (weight*f.Mean + x) / (weight + 1)
	f.WeightSum = weight + 1
}

func (f *FEWMean) Value() float64 {
	return f.Mean
}
