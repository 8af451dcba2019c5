// Package streamstat provides online statistics computed incrementally over
// a stream of observations, without retaining the full history. Global-mode
// accumulators live in this package and in package moments and quantile;
// windowed variants live in package rolling.
package streamstat

// Statistic is an online univariate statistic. Add incorporates one
// observation and Value returns the current estimate. Value is callable at
// any time, including before the first observation.
//
// Implementations are not concurrency safe: an instance must be owned by a
// single goroutine or guarded externally.
type Statistic interface {
	Add(x float64)
	Value() float64
}

// Bivariate is an online statistic over pairs of observations, such as
// Covariance.
type Bivariate interface {
	Add(x, y float64)
	Value() float64
}

// Revertable is a Statistic whose updates can be undone. Reverting a value
// previously passed to Add restores the accumulator, up to floating point
// rounding, to the state it had before that Add; the order of reverts does
// not need to match the order of adds. Revert returns ErrRevertUnderflow
// when more observations are reverted than were ever added.
//
// Revertable statistics can be converted into fixed-window statistics by
// the rolling package.
type Revertable interface {
	Statistic
	Revert(x float64) error
}
