package streamstat

import "errors"

// ErrInvalidQuantile is returned by constructors when a quantile fraction is
// outside the [0, 1] interval.
var ErrInvalidQuantile = errors.New("quantile must be between 0 and 1")

// ErrQuantileOrder is returned by interquartile range constructors when the
// inferior quantile is not strictly less than the superior quantile.
var ErrQuantileOrder = errors.New("inferior quantile must be less than superior quantile")

// ErrWindowSize is returned by rolling constructors when the window size is
// less than 1.
var ErrWindowSize = errors.New("window size must be at least 1")

// ErrRevertUnderflow is returned by Revert when it would take the number of
// observations below zero.
var ErrRevertUnderflow = errors.New("cannot revert below zero observations")
