package streamstat

import "math"

// Min is a running minimum. Value returns +Inf before the first
// observation.
//
// This type is not concurrency safe.
type Min struct {
	Min float64
}

func NewMin() *Min {
	return &Min{Min: math.Inf(1)}
}

func (m *Min) Add(x float64) {
	if x < m.Min {
		m.Min = x
	}
}

func (m *Min) Value() float64 {
	return m.Min
}

// Max is a running maximum. Value returns -Inf before the first
// observation.
//
// This type is not concurrency safe.
type Max struct {
	Max float64
}

func NewMax() *Max {
	return &Max{Max: math.Inf(-1)}
}

func (m *Max) Add(x float64) {
	if x > m.Max {
		m.Max = x
	}
}

func (m *Max) Value() float64 {
	return m.Max
}

// AbsMax is a running maximum of absolute values. Value returns 0 before
// the first observation.
//
// This type is not concurrency safe.
type AbsMax struct {
	Max float64
}

func NewAbsMax() *AbsMax {
	return &AbsMax{}
}

func (m *AbsMax) Add(x float64) {
	if a := math.Abs(x); a > m.Max {
		m.Max = a
	}
}

func (m *AbsMax) Value() float64 {
	return m.Max
}
