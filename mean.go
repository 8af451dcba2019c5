package streamstat

// Mean is a running arithmetic mean, updated with West's incremental
// formula. It supports reverting previously added observations, which makes
// it usable inside a rolling window.
//
// This type is not concurrency safe.
type Mean struct {
	Mean float64
	N    Count
}

func NewMean() *Mean {
	return &Mean{}
}

func (m *Mean) Add(x float64) {
	m.N.Add(x)
	m.Mean += (x - m.Mean) / m.N.Value()
}

func (m *Mean) Value() float64 {
	return m.Mean
}

// Revert removes a previously added observation. The mean update is
// commutative, so values may be reverted in any order.
func (m *Mean) Revert(x float64) error {
	if err := m.N.Revert(x); err != nil {
		return err
	}
	n := m.N.Value()
	if n == 0 {
		m.Mean = 0
		return nil
	}
	m.Mean -= (x - m.Mean) / n
	return nil
}
