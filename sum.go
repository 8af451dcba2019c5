package streamstat

// Sum is a running sum.
//
// This type is not concurrency safe.
type Sum struct {
	Total float64
}

func NewSum() *Sum {
	return &Sum{}
}

func (s *Sum) Add(x float64) {
	s.Total += x
}

func (s *Sum) Value() float64 {
	return s.Total
}

func (s *Sum) Revert(x float64) error {
	s.Total -= x
	return nil
}
