package streamstat

// Count counts observations. The observation value passed to Add is ignored.
//
// This type is not concurrency safe.
type Count struct {
	N float64
}

func NewCount() *Count {
	return &Count{}
}

func (c *Count) Add(_ float64) {
	c.N++
}

func (c *Count) Value() float64 {
	return c.N
}

func (c *Count) Revert(_ float64) error {
	if c.N == 0 {
		return ErrRevertUnderflow
	}
	c.N--
	return nil
}
