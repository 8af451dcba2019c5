package streamstat

// ArgMin tracks the index of the running minimum. Ties keep the earliest
// index.
//
// This type is not concurrency safe.
type ArgMin struct {
	Min Min
	N   Count
	Arg int
}

func NewArgMin() *ArgMin {
	return &ArgMin{Min: *NewMin()}
}

func (a *ArgMin) Add(x float64) {
	if x < a.Min.Value() {
		a.Arg = int(a.N.Value())
	}
	a.Min.Add(x)
	a.N.Add(x)
}

// Value returns the zero-based index of the minimum observation so far, as
// a float64 for interface compatibility.
func (a *ArgMin) Value() float64 {
	return float64(a.Arg)
}
