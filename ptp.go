package streamstat

// PeakToPeak is the running spread max - min. Value returns 0 before the
// first observation.
//
// This type is not concurrency safe.
type PeakToPeak struct {
	Min Min
	Max Max
}

func NewPeakToPeak() *PeakToPeak {
	p := &PeakToPeak{Min: *NewMin(), Max: *NewMax()}
	return p
}

func (p *PeakToPeak) Add(x float64) {
	p.Min.Add(x)
	p.Max.Add(x)
}

func (p *PeakToPeak) Value() float64 {
	if p.Min.Value() > p.Max.Value() {
		return 0
	}
	return p.Max.Value() - p.Min.Value()
}
