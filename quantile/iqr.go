package quantile

import "github.com/streamstat-go/streamstat-go"

// IQR is a running interquartile range, the distance between two tracked
// quantiles.
//
// This type is not concurrency safe.
type IQR struct {
	QInf Quantile
	QSup Quantile
}

// NewIQR returns a running interquartile range between qInf and qSup.
// Returns streamstat.ErrQuantileOrder when qInf >= qSup and
// streamstat.ErrInvalidQuantile when either fraction is outside [0, 1].
func NewIQR(qInf, qSup float64) (*IQR, error) {
	if qInf >= qSup {
		return nil, streamstat.ErrQuantileOrder
	}
	inf, err := New(qInf)
	if err != nil {
		return nil, err
	}
	sup, err := New(qSup)
	if err != nil {
		return nil, err
	}
	return &IQR{QInf: *inf, QSup: *sup}, nil
}

func (i *IQR) Add(x float64) {
	i.QInf.Add(x)
	i.QSup.Add(x)
}

func (i *IQR) Value() float64 {
	return i.QSup.Value() - i.QInf.Value()
}
