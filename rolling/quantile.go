package rolling

import (
	"math"

	"github.com/streamstat-go/streamstat-go"
)

// interp is a precomputed interpolated-rank lookup into a sorted window:
// the fractional rank q*(size-1), split into the bracketing indexes and the
// fractional remainder at construction so steady-state reads do no float
// work beyond one multiply-add.
type interp struct {
	q      float64
	lower  int
	higher int
	frac   float64
}

func newInterp(q float64, size int) interp {
	idx := q * float64(size-1)
	lower := int(math.Floor(idx))
	higher := lower + 1
	if higher > size-1 {
		higher = size - 1
	}
	return interp{q: q, lower: lower, higher: higher, frac: idx - float64(lower)}
}

// value reads the interpolated quantile from w. While the window is still
// filling, the bracketing indexes are recomputed against the current
// length; that path runs at most size times per instance.
func (ip interp) value(w *SortedWindow, size int) float64 {
	if w.Len() == 0 {
		return 0
	}
	lower, higher, frac := ip.lower, ip.higher, ip.frac
	if w.Len() < size {
		p := newInterp(ip.q, w.Len())
		lower, higher, frac = p.lower, p.higher, p.frac
	}
	return w.At(lower) + (w.At(higher)-w.At(lower))*frac
}

// Quantile is an exact interpolated quantile over a rolling window.
//
// This type is not concurrency safe.
type Quantile struct {
	window *SortedWindow
	size   int
	interp interp
}

// NewQuantile returns the interpolated q-quantile over a rolling window of
// the given size. Returns streamstat.ErrInvalidQuantile when q is outside
// [0, 1] and streamstat.ErrWindowSize when size < 1.
func NewQuantile(q float64, size int) (*Quantile, error) {
	if q < 0 || q > 1 {
		return nil, streamstat.ErrInvalidQuantile
	}
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &Quantile{
		window: NewSortedWindow(size),
		size:   size,
		interp: newInterp(q, size),
	}, nil
}

func (q *Quantile) Add(x float64) {
	q.window.Push(x)
}

func (q *Quantile) Value() float64 {
	return q.interp.value(q.window, q.size)
}

// IQR is the interquartile range over a rolling window. Both quantiles
// read from a single shared sorted window.
//
// This type is not concurrency safe.
type IQR struct {
	window *SortedWindow
	size   int
	inf    interp
	sup    interp
}

// NewIQR returns the rolling interquartile range between qInf and qSup
// over a window of the given size. Returns streamstat.ErrQuantileOrder
// when qInf >= qSup, streamstat.ErrInvalidQuantile when either fraction is
// outside [0, 1], and streamstat.ErrWindowSize when size < 1.
func NewIQR(qInf, qSup float64, size int) (*IQR, error) {
	if qInf >= qSup {
		return nil, streamstat.ErrQuantileOrder
	}
	if qInf < 0 || qInf > 1 || qSup < 0 || qSup > 1 {
		return nil, streamstat.ErrInvalidQuantile
	}
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &IQR{
		window: NewSortedWindow(size),
		size:   size,
		inf:    newInterp(qInf, size),
		sup:    newInterp(qSup, size),
	}, nil
}

func (i *IQR) Add(x float64) {
	i.window.Push(x)
}

func (i *IQR) Value() float64 {
	return i.sup.value(i.window, i.size) - i.inf.value(i.window, i.size)
}
