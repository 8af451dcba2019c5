package rolling

import "github.com/streamstat-go/streamstat-go"

// Min is the minimum over a rolling window.
//
// This type is not concurrency safe.
type Min struct {
	window *SortedWindow
}

func NewMin(size int) (*Min, error) {
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &Min{window: NewSortedWindow(size)}, nil
}

func (m *Min) Add(x float64) {
	m.window.Push(x)
}

// Value returns the smallest value in the window, or 0 while the window is
// empty.
func (m *Min) Value() float64 {
	if m.window.Len() == 0 {
		return 0
	}
	return m.window.Front()
}

// Max is the maximum over a rolling window.
//
// This type is not concurrency safe.
type Max struct {
	window *SortedWindow
}

func NewMax(size int) (*Max, error) {
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &Max{window: NewSortedWindow(size)}, nil
}

func (m *Max) Add(x float64) {
	m.window.Push(x)
}

// Value returns the largest value in the window, or 0 while the window is
// empty.
func (m *Max) Value() float64 {
	if m.window.Len() == 0 {
		return 0
	}
	return m.window.Back()
}

// PeakToPeak is the spread max - min over a rolling window.
//
// This type is not concurrency safe.
type PeakToPeak struct {
	window *SortedWindow
}

func NewPeakToPeak(size int) (*PeakToPeak, error) {
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &PeakToPeak{window: NewSortedWindow(size)}, nil
}

func (p *PeakToPeak) Add(x float64) {
	p.window.Push(x)
}

func (p *PeakToPeak) Value() float64 {
	if p.window.Len() == 0 {
		return 0
	}
	return p.window.Back() - p.window.Front()
}
