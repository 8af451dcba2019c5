package rolling

import "github.com/streamstat-go/streamstat-go"

// ArgMin tracks how many observations ago the window minimum arrived: 0
// means the newest observation is the minimum, size-1 the oldest. The
// cached position avoids a full window scan per update; a scan of the
// arrival-order sequence only happens when the cached minimum falls off
// the trailing edge.
//
// This type is not concurrency safe.
type ArgMin struct {
	window *SortedWindow
	argmin int
}

func NewArgMin(size int) (*ArgMin, error) {
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &ArgMin{window: NewSortedWindow(size)}, nil
}

func (a *ArgMin) Add(x float64) {
	if a.window.Len() == 0 {
		a.argmin = 0
		a.window.Push(x)
		return
	}
	minimum := a.window.Front()
	a.window.Push(x)
	if x > minimum {
		if a.argmin < a.window.Len()-1 {
			// Previous minimum survives, one observation older now.
			a.argmin++
		} else {
			// Cached minimum was evicted; rescan from the newest end.
			for i := a.window.Len() - 1; i >= 0; i-- {
				if a.window.values[i] == x {
					a.argmin = a.window.Len() - 1 - i
					break
				}
			}
		}
	} else {
		a.argmin = 0
	}
}

// Value returns the age of the window minimum, as a float64 for interface
// compatibility.
func (a *ArgMin) Value() float64 {
	return float64(a.argmin)
}
