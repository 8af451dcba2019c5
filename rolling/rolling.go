package rolling

import (
	"fmt"

	"github.com/streamstat-go/streamstat-go"
)

// Rolling converts any revertable statistic into a fixed-window statistic.
// It keeps the last size raw observations in a ring; once the ring is full,
// each Add first reverts the evicted observation from the wrapped statistic,
// so the statistic's value always reflects exactly the current window
// contents.
//
// A revert failure means the ring and the wrapped statistic have diverged,
// which the push protocol makes impossible from outside; Add panics on it
// rather than returning a corrupt statistic.
//
// This type is not concurrency safe.
type Rolling struct {
	stat  streamstat.Revertable
	ring  []float64
	head  int
	count int
}

// New wraps stat in a rolling window of the given size. Returns
// streamstat.ErrWindowSize when size < 1. The caller must not mutate stat
// directly afterwards.
func New(stat streamstat.Revertable, size int) (*Rolling, error) {
	if size < 1 {
		return nil, streamstat.ErrWindowSize
	}
	return &Rolling{stat: stat, ring: make([]float64, size)}, nil
}

func (r *Rolling) Add(x float64) {
	if r.count == len(r.ring) {
		oldest := r.ring[r.head]
		if err := r.stat.Revert(oldest); err != nil {
			panic(fmt.Sprintf("streamstat: revert of evicted value failed: %v", err))
		}
		r.ring[r.head] = x
		r.head = (r.head + 1) % len(r.ring)
	} else {
		r.ring[(r.head+r.count)%len(r.ring)] = x
		r.count++
	}
	r.stat.Add(x)
}

func (r *Rolling) Value() float64 {
	return r.stat.Value()
}
