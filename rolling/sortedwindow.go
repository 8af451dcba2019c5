// Package rolling provides statistics computed over a bounded trailing
// window of observations: order statistics backed by a sorted sliding
// window, and a generic adapter that turns any revertable statistic into a
// windowed one.
package rolling

import (
	"math"
	"slices"
)

// SortedWindow maintains the last size observations twice: once in arrival
// order and once in rank order, with duplicates preserved. Both sequences
// always hold the same values, so order-statistic queries are index lookups
// while eviction still follows arrival order. A push costs a binary search
// plus a linear shift bounded by the window size.
//
// NaN values must not be pushed; they have no rank and Push panics on them.
//
// This type is not concurrency safe.
type SortedWindow struct {
	sorted []float64
	values []float64
	size   int
}

func NewSortedWindow(size int) *SortedWindow {
	return &SortedWindow{
		sorted: make([]float64, 0, size),
		values: make([]float64, 0, size),
		size:   size,
	}
}

// Push appends x, evicting the oldest observation once the window is at
// capacity. The evicted value is located in the rank-order sequence by
// binary search; both sequences stay consistent without re-sorting.
func (w *SortedWindow) Push(x float64) {
	if math.IsNaN(x) {
		panic("streamstat: NaN pushed into sorted window")
	}
	if len(w.values) == w.size {
		oldest := w.values[0]
		i, ok := slices.BinarySearch(w.sorted, oldest)
		if !ok {
			// Unreachable while the push protocol holds: every arrival-order
			// value has a rank-order twin.
			panic("streamstat: evicted value missing from sorted window")
		}
		w.sorted = slices.Delete(w.sorted, i, i+1)
		copy(w.values, w.values[1:])
		w.values = w.values[:len(w.values)-1]
	}
	w.values = append(w.values, x)
	i, _ := slices.BinarySearch(w.sorted, x)
	w.sorted = slices.Insert(w.sorted, i, x)
}

func (w *SortedWindow) Len() int {
	return len(w.sorted)
}

// Front returns the smallest value in the window.
func (w *SortedWindow) Front() float64 {
	return w.sorted[0]
}

// Back returns the largest value in the window.
func (w *SortedWindow) Back() float64 {
	return w.sorted[len(w.sorted)-1]
}

// At returns the i-th smallest value in the window.
func (w *SortedWindow) At(i int) float64 {
	return w.sorted[i]
}
