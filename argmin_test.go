package streamstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgMin(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "increasing keeps first", values: []float64{0, 1, 2, 3}, expected: 0},
		{name: "minimum in the middle", values: []float64{3, 1, 2}, expected: 1},
		{name: "new minimum at the end", values: []float64{3, 1, 2, -5}, expected: 3},
		{name: "ties keep the earliest", values: []float64{2, 1, 1, 1}, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewArgMin()
			for _, x := range tc.values {
				a.Add(x)
			}
			assert.Equal(t, tc.expected, a.Value())
		})
	}
}
