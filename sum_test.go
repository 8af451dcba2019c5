package streamstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	s := NewSum()
	assert.Equal(t, 0.0, s.Value())

	for i := 1; i < 10; i++ {
		s.Add(float64(i))
	}
	assert.Equal(t, 45.0, s.Value())

	for i := 9; i >= 1; i-- {
		assert.NoError(t, s.Revert(float64(i)))
	}
	assert.Equal(t, 0.0, s.Value())
}
