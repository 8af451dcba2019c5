package streamstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	c := NewCount()
	assert.Equal(t, 0.0, c.Value())

	for i := 1; i < 10; i++ {
		c.Add(float64(i))
	}
	assert.Equal(t, 9.0, c.Value())

	assert.NoError(t, c.Revert(42))
	assert.Equal(t, 8.0, c.Value())
}

func TestCountRevertUnderflow(t *testing.T) {
	c := NewCount()
	c.Add(1)
	assert.NoError(t, c.Revert(1))
	assert.ErrorIs(t, c.Revert(1), ErrRevertUnderflow)
	assert.Equal(t, 0.0, c.Value())
}
