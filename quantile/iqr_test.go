package quantile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamstat-go/streamstat-go"
)

func TestIQR(t *testing.T) {
	iqr, err := NewIQR(0.25, 0.75)
	require.NoError(t, err)

	for i := 1; i <= 100; i++ {
		iqr.Add(float64(i))
	}
	assert.InDelta(t, 50.0, iqr.Value(), 1e-9)
}

func TestIQRValidation(t *testing.T) {
	tests := []struct {
		name       string
		qInf, qSup float64
		err        error
	}{
		{name: "inverted", qInf: 0.75, qSup: 0.25, err: streamstat.ErrQuantileOrder},
		{name: "equal", qInf: 0.5, qSup: 0.5, err: streamstat.ErrQuantileOrder},
		{name: "inf out of range", qInf: -0.1, qSup: 0.5, err: streamstat.ErrInvalidQuantile},
		{name: "sup out of range", qInf: 0.5, qSup: 1.5, err: streamstat.ErrInvalidQuantile},
		{name: "valid", qInf: 0.1, qSup: 0.9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			iqr, err := NewIQR(tc.qInf, tc.qSup)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, iqr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, iqr)
			}
		})
	}
}
