package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	s := Stats{}
	assert.Equal(t, int64(0), s.N())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.StdDev())

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	assert.Equal(t, int64(8), s.N())
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.Equal(t, 5.0, s.Mean())
	assert.InDelta(t, 2.0, s.StdDev(), 1e-9)
}

func TestStatsSingleSample(t *testing.T) {
	s := Stats{}
	s.Add(3.5)
	assert.Equal(t, 3.5, s.Min())
	assert.Equal(t, 3.5, s.Max())
	assert.Equal(t, 3.5, s.Mean())
	assert.InDelta(t, 0.0, s.StdDev(), 1e-9)
}
