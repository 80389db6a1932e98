// Package summary provides a streaming accumulator for min/max/mean/stddev
// summaries of small samples, such as per-fragment completion times.
package summary

import "math"

// Stats accumulates samples. The zero value is ready to use; it is not safe
// for concurrent use.
type Stats struct {
	n     int64
	min   float64
	max   float64
	sum   float64
	sumSq float64
}

func (s *Stats) Add(v float64) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if s.n == 0 || v > s.max {
		s.max = v
	}
	s.n++
	s.sum += v
	s.sumSq += v * v
}

func (s *Stats) N() int64 {
	return s.n
}

func (s *Stats) Min() float64 {
	return s.min
}

func (s *Stats) Max() float64 {
	return s.max
}

func (s *Stats) Mean() float64 {
	if s.n == 0 {
		return 0
	}
	return s.sum / float64(s.n)
}

// StdDev returns the population standard deviation.
func (s *Stats) StdDev() float64 {
	if s.n == 0 {
		return 0
	}
	mean := s.Mean()
	variance := s.sumSq/float64(s.n) - mean*mean
	if variance < 0 {
		// guard against rounding pushing the variance slightly negative
		variance = 0
	}
	return math.Sqrt(variance)
}
