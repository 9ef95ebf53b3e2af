// Package ulp measures the distance between floating-point values in
// units in the last place.
//
// Distances are taken over the ordered-integer mapping of the IEEE 754
// encodings, in which adjacent representable values differ by one and
// +0 and -0 coincide. Two NaNs are at distance 0; a NaN and a number are
// at the maximum distance.
package ulp

import (
	"math"

	"github.com/ajroetker/go-l2math/fp"
)

// Max is the distance reported between a NaN and a non-NaN.
const Max = math.MaxUint64

func ordered64(x float64) int64 {
	u := fp.ToBits64(x)
	if u&fp.F64SignMask != 0 {
		return -int64(u &^ fp.F64SignMask)
	}
	return int64(u)
}

func ordered32(x float32) int64 {
	u := fp.ToBits32(x)
	if u&fp.F32SignMask != 0 {
		return -int64(u &^ fp.F32SignMask)
	}
	return int64(u)
}

func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// Dist64 returns the number of representable binary64 values between a
// and b.
func Dist64(a, b float64) uint64 {
	an, bn := a != a, b != b
	switch {
	case an && bn:
		return 0
	case an || bn:
		return Max
	}
	return absDiff(ordered64(a), ordered64(b))
}

// Dist32 is the binary32 form of Dist64.
func Dist32(a, b float32) uint64 {
	an, bn := a != a, b != b
	switch {
	case an && bn:
		return 0
	case an || bn:
		return Max
	}
	return absDiff(ordered32(a), ordered32(b))
}

// Stats accumulates ULP distances for one function over many inputs.
// The zero value is ready to use. Stats is not safe for concurrent use;
// merge per-worker accumulators with Merge.
type Stats struct {
	Count uint64
	Max   uint64
	// Worst is the (first) input that produced Max.
	Worst []float64
	// NaNMismatches counts inputs where exactly one side was NaN. They are
	// excluded from Max and Mean.
	NaNMismatches uint64

	sum float64
}

// Add records the distance d observed at args.
func (s *Stats) Add(d uint64, args ...float64) {
	s.Count++
	if d == Max {
		s.NaNMismatches++
		if s.Worst == nil {
			s.Worst = append([]float64(nil), args...)
		}
		return
	}
	s.sum += float64(d)
	if d > s.Max || s.Worst == nil {
		s.Max = d
		s.Worst = append(s.Worst[:0], args...)
	}
}

// Mean returns the average distance over the finite comparisons.
func (s *Stats) Mean() float64 {
	n := s.Count - s.NaNMismatches
	if n == 0 {
		return 0
	}
	return s.sum / float64(n)
}

// Merge folds o into s.
func (s *Stats) Merge(o *Stats) {
	if o.Count == 0 {
		return
	}
	if o.Max > s.Max || s.Worst == nil {
		s.Max = o.Max
		s.Worst = append([]float64(nil), o.Worst...)
	}
	s.Count += o.Count
	s.NaNMismatches += o.NaNMismatches
	s.sum += o.sum
}
