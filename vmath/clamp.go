package vmath

import "math"

// Median returns the median of {lo, v, hi}
// With lo <= hi this clamps v into [lo, hi]; the order of lo and hi does not matter
func Median(lo, v, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MedianInt is the integer form of Median
func MedianInt(lo, v, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Cell rounds a continuous coordinate to its grid cell, half away from zero
func Cell(v float64) int {
	return int(math.Round(v))
}

// Sign returns -1, 0 or 1
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
