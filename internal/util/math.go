package util

import "math"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundMean returns the arithmetic mean of vals rounded to the nearest
// integer. An empty input yields 0.
func RoundMean(vals ...int) int {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(vals))))
}
