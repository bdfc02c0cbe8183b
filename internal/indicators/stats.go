// Package indicators provides pure technical-indicator functions over
// price/volume sequences. Inputs are ordered oldest to newest; window math is
// index-driven. Functions that need a minimum history return an ok=false
// second value instead of a partial result.
package indicators

import "math"

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stdev is the sample standard deviation (n-1 denominator).
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - m
		sum2 += d * d
	}
	return math.Sqrt(sum2 / float64(len(xs)-1))
}
