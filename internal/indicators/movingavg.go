package indicators

// SMA computes the arithmetic mean of the trailing period values.
func SMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	return mean(prices[len(prices)-period:]), true
}

// EMA computes the exponential moving average, seeded with the SMA of the
// first period values and rolled forward with multiplier 2/(period+1).
func EMA(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period {
		return 0, false
	}
	multiplier := 2 / float64(period+1)
	ema := mean(prices[:period])
	for _, p := range prices[period:] {
		ema = p*multiplier + ema*(1-multiplier)
	}
	return ema, true
}
