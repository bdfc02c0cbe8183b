package indicators

// RSI computes the Relative Strength Index over the trailing period using the
// plain average of up-moves and down-moves. Needs at least period+1 prices.
// Returns 100 when the window has no losses.
func RSI(prices []float64, period int) (float64, bool) {
	if period <= 0 || len(prices) < period+1 {
		return 0, false
	}

	gainSum := 0.0
	lossSum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		d := prices[i] - prices[i-1]
		if d > 0 {
			gainSum += d
		} else {
			lossSum += -d
		}
	}

	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)
	if avgLoss == 0 {
		return 100, true
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs)), true
}
