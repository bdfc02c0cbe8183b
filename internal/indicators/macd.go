package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// macdSignalRatio approximates a 9-period EMA of the MACD line without
// tracking the full MACD history. Kept as a fixed ratio so outputs stay
// comparable across runs; a true rolling EMA would shift every downstream
// score and label.
const macdSignalRatio = 0.8

// MACD computes the 12/26 EMA spread, an approximated signal line and the
// histogram. Needs at least 26 prices.
func MACD(prices []float64) (models.MACDResult, bool) {
	if len(prices) < 26 {
		return models.MACDResult{}, false
	}

	ema12, ok12 := EMA(prices, 12)
	ema26, ok26 := EMA(prices, 26)
	if !ok12 || !ok26 {
		return models.MACDResult{}, false
	}

	line := ema12 - ema26
	signal := line * macdSignalRatio
	return models.MACDResult{
		Line:      line,
		Signal:    signal,
		Histogram: line - signal,
	}, true
}
