package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// Bollinger computes Bollinger Bands over the trailing period: middle is the
// SMA, upper/lower are k sample standard deviations away.
func Bollinger(prices []float64, period int, k float64) (models.BollingerBands, bool) {
	if period <= 0 || len(prices) < period {
		return models.BollingerBands{}, false
	}
	window := prices[len(prices)-period:]
	middle := mean(window)
	band := k * stdev(window)
	return models.BollingerBands{
		Upper:  middle + band,
		Middle: middle,
		Lower:  middle - band,
	}, true
}
