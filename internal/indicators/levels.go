package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// SupportResistance scans the trailing lookback candles: resistance is the
// highest high, support the lowest low. Needs at least 10 candles.
func SupportResistance(candles []models.Candle, lookback int) (models.Levels, bool) {
	if len(candles) < 10 {
		return models.Levels{}, false
	}
	recent := candles
	if len(candles) > lookback {
		recent = candles[len(candles)-lookback:]
	}

	support := recent[0].Low
	resistance := recent[0].High
	for _, c := range recent[1:] {
		if c.Low < support {
			support = c.Low
		}
		if c.High > resistance {
			resistance = c.High
		}
	}
	return models.Levels{Support: support, Resistance: resistance}, true
}
