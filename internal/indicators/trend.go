package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// DetectTrend scores the price against its moving averages and the averages
// against each other, each comparison contributing +/-1. The sma200 terms are
// skipped when hasSMA200 is false.
//
// Score >= 3 is a strong trend, >= 1 moderate, symmetric on the downside.
func DetectTrend(price, sma20, sma50, sma200 float64, hasSMA200 bool) models.TrendInfo {
	score := 0

	if price > sma20 {
		score++
	} else {
		score--
	}
	if price > sma50 {
		score++
	} else {
		score--
	}
	if hasSMA200 {
		if price > sma200 {
			score++
		} else {
			score--
		}
	}
	if sma20 > sma50 {
		score++
	} else {
		score--
	}
	if hasSMA200 {
		if sma50 > sma200 {
			score++
		} else {
			score--
		}
	}

	switch {
	case score >= 3:
		return models.TrendInfo{Trend: models.TrendBullish, Strength: models.StrengthStrong}
	case score >= 1:
		return models.TrendInfo{Trend: models.TrendBullish, Strength: models.StrengthModerate}
	case score <= -3:
		return models.TrendInfo{Trend: models.TrendBearish, Strength: models.StrengthStrong}
	case score <= -1:
		return models.TrendInfo{Trend: models.TrendBearish, Strength: models.StrengthModerate}
	default:
		return models.TrendInfo{Trend: models.TrendNeutral, Strength: models.StrengthWeak}
	}
}
