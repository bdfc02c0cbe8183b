package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// AnalyzeVolume summarizes volume behavior: trailing average and ratio,
// short-term trend, On-Balance Volume over the whole sequence, and the
// price-volume correlation over the trailing 10 candles. Sequences shorter
// than period get neutral defaults rather than an error.
func AnalyzeVolume(candles []models.Candle, period int) models.VolumeAnalysis {
	if len(candles) == 0 || len(candles) < period {
		return models.VolumeAnalysis{
			VolumeRatio: 1.0,
			Trend:       models.VolumeStable,
			Correlation: models.CorrNeutral,
		}
	}

	volumes := models.Volumes(candles)
	current := volumes[len(volumes)-1]
	avg := mean(volumes[len(volumes)-period:])

	ratio := 1.0
	if avg > 0 {
		ratio = current / avg
	}

	trend := models.VolumeStable
	if len(volumes) >= 10 {
		recentAvg := mean(volumes[len(volumes)-5:])
		olderAvg := avg
		if len(volumes) >= 15 {
			olderAvg = mean(volumes[len(volumes)-15 : len(volumes)-5])
		}
		switch {
		case recentAvg > olderAvg*1.2:
			trend = models.VolumeIncreasing
		case recentAvg < olderAvg*0.8:
			trend = models.VolumeDecreasing
		}
	}

	obv := 0.0
	for i := 1; i < len(candles); i++ {
		switch {
		case candles[i].Close > candles[i-1].Close:
			obv += candles[i].Volume
		case candles[i].Close < candles[i-1].Close:
			obv -= candles[i].Volume
		}
	}

	corrWindow := candles
	if len(candles) >= 10 {
		corrWindow = candles[len(candles)-10:]
	}

	return models.VolumeAnalysis{
		AvgVolume:     avg,
		CurrentVolume: current,
		VolumeRatio:   ratio,
		Trend:         trend,
		OBV:           obv,
		Correlation:   priceVolumeCorrelation(corrWindow),
	}
}

// priceVolumeCorrelation counts candles where the volume side (above or below
// the window average) agrees with the price direction. Agreement beating
// disagreement by more than 1.5x is CONFIRMATORY; the reverse is DIVERGENT.
func priceVolumeCorrelation(candles []models.Candle) string {
	if len(candles) < 3 {
		return models.CorrNeutral
	}

	avgVol := mean(models.Volumes(candles))
	confirming := 0
	diverging := 0
	for i := 1; i < len(candles); i++ {
		priceUp := candles[i].Close > candles[i-1].Close
		highVolume := candles[i].Volume > avgVol
		if priceUp == highVolume {
			confirming++
		} else {
			diverging++
		}
	}

	switch {
	case float64(confirming) > float64(diverging)*1.5:
		return models.CorrConfirmatory
	case float64(diverging) > float64(confirming)*1.5:
		return models.CorrDivergent
	default:
		return models.CorrNeutral
	}
}

// VolumeSignalAdjustment converts volume analysis into a signal-score
// adjustment in [-2, +2]. Sub-terms are additive and the total is clamped:
// a breakout ratio above 2.0 contributes +2, above 1.5 contributes +1 and a
// thin tape below 0.7 subtracts 1; confirmation aligned with the trend adds
// or subtracts 1; divergence subtracts 1; OBV agreeing with the trend adds
// or subtracts 1.
func VolumeSignalAdjustment(v models.VolumeAnalysis, trend string) int {
	adjustment := 0

	switch {
	case v.VolumeRatio > 2.0:
		adjustment += 2
	case v.VolumeRatio > 1.5:
		adjustment++
	case v.VolumeRatio < 0.7:
		adjustment--
	}

	switch v.Correlation {
	case models.CorrConfirmatory:
		if trend == models.TrendBullish {
			adjustment++
		} else if trend == models.TrendBearish {
			adjustment--
		}
	case models.CorrDivergent:
		adjustment--
	}

	if v.OBV > 0 && trend == models.TrendBullish {
		adjustment++
	} else if v.OBV < 0 && trend == models.TrendBearish {
		adjustment--
	}

	if adjustment > 2 {
		adjustment = 2
	}
	if adjustment < -2 {
		adjustment = -2
	}
	return adjustment
}
