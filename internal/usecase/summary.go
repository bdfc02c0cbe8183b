package usecase

import (
	"fmt"
	"strings"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// buildSummary renders the templated human-readable summary keyed by
// (signal, trend), modulated by RSI extremity and volume behavior.
func buildSummary(signal string, trend models.TrendInfo, snap models.IndicatorSnapshot, volume models.VolumeAnalysis) string {
	rsiText := ""
	if snap.HasRSI {
		if snap.RSI > 70 {
			rsiText = ", but showing overbought conditions"
		} else if snap.RSI < 30 {
			rsiText = ", showing oversold conditions"
		}
	}

	volumeText := ""
	switch {
	case volume.VolumeRatio > 1.5:
		volumeText = " High volume confirms the move."
	case volume.VolumeRatio < 0.7:
		volumeText = " Low volume suggests caution."
	case volume.Correlation == models.CorrDivergent:
		volumeText = " Volume not confirming price action."
	}

	strength := strings.ToLower(trend.Strength)

	switch signal {
	case models.SignalBuy:
		switch trend.Trend {
		case models.TrendBullish:
			return fmt.Sprintf("Strong buy signal detected. Stock is in a %s bullish trend%s.%s Good entry opportunity.", strength, rsiText, volumeText)
		case models.TrendBearish:
			return fmt.Sprintf("Buy signal detected despite bearish trend. Potential reversal forming%s.%s Exercise caution.", rsiText, volumeText)
		default:
			return fmt.Sprintf("Buy signal detected. Stock showing bullish momentum%s.%s Monitor for trend confirmation.", rsiText, volumeText)
		}
	case models.SignalSell:
		switch trend.Trend {
		case models.TrendBullish:
			return fmt.Sprintf("Sell signal detected despite bullish trend. Consider profit booking%s.%s Watch for reversal signs.", rsiText, volumeText)
		case models.TrendBearish:
			return fmt.Sprintf("Strong sell signal. Stock in %s bearish trend%s.%s Exit recommended.", strength, rsiText, volumeText)
		default:
			return fmt.Sprintf("Sell signal detected. Bearish momentum developing%s.%s Consider reducing positions.", rsiText, volumeText)
		}
	case models.SignalHold:
		switch trend.Trend {
		case models.TrendBullish:
			return fmt.Sprintf("Hold recommended. Stock in %s bullish trend%s.%s Wait for better entry.", strength, rsiText, volumeText)
		case models.TrendBearish:
			return fmt.Sprintf("Hold position. Stock in %s bearish trend%s.%s Avoid fresh buying.", strength, rsiText, volumeText)
		default:
			return fmt.Sprintf("Neutral stance. No clear trend%s.%s Wait for clearer signals before action.", rsiText, volumeText)
		}
	}
	return "Insufficient data for summary."
}
