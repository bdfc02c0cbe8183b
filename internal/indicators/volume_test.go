package indicators

import (
	"testing"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

func candleSeq(closes, volumes []float64) []models.Candle {
	out := make([]models.Candle, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range closes {
		out[i] = models.Candle{
			Bucket: base.AddDate(0, 0, i),
			Open:   closes[i],
			High:   closes[i] * 1.01,
			Low:    closes[i] * 0.99,
			Close:  closes[i],
			Volume: volumes[i],
		}
	}
	return out
}

func TestAnalyzeVolumeShortSequenceDefaults(t *testing.T) {
	cs := candleSeq([]float64{1, 2, 3}, []float64{10, 10, 10})
	v := AnalyzeVolume(cs, 20)
	if v.VolumeRatio != 1.0 || v.Trend != models.VolumeStable || v.Correlation != models.CorrNeutral {
		t.Fatalf("expected neutral defaults, got %+v", v)
	}
}

func TestAnalyzeVolumeOBV(t *testing.T) {
	closes := []float64{100, 101, 100, 102, 102}
	volumes := []float64{10, 20, 30, 40, 50}
	cs := candleSeq(closes, volumes)
	v := AnalyzeVolume(cs, 5)
	// +20 (up) -30 (down) +40 (up) +0 (flat)
	if v.OBV != 30 {
		t.Fatalf("expected OBV 30, got %v", v.OBV)
	}
}

func TestVolumeSignalAdjustmentClamp(t *testing.T) {
	// Every sub-term positive: 2 (breakout) + 1 (confirmatory bullish) + 1
	// (OBV with trend) = 4 before clamping.
	v := models.VolumeAnalysis{
		VolumeRatio: 2.5,
		Correlation: models.CorrConfirmatory,
		OBV:         1000,
	}
	if got := VolumeSignalAdjustment(v, models.TrendBullish); got != 2 {
		t.Fatalf("expected clamp to +2, got %d", got)
	}
}

func TestVolumeSignalAdjustmentBreakoutRatio(t *testing.T) {
	v := models.VolumeAnalysis{VolumeRatio: 2.1, Correlation: models.CorrNeutral}
	if got := VolumeSignalAdjustment(v, models.TrendNeutral); got != 2 {
		t.Fatalf("ratio above 2.0 alone must contribute exactly +2, got %d", got)
	}
}

func TestVolumeSignalAdjustmentBearish(t *testing.T) {
	v := models.VolumeAnalysis{
		VolumeRatio: 0.5,
		Correlation: models.CorrDivergent,
		OBV:         -10,
	}
	if got := VolumeSignalAdjustment(v, models.TrendBearish); got != -2 {
		t.Fatalf("expected clamp to -2, got %d", got)
	}
}

func TestVolumeSignalAdjustmentElevatedRatio(t *testing.T) {
	v := models.VolumeAnalysis{VolumeRatio: 1.6, Correlation: models.CorrNeutral}
	if got := VolumeSignalAdjustment(v, models.TrendNeutral); got != 1 {
		t.Fatalf("ratio above 1.5 must contribute +1, got %d", got)
	}
}
