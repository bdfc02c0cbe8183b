package indicators

import (
	"testing"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

func TestDetectTrend(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		sma20    float64
		sma50    float64
		sma200   float64
		has200   bool
		trend    string
		strength string
	}{
		{"strong bull", 110, 105, 100, 95, true, models.TrendBullish, models.StrengthStrong},
		{"strong bear", 90, 95, 100, 105, true, models.TrendBearish, models.StrengthStrong},
		{"strong bull no sma200", 110, 105, 100, 0, false, models.TrendBullish, models.StrengthStrong},
		{"moderate bull", 102, 105, 100, 0, false, models.TrendBullish, models.StrengthModerate},
		{"moderate bear", 96, 99, 97, 0, false, models.TrendBearish, models.StrengthModerate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectTrend(tc.price, tc.sma20, tc.sma50, tc.sma200, tc.has200)
			if got.Trend != tc.trend || got.Strength != tc.strength {
				t.Fatalf("got %+v, want %s/%s", got, tc.trend, tc.strength)
			}
		})
	}
}

func TestBollingerBands(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100
	}
	bb, ok := Bollinger(prices, 20, 2)
	if !ok {
		t.Fatalf("expected ok")
	}
	if bb.Upper != 100 || bb.Middle != 100 || bb.Lower != 100 {
		t.Fatalf("constant series should collapse the bands, got %+v", bb)
	}
}

func TestSupportResistance(t *testing.T) {
	closes := make([]float64, 60)
	vols := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
		vols[i] = 10
	}
	cs := candleSeq(closes, vols)
	cs[55].High = 150
	cs[12].Low = 50 // outside the 50-candle lookback

	levels, ok := SupportResistance(cs, 50)
	if !ok {
		t.Fatalf("expected ok")
	}
	if levels.Resistance != 150 {
		t.Fatalf("expected resistance 150, got %v", levels.Resistance)
	}
	if levels.Support == 50 {
		t.Fatalf("support must come from the lookback window only")
	}
}

func TestPerformanceMetricsWindows(t *testing.T) {
	closes := make([]float64, 30)
	vols := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
		vols[i] = 10
	}
	perf := PerformanceMetrics(candleSeq(closes, vols))
	if !perf.HasWeek || !perf.HasMonth {
		t.Fatalf("week and month returns should be available at 30 candles")
	}
	if perf.HasQuarter || perf.HasYear || perf.HasRange52 {
		t.Fatalf("longer windows must stay unavailable at 30 candles")
	}
	if perf.WeekReturn <= 0 {
		t.Fatalf("rising series must have positive week return, got %v", perf.WeekReturn)
	}
}
