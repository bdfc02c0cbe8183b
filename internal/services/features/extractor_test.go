package features

import (
	"testing"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

func seq(closes []float64) []models.Candle {
	out := make([]models.Candle, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = models.Candle{
			Bucket: base.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.02,
			Low:    c * 0.98,
			Close:  c,
			Volume: 1000,
		}
	}
	return out
}

func rising(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 100 + float64(i)
	}
	return xs
}

func TestExtractBelowMinimum(t *testing.T) {
	e := NewExtractor()
	fv := e.Extract(seq(rising(19)))
	if len(fv) != 0 {
		t.Fatalf("expected empty vector below %d candles, got %d keys", MinCandles, len(fv))
	}
}

func TestExtractSchemaComplete(t *testing.T) {
	e := NewExtractor()
	names := e.FeatureNames()
	for _, n := range []int{20, 60, 260} {
		fv := e.Extract(seq(rising(n)))
		if len(fv) != len(names) {
			t.Fatalf("n=%d: expected %d features, got %d", n, len(names), len(fv))
		}
		for _, name := range names {
			if _, ok := fv[name]; !ok {
				t.Fatalf("n=%d: missing feature %q", n, name)
			}
		}
	}
}

func TestExtractDefaultsAtShortWindow(t *testing.T) {
	e := NewExtractor()
	fv := e.Extract(seq(rising(20)))
	// 20 candles cannot cover the 50 and 200 day averages; those fall back
	// to the current price so the relative offsets are zero.
	if fv["price_vs_sma50"] != 0 || fv["price_vs_sma200"] != 0 {
		t.Fatalf("uncovered averages must yield zero offsets, got %v / %v",
			fv["price_vs_sma50"], fv["price_vs_sma200"])
	}
	// MACD needs 26 prices and must zero out cleanly below that.
	if fv["macd_line"] != 0 || fv["macd_signal"] != 0 || fv["macd_histogram"] != 0 || fv["macd_positive"] != 0 {
		t.Fatalf("MACD features must default to zero at 20 candles")
	}
}

func TestExtractRisingSeries(t *testing.T) {
	e := NewExtractor()
	fv := e.Extract(seq(rising(260)))

	if fv["rsi_14"] != 100 {
		t.Fatalf("strictly rising series should have RSI 100, got %v", fv["rsi_14"])
	}
	if fv["sma20_above_sma50"] != 1 || fv["sma50_above_sma200"] != 1 {
		t.Fatalf("rising series must stack the moving averages bullishly")
	}
	if fv["trend_bullish"] != 1 || fv["trend_strong"] != 1 {
		t.Fatalf("rising series must register a strong bullish trend")
	}
	if fv["higher_highs"] != 1 || fv["lower_lows"] != 0 {
		t.Fatalf("rising series must show higher highs only, got hh=%v ll=%v",
			fv["higher_highs"], fv["lower_lows"])
	}
	if fv["price_change_5d"] <= 0 || fv["price_change_20d"] <= 0 {
		t.Fatalf("rising series must have positive trailing returns")
	}
	// the 1-candle return spans a real interval: it must move with the
	// series, never sit at an identically-zero default
	if fv["price_change_1d"] <= 0 {
		t.Fatalf("rising series must have a positive one-candle return, got %v", fv["price_change_1d"])
	}
}

func TestExtractBinaryFeatures(t *testing.T) {
	e := NewExtractor()
	binary := []string{
		"macd_positive", "sma20_above_sma50", "sma50_above_sma200",
		"bb_squeeze", "volume_trend_inc", "volume_trend_dec",
		"volume_confirmatory", "volume_divergent",
		"trend_bullish", "trend_bearish", "trend_strong",
		"higher_highs", "lower_lows",
	}
	fv := e.Extract(seq(rising(100)))
	for _, name := range binary {
		v := fv[name]
		if v != 0 && v != 1 {
			t.Fatalf("feature %q must be 0 or 1, got %v", name, v)
		}
	}
}

func TestExtractBollingerPosition(t *testing.T) {
	e := NewExtractor()
	closes := rising(40)
	fv := e.Extract(seq(closes))
	// the latest close of a rising series sits in the upper half of the bands
	if fv["bb_position"] <= 50 {
		t.Fatalf("rising series should close in the upper band, position %v", fv["bb_position"])
	}
	if fv["bb_width"] <= 0 {
		t.Fatalf("non-constant series must have positive band width, got %v", fv["bb_width"])
	}
}
