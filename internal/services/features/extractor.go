// Package features builds the fixed-schema numeric feature vector consumed
// by the classifier. The schema is versioned implicitly by FeatureNames:
// every extraction yields exactly that set of keys with finite values.
package features

import (
	"math"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/indicators"
)

// MinCandles is the shortest candle sequence that yields a feature vector.
const MinCandles = 20

// featureNames is the authoritative schema, grouped by concern.
var featureNames = []string{
	// momentum
	"price_change_1d", "price_change_5d", "price_change_10d", "price_change_20d",
	// rsi
	"rsi_14", "rsi_7", "rsi_diff",
	// macd
	"macd_line", "macd_signal", "macd_histogram", "macd_positive",
	// moving averages
	"sma_20", "sma_50", "sma_200",
	"price_vs_sma20", "price_vs_sma50", "price_vs_sma200",
	"sma20_above_sma50", "sma50_above_sma200",
	// bollinger bands
	"bb_width", "bb_position", "bb_squeeze",
	// volume
	"volume_ratio", "volume_trend_inc", "volume_trend_dec",
	"volume_confirmatory", "volume_divergent",
	// volatility
	"volatility_20d", "hl_range",
	// trend
	"trend_bullish", "trend_bearish", "trend_strong",
	// patterns
	"higher_highs", "lower_lows",
}

// Extractor computes feature vectors from candle sequences.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

// FeatureNames returns the schema in its canonical order.
func (e *Extractor) FeatureNames() []string {
	out := make([]string, len(featureNames))
	copy(out, featureNames)
	return out
}

// Extract builds the feature vector for the sequence, oldest to newest.
// Returns an empty vector below MinCandles. Features whose window is not
// covered resolve to their documented neutral default; no key is ever
// missing or non-finite.
func (e *Extractor) Extract(candles []models.Candle) models.FeatureVector {
	if len(candles) < MinCandles {
		return models.FeatureVector{}
	}

	fv := make(models.FeatureVector, len(featureNames))

	closes := models.Closes(candles)
	highs := models.Highs(candles)
	lows := models.Lows(candles)
	current := closes[len(closes)-1]

	fv["price_change_1d"] = trailingReturn(closes, 1)
	fv["price_change_5d"] = trailingReturn(closes, 5)
	fv["price_change_10d"] = trailingReturn(closes, 10)
	fv["price_change_20d"] = trailingReturn(closes, 20)

	rsi14, ok14 := indicators.RSI(closes, 14)
	rsi7, ok7 := indicators.RSI(closes, 7)
	fv["rsi_14"] = defaultIf(rsi14, 50, ok14)
	fv["rsi_7"] = defaultIf(rsi7, 50, ok7)
	if ok14 && ok7 {
		fv["rsi_diff"] = rsi14 - rsi7
	} else {
		fv["rsi_diff"] = 0
	}

	if macd, ok := indicators.MACD(closes); ok {
		fv["macd_line"] = macd.Line
		fv["macd_signal"] = macd.Signal
		fv["macd_histogram"] = macd.Histogram
		fv["macd_positive"] = boolFeature(macd.Histogram > 0)
	} else {
		fv["macd_line"] = 0
		fv["macd_signal"] = 0
		fv["macd_histogram"] = 0
		fv["macd_positive"] = 0
	}

	sma20, ok20 := indicators.SMA(closes, 20)
	sma50, ok50 := indicators.SMA(closes, 50)
	sma200, ok200 := indicators.SMA(closes, 200)
	// missing averages default to the current price (zero offset)
	sma20 = defaultIf(sma20, current, ok20)
	sma50 = defaultIf(sma50, current, ok50)
	sma200 = defaultIf(sma200, current, ok200)
	fv["sma_20"] = sma20
	fv["sma_50"] = sma50
	fv["sma_200"] = sma200
	fv["price_vs_sma20"] = pctOffset(current, sma20)
	fv["price_vs_sma50"] = pctOffset(current, sma50)
	fv["price_vs_sma200"] = pctOffset(current, sma200)
	fv["sma20_above_sma50"] = boolFeature(sma20 > sma50)
	fv["sma50_above_sma200"] = boolFeature(sma50 > sma200)

	if bb, ok := indicators.Bollinger(closes, 20, 2); ok && bb.Upper != bb.Lower {
		width := (bb.Upper - bb.Lower) / bb.Middle * 100
		fv["bb_width"] = width
		fv["bb_position"] = (current - bb.Lower) / (bb.Upper - bb.Lower) * 100
		fv["bb_squeeze"] = boolFeature(width < 10)
	} else {
		fv["bb_width"] = 20
		fv["bb_position"] = 50
		fv["bb_squeeze"] = 0
	}

	vol := indicators.AnalyzeVolume(candles, 20)
	fv["volume_ratio"] = vol.VolumeRatio
	fv["volume_trend_inc"] = boolFeature(vol.Trend == models.VolumeIncreasing)
	fv["volume_trend_dec"] = boolFeature(vol.Trend == models.VolumeDecreasing)
	fv["volume_confirmatory"] = boolFeature(vol.Correlation == models.CorrConfirmatory)
	fv["volume_divergent"] = boolFeature(vol.Correlation == models.CorrDivergent)

	fv["volatility_20d"] = coefficientOfVariation(closes[len(closes)-20:])
	if current != 0 {
		fv["hl_range"] = (highs[len(highs)-1] - lows[len(lows)-1]) / current * 100
	} else {
		fv["hl_range"] = 0
	}

	trend := indicators.DetectTrend(current, sma20, sma50, sma200, ok200)
	fv["trend_bullish"] = boolFeature(trend.Trend == models.TrendBullish)
	fv["trend_bearish"] = boolFeature(trend.Trend == models.TrendBearish)
	fv["trend_strong"] = boolFeature(trend.Strength == models.StrengthStrong)

	fv["higher_highs"] = boolFeature(monotonicTail(lastN(highs, 10), true))
	fv["lower_lows"] = boolFeature(monotonicTail(lastN(lows, 10), false))

	return fv
}

// trailingReturn is the percentage change over exactly n intervals, so
// a 1-candle return compares the last two closes.
func trailingReturn(prices []float64, n int) float64 {
	if len(prices) <= n {
		return 0
	}
	old := prices[len(prices)-1-n]
	if old == 0 {
		return 0
	}
	return (prices[len(prices)-1] - old) / old * 100
}

// coefficientOfVariation is the stdev over the mean, as a percentage.
func coefficientOfVariation(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	m := sum / float64(len(xs))
	if m == 0 {
		return 0
	}
	sum2 := 0.0
	for _, x := range xs {
		d := x - m
		sum2 += d * d
	}
	variance := sum2 / float64(len(xs)-1)
	if variance <= 0 {
		return 0
	}
	return math.Sqrt(variance) / m * 100
}

// monotonicTail reports whether the last three values strictly rise
// (higherHighs) or strictly fall.
func monotonicTail(xs []float64, higherHighs bool) bool {
	if len(xs) < 3 {
		return false
	}
	a, b, c := xs[len(xs)-3], xs[len(xs)-2], xs[len(xs)-1]
	if higherHighs {
		return c > b && b > a
	}
	return c < b && b < a
}

func lastN(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}

func pctOffset(price, avg float64) float64 {
	if avg == 0 {
		return 0
	}
	return (price/avg - 1) * 100
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func defaultIf(v, def float64, ok bool) float64 {
	if ok {
		return v
	}
	return def
}
