// Package training generates labeled training sets for bootstrapping the
// classifier when no realized trade outcomes are available yet.
package training

import (
	"math/rand"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// Generator produces synthetic, class-balanced training sets. Feature
// values are drawn from realistic indicator ranges and labeled by the
// same rule-based scoring the traditional signal path uses, so the
// classifier learns a separable approximation of it.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator seeds the feature sampler. A fixed seed makes generated
// sets reproducible across runs.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate draws n candidate examples and balances the classes by
// truncating the larger one, so the result holds equal counts of label
// 0 and 1 and at most n examples. The balanced set is shuffled before
// returning.
func (g *Generator) Generate(n int) []models.TrainingExample {
	var buys, rest []models.TrainingExample
	for i := 0; i < n; i++ {
		fv := g.sampleFeatures()
		ex := models.TrainingExample{Features: fv, Label: labelFor(fv)}
		if ex.Label == 1 {
			buys = append(buys, ex)
		} else {
			rest = append(rest, ex)
		}
	}

	size := len(buys)
	if len(rest) < size {
		size = len(rest)
	}
	balanced := make([]models.TrainingExample, 0, 2*size)
	balanced = append(balanced, buys[:size]...)
	balanced = append(balanced, rest[:size]...)

	g.rng.Shuffle(len(balanced), func(i, j int) {
		balanced[i], balanced[j] = balanced[j], balanced[i]
	})
	return balanced
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) coin() float64 {
	if g.rng.Intn(2) == 1 {
		return 1
	}
	return 0
}

func (g *Generator) sampleFeatures() models.FeatureVector {
	fv := make(models.FeatureVector, 34)

	fv["price_change_1d"] = g.uniform(-5, 5)
	fv["price_change_5d"] = g.uniform(-8, 8)
	fv["price_change_10d"] = g.uniform(-12, 12)
	fv["price_change_20d"] = g.uniform(-15, 15)

	fv["rsi_14"] = g.uniform(20, 80)
	fv["rsi_7"] = g.uniform(20, 80)
	fv["rsi_diff"] = fv["rsi_14"] - fv["rsi_7"]

	fv["macd_line"] = g.uniform(-20, 20)
	fv["macd_signal"] = g.uniform(-20, 20)
	fv["macd_histogram"] = fv["macd_line"] - fv["macd_signal"]
	if fv["macd_histogram"] > 0 {
		fv["macd_positive"] = 1
	} else {
		fv["macd_positive"] = 0
	}

	// simulated price level with averages perturbed around it
	price := g.uniform(1000, 3000)
	fv["sma_20"] = price * g.uniform(0.95, 1.05)
	fv["sma_50"] = price * g.uniform(0.93, 1.07)
	fv["sma_200"] = price * g.uniform(0.90, 1.10)
	fv["price_vs_sma20"] = (price/fv["sma_20"] - 1) * 100
	fv["price_vs_sma50"] = (price/fv["sma_50"] - 1) * 100
	fv["price_vs_sma200"] = (price/fv["sma_200"] - 1) * 100
	fv["sma20_above_sma50"] = binary(fv["sma_20"] > fv["sma_50"])
	fv["sma50_above_sma200"] = binary(fv["sma_50"] > fv["sma_200"])

	fv["bb_width"] = g.uniform(5, 30)
	fv["bb_position"] = g.uniform(0, 100)
	fv["bb_squeeze"] = binary(fv["bb_width"] < 10)

	fv["volume_ratio"] = g.uniform(0.5, 2.5)
	fv["volume_trend_inc"] = g.coin()
	if fv["volume_trend_inc"] == 0 && g.rng.Float64() < 0.5 {
		fv["volume_trend_dec"] = 1
	} else {
		fv["volume_trend_dec"] = 0
	}
	fv["volume_confirmatory"] = g.coin()
	if fv["volume_confirmatory"] == 0 && g.rng.Float64() < 0.3 {
		fv["volume_divergent"] = 1
	} else {
		fv["volume_divergent"] = 0
	}

	fv["volatility_20d"] = g.uniform(1, 5)
	fv["hl_range"] = g.uniform(0.5, 4)

	switch g.rng.Intn(3) {
	case 0:
		fv["trend_bullish"], fv["trend_bearish"] = 1, 0
	case 1:
		fv["trend_bullish"], fv["trend_bearish"] = 0, 1
	default:
		fv["trend_bullish"], fv["trend_bearish"] = 0, 0
	}
	fv["trend_strong"] = g.coin()

	fv["higher_highs"] = g.coin()
	fv["lower_lows"] = g.coin()

	return fv
}

// labelFor scores a feature vector with the rule set the traditional
// signal path approximates and labels it a profitable BUY at score 3
// or above. Deterministic given the features.
func labelFor(fv models.FeatureVector) int {
	score := 0

	if fv["rsi_14"] < 30 {
		score += 2
	} else if fv["rsi_14"] > 70 {
		score -= 2
	}

	if fv["macd_histogram"] > 0 {
		score += 2
	} else {
		score -= 2
	}

	if fv["price_vs_sma20"] > 0 && fv["sma20_above_sma50"] == 1 {
		score += 2
	} else if fv["price_vs_sma20"] < 0 && fv["sma20_above_sma50"] == 0 {
		score -= 2
	}

	if fv["volume_ratio"] > 1.5 && fv["volume_confirmatory"] == 1 {
		score++
	} else if fv["volume_ratio"] < 0.7 || fv["volume_divergent"] == 1 {
		score--
	}

	if fv["trend_bullish"] == 1 && fv["trend_strong"] == 1 {
		score++
	} else if fv["trend_bearish"] == 1 && fv["trend_strong"] == 1 {
		score--
	}

	if fv["higher_highs"] == 1 {
		score++
	}
	if fv["lower_lows"] == 1 {
		score--
	}

	if score >= 3 {
		return 1
	}
	return 0
}

func binary(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
