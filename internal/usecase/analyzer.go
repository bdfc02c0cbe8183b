package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	domsvc "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/service"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/indicators"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

// MinCandlesForAnalysis is the floor below which no report is produced.
const MinCandlesForAnalysis = 20

// Analyzer fuses the rule-based indicator score with the classifier's
// prediction into one analytics report. Each Analyze call is a pure
// computation over its candle slice; the only shared state is the read
// path into the model service.
type Analyzer struct {
	extractor domsvc.FeatureExtractor
	model     domsvc.ModelService
	log       *logger.Logger
}

func NewAnalyzer(extractor domsvc.FeatureExtractor, model domsvc.ModelService, log *logger.Logger) *Analyzer {
	return &Analyzer{extractor: extractor, model: model, log: log}
}

// Analyze computes the full report for a candle sequence, oldest to
// newest. Returns models.ErrInsufficientData below MinCandlesForAnalysis;
// no partial report is produced.
func (a *Analyzer) Analyze(ctx context.Context, candles []models.Candle) (*models.AnalyticsReport, error) {
	if len(candles) < MinCandlesForAnalysis {
		return nil, fmt.Errorf("%w: %d candles, need %d",
			models.ErrInsufficientData, len(candles), MinCandlesForAnalysis)
	}

	closes := models.Closes(candles)
	price := closes[len(closes)-1]

	snap := snapshot(closes)
	volume := indicators.AnalyzeVolume(candles, 20)
	levels, _ := indicators.SupportResistance(candles, 50)
	perf := indicators.PerformanceMetrics(candles)

	sma20 := fallback(snap.SMA20, price, snap.HasSMA20)
	sma50 := fallback(snap.SMA50, price, snap.HasSMA50)
	trend := indicators.DetectTrend(price, sma20, sma50, snap.SMA200, snap.HasSMA200)

	signal, confidence := traditionalScore(price, snap, volume, trend.Trend)

	var mlPred *models.ModelPrediction
	source := models.SourceTraditional
	if fv := a.extractor.Extract(candles); len(fv) > 0 {
		pred, err := a.model.Predict(ctx, fv)
		if err != nil {
			a.log.Warn("model prediction failed", logger.Error(err))
		} else if pred.Source != models.SourceNotTrained {
			mlPred = &pred
			signal, confidence, source = fuse(signal, confidence, pred)
		}
	}

	report := &models.AnalyticsReport{
		Signal:       signal,
		Confidence:   math.Round(confidence),
		Trend:        trend.Trend,
		Strength:     trend.Strength,
		CurrentPrice: round2(price),
		Indicators:   snap,
		Volume:       volume,
		Levels:       levels,
		Performance:  perf,
		MLPrediction: mlPred,
		SignalSource: source,
		Summary:      buildSummary(signal, trend, snap, volume),
	}
	return report, nil
}

// snapshot computes every core indicator at its default period.
func snapshot(closes []float64) models.IndicatorSnapshot {
	var s models.IndicatorSnapshot

	s.RSI, s.HasRSI = indicators.RSI(closes, 14)
	if s.HasRSI {
		s.RSIText = interpretRSI(s.RSI)
	} else {
		s.RSIText = "N/A"
	}

	s.MACD, s.HasMACD = indicators.MACD(closes)
	if s.HasMACD {
		s.MACDText = interpretMACD(s.MACD)
	} else {
		s.MACDText = "N/A"
	}

	s.SMA20, s.HasSMA20 = indicators.SMA(closes, 20)
	s.SMA50, s.HasSMA50 = indicators.SMA(closes, 50)
	s.SMA200, s.HasSMA200 = indicators.SMA(closes, 200)
	s.Bollinger, s.HasBands = indicators.Bollinger(closes, 20, 2)
	return s
}

// traditionalScore applies the weighted evidence rules. Each term only
// contributes when its inputs are available, and the confidence divisor
// tracks the weights that actually applied.
func traditionalScore(price float64, s models.IndicatorSnapshot, v models.VolumeAnalysis, trend string) (string, float64) {
	score := 0
	maxScore := 0

	if s.HasRSI {
		maxScore += 2
		if s.RSI < 30 {
			score += 2
		} else if s.RSI > 70 {
			score -= 2
		}
	}

	if s.HasMACD {
		maxScore += 2
		if s.MACD.Histogram > 0 {
			score += 2
		} else {
			score -= 2
		}
	}

	if s.HasSMA20 && s.HasSMA50 {
		maxScore += 3
		switch {
		case price > s.SMA20 && s.SMA20 > s.SMA50:
			score += 3
		case price < s.SMA20 && s.SMA20 < s.SMA50:
			score -= 3
		case price > s.SMA20:
			score++
		case price < s.SMA20:
			score--
		}
	}

	if s.HasSMA200 {
		maxScore++
		if price > s.SMA200 {
			score++
		} else {
			score--
		}
	}

	if s.HasBands {
		maxScore++
		if price < s.Bollinger.Lower {
			score++
		} else if price > s.Bollinger.Upper {
			score--
		}
	}

	maxScore += 2
	score += indicators.VolumeSignalAdjustment(v, trend)

	confidence := 50.0
	if maxScore > 0 {
		confidence = math.Abs(float64(score)) / float64(maxScore) * 100
	}

	switch {
	case score >= 3:
		return models.SignalBuy, confidence
	case score <= -3:
		return models.SignalSell, confidence
	default:
		return models.SignalHold, confidence
	}
}

// fuse applies the hybrid policy: agreement boosts confidence, a very
// confident model overrides, otherwise the rule-based signal stands.
func fuse(signal string, confidence float64, pred models.ModelPrediction) (string, float64, string) {
	if signal == pred.Signal {
		return signal, math.Min(95, (confidence+pred.Confidence)/2+10), models.SourceHybridAgreement
	}
	if pred.Confidence > 80 {
		return pred.Signal, pred.Confidence, models.SourceMLHighConfidence
	}
	return signal, confidence, models.SourceTraditional
}

func interpretRSI(rsi float64) string {
	switch {
	case rsi > 70:
		return "Overbought"
	case rsi < 30:
		return "Oversold"
	case rsi >= 45 && rsi <= 55:
		return "Neutral"
	case rsi > 55:
		return "Slightly Overbought"
	default:
		return "Slightly Oversold"
	}
}

func interpretMACD(m models.MACDResult) string {
	switch {
	case m.Histogram > 0:
		return "Bullish Crossover"
	case m.Histogram < 0:
		return "Bearish Crossover"
	default:
		return "Neutral"
	}
}

func fallback(v, def float64, ok bool) float64 {
	if ok {
		return v
	}
	return def
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
