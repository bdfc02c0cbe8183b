package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/features"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

type stubModel struct {
	pred models.ModelPrediction
	err  error
}

func (m *stubModel) Train(context.Context, []models.TrainingExample) (models.ModelMetrics, error) {
	return models.ModelMetrics{}, nil
}

func (m *stubModel) Predict(context.Context, models.FeatureVector) (models.ModelPrediction, error) {
	return m.pred, m.err
}

func (m *stubModel) Metrics(context.Context) (models.ModelMetrics, bool) {
	return models.ModelMetrics{}, false
}

func (m *stubModel) FeatureImportance(context.Context, int) map[string]float64 {
	return map[string]float64{}
}

func notTrained() *stubModel {
	return &stubModel{pred: models.ModelPrediction{
		Signal: models.SignalHold, Confidence: 50, Probability: 0.5,
		Source: models.SourceNotTrained,
	}}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func mkCandles(closes []float64) []models.Candle {
	out := make([]models.Candle, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		out[i] = models.Candle{
			Bucket: base.AddDate(0, 0, i),
			Open:   c, High: c * 1.01, Low: c * 0.99, Close: c,
			Volume: 1000,
		}
	}
	return out
}

func risingCloses(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 100 + float64(i)*0.5
	}
	return xs
}

func TestAnalyzeInsufficientData(t *testing.T) {
	a := NewAnalyzer(features.NewExtractor(), notTrained(), testLogger(t))
	_, err := a.Analyze(context.Background(), mkCandles(risingCloses(19)))
	if !errors.Is(err, models.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestAnalyzeUntrainedModelFallsBackToTraditional(t *testing.T) {
	a := NewAnalyzer(features.NewExtractor(), notTrained(), testLogger(t))
	report, err := a.Analyze(context.Background(), mkCandles(risingCloses(120)))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.SignalSource != models.SourceTraditional {
		t.Fatalf("untrained model must leave the source TRADITIONAL, got %q", report.SignalSource)
	}
	if report.MLPrediction != nil {
		t.Fatalf("untrained prediction must not be attached to the report")
	}
	if report.Summary == "" {
		t.Fatalf("report must carry a summary")
	}
}

func TestAnalyzeBullishSeries(t *testing.T) {
	a := NewAnalyzer(features.NewExtractor(), notTrained(), testLogger(t))
	report, err := a.Analyze(context.Background(), mkCandles(risingCloses(260)))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Trend != models.TrendBullish || report.Strength != models.StrengthStrong {
		t.Fatalf("steadily rising series must be strongly bullish, got %s/%s",
			report.Trend, report.Strength)
	}
	if !report.Indicators.HasSMA200 || !report.Performance.HasYear {
		t.Fatalf("260 candles must cover the year window and 200-day average")
	}
	if report.Confidence < 0 || report.Confidence > 100 {
		t.Fatalf("confidence out of range: %v", report.Confidence)
	}
}

func TestFusePolicy(t *testing.T) {
	cases := []struct {
		name       string
		tradSignal string
		tradConf   float64
		pred       models.ModelPrediction
		wantSignal string
		wantConf   float64
		wantSource string
	}{
		{
			name:       "agreement boosts and caps",
			tradSignal: models.SignalBuy, tradConf: 90,
			pred:       models.ModelPrediction{Signal: models.SignalBuy, Confidence: 90},
			wantSignal: models.SignalBuy, wantConf: 95, wantSource: models.SourceHybridAgreement,
		},
		{
			name:       "agreement averages plus ten",
			tradSignal: models.SignalBuy, tradConf: 60,
			pred:       models.ModelPrediction{Signal: models.SignalBuy, Confidence: 70},
			wantSignal: models.SignalBuy, wantConf: 75, wantSource: models.SourceHybridAgreement,
		},
		{
			name:       "confident model overrides",
			tradSignal: models.SignalHold, tradConf: 40,
			pred:       models.ModelPrediction{Signal: models.SignalSell, Confidence: 85},
			wantSignal: models.SignalSell, wantConf: 85, wantSource: models.SourceMLHighConfidence,
		},
		{
			name:       "unconvinced model defers",
			tradSignal: models.SignalBuy, tradConf: 55,
			pred:       models.ModelPrediction{Signal: models.SignalSell, Confidence: 80},
			wantSignal: models.SignalBuy, wantConf: 55, wantSource: models.SourceTraditional,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			signal, conf, source := fuse(tc.tradSignal, tc.tradConf, tc.pred)
			if signal != tc.wantSignal || conf != tc.wantConf || source != tc.wantSource {
				t.Fatalf("got %s/%v/%s, want %s/%v/%s",
					signal, conf, source, tc.wantSignal, tc.wantConf, tc.wantSource)
			}
		})
	}
}

func TestTraditionalScoreOversoldBuy(t *testing.T) {
	snap := models.IndicatorSnapshot{
		RSI: 25, HasRSI: true,
		MACD: models.MACDResult{Histogram: 1.5}, HasMACD: true,
		SMA20: 95, HasSMA20: true,
		SMA50: 90, HasSMA50: true,
	}
	vol := models.VolumeAnalysis{VolumeRatio: 1.0, Correlation: models.CorrNeutral}

	// price above both stacked averages: 2 + 2 + 3 = 7 of max 9
	// (RSI 2, MACD 2, SMA 3, volume 2; no SMA200 or bands applied)
	signal, conf := traditionalScore(100, snap, vol, models.TrendBullish)
	if signal != models.SignalBuy {
		t.Fatalf("expected BUY, got %s", signal)
	}
	want := 7.0 / 9.0 * 100
	if math.Abs(conf-want) > 1e-9 {
		t.Fatalf("expected confidence %v, got %v", want, conf)
	}
}

func TestTraditionalScoreMaxScoreTracksApplicability(t *testing.T) {
	// only RSI available: overbought contributes -2 of max 4 (RSI + volume)
	snap := models.IndicatorSnapshot{RSI: 75, HasRSI: true}
	vol := models.VolumeAnalysis{VolumeRatio: 1.0, Correlation: models.CorrNeutral}

	signal, conf := traditionalScore(100, snap, vol, models.TrendNeutral)
	if signal != models.SignalHold {
		t.Fatalf("score -2 must stay HOLD, got %s", signal)
	}
	if conf != 50 {
		t.Fatalf("expected |-2|/4*100 = 50, got %v", conf)
	}
}

func TestBuildSummaryTemplates(t *testing.T) {
	snap := models.IndicatorSnapshot{RSI: 25, HasRSI: true}
	vol := models.VolumeAnalysis{VolumeRatio: 1.8}
	trend := models.TrendInfo{Trend: models.TrendBullish, Strength: models.StrengthStrong}

	got := buildSummary(models.SignalBuy, trend, snap, vol)
	if !strings.Contains(got, "Strong buy signal detected") {
		t.Fatalf("BUY/BULLISH template missing, got %q", got)
	}
	if !strings.Contains(got, "strong bullish trend") {
		t.Fatalf("strength must be interpolated lowercase, got %q", got)
	}
	if !strings.Contains(got, "showing oversold conditions") {
		t.Fatalf("oversold RSI must modulate the text, got %q", got)
	}
	if !strings.Contains(got, "High volume confirms the move.") {
		t.Fatalf("elevated volume must modulate the text, got %q", got)
	}

	neutral := buildSummary(models.SignalHold,
		models.TrendInfo{Trend: models.TrendNeutral, Strength: models.StrengthWeak},
		models.IndicatorSnapshot{}, models.VolumeAnalysis{VolumeRatio: 1.0})
	if !strings.Contains(neutral, "Neutral stance") {
		t.Fatalf("HOLD/NEUTRAL template missing, got %q", neutral)
	}
}
