package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	domrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	domsvc "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/service"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/service/cache"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/util"
)

// reportTTL bounds how stale a cached symbol report may be.
const reportTTL = 60 * time.Second

// SymbolAnalytics runs the full by-symbol pipeline: fetch candles from
// the store, analyze, cache the report and publish it downstream.
type SymbolAnalytics struct {
	candles   domrepo.CandleStore
	analyzer  domsvc.Analyzer
	publisher domrepo.SignalPublisher
	metrics   domrepo.Metrics
	cache     cache.BytesCache
	log       *logger.Logger
	ttl       time.Duration
}

func NewSymbolAnalytics(
	candles domrepo.CandleStore,
	analyzer domsvc.Analyzer,
	publisher domrepo.SignalPublisher,
	metrics domrepo.Metrics,
	bc cache.BytesCache,
	log *logger.Logger,
) *SymbolAnalytics {
	return &SymbolAnalytics{
		candles:   candles,
		analyzer:  analyzer,
		publisher: publisher,
		metrics:   metrics,
		cache:     bc,
		log:       log,
		ttl:       reportTTL,
	}
}

// SetReportTTL overrides how long cached reports stay fresh.
func (s *SymbolAnalytics) SetReportTTL(d time.Duration) {
	if d > 0 {
		s.ttl = d
	}
}

// AnalyzeSymbol fetches the latest n candles for symbol and produces a
// report. Reports are cached per (symbol, n, timeframe) for reportTTL;
// fresh reports are published to the signal topic on a best-effort
// basis.
func (s *SymbolAnalytics) AnalyzeSymbol(ctx context.Context, symbol string, n int, tf domrepo.Timeframe) (*models.AnalyticsReport, error) {
	key := fmt.Sprintf("analytics:%s:%d:%s", symbol, n, tf)
	if cached, ok := s.cachedReport(key); ok {
		return cached, nil
	}

	candles, err := s.candles.GetLatestNCandles(ctx, symbol, n, tf)
	if err != nil {
		s.metrics.RecordError("candle_fetch")
		return nil, fmt.Errorf("fetch candles for %s: %w", symbol, err)
	}
	return s.buildReport(ctx, key, symbol, candles)
}

// AnalyzeSymbolRange is the explicit-window variant of AnalyzeSymbol.
// The range is aligned to timeframe boundaries before the store read so
// equivalent requests share one cache entry.
func (s *SymbolAnalytics) AnalyzeSymbolRange(ctx context.Context, symbol string, from, to time.Time, tf domrepo.Timeframe) (*models.AnalyticsReport, error) {
	from, to = util.AlignFromTo(from, to, string(tf))
	key := fmt.Sprintf("analytics:%s:%d-%d:%s", symbol, from.Unix(), to.Unix(), tf)
	if cached, ok := s.cachedReport(key); ok {
		return cached, nil
	}

	candles, err := s.candles.GetCandlesRange(ctx, symbol, from, to, tf)
	if err != nil {
		s.metrics.RecordError("candle_fetch")
		return nil, fmt.Errorf("fetch candles for %s: %w", symbol, err)
	}
	return s.buildReport(ctx, key, symbol, candles)
}

func (s *SymbolAnalytics) cachedReport(key string) (*models.AnalyticsReport, bool) {
	blob, ok, err := s.cache.GetBytes(key)
	if err != nil || !ok {
		return nil, false
	}
	var cached models.AnalyticsReport
	if err := json.Unmarshal(blob, &cached); err != nil {
		return nil, false
	}
	return &cached, true
}

func (s *SymbolAnalytics) buildReport(ctx context.Context, key, symbol string, candles []models.Candle) (*models.AnalyticsReport, error) {
	started := time.Now()
	report, err := s.analyzer.Analyze(ctx, candles)
	s.metrics.RecordLatency("analyze", time.Since(started).Seconds())
	if err != nil {
		s.metrics.RecordError("analyze")
		return nil, err
	}
	report.Symbol = symbol
	s.metrics.RecordAnalysis(report.Signal, report.SignalSource)

	if blob, err := json.Marshal(report); err == nil {
		if err := s.cache.SetBytes(key, blob, s.ttl); err != nil {
			s.log.Warn("cache report failed", logger.Error(err))
		}
	}

	if err := s.publisher.Publish(ctx, report); err != nil {
		// the report is still served; delivery to the topic is best effort
		s.log.Warn("publish report failed",
			logger.String("symbol", symbol), logger.Error(err))
		s.metrics.RecordError("publish")
	}

	s.log.Info("symbol analyzed",
		logger.String("symbol", symbol),
		logger.String("signal", report.Signal),
		logger.String("source", report.SignalSource),
		logger.Float64("confidence", report.Confidence))
	return report, nil
}
