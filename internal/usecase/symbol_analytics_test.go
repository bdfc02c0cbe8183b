package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	domrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/service/cache"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/features"
)

type stubCandleStore struct {
	candles  []models.Candle
	err      error
	calls    int
	lastFrom time.Time
	lastTo   time.Time
}

func (s *stubCandleStore) GetLatestNCandles(_ context.Context, _ string, _ int, _ domrepo.Timeframe) ([]models.Candle, error) {
	s.calls++
	return s.candles, s.err
}

func (s *stubCandleStore) GetCandlesRange(_ context.Context, _ string, from, to time.Time, _ domrepo.Timeframe) ([]models.Candle, error) {
	s.calls++
	s.lastFrom, s.lastTo = from, to
	return s.candles, s.err
}

type stubPublisher struct {
	published int
	err       error
}

func (p *stubPublisher) Publish(context.Context, *models.AnalyticsReport) error {
	p.published++
	return p.err
}

func (p *stubPublisher) Close() error { return nil }

type nopMetrics struct {
	errors int
}

func (m *nopMetrics) RecordAnalysis(string, string)  {}
func (m *nopMetrics) RecordError(string)             { m.errors++ }
func (m *nopMetrics) RecordModelAccuracy(float64)    {}
func (m *nopMetrics) RecordLatency(string, float64)  {}

func newSymbolAnalytics(t *testing.T, store *stubCandleStore, pub *stubPublisher) *SymbolAnalytics {
	t.Helper()
	analyzer := NewAnalyzer(features.NewExtractor(), notTrained(), testLogger(t))
	return NewSymbolAnalytics(store, analyzer, pub, &nopMetrics{}, cache.NewTTLCache(), testLogger(t))
}

func TestAnalyzeSymbolCachesReport(t *testing.T) {
	store := &stubCandleStore{candles: mkCandles(risingCloses(100))}
	pub := &stubPublisher{}
	sa := newSymbolAnalytics(t, store, pub)

	first, err := sa.AnalyzeSymbol(context.Background(), "RELIANCE", 100, domrepo.TF1d)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if first.Symbol != "RELIANCE" {
		t.Fatalf("report must carry the symbol, got %q", first.Symbol)
	}

	second, err := sa.AnalyzeSymbol(context.Background(), "RELIANCE", 100, domrepo.TF1d)
	if err != nil {
		t.Fatalf("cached analyze: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("second call must be served from cache, store hit %d times", store.calls)
	}
	if second.Signal != first.Signal || second.Confidence != first.Confidence {
		t.Fatalf("cached report diverged from the original")
	}
	if pub.published != 1 {
		t.Fatalf("only the fresh report should be published, got %d", pub.published)
	}
}

func TestAnalyzeSymbolDistinctKeys(t *testing.T) {
	store := &stubCandleStore{candles: mkCandles(risingCloses(100))}
	sa := newSymbolAnalytics(t, store, &stubPublisher{})

	if _, err := sa.AnalyzeSymbol(context.Background(), "TCS", 100, domrepo.TF1d); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := sa.AnalyzeSymbol(context.Background(), "TCS", 250, domrepo.TF1d); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("different candle counts must not share a cache entry, store hit %d times", store.calls)
	}
}

func TestAnalyzeSymbolRangeAlignsWindow(t *testing.T) {
	store := &stubCandleStore{candles: mkCandles(risingCloses(100))}
	sa := newSymbolAnalytics(t, store, &stubPublisher{})

	from := time.Date(2025, 3, 10, 13, 45, 12, 0, time.UTC)
	to := time.Date(2025, 6, 12, 1, 2, 3, 0, time.UTC)
	if _, err := sa.AnalyzeSymbolRange(context.Background(), "RELIANCE", from, to, domrepo.TF1d); err != nil {
		t.Fatalf("analyze range: %v", err)
	}
	if store.lastFrom.Hour() != 0 || store.lastTo.Hour() != 0 {
		t.Fatalf("daily window must be aligned to midnight, got %v / %v", store.lastFrom, store.lastTo)
	}

	// same window with different sub-day offsets must land on the same
	// cache entry after alignment
	if _, err := sa.AnalyzeSymbolRange(context.Background(), "RELIANCE", from.Add(2*time.Hour), to.Add(-30*time.Minute), domrepo.TF1d); err != nil {
		t.Fatalf("analyze range: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("aligned windows must share a cache entry, store hit %d times", store.calls)
	}
}

func TestAnalyzeSymbolStoreFailure(t *testing.T) {
	store := &stubCandleStore{err: errors.New("clickhouse unreachable")}
	sa := newSymbolAnalytics(t, store, &stubPublisher{})

	if _, err := sa.AnalyzeSymbol(context.Background(), "INFY", 100, domrepo.TF1d); err == nil {
		t.Fatalf("store failure must surface")
	}
}

func TestAnalyzeSymbolPublishFailureIsSoft(t *testing.T) {
	store := &stubCandleStore{candles: mkCandles(risingCloses(100))}
	pub := &stubPublisher{err: errors.New("broker down")}
	sa := newSymbolAnalytics(t, store, pub)

	report, err := sa.AnalyzeSymbol(context.Background(), "HDFC", 100, domrepo.TF1d)
	if err != nil {
		t.Fatalf("publish failure must not fail the request, got %v", err)
	}
	if report == nil {
		t.Fatalf("report must still be returned")
	}
}
