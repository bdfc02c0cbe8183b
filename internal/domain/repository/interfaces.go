package repository

import (
	"context"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// CandleStore provides read-only access to OHLCV candles for analytics.
type CandleStore interface {
	GetLatestNCandles(ctx context.Context, symbol string, n int, tf Timeframe) ([]models.Candle, error)
	GetCandlesRange(ctx context.Context, symbol string, from, to time.Time, tf Timeframe) ([]models.Candle, error)
}

// ModelStore persists the model artifact as a single named blob.
// Save must replace the blob atomically; Load returns
// models.ErrArtifactNotFound when the blob has never been written.
type ModelStore interface {
	Save(ctx context.Context, blob []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// SignalPublisher emits completed analytics reports to downstream consumers.
type SignalPublisher interface {
	Publish(ctx context.Context, report *models.AnalyticsReport) error
	Close() error
}

// Metrics records engine-level observability signals.
type Metrics interface {
	RecordAnalysis(signal, source string)
	RecordError(kind string)
	RecordModelAccuracy(accuracy float64)
	RecordLatency(op string, seconds float64)
}
