package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	domrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	domsvc "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/service"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

// DefaultSyntheticSamples is the candidate pool drawn when a training
// request does not supply its own examples.
const DefaultSyntheticSamples = 5000

// Trainer drives model training jobs. Triggers are serialized here so
// two concurrent requests can never interleave their artifact writes.
type Trainer struct {
	generator domsvc.TrainingDataGenerator
	model     domsvc.ModelService
	metrics   domrepo.Metrics
	log       *logger.Logger

	bootstrapSamples int

	mu sync.Mutex
}

func NewTrainer(generator domsvc.TrainingDataGenerator, model domsvc.ModelService, metrics domrepo.Metrics, log *logger.Logger) *Trainer {
	return &Trainer{generator: generator, model: model, metrics: metrics, log: log}
}

// SetBootstrapSamples overrides the synthetic pool size used by
// EnsureTrained.
func (t *Trainer) SetBootstrapSamples(n int) {
	if n > 0 {
		t.bootstrapSamples = n
	}
}

// Train fits a fresh model from the provided examples, falling back to
// a synthetic set of the requested size when none are given.
func (t *Trainer) Train(ctx context.Context, examples []models.TrainingExample, samples int) (models.ModelMetrics, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(examples) == 0 {
		if samples <= 0 {
			samples = DefaultSyntheticSamples
		}
		examples = t.generator.Generate(samples)
		t.log.Info("generated synthetic training set",
			logger.Int("requested", samples),
			logger.Int("balanced_size", len(examples)))
	}

	started := time.Now()
	m, err := t.model.Train(ctx, examples)
	t.metrics.RecordLatency("train", time.Since(started).Seconds())
	if err != nil {
		t.metrics.RecordError("train")
		return models.ModelMetrics{}, err
	}
	t.metrics.RecordModelAccuracy(m.Accuracy)
	return m, nil
}

// EnsureTrained trains a bootstrap model at startup when no persisted
// artifact exists yet. A model that is already loadable is left alone.
func (t *Trainer) EnsureTrained(ctx context.Context) error {
	if _, ok := t.model.Metrics(ctx); ok {
		t.log.Info("model artifact already available, skipping bootstrap training")
		return nil
	}
	t.log.Info("no model artifact found, bootstrap training from synthetic data")
	samples := t.bootstrapSamples
	if samples <= 0 {
		samples = DefaultSyntheticSamples
	}
	_, err := t.Train(ctx, nil, samples)
	return err
}
