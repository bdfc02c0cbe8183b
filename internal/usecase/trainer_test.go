package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/training"
)

type recordingModel struct {
	mu       sync.Mutex
	inFlight int
	maxSeen  int
	sets     [][]models.TrainingExample
	metrics  *models.ModelMetrics
}

func (m *recordingModel) Train(_ context.Context, examples []models.TrainingExample) (models.ModelMetrics, error) {
	m.mu.Lock()
	m.inFlight++
	if m.inFlight > m.maxSeen {
		m.maxSeen = m.inFlight
	}
	m.sets = append(m.sets, examples)
	m.mu.Unlock()

	m.mu.Lock()
	m.inFlight--
	m.mu.Unlock()
	return models.ModelMetrics{Accuracy: 0.8}, nil
}

func (m *recordingModel) Predict(context.Context, models.FeatureVector) (models.ModelPrediction, error) {
	return models.ModelPrediction{}, nil
}

func (m *recordingModel) Metrics(context.Context) (models.ModelMetrics, bool) {
	if m.metrics == nil {
		return models.ModelMetrics{}, false
	}
	return *m.metrics, true
}

func (m *recordingModel) FeatureImportance(context.Context, int) map[string]float64 {
	return nil
}

func TestTrainerGeneratesSyntheticSet(t *testing.T) {
	model := &recordingModel{}
	tr := NewTrainer(training.NewGenerator(42), model, &nopMetrics{}, testLogger(t))

	metrics, err := tr.Train(context.Background(), nil, 500)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if metrics.Accuracy != 0.8 {
		t.Fatalf("metrics must pass through, got %+v", metrics)
	}
	if len(model.sets) != 1 || len(model.sets[0]) == 0 {
		t.Fatalf("trainer must hand a generated set to the model")
	}
	if len(model.sets[0]) > 500 {
		t.Fatalf("balanced set must not exceed the requested pool")
	}
}

func TestTrainerUsesProvidedExamples(t *testing.T) {
	model := &recordingModel{}
	tr := NewTrainer(training.NewGenerator(42), model, &nopMetrics{}, testLogger(t))

	examples := training.NewGenerator(9).Generate(300)
	if _, err := tr.Train(context.Background(), examples, 0); err != nil {
		t.Fatalf("train: %v", err)
	}
	if len(model.sets) != 1 || len(model.sets[0]) != len(examples) {
		t.Fatalf("provided examples must be used verbatim")
	}
}

func TestEnsureTrainedSkipsWhenArtifactExists(t *testing.T) {
	model := &recordingModel{metrics: &models.ModelMetrics{Accuracy: 0.7}}
	tr := NewTrainer(training.NewGenerator(42), model, &nopMetrics{}, testLogger(t))

	if err := tr.EnsureTrained(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(model.sets) != 0 {
		t.Fatalf("existing artifact must suppress bootstrap training")
	}
}

func TestEnsureTrainedBootstraps(t *testing.T) {
	model := &recordingModel{}
	tr := NewTrainer(training.NewGenerator(42), model, &nopMetrics{}, testLogger(t))

	if err := tr.EnsureTrained(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if len(model.sets) != 1 {
		t.Fatalf("missing artifact must trigger bootstrap training")
	}
}
