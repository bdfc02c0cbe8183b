package service

import (
	"context"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// FeatureExtractor builds the fixed-schema feature vector from candles.
type FeatureExtractor interface {
	Extract(candles []models.Candle) models.FeatureVector
	FeatureNames() []string
}

// TrainingDataGenerator produces labeled training examples.
type TrainingDataGenerator interface {
	Generate(n int) []models.TrainingExample
}

// ModelService owns the classifier lifecycle: train, predict, persist.
type ModelService interface {
	Train(ctx context.Context, examples []models.TrainingExample) (models.ModelMetrics, error)
	Predict(ctx context.Context, features models.FeatureVector) (models.ModelPrediction, error)
	Metrics(ctx context.Context) (models.ModelMetrics, bool)
	FeatureImportance(ctx context.Context, topN int) map[string]float64
}

// Analyzer is the signal fusion entry point.
type Analyzer interface {
	Analyze(ctx context.Context, candles []models.Candle) (*models.AnalyticsReport, error)
}
