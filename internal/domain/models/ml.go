package models

import "time"

// FeatureVector maps feature names to finite values. Keys are the fixed
// schema owned by the feature extractor; values never carry NaN or Inf.
type FeatureVector map[string]float64

// TrainingExample pairs a feature vector with a binary label.
// Label 1 marks a historically profitable BUY opportunity.
type TrainingExample struct {
	Features FeatureVector `json:"features"`
	Label    int           `json:"label"`
}

// ModelMetrics holds held-out evaluation results from the last training run.
type ModelMetrics struct {
	Accuracy          float64            `json:"accuracy"`
	Precision         float64            `json:"precision"`
	Recall            float64            `json:"recall"`
	F1Score           float64            `json:"f1_score"`
	TrainSamples      int                `json:"train_samples"`
	TestSamples       int                `json:"test_samples"`
	NumFeatures       int                `json:"num_features"`
	TrainedAt         time.Time          `json:"trained_at"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

// Hyperparameters configure the boosted-tree classifier.
type Hyperparameters struct {
	NumTrees     int     `json:"num_trees"`
	MaxDepth     int     `json:"max_depth"`
	LearningRate float64 `json:"learning_rate"`
	Subsample    float64 `json:"subsample"`
	ColSample    float64 `json:"colsample"`
	MinLeaf      int     `json:"min_leaf"`
	Seed         int64   `json:"seed"`
}
