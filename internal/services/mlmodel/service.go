package mlmodel

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
)

// MinTrainingExamples is the smallest training set Train accepts.
const MinTrainingExamples = 100

const (
	buyThreshold  = 0.6
	sellThreshold = 0.4
	testFraction  = 0.2
)

// Service owns the classifier lifecycle. The live artifact is swapped
// atomically so predictions never observe a half-trained model, and
// training runs are serialized on a mutex. Loading from the store is
// lazy: the first Predict or Metrics call after startup pulls the
// persisted artifact if one exists.
type Service struct {
	store  repository.ModelStore
	log    *logger.Logger
	params boostParams

	artifact atomic.Pointer[Artifact]

	trainMu sync.Mutex
	loadMu  sync.Mutex
	loaded  bool
}

func NewService(store repository.ModelStore, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		log:    log,
		params: defaultBoostParams(),
	}
}

// Train fits a fresh ensemble on the examples, evaluates it on a
// stratified held-out split, then atomically replaces the live artifact
// and persists it. Returns models.ErrInsufficientData below
// MinTrainingExamples.
func (s *Service) Train(ctx context.Context, examples []models.TrainingExample) (models.ModelMetrics, error) {
	if len(examples) < MinTrainingExamples {
		return models.ModelMetrics{}, fmt.Errorf("%w: %d training examples, need %d",
			models.ErrInsufficientData, len(examples), MinTrainingExamples)
	}

	s.trainMu.Lock()
	defer s.trainMu.Unlock()

	names := featureOrder(examples[0].Features)
	train, test := stratifiedSplit(examples, testFraction, s.params.Seed)

	x, y := densify(train, names)
	started := time.Now()
	b := fitBooster(x, y, s.params)

	metrics := evaluate(b, test, names)
	metrics.TrainSamples = len(train)
	metrics.TestSamples = len(test)
	metrics.NumFeatures = len(names)
	metrics.TrainedAt = time.Now().UTC()
	metrics.FeatureImportance = importanceMap(b, names, 10)

	art := &Artifact{
		Version:          artifactVersion,
		Booster:          b,
		FeatureNameOrder: names,
		Hyperparameters: models.Hyperparameters{
			NumTrees:     s.params.NumTrees,
			MaxDepth:     s.params.MaxDepth,
			LearningRate: s.params.LearningRate,
			Subsample:    s.params.Subsample,
			ColSample:    s.params.ColSample,
			MinLeaf:      s.params.MinLeaf,
			Seed:         s.params.Seed,
		},
		Metrics: metrics,
	}

	s.artifact.Store(art)
	s.markLoaded()

	if err := s.save(ctx, art); err != nil {
		// the in-memory model is live; persistence failure only costs durability
		s.log.Error("persist model artifact failed", logger.Error(err))
		return metrics, err
	}

	s.log.Info("model trained",
		logger.Int("train_samples", metrics.TrainSamples),
		logger.Int("test_samples", metrics.TestSamples),
		logger.Float64("accuracy", metrics.Accuracy),
		logger.Float64("f1", metrics.F1Score),
		logger.Duration("took", time.Since(started)))
	return metrics, nil
}

// Predict scores a feature vector against the live artifact. Without a
// trained model it fails softly with a neutral HOLD prediction tagged
// NOT_TRAINED.
func (s *Service) Predict(ctx context.Context, features models.FeatureVector) (models.ModelPrediction, error) {
	art := s.liveArtifact(ctx)
	if art == nil {
		return models.ModelPrediction{
			Signal:      models.SignalHold,
			Confidence:  50,
			Probability: 0.5,
			Source:      models.SourceNotTrained,
		}, nil
	}

	p := art.Booster.predictProbability(art.vector(features))
	pred := models.ModelPrediction{Probability: p, Source: models.SourceModel}
	switch {
	case p > buyThreshold:
		pred.Signal = models.SignalBuy
		pred.Confidence = 100 * p
	case p < sellThreshold:
		pred.Signal = models.SignalSell
		pred.Confidence = 100 * (1 - p)
	default:
		pred.Signal = models.SignalHold
		pred.Confidence = 50
	}
	return pred, nil
}

// Metrics returns the last training run's held-out metrics. The bool is
// false when no artifact is available.
func (s *Service) Metrics(ctx context.Context) (models.ModelMetrics, bool) {
	art := s.liveArtifact(ctx)
	if art == nil {
		return models.ModelMetrics{}, false
	}
	return art.Metrics, true
}

// FeatureImportance returns the top-N features by accumulated split
// gain, empty when untrained.
func (s *Service) FeatureImportance(ctx context.Context, topN int) map[string]float64 {
	art := s.liveArtifact(ctx)
	if art == nil {
		return map[string]float64{}
	}
	return importanceMap(art.Booster, art.FeatureNameOrder, topN)
}

// liveArtifact returns the in-memory artifact, lazily loading the
// persisted one on first use. A missing blob is not an error.
func (s *Service) liveArtifact(ctx context.Context) *Artifact {
	if art := s.artifact.Load(); art != nil {
		return art
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.loaded {
		return s.artifact.Load()
	}
	s.loaded = true

	blob, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrArtifactNotFound) {
			s.log.Error("load model artifact failed", logger.Error(err))
		}
		return nil
	}
	art, err := decodeArtifact(blob)
	if err != nil {
		s.log.Error("decode model artifact failed", logger.Error(err))
		return nil
	}
	s.artifact.Store(art)
	s.log.Info("model artifact loaded",
		logger.Int("num_features", len(art.FeatureNameOrder)),
		logger.Int("num_trees", len(art.Booster.Trees)))
	return art
}

func (s *Service) markLoaded() {
	s.loadMu.Lock()
	s.loaded = true
	s.loadMu.Unlock()
}

func (s *Service) save(ctx context.Context, art *Artifact) error {
	blob, err := art.encode()
	if err != nil {
		return err
	}
	return s.store.Save(ctx, blob)
}

// featureOrder fixes the column order for the whole training run.
// Sorted names keep the order stable regardless of map iteration.
func featureOrder(fv models.FeatureVector) []string {
	names := make([]string, 0, len(fv))
	for k := range fv {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func densify(examples []models.TrainingExample, names []string) ([][]float64, []int) {
	x := make([][]float64, len(examples))
	y := make([]int, len(examples))
	for i, ex := range examples {
		row := make([]float64, len(names))
		for j, name := range names {
			row[j] = ex.Features[name]
		}
		x[i] = row
		y[i] = ex.Label
	}
	return x, y
}

// stratifiedSplit shuffles each class independently and carves the test
// fraction off both, preserving the label ratio across the split.
func stratifiedSplit(examples []models.TrainingExample, frac float64, seed int64) (train, test []models.TrainingExample) {
	rng := rand.New(rand.NewSource(seed))
	var pos, neg []models.TrainingExample
	for _, ex := range examples {
		if ex.Label == 1 {
			pos = append(pos, ex)
		} else {
			neg = append(neg, ex)
		}
	}
	for _, class := range [][]models.TrainingExample{pos, neg} {
		rng.Shuffle(len(class), func(i, j int) { class[i], class[j] = class[j], class[i] })
		cut := int(float64(len(class)) * frac)
		test = append(test, class[:cut]...)
		train = append(train, class[cut:]...)
	}
	rng.Shuffle(len(train), func(i, j int) { train[i], train[j] = train[j], train[i] })
	rng.Shuffle(len(test), func(i, j int) { test[i], test[j] = test[j], test[i] })
	return train, test
}

// evaluate scores the held-out split at the 0.5 decision boundary.
func evaluate(b *booster, test []models.TrainingExample, names []string) models.ModelMetrics {
	var tp, fp, tn, fn int
	for _, ex := range test {
		row := make([]float64, len(names))
		for j, name := range names {
			row[j] = ex.Features[name]
		}
		predicted := 0
		if b.predictProbability(row) >= 0.5 {
			predicted = 1
		}
		switch {
		case predicted == 1 && ex.Label == 1:
			tp++
		case predicted == 1 && ex.Label == 0:
			fp++
		case predicted == 0 && ex.Label == 0:
			tn++
		default:
			fn++
		}
	}

	var m models.ModelMetrics
	total := tp + fp + tn + fn
	if total > 0 {
		m.Accuracy = float64(tp+tn) / float64(total)
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// importanceMap normalizes accumulated split gains to sum to 1 and
// keeps the top-N features.
func importanceMap(b *booster, names []string, topN int) map[string]float64 {
	type pair struct {
		name string
		gain float64
	}
	var total float64
	pairs := make([]pair, 0, len(names))
	for i, name := range names {
		if i < len(b.Gain) && b.Gain[i] > 0 {
			pairs = append(pairs, pair{name, b.Gain[i]})
			total += b.Gain[i]
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].gain > pairs[j].gain })
	if topN > 0 && len(pairs) > topN {
		pairs = pairs[:topN]
	}

	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		if total > 0 {
			out[p.name] = p.gain / total
		} else {
			out[p.name] = 0
		}
	}
	return out
}
