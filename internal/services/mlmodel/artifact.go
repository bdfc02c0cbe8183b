package mlmodel

import (
	"encoding/json"
	"fmt"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

// artifactVersion guards against loading blobs written by an
// incompatible ensemble layout.
const artifactVersion = 1

// Artifact is the complete persisted state of a trained classifier:
// the fitted ensemble, the column order its trees index into, the
// hyperparameters it was trained with and the held-out metrics.
type Artifact struct {
	Version          int                    `json:"version"`
	Booster          *booster               `json:"booster"`
	FeatureNameOrder []string               `json:"feature_name_order"`
	Hyperparameters  models.Hyperparameters `json:"hyperparameters"`
	Metrics          models.ModelMetrics    `json:"metrics"`
}

// vector flattens a feature map into the artifact's column order.
// Missing keys resolve to zero so prediction degrades instead of
// panicking on a schema drift.
func (a *Artifact) vector(fv models.FeatureVector) []float64 {
	row := make([]float64, len(a.FeatureNameOrder))
	for i, name := range a.FeatureNameOrder {
		row[i] = fv[name]
	}
	return row
}

func (a *Artifact) encode() ([]byte, error) {
	blob, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode model artifact: %w", err)
	}
	return blob, nil
}

func decodeArtifact(blob []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(blob, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if a.Version != artifactVersion {
		return nil, fmt.Errorf("unsupported model artifact version %d", a.Version)
	}
	if a.Booster == nil || len(a.FeatureNameOrder) == 0 {
		return nil, fmt.Errorf("model artifact is missing booster state")
	}
	return &a, nil
}
