package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"hireready/internal/domain"
)

// weightsFile is the on-disk format of a readiness model: a logistic
// regression over normalized feature values.
type weightsFile struct {
	Bias    float64            `json:"bias"`
	Weights map[string]float64 `json:"weights"`
}

// WeightsModel implements domain.ReadinessModel with a logistic function
// over per-feature weights loaded once at startup. Swapping the weights
// file swaps the model without a code change.
type WeightsModel struct {
	bias    float64
	weights map[string]float64
}

// NewWeightsModelFromFile loads and validates a weights file. Every
// weight key must be a known feature column; an unknown key means the
// file was trained against a different schema and must not be served.
func NewWeightsModelFromFile(path string) (*WeightsModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model weights %s: %w", path, err)
	}
	return NewWeightsModel(data)
}

// NewWeightsModel parses weights from raw JSON.
func NewWeightsModel(data []byte) (*WeightsModel, error) {
	var file weightsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model weights: %w", err)
	}
	if len(file.Weights) == 0 {
		return nil, fmt.Errorf("model weights are empty")
	}

	known := make(map[string]struct{}, len(domain.FeatureColumns))
	for _, col := range domain.FeatureColumns {
		known[col] = struct{}{}
	}
	for key := range file.Weights {
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("model weights reference unknown feature %q", key)
		}
	}

	return &WeightsModel{bias: file.Bias, weights: file.Weights}, nil
}

// Predict returns a readiness probability in [0, 1]. Feature values are
// saturation-normalized before weighting so count-valued columns cannot
// dominate the logit.
func (m *WeightsModel) Predict(ctx context.Context, vector domain.FeatureVector) (float64, error) {
	if err := vector.Validate(); err != nil {
		return 0, err
	}

	logit := m.bias
	for col, weight := range m.weights {
		logit += weight * saturate(col, vector[col])
	}

	p := 1.0 / (1.0 + math.Exp(-logit))
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("model produced out-of-range probability %v", p)
	}
	return p, nil
}
