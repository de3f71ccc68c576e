package ml

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// DefaultConfidence is reported when the model cannot produce probabilities.
const DefaultConfidence = 85.0

// Model is a trained classifier over the feature vector.
type Model interface {
	Predict(x []float64) (int, error)
}

// ProbabilityModel is implemented by models that expose class probabilities.
type ProbabilityModel interface {
	PredictProba(x []float64) ([]float64, error)
}

// ModelClassifier implements port.Classifier on top of a trained Model.
type ModelClassifier struct {
	model  Model
	logger *slog.Logger
}

// NewModelClassifier creates a classifier backed by a loaded model.
func NewModelClassifier(model Model, logger *slog.Logger) *ModelClassifier {
	return &ModelClassifier{model: model, logger: logger}
}

// Predict runs the model and derives confidence from the top class probability.
func (c *ModelClassifier) Predict(ctx context.Context, features valueobject.ScaledFeatures) (port.Prediction, error) {
	x := features.Floats()

	class, err := c.model.Predict(x)
	if err != nil {
		return port.Prediction{}, fmt.Errorf("model predict: %w", err)
	}
	stage, err := valueobject.StageFromClass(class)
	if err != nil {
		return port.Prediction{}, fmt.Errorf("%w: class %d", port.ErrUnknownStage, class)
	}

	return port.Prediction{
		Stage:      stage,
		Confidence: c.confidence(ctx, x),
	}, nil
}

func (c *ModelClassifier) confidence(ctx context.Context, x []float64) float64 {
	pm, ok := c.model.(ProbabilityModel)
	if !ok {
		return DefaultConfidence
	}
	probs, err := pm.PredictProba(x)
	if err != nil || len(probs) == 0 {
		c.logger.WarnContext(ctx, "probability output unavailable, using default confidence", "error", err)
		return DefaultConfidence
	}
	top := slices.Max(probs) * 100
	if math.IsNaN(top) {
		return DefaultConfidence
	}
	return ClampConfidence(top)
}

// ClampConfidence bounds a percentage to [0, 100].
func ClampConfidence(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
