package ml

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// DemoConfidence is the fixed confidence attached to demonstration predictions.
const DemoConfidence = 87.5

// DemoClassifier implements port.Classifier without a trained model. Every
// prediction is flagged as a demonstration so callers can tell the user.
type DemoClassifier struct {
	logger *slog.Logger
	pick   func(n int) int
}

// NewDemoClassifier creates a demonstration classifier. pick chooses a stage
// index in [0, n); nil selects uniformly at random.
func NewDemoClassifier(logger *slog.Logger, pick func(n int) int) *DemoClassifier {
	if pick == nil {
		pick = rand.IntN
	}
	return &DemoClassifier{logger: logger, pick: pick}
}

// Predict returns a placeholder stage with DemoConfidence.
func (c *DemoClassifier) Predict(ctx context.Context, _ valueobject.ScaledFeatures) (port.Prediction, error) {
	stages := valueobject.Stages()
	i := c.pick(len(stages))
	if i < 0 || i >= len(stages) {
		return port.Prediction{}, fmt.Errorf("demo stage index %d out of range", i)
	}

	c.logger.DebugContext(ctx, "demonstration prediction served", "stage", stages[i].String())

	return port.Prediction{
		Stage:         stages[i],
		Confidence:    DemoConfidence,
		Demonstration: true,
	}, nil
}

// UnavailableClassifier implements port.Classifier when no model is loaded and
// demonstration output is not permitted. Every call fails with
// port.ErrClassifierUnavailable.
type UnavailableClassifier struct {
	cause error
}

// NewUnavailableClassifier records why the model could not be loaded.
func NewUnavailableClassifier(cause error) *UnavailableClassifier {
	return &UnavailableClassifier{cause: cause}
}

// Predict always fails.
func (c *UnavailableClassifier) Predict(_ context.Context, _ valueobject.ScaledFeatures) (port.Prediction, error) {
	if c.cause == nil {
		return port.Prediction{}, port.ErrClassifierUnavailable
	}
	return port.Prediction{}, fmt.Errorf("%w: %v", port.ErrClassifierUnavailable, c.cause)
}
