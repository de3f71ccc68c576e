package port

import (
	"context"
	"errors"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// ErrClassifierUnavailable is returned when no trained model is loaded and
// demonstration predictions are not permitted.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

// ErrUnknownStage is returned when a model emits a class outside the closed stage set.
var ErrUnknownStage = errors.New("classifier produced unknown stage")

// Prediction is the classifier output for one feature vector.
type Prediction struct {
	Stage valueobject.Stage
	// Confidence is a percentage in [0, 100].
	Confidence float64
	// Demonstration marks placeholder output that did not come from a trained model.
	Demonstration bool
}

// Classifier defines the port for stage inference over a scaled feature vector.
type Classifier interface {
	// Predict returns the stage and confidence for the given features.
	Predict(ctx context.Context, features valueobject.ScaledFeatures) (Prediction, error)
}

// AssessmentRecorder defines the port for counting pipeline outcomes.
type AssessmentRecorder interface {
	// AssessmentCompleted records a successful assessment.
	AssessmentCompleted(ctx context.Context, stage valueobject.Stage, demonstration bool)

	// AssessmentFailed records a failed assessment by error category.
	AssessmentFailed(ctx context.Context, category string)
}
