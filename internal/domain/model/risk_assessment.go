package model

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// RiskAssessment is the request-scoped aggregate for one questionnaire run.
type RiskAssessment struct {
	assessedAt    time.Time
	input         valueobject.FormInput
	stage         valueobject.Stage
	encoded       valueobject.EncodedFeatures
	scaled        valueobject.ScaledFeatures
	confidence    float64
	demonstration bool
	id            uuid.UUID
}

// NewRiskAssessment creates an unclassified assessment from encoded answers.
// Call Classify() to attach the classifier result.
func NewRiskAssessment(
	input valueobject.FormInput,
	encoded valueobject.EncodedFeatures,
	scaled valueobject.ScaledFeatures,
) (*RiskAssessment, error) {
	if len(input) != valueobject.FieldCount {
		return nil, fmt.Errorf("expected %d answers, got %d", valueobject.FieldCount, len(input))
	}

	return &RiskAssessment{
		id:      uuid.New(),
		input:   maps.Clone(input),
		encoded: encoded,
		scaled:  scaled,
	}, nil
}

// Classify records the stage and confidence produced by the classifier.
func (a *RiskAssessment) Classify(stage valueobject.Stage, confidence float64, demonstration bool) error {
	if stage.IsZero() {
		return fmt.Errorf("stage is required")
	}
	if confidence < 0 || confidence > 100 {
		return fmt.Errorf("confidence must be between 0 and 100, got %v", confidence)
	}

	a.stage = stage
	a.confidence = confidence
	a.demonstration = demonstration
	a.assessedAt = time.Now().UTC()

	return nil
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID                        { return a.id }
func (a *RiskAssessment) Input() valueobject.FormInput         { return maps.Clone(a.input) }
func (a *RiskAssessment) Encoded() valueobject.EncodedFeatures { return a.encoded }
func (a *RiskAssessment) Scaled() valueobject.ScaledFeatures   { return a.scaled }
func (a *RiskAssessment) Stage() valueobject.Stage             { return a.stage }
func (a *RiskAssessment) Confidence() float64                  { return a.confidence }
func (a *RiskAssessment) Demonstration() bool                  { return a.demonstration }
func (a *RiskAssessment) AssessedAt() time.Time                { return a.assessedAt }
