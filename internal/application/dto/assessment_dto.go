package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/model"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
)

// AssessRequest is the input DTO for the AssessRisk use case.
type AssessRequest struct {
	// Fields maps form keys to the raw submitted answers.
	Fields map[string]string `json:"fields"`
}

// AssessmentResponse is the result bundle returned after an assessment.
type AssessmentResponse struct {
	AssessedAt        time.Time         `json:"assessed_at"`
	Input             map[string]string `json:"input"`
	ID                uuid.UUID         `json:"id"`
	Stage             string            `json:"stage"`
	PredictionText    string            `json:"prediction_text"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Color             string            `json:"color"`
	Priority          string            `json:"priority"`
	ConfidenceDisplay string            `json:"confidence_display"`
	Actions           []string          `json:"actions"`
	Encoded           []int             `json:"encoded"`
	Scaled            []float64         `json:"scaled"`
	Confidence        float64           `json:"confidence"`
	Demonstration     bool              `json:"demonstration"`
	// Emergency is set for stages that need immediate care.
	Emergency         bool              `json:"emergency"`
}

// FromModel maps a classified assessment and its stage metadata to the response DTO.
func FromModel(a *model.RiskAssessment, meta service.StageMetadata) AssessmentResponse {
	input := make(map[string]string, len(a.Input()))
	for f, v := range a.Input() {
		input[f.String()] = v
	}

	return AssessmentResponse{
		ID:                a.ID(),
		Stage:             a.Stage().String(),
		PredictionText:    meta.PredictionText,
		Title:             meta.Title,
		Description:       meta.Description,
		Color:             meta.Color,
		Priority:          meta.Priority,
		Actions:           meta.Actions,
		Confidence:        a.Confidence(),
		ConfidenceDisplay: FormatConfidence(a.Confidence()),
		Demonstration:     a.Demonstration(),
		Emergency:         a.Stage().IsCrisis(),
		Encoded:           a.Encoded().Ints(),
		Scaled:            a.Scaled().Floats(),
		Input:             input,
		AssessedAt:        a.AssessedAt(),
	}
}

// FormatConfidence renders a confidence percentage with one decimal place,
// rounding half away from zero.
func FormatConfidence(confidence float64) string {
	return decimal.NewFromFloat(confidence).Round(1).StringFixed(1)
}
