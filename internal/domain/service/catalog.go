package service

import (
	"fmt"
	"slices"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// StageMetadata is the display record for one stage.
type StageMetadata struct {
	Stage          valueobject.Stage
	PredictionText string
	Title          string
	Description    string
	Color          string
	Priority       string
	Actions        []string
}

// Catalog resolves stages to their display metadata. It is built once at
// startup and never mutated.
type Catalog struct {
	entries map[valueobject.Stage]StageMetadata
}

// NewCatalog builds a Catalog and checks that it covers the closed stage set
// exactly once per stage.
func NewCatalog(entries []StageMetadata) (*Catalog, error) {
	m := make(map[valueobject.Stage]StageMetadata, len(entries))
	for _, e := range entries {
		if e.Stage.IsZero() {
			return nil, fmt.Errorf("catalog entry %q has no stage", e.Title)
		}
		if _, dup := m[e.Stage]; dup {
			return nil, fmt.Errorf("duplicate catalog entry for stage %s", e.Stage)
		}
		e.Actions = slices.Clone(e.Actions)
		m[e.Stage] = e
	}

	for _, s := range valueobject.Stages() {
		if _, ok := m[s]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMetadataMissing, s)
		}
	}

	return &Catalog{entries: m}, nil
}

// Resolve returns the metadata for a stage. A miss wraps ErrMetadataMissing.
func (c *Catalog) Resolve(s valueobject.Stage) (StageMetadata, error) {
	e, ok := c.entries[s]
	if !ok {
		return StageMetadata{}, fmt.Errorf("%w: %q", ErrMetadataMissing, s.String())
	}
	e.Actions = slices.Clone(e.Actions)
	return e, nil
}

// DefaultStageMetadata returns the built-in catalog entries.
func DefaultStageMetadata() []StageMetadata {
	return []StageMetadata{
		{
			Stage:          valueobject.StageNormal,
			PredictionText: "NORMAL",
			Title:          "Normal Blood Pressure",
			Description:    "Your cardiovascular risk assessment indicates normal blood pressure levels.",
			Color:          "#10B981",
			Priority:       "Low Risk",
			Actions: []string{
				"Maintain current healthy lifestyle",
				"Regular physical activity (150 minutes/week)",
				"Continue balanced, low-sodium diet",
				"Annual blood pressure monitoring",
				"Regular health check-ups",
			},
		},
		{
			Stage:          valueobject.StageOne,
			PredictionText: "HYPERTENSION (Stage-1)",
			Title:          "Stage 1 Hypertension",
			Description:    "Mild elevation detected requiring lifestyle modifications and medical consultation.",
			Color:          "#F59E0B",
			Priority:       "Moderate Risk",
			Actions: []string{
				"Schedule appointment with healthcare provider",
				"Implement DASH diet plan",
				"Increase physical activity gradually",
				"Monitor blood pressure bi-weekly",
				"Reduce sodium intake (<2300mg/day)",
				"Consider stress management techniques",
			},
		},
		{
			Stage:          valueobject.StageTwo,
			PredictionText: "HYPERTENSION (Stage-2)",
			Title:          "Stage 2 Hypertension",
			Description:    "Significant hypertension requiring immediate medical intervention and treatment.",
			Color:          "#EF7316",
			Priority:       "High Risk",
			Actions: []string{
				"URGENT: Consult physician within 1-2 days",
				"Likely medication therapy required",
				"Comprehensive cardiovascular assessment",
				"Daily blood pressure monitoring",
				"Strict dietary sodium restriction",
				"Lifestyle modification counseling",
			},
		},
		{
			Stage:          valueobject.StageCrisis,
			PredictionText: "HYPERTENSIVE CRISIS",
			Title:          "Hypertensive Crisis",
			Description:    "CRITICAL: Dangerously elevated blood pressure requiring emergency medical care.",
			Color:          "#EF4444",
			Priority:       "EMERGENCY",
			Actions: []string{
				"EMERGENCY: Seek immediate medical attention",
				"Call 911 if experiencing symptoms",
				"Do not delay treatment",
				"Monitor for stroke/heart attack signs",
				"Prepare current medication list",
				"Avoid physical exertion",
			},
		},
	}
}
