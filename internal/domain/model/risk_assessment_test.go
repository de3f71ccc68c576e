package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/model"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

func fullInput() valueobject.FormInput {
	input := make(valueobject.FormInput)
	for _, f := range valueobject.Fields() {
		input[f] = f.Options()[0].Label
	}
	return input
}

func newValidAssessment(t *testing.T) *model.RiskAssessment {
	t.Helper()
	a, err := model.NewRiskAssessment(fullInput(), valueobject.EncodedFeatures{}, valueobject.ScaledFeatures{})
	require.NoError(t, err)
	return a
}

func TestNewRiskAssessment_Valid(t *testing.T) {
	a := newValidAssessment(t)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.True(t, a.Stage().IsZero())
	assert.True(t, a.AssessedAt().IsZero())
	assert.Len(t, a.Input(), valueobject.FieldCount)
}

func TestNewRiskAssessment_IncompleteInput(t *testing.T) {
	input := fullInput()
	delete(input, valueobject.FieldSeverity)

	_, err := model.NewRiskAssessment(input, valueobject.EncodedFeatures{}, valueobject.ScaledFeatures{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 13 answers")
}

func TestNewRiskAssessment_CopiesInput(t *testing.T) {
	input := fullInput()
	a, err := model.NewRiskAssessment(input, valueobject.EncodedFeatures{}, valueobject.ScaledFeatures{})
	require.NoError(t, err)

	input[valueobject.FieldGender] = "tampered"
	assert.Equal(t, "Male", a.Input()[valueobject.FieldGender])

	got := a.Input()
	got[valueobject.FieldGender] = "tampered"
	assert.Equal(t, "Male", a.Input()[valueobject.FieldGender])
}

func TestClassify(t *testing.T) {
	a := newValidAssessment(t)

	err := a.Classify(valueobject.StageTwo, 91.25, false)
	require.NoError(t, err)

	assert.Equal(t, valueobject.StageTwo, a.Stage())
	assert.Equal(t, 91.25, a.Confidence())
	assert.False(t, a.Demonstration())
	assert.False(t, a.AssessedAt().IsZero())
}

func TestClassify_Demonstration(t *testing.T) {
	a := newValidAssessment(t)

	require.NoError(t, a.Classify(valueobject.StageNormal, 87.5, true))
	assert.True(t, a.Demonstration())
}

func TestClassify_BoundaryConfidence(t *testing.T) {
	tests := []struct {
		name       string
		confidence float64
		wantErr    bool
	}{
		{name: "zero", confidence: 0},
		{name: "hundred", confidence: 100},
		{name: "negative", confidence: -0.01, wantErr: true},
		{name: "above hundred", confidence: 100.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newValidAssessment(t)
			err := a.Classify(valueobject.StageOne, tt.confidence, false)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "confidence must be between 0 and 100")
				assert.True(t, a.Stage().IsZero())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClassify_ZeroStage(t *testing.T) {
	a := newValidAssessment(t)

	err := a.Classify(valueobject.Stage{}, 50, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage is required")
}
