package ml_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/infrastructure/ml"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/pkg/testutil"
)

func systolicVector(v float64) []float64 {
	x := make([]float64, valueobject.FieldCount)
	x[valueobject.FieldSystolic.Index()] = v
	return x
}

func zeroRows(n int) string {
	row := "[" + strings.TrimSuffix(strings.Repeat("0, ", valueobject.FieldCount), ", ") + "]"
	rows := make([]string, n)
	for i := range rows {
		rows[i] = "  - " + row
	}
	return strings.Join(rows, "\n")
}

func TestLoadLogisticModel_YAML(t *testing.T) {
	m, err := ml.LoadLogisticModel("testdata/logreg.yaml")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, m.Classes())

	low, err := m.Predict(systolicVector(0))
	require.NoError(t, err)
	assert.Equal(t, 0, low)

	high, err := m.Predict(systolicVector(1))
	require.NoError(t, err)
	assert.Equal(t, 3, high)
}

func TestLogisticModel_SoftmaxProbabilities(t *testing.T) {
	m, err := ml.LoadLogisticModel("testdata/logreg.yaml")
	require.NoError(t, err)

	probs, err := m.PredictProba(systolicVector(1))
	require.NoError(t, err)
	require.Len(t, probs, 4)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.InDelta(t, 0.8661, probs[3], 1e-4)

	probs, err = m.PredictProba(systolicVector(0))
	require.NoError(t, err)
	assert.InDelta(t, 0.4754, probs[0], 1e-4)
}

func TestLoadLogisticModel_JSONOneVsRest(t *testing.T) {
	m, err := ml.LoadLogisticModel("testdata/logreg_ovr.json")
	require.NoError(t, err)

	probs, err := m.PredictProba(systolicVector(0.5))
	require.NoError(t, err)
	for _, p := range probs {
		assert.InDelta(t, 0.25, p, 1e-12)
	}
}

func TestLoadLogisticModel_MissingFile(t *testing.T) {
	_, err := ml.LoadLogisticModel("testdata/does-not-exist.yaml")

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLogisticModel_RejectsWrongVectorLength(t *testing.T) {
	m, err := ml.LoadLogisticModel("testdata/logreg.yaml")
	require.NoError(t, err)

	_, err = m.Predict([]float64{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 13 features")

	_, err = m.PredictProba(nil)
	require.Error(t, err)
}

func TestParseLogisticModel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "wrong kind",
			doc:     "kind: svm\nclasses: [0, 1]\n",
			wantErr: "unsupported model kind",
		},
		{
			name:    "bad multi_class",
			doc:     "kind: logistic_regression\nmulti_class: crammer\nclasses: [0, 1]\n",
			wantErr: "unsupported multi_class",
		},
		{
			name:    "single class",
			doc:     "kind: logistic_regression\nclasses: [0]\n",
			wantErr: "at least 2 classes",
		},
		{
			name:    "duplicate class",
			doc:     "kind: logistic_regression\nclasses: [1, 1]\n",
			wantErr: "duplicate class",
		},
		{
			name:    "class outside stage set",
			doc:     "kind: logistic_regression\nclasses: [0, 4]\n",
			wantErr: "class outside stage set",
		},
		{
			name:    "feature order mismatch",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\nfeature_names: [Age, Gender, History, Patient, TakeMedication, Severity, Breathshortness, Visualchanges, Nosebleeding, whendiagnosed, Systolic, Diastolic, ControlledDiet]\n",
			wantErr: `feature 0 is "Age"`,
		},
		{
			name:    "feature count mismatch",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\nfeature_names: [Gender]\n",
			wantErr: "lists 1 features",
		},
		{
			name:    "row count mismatch",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\ncoefficients:\n" + zeroRows(1) + "\nintercepts: [0, 0]\n",
			wantErr: "coefficients have 1 rows",
		},
		{
			name:    "column count mismatch",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\ncoefficients:\n  - [0, 0]\n  - [0, 0]\nintercepts: [0, 0]\n",
			wantErr: "has 2 columns",
		},
		{
			name:    "intercept count mismatch",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\ncoefficients:\n" + zeroRows(2) + "\nintercepts: [0]\n",
			wantErr: "got 1 intercepts",
		},
		{
			name:    "non-finite intercept",
			doc:     "kind: logistic_regression\nclasses: [0, 1]\ncoefficients:\n" + zeroRows(2) + "\nintercepts: [0, .nan]\n",
			wantErr: "non-finite",
		},
		{
			name:    "malformed document",
			doc:     "kind: [",
			wantErr: "decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ml.ParseLogisticModel([]byte(tt.doc))
			testutil.AssertErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseLogisticModel_BinarySubsetOfStages(t *testing.T) {
	doc := "kind: logistic_regression\nclasses: [0, 3]\ncoefficients:\n" + zeroRows(2) + "\nintercepts: [0, 1]\n"

	m, err := ml.ParseLogisticModel([]byte(doc))
	require.NoError(t, err)

	class, err := m.Predict(systolicVector(0))
	require.NoError(t, err)
	assert.Equal(t, 3, class)
}
