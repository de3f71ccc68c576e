package ml

import (
	"fmt"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

const (
	// KindLogisticRegression is the only artifact kind understood by this package.
	KindLogisticRegression = "logistic_regression"

	MultiClassMultinomial = "multinomial"
	MultiClassOVR         = "ovr"
)

// artifact is the on-disk shape of an exported logistic regression. YAML is a
// superset of JSON, so a JSON export decodes through the same path.
type artifact struct {
	Kind         string      `yaml:"kind"`
	MultiClass   string      `yaml:"multi_class"`
	Classes      []int       `yaml:"classes"`
	FeatureNames []string    `yaml:"feature_names"`
	Coefficients [][]float64 `yaml:"coefficients"`
	Intercepts   []float64   `yaml:"intercepts"`
}

// LogisticModel is a trained multi-class logistic regression. It is read-only
// after construction and safe for concurrent use.
type LogisticModel struct {
	multiClass   string
	classes      []int
	coefficients [][]float64
	intercepts   []float64
}

// LoadLogisticModel reads and validates an artifact file. A missing file
// yields an error satisfying errors.Is(err, fs.ErrNotExist).
func LoadLogisticModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	m, err := ParseLogisticModel(data)
	if err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	return m, nil
}

// ParseLogisticModel decodes and validates an artifact.
func ParseLogisticModel(data []byte) (*LogisticModel, error) {
	var a artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if a.Kind != KindLogisticRegression {
		return nil, fmt.Errorf("unsupported model kind %q", a.Kind)
	}

	multiClass := a.MultiClass
	if multiClass == "" {
		multiClass = MultiClassMultinomial
	}
	if multiClass != MultiClassMultinomial && multiClass != MultiClassOVR {
		return nil, fmt.Errorf("unsupported multi_class %q", a.MultiClass)
	}

	if len(a.Classes) < 2 {
		return nil, fmt.Errorf("need at least 2 classes, got %d", len(a.Classes))
	}
	seen := make(map[int]bool, len(a.Classes))
	for _, c := range a.Classes {
		if seen[c] {
			return nil, fmt.Errorf("duplicate class %d", c)
		}
		seen[c] = true
		if _, err := valueobject.StageFromClass(c); err != nil {
			return nil, fmt.Errorf("class outside stage set: %w", err)
		}
	}

	if len(a.FeatureNames) > 0 {
		if err := checkFeatureOrder(a.FeatureNames); err != nil {
			return nil, err
		}
	}

	if len(a.Coefficients) != len(a.Classes) {
		return nil, fmt.Errorf("coefficients have %d rows, want %d", len(a.Coefficients), len(a.Classes))
	}
	for i, row := range a.Coefficients {
		if len(row) != valueobject.FieldCount {
			return nil, fmt.Errorf("coefficient row %d has %d columns, want %d", i, len(row), valueobject.FieldCount)
		}
		if !allFinite(row) {
			return nil, fmt.Errorf("coefficient row %d contains a non-finite value", i)
		}
	}
	if len(a.Intercepts) != len(a.Classes) {
		return nil, fmt.Errorf("got %d intercepts, want %d", len(a.Intercepts), len(a.Classes))
	}
	if !allFinite(a.Intercepts) {
		return nil, fmt.Errorf("intercepts contain a non-finite value")
	}

	coefficients := make([][]float64, len(a.Coefficients))
	for i, row := range a.Coefficients {
		coefficients[i] = slices.Clone(row)
	}

	return &LogisticModel{
		multiClass:   multiClass,
		classes:      slices.Clone(a.Classes),
		coefficients: coefficients,
		intercepts:   slices.Clone(a.Intercepts),
	}, nil
}

func checkFeatureOrder(names []string) error {
	fields := valueobject.Fields()
	if len(names) != len(fields) {
		return fmt.Errorf("artifact lists %d features, want %d", len(names), len(fields))
	}
	for i, f := range fields {
		if names[i] != f.String() {
			return fmt.Errorf("feature %d is %q, want %q", i, names[i], f.String())
		}
	}
	return nil
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Classes returns the class labels in column order of PredictProba.
func (m *LogisticModel) Classes() []int {
	return slices.Clone(m.classes)
}

// Predict returns the class with the highest decision score.
func (m *LogisticModel) Predict(x []float64) (int, error) {
	scores, err := m.decision(x)
	if err != nil {
		return 0, err
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return m.classes[best], nil
}

// PredictProba returns one probability per class, summing to 1.
func (m *LogisticModel) PredictProba(x []float64) ([]float64, error) {
	scores, err := m.decision(x)
	if err != nil {
		return nil, err
	}
	if m.multiClass == MultiClassOVR {
		return normalizedSigmoid(scores), nil
	}
	return softmax(scores), nil
}

func (m *LogisticModel) decision(x []float64) ([]float64, error) {
	if len(x) != valueobject.FieldCount {
		return nil, fmt.Errorf("expected %d features, got %d", valueobject.FieldCount, len(x))
	}
	scores := make([]float64, len(m.classes))
	for i, row := range m.coefficients {
		z := m.intercepts[i]
		for j, w := range row {
			z += w * x[j]
		}
		scores[i] = z
	}
	return scores, nil
}

func softmax(scores []float64) []float64 {
	maxScore := slices.Max(scores)
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

func normalizedSigmoid(scores []float64) []float64 {
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = 1 / (1 + math.Exp(-s))
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
