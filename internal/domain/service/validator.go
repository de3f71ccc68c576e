package service

import (
	"strings"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

// FieldValidator checks that every questionnaire field was answered.
type FieldValidator struct{}

// NewFieldValidator creates a new FieldValidator.
func NewFieldValidator() *FieldValidator {
	return &FieldValidator{}
}

// Validate returns the answers keyed by Field. Unknown keys in raw are ignored.
// A value consisting only of whitespace counts as empty.
func (v *FieldValidator) Validate(raw map[string]string) (valueobject.FormInput, error) {
	input := make(valueobject.FormInput, valueobject.FieldCount)
	var missing []valueobject.Field

	for _, f := range valueobject.Fields() {
		value, ok := raw[f.String()]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, f)
			continue
		}
		input[f] = value
	}

	if len(missing) > 0 {
		return nil, &ValidationError{Field: missing[0], Missing: missing}
	}
	return input, nil
}
