package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

var (
	// ErrValidation marks a missing or empty form field.
	ErrValidation = errors.New("validation failed")

	// ErrEncoding marks an answer outside the field's option set.
	ErrEncoding = errors.New("encoding failed")

	// ErrMetadataMissing marks a stage with no catalog entry. It means the
	// classifier output space and the catalog have drifted apart.
	ErrMetadataMissing = errors.New("stage metadata missing")
)

// ValidationError reports required fields that were absent or empty.
type ValidationError struct {
	// Field is the first missing field in feature order.
	Field valueobject.Field
	// Missing lists every missing field in feature order.
	Missing []valueobject.Field
}

func (e *ValidationError) Error() string {
	if len(e.Missing) <= 1 {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = f.String()
	}
	return fmt.Sprintf("missing required fields: %s", strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// EncodingError reports an answer that has no code in the field's lookup table.
type EncodingError struct {
	Field valueobject.Field
	Value string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
