package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
)

// Flash categories understood by the page template.
const (
	FlashError = "error"
	FlashInfo  = "info"
)

const (
	msgUnexpected  = "System error occurred. Please try again or contact technical support."
	msgUnavailable = "The prediction model is currently unavailable. Please try again later."
	msgDemo        = "Demo Mode: Using simulated AI prediction for demonstration"
	msgRateLimited = "Too many requests. Please wait a moment and try again."
)

// problem is the user-facing rendering of a pipeline error.
type problem struct {
	Status   int
	Code     string
	Message  string
	Field    string
	Category string
}

func mapDomainError(err error) problem {
	var verr *service.ValidationError
	var eerr *service.EncodingError

	switch {
	case errors.As(err, &verr):
		return problem{
			Status:   http.StatusUnprocessableEntity,
			Code:     "VALIDATION_ERROR",
			Message:  fmt.Sprintf("Please complete all required fields: %s", verr.Field),
			Field:    verr.Field.String(),
			Category: FlashError,
		}
	case errors.As(err, &eerr):
		return problem{
			Status:   http.StatusUnprocessableEntity,
			Code:     "INVALID_SELECTION",
			Message:  fmt.Sprintf("Invalid selection detected: %q is not a valid answer for %s", eerr.Value, eerr.Field),
			Field:    eerr.Field.String(),
			Category: FlashError,
		}
	case errors.Is(err, port.ErrClassifierUnavailable):
		return problem{
			Status:   http.StatusServiceUnavailable,
			Code:     "MODEL_UNAVAILABLE",
			Message:  msgUnavailable,
			Category: FlashInfo,
		}
	default:
		return problem{
			Status:   http.StatusInternalServerError,
			Code:     "INTERNAL_ERROR",
			Message:  msgUnexpected,
			Category: FlashError,
		}
	}
}
