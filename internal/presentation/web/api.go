package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/dto"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/middleware"
)

var errTrailingData = errors.New("unexpected data after JSON object")

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type envelope struct {
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// FieldDescriptor describes one questionnaire field for API clients.
type FieldDescriptor struct {
	Name    string               `json:"name"`
	Kind    string               `json:"kind"`
	Levels  int                  `json:"levels"`
	Options []valueobject.Option `json:"options"`
}

func (h *Handler) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req dto.AssessRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes))
	dec.DisallowUnknownFields()
	err := dec.Decode(&req)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errTrailingData
	}
	if err != nil {
		msg := "request body must be a JSON object with a \"fields\" map"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		} else if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		writeError(w, r, http.StatusBadRequest, apiError{Code: "BAD_REQUEST", Message: msg})
		return
	}

	resp, err := h.assessor.Execute(r.Context(), req)
	if err != nil {
		p := mapDomainError(err)
		writeError(w, r, p.Status, apiError{Code: p.Code, Message: p.Message, Field: p.Field})
		return
	}

	writeJSON(w, http.StatusOK, envelope{Data: resp, RequestID: middleware.RequestIDFromContext(r.Context())})
}

func (h *Handler) listFields(w http.ResponseWriter, r *http.Request) {
	fields := valueobject.Fields()
	out := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldDescriptor{
			Name:    f.String(),
			Kind:    f.Kind().String(),
			Levels:  f.Levels(),
			Options: f.Options(),
		})
	}
	writeJSON(w, http.StatusOK, envelope{Data: out, RequestID: middleware.RequestIDFromContext(r.Context())})
}

func rateLimitedJSON(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusTooManyRequests, apiError{Code: "RATE_LIMITED", Message: msgRateLimited})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, e apiError) {
	writeJSON(w, status, envelope{Error: &e, RequestID: middleware.RequestIDFromContext(r.Context())})
}
