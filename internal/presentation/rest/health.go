package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ClassifierState describes the classifier the service started with.
type ClassifierState struct {
	Mode  string
	Ready bool
}

// HealthHandler provides HTTP health check endpoints for the pulse service.
type HealthHandler struct {
	logger     *slog.Logger
	service    string
	classifier ClassifierState
	startTime  time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger *slog.Logger, service string, classifier ClassifierState) *HealthHandler {
	return &HealthHandler{
		logger:     logger,
		service:    service,
		classifier: classifier,
		startTime:  time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the router.
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Healthz)
	r.Get("/readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// Readyz handles readiness probe requests. The service is not ready when no
// classifier can answer submissions.
func (h *HealthHandler) Readyz(w http.ResponseWriter, _ *http.Request) {
	resp := ReadinessResponse{
		Status:  "ready",
		Service: h.service,
		Checks:  map[string]string{"classifier": h.classifier.Mode},
	}
	status := http.StatusOK
	if !h.classifier.Ready {
		resp.Status = "not_ready"
		status = http.StatusServiceUnavailable
	}
	h.write(w, status, resp)
}

func (h *HealthHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
