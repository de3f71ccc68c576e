package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/dto"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/middleware"
)

// maxFormBytes bounds a questionnaire submission.
const maxFormBytes = 64 << 10

// Assessor runs the assessment pipeline.
type Assessor interface {
	Execute(ctx context.Context, req dto.AssessRequest) (dto.AssessmentResponse, error)
}

// Handler serves the questionnaire page and the JSON API.
type Handler struct {
	assessor Assessor
	renderer *Renderer
	logger   *slog.Logger
}

// NewHandler constructs the web handler.
func NewHandler(assessor Assessor, renderer *Renderer, logger *slog.Logger) *Handler {
	return &Handler{assessor: assessor, renderer: renderer, logger: logger}
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil, nil)
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(r.Context(), "failed to parse form",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		h.render(w, r, http.StatusBadRequest, nil, nil, Flash{Category: FlashError, Message: "The form submission could not be read. Please try again."})
		return
	}

	submitted := submittedFields(r)

	resp, err := h.assessor.Execute(r.Context(), dto.AssessRequest{Fields: submitted})
	if err != nil {
		p := mapDomainError(err)
		h.render(w, r, p.Status, submitted, nil, Flash{Category: p.Category, Message: p.Message})
		return
	}

	var flashes []Flash
	if resp.Demonstration {
		flashes = append(flashes, Flash{Category: FlashInfo, Message: msgDemo})
	}
	h.render(w, r, http.StatusOK, submitted, &resp, flashes...)
}

func (h *Handler) rateLimitedPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusTooManyRequests, nil, nil, Flash{Category: FlashError, Message: msgRateLimited})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, submitted map[string]string, result *dto.AssessmentResponse, flashes ...Flash) {
	if err := h.renderer.Render(w, status, submitted, result, flashes...); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		http.Error(w, msgUnexpected, http.StatusInternalServerError)
	}
}

// submittedFields keeps the first value of every known field present in the form.
func submittedFields(r *http.Request) map[string]string {
	fields := make(map[string]string, valueobject.FieldCount)
	for _, f := range valueobject.Fields() {
		if vs, ok := r.PostForm[f.String()]; ok && len(vs) > 0 {
			fields[f.String()] = vs[0]
		}
	}
	return fields
}
