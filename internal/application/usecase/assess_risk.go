package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/dto"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/model"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
)

// Failure categories reported to the AssessmentRecorder.
const (
	FailureValidation  = "validation"
	FailureEncoding    = "encoding"
	FailureUnavailable = "model_unavailable"
	FailureMetadata    = "metadata_missing"
	FailureUnexpected  = "unexpected"
)

const tracerName = "pulse/usecase"

// AssessRisk is the use case that turns a submitted questionnaire into a stage result.
type AssessRisk struct {
	validator  *service.FieldValidator
	encoder    *service.Encoder
	scaler     *service.Scaler
	classifier port.Classifier
	catalog    *service.Catalog
	recorder   port.AssessmentRecorder
	logger     *slog.Logger
	tracer     trace.Tracer
}

// NewAssessRisk creates a new AssessRisk use case. recorder may be nil.
func NewAssessRisk(
	classifier port.Classifier,
	catalog *service.Catalog,
	recorder port.AssessmentRecorder,
	logger *slog.Logger,
) *AssessRisk {
	return &AssessRisk{
		validator:  service.NewFieldValidator(),
		encoder:    service.NewEncoder(),
		scaler:     service.NewScaler(),
		classifier: classifier,
		catalog:    catalog,
		recorder:   recorder,
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
	}
}

// Execute validates, encodes, scales, classifies and resolves one submission.
func (uc *AssessRisk) Execute(ctx context.Context, req dto.AssessRequest) (dto.AssessmentResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "AssessRisk.Execute")
	defer span.End()

	resp, err := uc.execute(ctx, req)
	if err != nil {
		category := uc.recordFailure(ctx, err)
		span.SetAttributes(attribute.String("failure.category", category))
		span.RecordError(err)
		span.SetStatus(codes.Error, category)
		return dto.AssessmentResponse{}, err
	}

	span.SetAttributes(
		attribute.String("assessment.stage", resp.Stage),
		attribute.Bool("assessment.demonstration", resp.Demonstration),
	)
	return resp, nil
}

func (uc *AssessRisk) execute(ctx context.Context, req dto.AssessRequest) (dto.AssessmentResponse, error) {
	// 1. Every field answered.
	input, err := uc.validator.Validate(req.Fields)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	// 2. Answers to codes.
	encoded, err := uc.encoder.Encode(input)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	// 3. Codes to the normalized vector.
	scaled, err := uc.scaler.Scale(encoded)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to scale features: %w", err)
	}

	assessment, err := model.NewRiskAssessment(input, encoded, scaled)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	// 4. Inference.
	prediction, err := uc.classifier.Predict(ctx, scaled)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to classify: %w", err)
	}
	if err := assessment.Classify(prediction.Stage, prediction.Confidence, prediction.Demonstration); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to classify: %w", err)
	}

	// 5. Stage to display metadata.
	meta, err := uc.catalog.Resolve(assessment.Stage())
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to resolve stage: %w", err)
	}

	uc.logger.InfoContext(ctx, "assessment completed",
		"assessment_id", assessment.ID().String(),
		"stage", assessment.Stage().String(),
		"confidence", assessment.Confidence(),
		"demonstration", assessment.Demonstration(),
	)
	if uc.recorder != nil {
		uc.recorder.AssessmentCompleted(ctx, assessment.Stage(), assessment.Demonstration())
	}

	return dto.FromModel(assessment, meta), nil
}

func (uc *AssessRisk) recordFailure(ctx context.Context, err error) string {
	category := FailureCategory(err)

	switch category {
	case FailureValidation, FailureEncoding:
		uc.logger.WarnContext(ctx, "assessment rejected", "category", category, "error", err)
	case FailureUnavailable:
		uc.logger.WarnContext(ctx, "assessment unavailable", "error", err)
	default:
		uc.logger.ErrorContext(ctx, "assessment failed", "category", category, "error", err)
	}

	if uc.recorder != nil {
		uc.recorder.AssessmentFailed(ctx, category)
	}
	return category
}

// FailureCategory classifies a pipeline error into one of the Failure* categories.
func FailureCategory(err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return FailureValidation
	case errors.Is(err, service.ErrEncoding):
		return FailureEncoding
	case errors.Is(err, port.ErrClassifierUnavailable):
		return FailureUnavailable
	case errors.Is(err, service.ErrMetadataMissing), errors.Is(err, port.ErrUnknownStage):
		return FailureMetadata
	default:
		return FailureUnexpected
	}
}
