package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
)

const meterName = "pulse/assessments"

// MetricsRecorder implements port.AssessmentRecorder with OpenTelemetry counters.
type MetricsRecorder struct {
	completed metric.Int64Counter
	failed    metric.Int64Counter
}

// NewMetricsRecorder registers the assessment counters on the provider's meter.
func NewMetricsRecorder(provider metric.MeterProvider) (*MetricsRecorder, error) {
	meter := provider.Meter(meterName)

	completed, err := meter.Int64Counter("pulse.assessments",
		metric.WithDescription("Completed assessments by stage"),
		metric.WithUnit("{assessment}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create assessments counter: %w", err)
	}

	failed, err := meter.Int64Counter("pulse.assessment_failures",
		metric.WithDescription("Rejected or failed assessments by category"),
		metric.WithUnit("{assessment}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create failures counter: %w", err)
	}

	return &MetricsRecorder{completed: completed, failed: failed}, nil
}

// AssessmentCompleted increments pulse.assessments.
func (r *MetricsRecorder) AssessmentCompleted(ctx context.Context, stage valueobject.Stage, demonstration bool) {
	r.completed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage.String()),
		attribute.Bool("demonstration", demonstration),
	))
}

// AssessmentFailed increments pulse.assessment_failures.
func (r *MetricsRecorder) AssessmentFailed(ctx context.Context, category string) {
	r.failed.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}
