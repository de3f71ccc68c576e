package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/dto"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/usecase"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/valueobject"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/infrastructure/ml"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/pkg/testutil"
)

type countingRecorder struct {
	mu        sync.Mutex
	completed int
	failures  map[string]int
}

func (r *countingRecorder) AssessmentCompleted(context.Context, valueobject.Stage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed++
}

func (r *countingRecorder) AssessmentFailed(_ context.Context, category string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures == nil {
		r.failures = make(map[string]int)
	}
	r.failures[category]++
}

// concurrentRequest builds the i-th submission: baseline, high risk, a missing
// field or an unrecognized answer.
func concurrentRequest(i int) (dto.AssessRequest, error) {
	switch i % 4 {
	case 0:
		return dto.AssessRequest{Fields: testutil.BaselineFields()}, nil
	case 1:
		return dto.AssessRequest{Fields: testutil.HighRiskFields()}, nil
	case 2:
		f := testutil.BaselineFields()
		delete(f, "Diastolic")
		return dto.AssessRequest{Fields: f}, service.ErrValidation
	default:
		f := testutil.HighRiskFields()
		f["Gender"] = "Other"
		return dto.AssessRequest{Fields: f}, service.ErrEncoding
	}
}

func runConcurrently(t *testing.T, uc *usecase.AssessRisk, goroutines int) ([]dto.AssessmentResponse, []error) {
	t.Helper()

	responses := make([]dto.AssessmentResponse, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			req, _ := concurrentRequest(idx)
			responses[idx], errs[idx] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	return responses, errs
}

func TestAssessRisk_ConcurrentExecute(t *testing.T) {
	const goroutines = 64

	model, err := ml.LoadLogisticModel("../../infrastructure/ml/testdata/logreg.yaml")
	require.NoError(t, err)

	classifiers := map[string]port.Classifier{
		"live model":    ml.NewModelClassifier(model, discardLogger()),
		"demonstration": ml.NewDemoClassifier(discardLogger(), nil),
	}

	for name, classifier := range classifiers {
		t.Run(name, func(t *testing.T) {
			recorder := &countingRecorder{}
			uc := usecase.NewAssessRisk(classifier, testutil.DefaultCatalog(t), recorder, discardLogger())

			// Sequential results are the reference for each input shape.
			want := make([]dto.AssessmentResponse, 2)
			for i := range want {
				req, _ := concurrentRequest(i)
				want[i], err = uc.Execute(context.Background(), req)
				require.NoError(t, err)
			}
			recorder = &countingRecorder{}
			uc = usecase.NewAssessRisk(classifier, testutil.DefaultCatalog(t), recorder, discardLogger())

			responses, errs := runConcurrently(t, uc, goroutines)

			seen := make(map[string]bool, goroutines)
			for i := 0; i < goroutines; i++ {
				req, wantErr := concurrentRequest(i)
				if wantErr != nil {
					require.Error(t, errs[i], "request %d", i)
					assert.True(t, errors.Is(errs[i], wantErr), "request %d: %v", i, errs[i])
					assert.Equal(t, dto.AssessmentResponse{}, responses[i])
					continue
				}

				require.NoError(t, errs[i], "request %d", i)
				got := responses[i]
				ref := want[i%4]
				assert.Equal(t, req.Fields, got.Input, "request %d", i)
				assert.Equal(t, ref.Encoded, got.Encoded, "request %d", i)
				assert.Equal(t, ref.Scaled, got.Scaled, "request %d", i)
				if !got.Demonstration {
					assert.Equal(t, ref.Stage, got.Stage, "request %d", i)
					assert.Equal(t, ref.Confidence, got.Confidence, "request %d", i)
				}

				assert.False(t, seen[got.ID.String()], "duplicate assessment id")
				seen[got.ID.String()] = true
			}

			recorder.mu.Lock()
			defer recorder.mu.Unlock()
			assert.Equal(t, goroutines/2, recorder.completed)
			assert.Equal(t, map[string]int{
				usecase.FailureValidation: goroutines / 4,
				usecase.FailureEncoding:   goroutines / 4,
			}, recorder.failures)
		})
	}
}
