package ml

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
)

// Mode describes which classifier the service is running with.
type Mode string

const (
	ModeLive          Mode = "live"
	ModeDemonstration Mode = "demonstration"
	ModeUnavailable   Mode = "unavailable"
)

// LoadResult is the outcome of loading the classifier at startup.
type LoadResult struct {
	Classifier port.Classifier
	// Cause is the load error when Mode is not ModeLive.
	Cause error
	Mode  Mode
}

// Ready reports whether submissions can be answered.
func (r LoadResult) Ready() bool {
	return r.Mode != ModeUnavailable
}

// Load reads the model artifact at path. It never fails: a missing or broken
// artifact degrades to the demonstration classifier when allowDemo is set and
// to UnavailableClassifier otherwise.
func Load(path string, allowDemo bool, logger *slog.Logger) LoadResult {
	model, err := LoadLogisticModel(path)
	if err == nil {
		logger.Info("classifier loaded", "path", path, "classes", model.Classes())
		return LoadResult{
			Classifier: NewModelClassifier(model, logger),
			Mode:       ModeLive,
		}
	}

	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("model file not found", "path", path)
	} else {
		logger.Error("failed to load model", "path", path, "error", err)
	}

	if allowDemo {
		logger.Warn("serving demonstration predictions; results are not clinical inferences")
		return LoadResult{
			Classifier: NewDemoClassifier(logger, nil),
			Cause:      err,
			Mode:       ModeDemonstration,
		}
	}

	logger.Warn("demonstration mode disabled; assessments will be refused until a model is installed")
	return LoadResult{
		Classifier: NewUnavailableClassifier(err),
		Cause:      err,
		Mode:       ModeUnavailable,
	}
}
