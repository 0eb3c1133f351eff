// Package model is the regression model used to predict how much sleep a
// person actually gets. Callers only see the Predictor interface: three
// features in, predicted sleep in seconds out.
package model

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Feature names, in the order Predict takes them.
const (
	FeatureWake           = "wake"
	FeatureEstimatedSleep = "estimatedSleep"
	FeatureCoffee         = "coffee"
)

var features = []string{FeatureWake, FeatureEstimatedSleep, FeatureCoffee}

var (
	// ErrInvalidArtifact is returned when a model artifact cannot be used.
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrPrediction is returned when a prediction is not a usable number.
	ErrPrediction = errors.New("prediction failed")
)

// Predictor maps (wake seconds, sleep goal hours, coffee cups) to the
// predicted actual sleep in seconds.
type Predictor interface {
	Predict(wake, estimatedSleep, coffee float64) (float64, error)
}

// Loader produces a ready Predictor. It is called once per estimate.
type Loader func() (Predictor, error)

// PredictorFunc adapts a plain function to Predictor.
type PredictorFunc func(wake, estimatedSleep, coffee float64) (float64, error)

func (f PredictorFunc) Predict(wake, estimatedSleep, coffee float64) (float64, error) {
	return f(wake, estimatedSleep, coffee)
}

// Static returns a Loader that always hands back p.
func Static(p Predictor) Loader {
	return func() (Predictor, error) { return p, nil }
}

// Artifact is the on-disk description of a linear regression model.
type Artifact struct {
	Name         string             `yaml:"name"`
	Kind         string             `yaml:"kind"`
	Target       string             `yaml:"target"`
	Intercept    float64            `yaml:"intercept"`
	Coefficients map[string]float64 `yaml:"coefficients"`
}

// Linear is a fitted linear regression over the three features.
type Linear struct {
	Name      string
	Intercept float64
	Weights   [3]float64
}

// Predict evaluates intercept + w·x. Non-finite results are errors.
func (l *Linear) Predict(wake, estimatedSleep, coffee float64) (float64, error) {
	x := [3]float64{wake, estimatedSleep, coffee}
	y := l.Intercept
	for i, w := range l.Weights {
		y += w * x[i]
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: %s produced %v", ErrPrediction, l.Name, y)
	}
	return y, nil
}

//go:embed sleepcalculator.yaml
var defaultArtifact []byte

// Default returns the model bundled with the binary.
func Default() (*Linear, error) {
	return Parse(defaultArtifact)
}

// DefaultLoader loads the bundled model.
func DefaultLoader() (Predictor, error) {
	l, err := Default()
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads a model artifact from path.
func Load(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return l, nil
}

// FileLoader returns a Loader that re-reads path on every call.
func FileLoader(path string) Loader {
	return func() (Predictor, error) {
		l, err := Load(path)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

// Parse decodes and validates a YAML artifact.
func Parse(data []byte) (*Linear, error) {
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return a.Linear()
}

// Linear validates the artifact and builds the regression from it.
func (a Artifact) Linear() (*Linear, error) {
	if a.Kind != "linear" {
		return nil, fmt.Errorf("%w: unsupported kind %q", ErrInvalidArtifact, a.Kind)
	}
	if a.Target != "" && a.Target != "actualSleep" {
		return nil, fmt.Errorf("%w: unsupported target %q", ErrInvalidArtifact, a.Target)
	}
	if !finite(a.Intercept) {
		return nil, fmt.Errorf("%w: intercept is not finite", ErrInvalidArtifact)
	}

	var unknown []string
	for name := range a.Coefficients {
		if !known(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown features %s", ErrInvalidArtifact, strings.Join(unknown, ", "))
	}

	l := &Linear{Name: a.Name, Intercept: a.Intercept}
	if l.Name == "" {
		l.Name = "model"
	}
	for i, name := range features {
		w, ok := a.Coefficients[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing coefficient %q", ErrInvalidArtifact, name)
		}
		if !finite(w) {
			return nil, fmt.Errorf("%w: coefficient %q is not finite", ErrInvalidArtifact, name)
		}
		l.Weights[i] = w
	}
	return l, nil
}

func known(name string) bool {
	for _, f := range features {
		if f == name {
			return true
		}
	}
	return false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
