// Package bedtime turns a wake time, a sleep goal and a caffeine count into
// a recommended bedtime using a regression model.
package bedtime

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"bedtimecalc/internal/clock"
	"bedtimecalc/internal/model"
)

// Input bounds and defaults for one screen session.
const (
	MinSleepHours     = 4.0
	MaxSleepHours     = 12.0
	SleepStepHours    = 0.25
	DefaultSleepHours = 8.0

	MinCaffeineCups     = 1
	MaxCaffeineCups     = 20
	DefaultCaffeineCups = 1
)

// Predictions at or above maxPredictedSeconds overflow a time.Duration.
const maxPredictedSeconds = float64(math.MaxInt64) / float64(time.Second)

// DefaultWake is the wake time a new session starts with.
var DefaultWake = clock.Clock{Hour: 7}

const (
	TitleSuccess = "Your ideal bedtime is"
	TitleError   = "Error"
	ErrorMessage = "Sorry, there was a problem calculating your bedtime"
)

// ErrModelInference covers every way the model can fail: loading it,
// running it, or getting back a number that is not a sleep duration.
var ErrModelInference = errors.New("model inference failed")

// Result is what the screen shows after a calculation.
type Result struct {
	Title   string
	Message string
	OK      bool

	// Set only when OK.
	Bedtime        clock.Clock
	PredictedSleep time.Duration
	PreviousDay    bool

	// Err holds the cause of a failed calculation.
	Err error
}

// Estimator computes bedtimes. It holds no mutable state and is safe for
// concurrent use when its loader is.
type Estimator struct {
	load   model.Loader
	style  clock.Style
	logger *zap.Logger
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithStyle sets how bedtimes are formatted.
func WithStyle(s clock.Style) Option {
	return func(e *Estimator) { e.style = s }
}

// WithLogger sets the logger used to report model failures.
func WithLogger(l *zap.Logger) Option {
	return func(e *Estimator) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Estimator that loads its model through load on every
// estimate.
func New(load model.Loader, opts ...Option) *Estimator {
	e := &Estimator{
		load:   load,
		style:  clock.Style24h,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Style reports the formatting style in use.
func (e *Estimator) Style() clock.Style {
	return e.style
}

// Estimate always returns a result; model failures become the error result.
// Sleep goal and caffeine outside their ranges are clamped first.
func (e *Estimator) Estimate(wake clock.Clock, sleepGoalHours float64, caffeineCups int) Result {
	sleepGoalHours = ClampSleep(sleepGoalHours)
	caffeineCups = ClampCaffeine(caffeineCups)

	predicted, err := e.predict(wake, sleepGoalHours, caffeineCups)
	if err != nil {
		e.logger.Debug("bedtime calculation failed",
			zap.Stringer("wake", wake),
			zap.Float64("sleep_goal_hours", sleepGoalHours),
			zap.Int("caffeine_cups", caffeineCups),
			zap.Error(err),
		)
		return Result{Title: TitleError, Message: ErrorMessage, Err: err}
	}

	// Rounding the prediction up truncates the bedtime to the minute it falls in.
	back := math.Ceil(predicted)
	bed, _ := wake.Add(-int(math.Mod(back, clock.SecondsPerDay)))
	res := Result{
		Title:          TitleSuccess,
		Message:        bed.Format(e.style),
		OK:             true,
		Bedtime:        bed,
		PredictedSleep: time.Duration(predicted * float64(time.Second)),
		PreviousDay:    back > float64(wake.Seconds()),
	}
	e.logger.Debug("bedtime calculated",
		zap.Stringer("wake", wake),
		zap.Float64("sleep_goal_hours", sleepGoalHours),
		zap.Int("caffeine_cups", caffeineCups),
		zap.Duration("predicted_sleep", res.PredictedSleep),
		zap.Stringer("bedtime", bed),
	)
	return res
}

func (e *Estimator) predict(wake clock.Clock, sleepGoalHours float64, caffeineCups int) (float64, error) {
	if e.load == nil {
		return 0, fmt.Errorf("%w: no model configured", ErrModelInference)
	}
	p, err := e.load()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrModelInference, err)
	}
	if p == nil {
		return 0, fmt.Errorf("%w: loader returned no model", ErrModelInference)
	}
	v, err := p.Predict(float64(wake.Seconds()), sleepGoalHours, float64(caffeineCups))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrModelInference, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: unusable prediction %v", ErrModelInference, v)
	}
	if v >= maxPredictedSeconds {
		return 0, fmt.Errorf("%w: prediction %v does not fit a duration", ErrModelInference, v)
	}
	return v, nil
}

// ClampSleep pins h to [MinSleepHours, MaxSleepHours]. NaN becomes the default.
func ClampSleep(h float64) float64 {
	switch {
	case math.IsNaN(h):
		return DefaultSleepHours
	case h < MinSleepHours:
		return MinSleepHours
	case h > MaxSleepHours:
		return MaxSleepHours
	}
	return h
}

// ClampCaffeine pins n to [MinCaffeineCups, MaxCaffeineCups].
func ClampCaffeine(n int) int {
	if n < MinCaffeineCups {
		return MinCaffeineCups
	}
	if n > MaxCaffeineCups {
		return MaxCaffeineCups
	}
	return n
}
