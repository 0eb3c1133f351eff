package bedtime

import (
	"math"
	"strconv"

	"bedtimecalc/internal/clock"
)

// Defaults are the values a Session starts from.
type Defaults struct {
	Wake         clock.Clock
	SleepHours   float64
	CaffeineCups int
}

// StandardDefaults returns 07:00, 8 hours, 1 cup.
func StandardDefaults() Defaults {
	return Defaults{
		Wake:         DefaultWake,
		SleepHours:   DefaultSleepHours,
		CaffeineCups: DefaultCaffeineCups,
	}
}

// Session is the state of one calculator screen. Every change to an input
// recomputes the result before the call returns.
type Session struct {
	est *Estimator

	wake     clock.Clock
	sleep    float64
	caffeine int

	result Result
}

// NewSession starts a session from d and computes the first result.
func NewSession(est *Estimator, d Defaults) *Session {
	s := &Session{
		est:      est,
		wake:     d.Wake,
		sleep:    snapSleep(ClampSleep(d.SleepHours)),
		caffeine: ClampCaffeine(d.CaffeineCups),
	}
	s.recalculate()
	return s
}

func (s *Session) recalculate() {
	s.result = s.est.Estimate(s.wake, s.sleep, s.caffeine)
}

func (s *Session) Wake() clock.Clock   { return s.wake }
func (s *Session) SleepHours() float64 { return s.sleep }
func (s *Session) CaffeineCups() int   { return s.caffeine }
func (s *Session) Result() Result      { return s.result }

// SetWake changes the wake time.
func (s *Session) SetWake(c clock.Clock) {
	if c == s.wake {
		return
	}
	s.wake = c
	s.recalculate()
}

// SetSleep sets the sleep goal, clamped and snapped to the step.
func (s *Session) SetSleep(h float64) {
	h = snapSleep(ClampSleep(h))
	if h == s.sleep {
		return
	}
	s.sleep = h
	s.recalculate()
}

// IncrementSleep adds one step; at the upper bound it does nothing.
func (s *Session) IncrementSleep() bool {
	if s.sleep >= MaxSleepHours {
		return false
	}
	s.SetSleep(s.sleep + SleepStepHours)
	return true
}

// DecrementSleep removes one step; at the lower bound it does nothing.
func (s *Session) DecrementSleep() bool {
	if s.sleep <= MinSleepHours {
		return false
	}
	s.SetSleep(s.sleep - SleepStepHours)
	return true
}

// SetCaffeine sets the cup count, clamped to its range.
func (s *Session) SetCaffeine(n int) {
	n = ClampCaffeine(n)
	if n == s.caffeine {
		return
	}
	s.caffeine = n
	s.recalculate()
}

func (s *Session) IncrementCaffeine() bool {
	if s.caffeine >= MaxCaffeineCups {
		return false
	}
	s.SetCaffeine(s.caffeine + 1)
	return true
}

func (s *Session) DecrementCaffeine() bool {
	if s.caffeine <= MinCaffeineCups {
		return false
	}
	s.SetCaffeine(s.caffeine - 1)
	return true
}

// SleepLabel renders the goal the way the stepper shows it, e.g. "8.25 hours".
func (s *Session) SleepLabel() string {
	return FormatHours(s.sleep) + " hours"
}

// CaffeineLabel renders "1 cup" or "N cups".
func (s *Session) CaffeineLabel() string {
	return CupsLabel(s.caffeine)
}

// FormatHours prints h without trailing zeros: 8, 8.25, 8.5.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// CupsLabel renders a caffeine count.
func CupsLabel(n int) string {
	if n == 1 {
		return "1 cup"
	}
	return strconv.Itoa(n) + " cups"
}

// snapSleep rounds h to the nearest stepper position.
func snapSleep(h float64) float64 {
	return math.Round(h/SleepStepHours) * SleepStepHours
}
