package metrics

import "time"

// Outcome enumerates build results for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeInvalid Outcome = "invalid"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for configuration builds.
type Recorder interface {
	ObserveBuild(d time.Duration, outcome Outcome)
	IncValidationError(reason string)
	SetPages(n int)
	SetDanglingLinks(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuild(time.Duration, Outcome) {}
func (NoopRecorder) IncValidationError(string)           {}
func (NoopRecorder) SetPages(int)                        {}
func (NoopRecorder) SetDanglingLinks(int)                {}
