// Package metrics records site configuration builds.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// opt-in without nil checks. The serve command swaps in a PrometheusRecorder
// and exposes it through HTTPHandler.
package metrics
