// Package server exposes the latest site configuration build over HTTP: the
// demo landing page, the JSON manifest, the Hugo config export, health and
// Prometheus metrics.
package server
