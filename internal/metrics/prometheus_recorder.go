package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration    *prom.HistogramVec
	builds           *prom.CounterVec
	validationErrors *prom.CounterVec
	pages            prom.Gauge
	danglingLinks    prom.Gauge
}

// NewPrometheusRecorder constructs and registers the sitecfg metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitecfg",
			Name:      "build_duration_seconds",
			Help:      "Duration of site configuration builds",
			Buckets:   prom.DefBuckets,
		}, []string{"outcome"}),
		builds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "builds_total",
			Help:      "Site configuration builds by outcome",
		}, []string{"outcome"}),
		validationErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "validation_errors_total",
			Help:      "Validation failures by reason",
		}, []string{"reason"}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecfg",
			Name:      "content_pages",
			Help:      "Pages known to the content source at the last build",
		}),
		danglingLinks: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecfg",
			Name:      "dangling_links",
			Help:      "Internal links without a backing page at the last build",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.builds, pr.validationErrors, pr.pages, pr.danglingLinks)
	return pr
}

func (p *PrometheusRecorder) ObserveBuild(d time.Duration, outcome Outcome) {
	if p == nil {
		return
	}
	p.buildDuration.WithLabelValues(string(outcome)).Observe(d.Seconds())
	p.builds.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncValidationError(reason string) {
	if p == nil {
		return
	}
	p.validationErrors.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) SetPages(n int) {
	if p == nil {
		return
	}
	p.pages.Set(float64(n))
}

func (p *PrometheusRecorder) SetDanglingLinks(n int) {
	if p == nil {
		return
	}
	p.danglingLinks.Set(float64(n))
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
