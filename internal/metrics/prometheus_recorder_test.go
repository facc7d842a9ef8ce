package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveBuild(20*time.Millisecond, OutcomeSuccess)
	pr.ObserveBuild(5*time.Millisecond, OutcomeInvalid)
	pr.ObserveBuild(5*time.Millisecond, OutcomeInvalid)
	pr.IncValidationError("malformed URL")
	pr.SetPages(12)
	pr.SetDanglingLinks(1)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "/" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[key] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	require.InDelta(t, 1, values["sitecfg_builds_total/success"], 0.001)
	require.InDelta(t, 2, values["sitecfg_builds_total/invalid"], 0.001)
	require.InDelta(t, 2, values["sitecfg_build_duration_seconds/invalid"], 0.001)
	require.InDelta(t, 1, values["sitecfg_validation_errors_total/malformed URL"], 0.001)
	require.InDelta(t, 12, values["sitecfg_content_pages"], 0.001)
	require.InDelta(t, 1, values["sitecfg_dangling_links"], 0.001)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveBuild(time.Second, OutcomeFailed)
	pr.IncValidationError("x")
	pr.SetPages(1)
	pr.SetDanglingLinks(1)
}

func TestHTTPHandler_ServesMetrics(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveBuild(time.Millisecond, OutcomeSuccess)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "sitecfg_builds_total")
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuild(time.Second, OutcomeSuccess)
	r.IncValidationError("x")
	r.SetPages(3)
	r.SetDanglingLinks(0)
}
