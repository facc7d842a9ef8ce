package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

func runBuild(t *testing.T, raw site.RawConfig) (*build.Result, error) {
	t.Helper()
	svc := build.NewService().WithLoader(func(string) (site.RawConfig, error) { return raw, nil })
	return svc.Run(context.Background(), build.Request{})
}

func validRaw() site.RawConfig {
	return site.RawConfig{
		Title: "Docs",
		Base:  "/repo/",
		Nav:   []site.RawNavEntry{{Text: "Home", Link: "/"}},
		Sidebar: []site.RawSidebarSection{{
			Text:  "Guide",
			Items: []site.RawSidebarItem{{Text: "Intro", Link: "/intro"}},
		}},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServer_NotReady(t *testing.T) {
	h := New(&State{}, nil).Handler()

	rec := get(t, h, "/site.json")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(t, h, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_InvalidFirstBuildIsBadRequest(t *testing.T) {
	state := &State{}
	state.Update(runBuild(t, site.RawConfig{Title: "Docs", Base: "repo"}))

	rec := get(t, New(state, nil).Handler(), "/site.json")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "validation", body.Code)
	require.Equal(t, "base", body.Details["path"])
}

func TestServer_ServesManifestAndHugoConfig(t *testing.T) {
	state := &State{}
	state.Update(runBuild(t, validRaw()))
	h := New(state, nil).Handler()

	rec := get(t, h, "/site.json")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var manifest struct {
		BuildID string `json:"buildId"`
		Site    struct {
			Base string `json:"base"`
		} `json:"site"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifest))
	require.Equal(t, "/repo/", manifest.Site.Base)
	require.NotEmpty(t, manifest.BuildID)

	rec = get(t, h, "/hugo.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "baseURL: /repo/")

	rec = get(t, h, "/")
	require.Contains(t, rec.Body.String(), `href="/repo/intro"`)
}

func TestServer_FailedRebuildKeepsPreviousConfig(t *testing.T) {
	state := &State{}
	state.Update(runBuild(t, validRaw()))
	first := state.Current().BuildID

	state.Update(runBuild(t, site.RawConfig{}))
	snap := state.Current()
	require.True(t, snap.Ready)
	require.Equal(t, first, snap.BuildID)
	require.Error(t, snap.LastErr)

	h := New(state, nil).Handler()
	require.Equal(t, http.StatusOK, get(t, h, "/site.json").Code)

	rec := get(t, h, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	var health HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "degraded", health.Status)
	require.Contains(t, health.LastError, "title")
}

func TestState_CurrentIsACopy(t *testing.T) {
	state := &State{}
	state.Update(runBuild(t, validRaw()))

	snap := state.Current()
	snap.Config.Nav[0].Text = "changed"
	require.Equal(t, "Home", state.Current().Config.Nav[0].Text)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	reg := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)
	rec.ObserveBuild(time.Millisecond, metrics.OutcomeSuccess)

	resp := get(t, New(&State{}, reg).Handler(), "/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "sitecfg_builds_total")
}

func TestChain_RecoversPanics(t *testing.T) {
	s := New(&State{}, nil)
	h := s.mchain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))

	rec := get(t, h, "/")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	state := &State{}
	state.Update(runBuild(t, validRaw()))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(state, nil).Serve(ctx, ln) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String() + "/site.json")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Contains(t, string(body), `"base": "/repo/"`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
