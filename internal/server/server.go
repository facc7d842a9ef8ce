package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecfg/internal/demo"
	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/render"
)

const shutdownTimeout = 5 * time.Second

// Server serves the current State.
type Server struct {
	state        *State
	registry     *prom.Registry
	errorAdapter *ferrors.HTTPErrorAdapter
	mchain       func(http.Handler) http.Handler
}

// New wires a Server. registry may be nil, in which case /metrics is not mounted.
func New(state *State, registry *prom.Registry) *Server {
	adapter := ferrors.NewHTTPErrorAdapter(slog.Default())
	return &Server{
		state:        state,
		registry:     registry,
		errorAdapter: adapter,
		mchain:       Chain(slog.Default(), adapter),
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", demo.NewHandler(s.pageData))
	mux.HandleFunc("GET /site.json", s.handleManifest)
	mux.HandleFunc("GET /hugo.yaml", s.handleHugoConfig)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.registry != nil {
		mux.Handle("GET /metrics", metrics.HTTPHandler(s.registry))
	}
	return s.mchain(mux)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to bind listener").
			WithContext("addr", addr).Build()
	}
	return s.Serve(ctx, ln)
}

// Serve serves on a pre-bound listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadTimeout: 30 * time.Second, WriteTimeout: 30 * time.Second, IdleTimeout: 120 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving site configuration", logfields.Addr(ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return ferrors.WrapError(err, ferrors.CategoryRuntime, "server error").Build()
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "server shutdown failed").Build()
	}
	return nil
}

func (s *Server) pageData() demo.PageData {
	snap := s.state.Current()
	if !snap.Ready {
		return demo.NewPageData(demo.DefaultDocs())
	}
	return demo.NewPageData(demo.DocsFromConfig(snap.Config))
}

// ready returns the current snapshot, or writes the last build error and
// returns false when no configuration has been built yet.
func (s *Server) ready(w http.ResponseWriter, r *http.Request) (Snapshot, bool) {
	snap := s.state.Current()
	if snap.Ready {
		return snap, true
	}
	err := snap.LastErr
	if err == nil {
		err = ferrors.NewError(ferrors.CategoryRuntime, "site configuration not built yet").Build()
	}
	s.errorAdapter.WriteErrorResponse(w, r, err)
	return snap, false
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.ready(w, r)
	if !ok {
		return
	}
	data, err := render.MarshalManifest(snap.Config, snap.BuildID)
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleHugoConfig(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.ready(w, r)
	if !ok {
		return
	}
	data, err := render.HugoConfig(snap.Config)
	if err != nil {
		s.errorAdapter.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(data)
}

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status    string    `json:"status"`
	BuildID   string    `json:"build_id,omitempty"`
	BuiltAt   time.Time `json:"built_at,omitzero"`
	LastError string    `json:"last_error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.state.Current()
	resp := HealthResponse{Status: "ok", BuildID: snap.BuildID, BuiltAt: snap.BuiltAt}
	code := http.StatusOK
	switch {
	case !snap.Ready:
		resp.Status = "unavailable"
		code = http.StatusServiceUnavailable
	case snap.LastErr != nil:
		resp.Status = "degraded"
	}
	if snap.LastErr != nil {
		resp.LastError = snap.LastErr.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode health response", logfields.Error(err))
	}
}
