package build

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/content"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/observability"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Request contains the inputs of one build.
type Request struct {
	// ConfigPath is the YAML site configuration to load.
	ConfigPath string
	// DocsDir, when set, is scanned for pages and every internal link is
	// checked against it.
	DocsDir string
}

// Status is the overall outcome of a build.
type Status string

const (
	StatusSuccess Status = "success"
	StatusInvalid Status = "invalid"
	StatusFailed  Status = "failed"
)

// Result describes a finished build. Config is only meaningful when Status
// is StatusSuccess.
type Result struct {
	BuildID   string
	Status    Status
	Config    site.SiteConfig
	Pages     []content.Page
	Issues    []content.Issue
	StartTime time.Time
	Duration  time.Duration
}

// Loader reads a raw configuration from path.
type Loader func(path string) (site.RawConfig, error)

// Service runs builds.
type Service struct {
	recorder metrics.Recorder
	load     Loader
}

// NewService returns a Service that loads configs from disk and records nothing.
func NewService() *Service {
	return &Service{recorder: metrics.NoopRecorder{}, load: config.Load}
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r metrics.Recorder) *Service {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithLoader replaces the config loader (for testing).
func (s *Service) WithLoader(l Loader) *Service {
	s.load = l
	return s
}

// Run loads, validates and optionally cross-checks the site configuration.
// A validation failure returns the *site.ValidationError together with a
// Result of StatusInvalid.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	result := &Result{BuildID: uuid.NewString(), StartTime: time.Now()}
	ctx = observability.WithBuildID(ctx, result.BuildID)

	finish := func(status Status, err error) (*Result, error) {
		result.Status = status
		result.Duration = time.Since(result.StartTime)
		s.recorder.ObserveBuild(result.Duration, outcomeFor(status))
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return finish(StatusFailed, err)
	}

	ctx = observability.WithStage(ctx, observability.StageLoad)
	observability.DebugContext(ctx, "Loading site configuration", logfields.Path(req.ConfigPath))
	raw, err := s.load(req.ConfigPath)
	if err != nil {
		observability.ErrorContext(ctx, "Failed to load site configuration", logfields.Path(req.ConfigPath), logfields.Error(err))
		return finish(StatusFailed, err)
	}

	ctx = observability.WithStage(ctx, observability.StageValidate)
	cfg, err := site.Build(raw)
	if err != nil {
		var verr *site.ValidationError
		if errors.As(err, &verr) {
			s.recorder.IncValidationError(string(verr.Reason))
			observability.WarnContext(ctx, "Site configuration rejected",
				logfields.Field(verr.Path),
				logfields.Reason(string(verr.Reason)),
				logfields.Error(err))
			return finish(StatusInvalid, err)
		}
		return finish(StatusFailed, err)
	}
	result.Config = cfg

	if req.DocsDir != "" {
		ctx = observability.WithStage(ctx, observability.StageContent)
		pages, err := content.Discover(req.DocsDir)
		if err != nil {
			observability.ErrorContext(ctx, "Content discovery failed", logfields.Path(req.DocsDir), logfields.Error(err))
			return finish(StatusFailed, err)
		}
		result.Pages = pages
		result.Issues = content.Check(cfg, content.NewIndex(pages))
		s.recorder.SetPages(len(pages))
		s.recorder.SetDanglingLinks(len(result.Issues))
		for _, issue := range result.Issues {
			observability.WarnContext(ctx, "Dangling internal link", logfields.Field(issue.Path), logfields.Link(issue.Link))
		}
	}

	observability.InfoContext(ctx, "Site configuration built",
		slog.String("title", cfg.Title),
		slog.String("base", cfg.Base),
		logfields.Provider(string(cfg.Search.Provider)),
		logfields.Pages(len(result.Pages)),
		logfields.Issues(len(result.Issues)),
		logfields.DurationMS(float64(time.Since(result.StartTime).Microseconds())/1000))
	return finish(StatusSuccess, nil)
}

func outcomeFor(s Status) metrics.Outcome {
	switch s {
	case StatusSuccess:
		return metrics.OutcomeSuccess
	case StatusInvalid:
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeFailed
	}
}
