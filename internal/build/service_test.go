package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

type recordingRecorder struct {
	outcomes []metrics.Outcome
	reasons  []string
	pages    int
	dangling int
}

func (r *recordingRecorder) ObserveBuild(_ time.Duration, o metrics.Outcome) {
	r.outcomes = append(r.outcomes, o)
}
func (r *recordingRecorder) IncValidationError(reason string) { r.reasons = append(r.reasons, reason) }
func (r *recordingRecorder) SetPages(n int)                   { r.pages = n }
func (r *recordingRecorder) SetDanglingLinks(n int)           { r.dangling = n }

func staticLoader(raw site.RawConfig) Loader {
	return func(string) (site.RawConfig, error) { return raw, nil }
}

func TestService_Success(t *testing.T) {
	rec := &recordingRecorder{}
	svc := NewService().WithRecorder(rec).WithLoader(staticLoader(site.RawConfig{
		Title: "Docs",
		Base:  "/repo/",
		Nav:   []site.RawNavEntry{{Text: "Home", Link: "/"}},
	}))

	res, err := svc.Run(context.Background(), Request{ConfigPath: "site.yaml"})
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, res.Status)
	require.NotEmpty(t, res.BuildID)
	require.Equal(t, "/repo/", res.Config.Nav[0].Href)
	require.Equal(t, []metrics.Outcome{metrics.OutcomeSuccess}, rec.outcomes)
}

func TestService_UniqueBuildIDs(t *testing.T) {
	svc := NewService().WithLoader(staticLoader(site.RawConfig{Title: "Docs"}))
	a, err := svc.Run(context.Background(), Request{})
	require.NoError(t, err)
	b, err := svc.Run(context.Background(), Request{})
	require.NoError(t, err)
	require.NotEqual(t, a.BuildID, b.BuildID)
}

func TestService_ValidationFailure(t *testing.T) {
	rec := &recordingRecorder{}
	svc := NewService().WithRecorder(rec).WithLoader(staticLoader(site.RawConfig{
		Title: "Docs",
		Nav:   []site.RawNavEntry{{Text: "Bad"}},
	}))

	res, err := svc.Run(context.Background(), Request{})
	var verr *site.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "nav[0]", verr.Path)
	require.Equal(t, StatusInvalid, res.Status)
	require.Equal(t, []metrics.Outcome{metrics.OutcomeInvalid}, rec.outcomes)
	require.Equal(t, []string{string(site.ReasonMissingField)}, rec.reasons)
}

func TestService_LoadFailure(t *testing.T) {
	rec := &recordingRecorder{}
	boom := errors.New("boom")
	svc := NewService().WithRecorder(rec).WithLoader(func(string) (site.RawConfig, error) {
		return site.RawConfig{}, boom
	})

	res, err := svc.Run(context.Background(), Request{})
	require.ErrorIs(t, err, boom)
	require.Equal(t, StatusFailed, res.Status)
	require.Equal(t, []metrics.Outcome{metrics.OutcomeFailed}, rec.outcomes)
}

func TestService_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewService().WithLoader(staticLoader(site.RawConfig{Title: "Docs"})).Run(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, StatusFailed, res.Status)
}

func TestService_ChecksDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte("# Home\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "intro.md"), []byte("# Intro\n"), 0o600))

	rec := &recordingRecorder{}
	svc := NewService().WithRecorder(rec).WithLoader(staticLoader(site.RawConfig{
		Title: "Docs",
		Nav:   []site.RawNavEntry{{Text: "Home", Link: "/"}},
		Sidebar: []site.RawSidebarSection{{
			Text: "Guide",
			Items: []site.RawSidebarItem{
				{Text: "Intro", Link: "/intro"},
				{Text: "Missing", Link: "/missing"},
			},
		}},
	}))

	res, err := svc.Run(context.Background(), Request{DocsDir: dir})
	require.NoError(t, err)
	require.Len(t, res.Pages, 2)
	require.Len(t, res.Issues, 1)
	require.Equal(t, "sidebar[0].items[1]", res.Issues[0].Path)
	require.Equal(t, 2, rec.pages)
	require.Equal(t, 1, rec.dangling)
}

func TestService_LoadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\ntitle: Docs\nbase: /docs/\n"), 0o600))

	res, err := NewService().Run(context.Background(), Request{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, "/docs/", res.Config.Base)
}
