package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func TestDiscover_RoutesTitlesAndFingerprints(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "index.md", "# Welcome\n")
	writeDoc(t, root, "QUICK_START.md", "---\ntitle: Quick Start Guide\n---\n# Quick Start\n")
	writeDoc(t, root, "guides/index.md", "Guides overview\n")
	writeDoc(t, root, "guides/custom-themes.md", "Themes\n")
	writeDoc(t, root, ".vitepress/theme.md", "ignored\n")
	writeDoc(t, root, "node_modules/pkg/README.md", "ignored\n")
	writeDoc(t, root, "logo.svg", "<svg/>")

	pages, err := Discover(root)
	require.NoError(t, err)

	var routes []string
	for _, p := range pages {
		routes = append(routes, p.Route)
	}
	require.Equal(t, []string{"/", "/QUICK_START", "/guides", "/guides/custom-themes"}, routes)

	require.Equal(t, "Welcome", pages[0].Title)
	require.Equal(t, "Quick Start Guide", pages[1].Title)
	require.Equal(t, "QUICK_START.md", pages[1].SourcePath)
	require.Equal(t, "Guides", pages[2].Title)
	require.Equal(t, "Custom Themes", pages[3].Title)

	for _, p := range pages {
		require.NotEmpty(t, p.Fingerprint, p.Route)
	}
}

func TestFirstHeading(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"atx", "# Quick Start\n\nBody\n", "Quick Start"},
		{"emphasis and code", "# Using *the* `sitecfg` CLI\n", "Using the sitecfg CLI"},
		{"link", "# See [Workflows](/WORKFLOWS)\n", "See Workflows"},
		{"setext", "Overview\n========\n", "Overview"},
		{"skips h2", "## Not this\n\n# This one\n", "This one"},
		{"none", "plain paragraph\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, firstHeading([]byte(tc.body)))
		})
	}
}

func TestDiscover_FingerprintTracksContent(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "a.md", "one\n")
	first, err := Discover(root)
	require.NoError(t, err)

	writeDoc(t, root, "a.md", "two\n")
	second, err := Discover(root)
	require.NoError(t, err)

	require.NotEqual(t, first[0].Fingerprint, second[0].Fingerprint)
}

func TestDiscover_InvalidFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "broken.md", "---\ntitle: never closed\n# Body\n")

	_, err := Discover(root)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryContent))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestSplitFrontmatter(t *testing.T) {
	fm, body, had, err := splitFrontmatter([]byte("---\r\ntitle: x\r\n---\r\nbody"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "title: x\r\n", string(fm))
	require.Equal(t, "body", string(body))

	fm, body, had, err = splitFrontmatter([]byte("---\n---\nbody"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, "body", string(body))

	_, body, had, err = splitFrontmatter([]byte("no frontmatter"))
	require.NoError(t, err)
	require.False(t, had)
	require.Equal(t, "no frontmatter", string(body))
}

func TestRouteForAndTitleFromPath(t *testing.T) {
	require.Equal(t, "/", RouteFor("index.md"))
	require.Equal(t, "/", RouteFor("README.md"))
	require.Equal(t, "/WORKFLOWS", RouteFor("WORKFLOWS.md"))
	require.Equal(t, "/guide/setup", RouteFor("guide/setup.md"))

	require.Equal(t, "Phase1 Workplan", TitleFromPath("PHASE1_WORKPLAN.md"))
	require.Equal(t, "Troubleshooting", TitleFromPath("TROUBLESHOOTING.md"))
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex([]Page{{Route: "/"}, {Route: "/QUICK_START"}, {Route: "/guide"}})
	require.Equal(t, 3, idx.Len())

	for _, link := range []string{"/", "/index.html", "/QUICK_START", "/QUICK_START.html", "/QUICK_START.md", "/QUICK_START#step-1", "/guide/", "/guide?x=1"} {
		_, ok := idx.Lookup(link)
		require.True(t, ok, link)
	}
	_, ok := idx.Lookup("/COMMANDS")
	require.False(t, ok)
}

func TestCheck_ReportsDanglingLinks(t *testing.T) {
	cfg, err := site.Build(site.RawConfig{
		Title: "Docs",
		Base:  "/repo/",
		Nav: []site.RawNavEntry{
			{Text: "Home", Link: "/"},
			{Text: "Guides", Items: []site.RawNavEntry{{Text: "Workflows", Link: "/WORKFLOWS"}}},
			{Text: "GitHub", Link: "https://github.com/acme/repo"},
		},
		Sidebar: []site.RawSidebarSection{{
			Text: "Guide",
			Items: []site.RawSidebarItem{
				{Text: "Quick Start", Link: "/repo/QUICK_START"},
				{Text: "Commands", Link: "/COMMANDS"},
			},
		}},
	})
	require.NoError(t, err)

	idx := NewIndex([]Page{{Route: "/"}, {Route: "/QUICK_START"}})
	issues := Check(cfg, idx)

	require.Equal(t, []Issue{
		{Path: "nav[1].items[0]", Link: "/WORKFLOWS"},
		{Path: "sidebar[0].items[1]", Link: "/COMMANDS"},
	}, issues)
	require.Equal(t, "nav[1].items[0]: no page for /WORKFLOWS", issues[0].String())
}
