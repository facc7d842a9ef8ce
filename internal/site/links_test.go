package site

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsExternal(t *testing.T) {
	require.True(t, IsExternal("https://github.com/acme/docs"))
	require.True(t, IsExternal("HTTP://example.com"))
	require.True(t, IsExternal("mailto:docs@example.com"))
	require.False(t, IsExternal("/QUICK_START"))
	require.False(t, IsExternal("ftp://example.com"))
	require.False(t, IsExternal(""))
}

func TestCheckLink(t *testing.T) {
	valid := []string{"/", "/QUICK_START", "/guide/intro#setup", "/search?q=x", "https://example.com", "mailto:a@b.c", "tel:+4512345678"}
	for _, link := range valid {
		require.Empty(t, CheckLink(link), link)
	}

	invalid := []string{"", "guide", "./guide", "#anchor", "//cdn.example.com", "https://", "ftp://x.y", "javascript:alert(1)", "/a b", "mailto:", "/tab\there"}
	for _, link := range invalid {
		require.NotEmpty(t, CheckLink(link), link)
	}
}

func TestCheckBase(t *testing.T) {
	require.Empty(t, CheckBase("/"))
	require.Empty(t, CheckBase("/claudecode-github-bluprint/"))
	require.Empty(t, CheckBase("/a/b/"))
	require.NotEmpty(t, CheckBase(""))
	require.NotEmpty(t, CheckBase("/repo"))
	require.NotEmpty(t, CheckBase("repo/"))
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		link, base, want string
	}{
		{"/", "/repo/", "/repo/"},
		{"/intro", "/repo/", "/repo/intro"},
		{"/intro", "/", "/intro"},
		{"/intro", "", "/intro"},
		{"/repo/intro", "/repo/", "/repo/intro"},
		{"/repo", "/repo/", "/repo/repo"},
		{"/repository", "/repo/", "/repo/repository"},
		{"https://github.com/acme", "/repo/", "https://github.com/acme"},
		{"/a/b", "/x/y/", "/x/y/a/b"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ResolveLink(tt.link, tt.base), "%s + %s", tt.base, tt.link)
	}
}

func TestResolveLink_Idempotent(t *testing.T) {
	links := []string{"/", "/intro", "/repo", "/repo/", "/repo/x", "/repository", "/a/b/c", "https://example.com/x", "mailto:a@b.c"}
	bases := []string{"/", "/repo/", "/x/y/", "/claudecode-github-bluprint/"}
	for _, base := range bases {
		for _, link := range links {
			once := ResolveLink(link, base)
			require.Equal(t, once, ResolveLink(once, base), "base=%s link=%s", base, link)
		}
	}
}
