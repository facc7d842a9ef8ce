package site

import "git.home.luguber.info/inful/sitecfg/internal/foundation/normalization"

// Defaults applied by Build when the corresponding raw field is empty.
const (
	DefaultBase             = "/"
	DefaultMarkdownLight    = "github-light"
	DefaultMarkdownDark     = "github-dark"
	DefaultEditLinkText     = "Edit this page"
	DefaultOutlineLabel     = "On this page"
	DefaultOutlineMin       = 2
	DefaultOutlineMax       = 3
	DefaultLastUpdatedText  = "Last updated"
	DefaultDocFooterPrev    = "Previous page"
	DefaultDocFooterNext    = "Next page"
	DefaultReturnToTopLabel = "Return to top"
	DefaultSidebarMenuLabel = "Menu"
	DefaultDarkModeLabel    = "Appearance"
	DefaultLightModeSwitch  = "Switch to light theme"
	DefaultDarkModeSwitch   = "Switch to dark theme"
)

var searchProviderNormalizer = normalization.NewNormalizer(map[string]SearchProvider{
	"local":    SearchLocal,
	"external": SearchExternal,
	"algolia":  SearchExternal,
}, SearchLocal)

// NormalizeSearchProvider maps an authored provider name onto a SearchProvider.
// The boolean is false for unknown names.
func NormalizeSearchProvider(raw string) (SearchProvider, bool) {
	if raw == "" {
		return searchProviderNormalizer.Default(), true
	}
	return searchProviderNormalizer.Lookup(raw)
}

// SearchProviderNames lists the accepted provider spellings.
func SearchProviderNames() []string {
	return searchProviderNormalizer.ValidKeys()
}

// AllowedHeadTags lists the element names accepted in head.
var AllowedHeadTags = []any{"meta", "link", "script", "style", "base", "noscript", "title"}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
