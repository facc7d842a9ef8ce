package content

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Index answers route lookups over a set of pages.
type Index struct {
	routes map[string]Page
}

// NewIndex builds an Index. Later pages win on duplicate routes.
func NewIndex(pages []Page) *Index {
	idx := &Index{routes: make(map[string]Page, len(pages))}
	for _, p := range pages {
		idx.routes[p.Route] = p
	}
	return idx
}

// Len returns the number of distinct routes.
func (i *Index) Len() int { return len(i.routes) }

// Lookup finds the page a root-relative link (without base) points at.
// Fragments, query strings, trailing slashes and .md/.html suffixes are
// ignored.
func (i *Index) Lookup(link string) (Page, bool) {
	p, ok := i.routes[normalizeRoute(link)]
	return p, ok
}

func normalizeRoute(link string) string {
	if idx := strings.IndexAny(link, "?#"); idx >= 0 {
		link = link[:idx]
	}
	for _, ext := range []string{".html", ".md"} {
		link = strings.TrimSuffix(link, ext)
	}
	if link != "/" {
		link = strings.TrimSuffix(link, "/")
	}
	if link == "" || strings.EqualFold(link, "/index") {
		return "/"
	}
	return link
}

// Issue is a canonical link that no page backs.
type Issue struct {
	Path string
	Link string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: no page for %s", i.Path, i.Link)
}

// Check reports every internal nav or sidebar link of cfg that the index
// cannot resolve. Links authored with the base already applied are accepted.
func Check(cfg site.SiteConfig, idx *Index) []Issue {
	var issues []Issue
	for _, ref := range cfg.InternalLinks() {
		link := ref.Link
		if cfg.Base != "/" && strings.HasPrefix(link, cfg.Base) {
			link = "/" + strings.TrimPrefix(link, cfg.Base)
		}
		if _, ok := idx.Lookup(link); !ok {
			issues = append(issues, Issue{Path: ref.Path, Link: ref.Link})
		}
	}
	return issues
}
