package site

import (
	"maps"
	"strings"
)

// SiteConfig is the canonical configuration handed to the renderer. Values
// returned by Build share no memory with the RawConfig they came from and are
// meant to be treated as read-only; use Clone before modifying a copy.
type SiteConfig struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Base        string `json:"base"`
	CleanURLs   bool   `json:"cleanUrls"`
	LastUpdated bool   `json:"lastUpdated"`

	Markdown Markdown  `json:"markdown"`
	Head     []HeadTag `json:"head"`
	// Logo is the resolved logo href, empty when no logo is configured.
	Logo string `json:"logo,omitempty"`

	Nav         []NavEntry       `json:"nav"`
	Sidebar     []SidebarSection `json:"sidebar"`
	Search      SearchConfig     `json:"search"`
	Footer      Footer           `json:"footer"`
	EditLink    EditLink         `json:"editLink"`
	SocialLinks []SocialLink     `json:"socialLinks"`

	Outline          Outline   `json:"outline"`
	LastUpdatedText  string    `json:"lastUpdatedText"`
	DocFooter        DocFooter `json:"docFooter"`
	Labels           Labels    `json:"labels"`
	ExternalLinkIcon bool      `json:"externalLinkIcon"`
}

// NavKind discriminates the two NavEntry variants.
type NavKind string

const (
	NavLink  NavKind = "link"
	NavGroup NavKind = "group"
)

// NavEntry is either a link leaf (Link/Href set) or a dropdown group (Items
// set). Groups hold link leaves only.
type NavEntry struct {
	Text string `json:"text"`
	// Link is the link as authored; Href is Link resolved against the base.
	Link  string     `json:"link,omitempty"`
	Href  string     `json:"href,omitempty"`
	Items []NavEntry `json:"items,omitempty"`
}

// Kind reports which variant the entry is.
func (e NavEntry) Kind() NavKind {
	if e.Items != nil {
		return NavGroup
	}
	return NavLink
}

// SidebarSection is one collapsible sidebar block; order is render order.
type SidebarSection struct {
	Text      string        `json:"text"`
	Collapsed bool          `json:"collapsed"`
	Items     []SidebarItem `json:"items"`
}

// SidebarItem is a sidebar leaf.
type SidebarItem struct {
	Text string `json:"text"`
	Link string `json:"link"`
	Href string `json:"href"`
}

// SearchProvider names the search backend.
type SearchProvider string

const (
	SearchLocal    SearchProvider = "local"
	SearchExternal SearchProvider = "external"
)

// SearchConfig is the resolved search setup.
type SearchConfig struct {
	Provider SearchProvider `json:"provider"`
	Options  map[string]any `json:"options"`
}

type HeadTag struct {
	Tag     string            `json:"tag"`
	Attrs   map[string]string `json:"attrs,omitempty"`
	Content string            `json:"content,omitempty"`
}

type Markdown struct {
	LineNumbers bool          `json:"lineNumbers"`
	Theme       MarkdownTheme `json:"theme"`
}

type MarkdownTheme struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

type Footer struct {
	Message   string `json:"message,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}

// EditLink is the "edit this page" template. A zero Pattern disables it.
type EditLink struct {
	Pattern string `json:"pattern,omitempty"`
	Text    string `json:"text"`
}

// Enabled reports whether an edit link pattern is configured.
func (l EditLink) Enabled() bool { return l.Pattern != "" }

// URLFor substitutes the page path (relative to the docs root) into the
// pattern. It returns "" when the edit link is disabled.
func (l EditLink) URLFor(relPath string) string {
	if !l.Enabled() {
		return ""
	}
	return strings.ReplaceAll(l.Pattern, EditLinkPlaceholder, strings.TrimPrefix(relPath, "/"))
}

type SocialLink struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

// Outline is an inclusive heading-level range plus its label.
type Outline struct {
	Levels [2]int `json:"levels"`
	Label  string `json:"label"`
}

type DocFooter struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

type Labels struct {
	ReturnToTop          string `json:"returnToTopLabel"`
	SidebarMenu          string `json:"sidebarMenuLabel"`
	DarkModeSwitch       string `json:"darkModeSwitchLabel"`
	LightModeSwitchTitle string `json:"lightModeSwitchTitle"`
	DarkModeSwitchTitle  string `json:"darkModeSwitchTitle"`
}

// InternalLinks returns every root-relative href in nav and sidebar order,
// keyed by its field path. Content sources use it to check page existence.
func (c SiteConfig) InternalLinks() []LinkRef {
	var refs []LinkRef
	for i, e := range c.Nav {
		p := indexPath("nav", i)
		if e.Kind() == NavLink && !IsExternal(e.Link) {
			refs = append(refs, LinkRef{Path: p, Link: e.Link, Href: e.Href})
		}
		for j, child := range e.Items {
			if !IsExternal(child.Link) {
				refs = append(refs, LinkRef{Path: indexPath(p+".items", j), Link: child.Link, Href: child.Href})
			}
		}
	}
	for i, s := range c.Sidebar {
		p := indexPath("sidebar", i)
		for j, item := range s.Items {
			if !IsExternal(item.Link) {
				refs = append(refs, LinkRef{Path: indexPath(p+".items", j), Link: item.Link, Href: item.Href})
			}
		}
	}
	return refs
}

// LinkRef locates one internal link inside a SiteConfig.
type LinkRef struct {
	Path string
	Link string
	Href string
}

// Clone returns a deep copy.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.Head = make([]HeadTag, len(c.Head))
	for i, h := range c.Head {
		h.Attrs = maps.Clone(h.Attrs)
		out.Head[i] = h
	}
	out.Nav = cloneNav(c.Nav)
	out.Sidebar = make([]SidebarSection, len(c.Sidebar))
	for i, s := range c.Sidebar {
		s.Items = append([]SidebarItem(nil), s.Items...)
		if s.Items == nil {
			s.Items = []SidebarItem{}
		}
		out.Sidebar[i] = s
	}
	out.Search.Options = cloneOptions(c.Search.Options)
	out.SocialLinks = append([]SocialLink{}, c.SocialLinks...)
	return out
}

func cloneNav(entries []NavEntry) []NavEntry {
	out := make([]NavEntry, len(entries))
	for i, e := range entries {
		if e.Items != nil {
			e.Items = cloneNav(e.Items)
		}
		out[i] = e
	}
	return out
}

// cloneOptions deep-copies the nested maps and slices YAML decoding produces.
func cloneOptions(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneOptions(t)
	case []any:
		s := make([]any, len(t))
		for i, item := range t {
			s[i] = cloneValue(item)
		}
		return s
	default:
		return v
	}
}
