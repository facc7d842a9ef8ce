package site

// RawConfig is the authored, partially specified site configuration. Every
// field except Title is optional; Build fills the gaps with explicit defaults.
type RawConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Base        string `yaml:"base,omitempty"`
	CleanURLs   bool   `yaml:"clean_urls,omitempty"`
	LastUpdated bool   `yaml:"last_updated,omitempty"`

	Markdown RawMarkdown  `yaml:"markdown,omitempty"`
	Head     []RawHeadTag `yaml:"head,omitempty"`
	Logo     string       `yaml:"logo,omitempty"`

	Nav         []RawNavEntry       `yaml:"nav,omitempty"`
	Sidebar     []RawSidebarSection `yaml:"sidebar,omitempty"`
	Search      RawSearch           `yaml:"search,omitempty"`
	Footer      RawFooter           `yaml:"footer,omitempty"`
	EditLink    RawEditLink         `yaml:"edit_link,omitempty"`
	SocialLinks []RawSocialLink     `yaml:"social_links,omitempty"`

	Outline          RawOutline   `yaml:"outline,omitempty"`
	LastUpdatedText  string       `yaml:"last_updated_text,omitempty"`
	DocFooter        RawDocFooter `yaml:"doc_footer,omitempty"`
	Labels           RawLabels    `yaml:"labels,omitempty"`
	ExternalLinkIcon bool         `yaml:"external_link_icon,omitempty"`
}

// RawNavEntry is a top navigation entry. Exactly one of Link or Items must
// be set; a non-nil Items makes it a dropdown group.
type RawNavEntry struct {
	Text  string        `yaml:"text"`
	Link  string        `yaml:"link,omitempty"`
	Items []RawNavEntry `yaml:"items,omitempty"`
}

// RawSidebarSection is one titled, collapsible sidebar block.
type RawSidebarSection struct {
	Text      string           `yaml:"text"`
	Collapsed bool             `yaml:"collapsed,omitempty"`
	Items     []RawSidebarItem `yaml:"items,omitempty"`
}

// RawSidebarItem is a sidebar leaf.
type RawSidebarItem struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// RawSearch selects the search provider and its provider-specific options.
type RawSearch struct {
	Provider string         `yaml:"provider,omitempty"`
	Options  map[string]any `yaml:"options,omitempty"`
}

// RawHeadTag is an extra element injected into every page <head>.
type RawHeadTag struct {
	Tag     string            `yaml:"tag"`
	Attrs   map[string]string `yaml:"attrs,omitempty"`
	Content string            `yaml:"content,omitempty"`
}

type RawMarkdown struct {
	LineNumbers bool             `yaml:"line_numbers,omitempty"`
	Theme       RawMarkdownTheme `yaml:"theme,omitempty"`
}

type RawMarkdownTheme struct {
	Light string `yaml:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty"`
}

type RawFooter struct {
	Message   string `yaml:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty"`
}

// RawEditLink holds the "edit this page" URL template. Pattern must contain
// the :path placeholder.
type RawEditLink struct {
	Pattern string `yaml:"pattern,omitempty"`
	Text    string `yaml:"text,omitempty"`
}

type RawSocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// RawOutline configures the on-page table of contents. Levels holds one
// value (a single heading level) or two (an inclusive range).
type RawOutline struct {
	Levels []int  `yaml:"levels,omitempty"`
	Label  string `yaml:"label,omitempty"`
}

type RawDocFooter struct {
	Prev string `yaml:"prev,omitempty"`
	Next string `yaml:"next,omitempty"`
}

type RawLabels struct {
	ReturnToTop          string `yaml:"return_to_top,omitempty"`
	SidebarMenu          string `yaml:"sidebar_menu,omitempty"`
	DarkModeSwitch       string `yaml:"dark_mode_switch,omitempty"`
	LightModeSwitchTitle string `yaml:"light_mode_switch_title,omitempty"`
	DarkModeSwitchTitle  string `yaml:"dark_mode_switch_title,omitempty"`
}
