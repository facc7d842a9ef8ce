package site

import (
	"maps"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Build validates raw and returns its canonical form. On failure the error is
// a *ValidationError for the first offending field, in document order.
func Build(raw RawConfig) (SiteConfig, error) {
	b := &builder{raw: raw}
	if err := b.run(); err != nil {
		return SiteConfig{}, err
	}
	return b.out, nil
}

type builder struct {
	raw RawConfig
	out SiteConfig
}

func (b *builder) run() error {
	steps := []func() error{
		b.buildMeta,
		b.buildHead,
		b.buildNav,
		b.buildSidebar,
		b.buildSearch,
		b.buildEditLink,
		b.buildSocialLinks,
		b.buildOutline,
		b.buildLabels,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) buildMeta() error {
	title := strings.TrimSpace(b.raw.Title)
	if err := rule("title", ReasonMissingField, title, validation.Required); err != nil {
		return err
	}

	base := strings.TrimSpace(b.raw.Base)
	switch {
	case b.raw.Base == "":
		base = DefaultBase
	case base == "":
		return invalid("base", ReasonMalformedBase, "base is blank")
	}
	if msg := CheckBase(base); msg != "" {
		return invalid("base", ReasonMalformedBase, "%s (got %q)", msg, base)
	}

	b.out.Title = title
	b.out.Description = strings.TrimSpace(b.raw.Description)
	b.out.Base = base
	b.out.CleanURLs = b.raw.CleanURLs
	b.out.LastUpdated = b.raw.LastUpdated
	b.out.Footer = Footer{Message: b.raw.Footer.Message, Copyright: b.raw.Footer.Copyright}
	b.out.ExternalLinkIcon = b.raw.ExternalLinkIcon
	b.out.Markdown = Markdown{
		LineNumbers: b.raw.Markdown.LineNumbers,
		Theme: MarkdownTheme{
			Light: orDefault(b.raw.Markdown.Theme.Light, DefaultMarkdownLight),
			Dark:  orDefault(b.raw.Markdown.Theme.Dark, DefaultMarkdownDark),
		},
	}

	if b.raw.Logo != "" {
		if msg := CheckLink(b.raw.Logo); msg != "" {
			return invalid("logo", ReasonMalformedURL, "%s", msg)
		}
		b.out.Logo = ResolveLink(b.raw.Logo, base)
	}
	return nil
}

func (b *builder) buildHead() error {
	b.out.Head = make([]HeadTag, 0, len(b.raw.Head))
	for i, h := range b.raw.Head {
		p := indexPath("head", i)
		tag := strings.ToLower(strings.TrimSpace(h.Tag))
		if err := rule(fieldPath(p, "tag"), ReasonMissingField, tag, validation.Required); err != nil {
			return err
		}
		if err := rule(fieldPath(p, "tag"), ReasonUnsupportedValue, tag, validation.In(AllowedHeadTags...)); err != nil {
			return err
		}
		b.out.Head = append(b.out.Head, HeadTag{Tag: tag, Attrs: maps.Clone(h.Attrs), Content: h.Content})
	}
	return nil
}

func (b *builder) buildNav() error {
	b.out.Nav = make([]NavEntry, 0, len(b.raw.Nav))
	for i, raw := range b.raw.Nav {
		p := indexPath("nav", i)
		entry, err := b.navEntry(p, raw)
		if err != nil {
			return err
		}
		if raw.Items != nil {
			if len(raw.Items) == 0 {
				return invalid(fieldPath(p, "items"), ReasonMissingField, "navigation group has no items")
			}
			entry.Items = make([]NavEntry, 0, len(raw.Items))
			for j, rawChild := range raw.Items {
				cp := indexPath(fieldPath(p, "items"), j)
				if rawChild.Items != nil {
					return invalid(cp, ReasonNestedGroup, "navigation groups cannot contain groups")
				}
				child, err := b.navEntry(cp, rawChild)
				if err != nil {
					return err
				}
				entry.Items = append(entry.Items, child)
			}
		}
		b.out.Nav = append(b.out.Nav, entry)
	}
	return nil
}

// navEntry validates the fields shared by groups and leaves and resolves the
// link of a leaf. Group items are handled by the caller.
func (b *builder) navEntry(p string, raw RawNavEntry) (NavEntry, error) {
	text := strings.TrimSpace(raw.Text)
	if err := rule(fieldPath(p, "text"), ReasonMissingField, text, validation.Required); err != nil {
		return NavEntry{}, err
	}
	hasLink := raw.Link != ""
	hasItems := raw.Items != nil
	switch {
	case hasLink && hasItems:
		return NavEntry{}, invalid(p, ReasonConflictingFields, "navigation entry has both link and items")
	case !hasLink && !hasItems:
		return NavEntry{}, invalid(p, ReasonMissingField, "navigation entry needs a link or items")
	case hasItems:
		return NavEntry{Text: text}, nil
	}
	if msg := CheckLink(raw.Link); msg != "" {
		return NavEntry{}, invalid(fieldPath(p, "link"), ReasonMalformedURL, "%s", msg)
	}
	return NavEntry{Text: text, Link: raw.Link, Href: ResolveLink(raw.Link, b.out.Base)}, nil
}

func (b *builder) buildSidebar() error {
	b.out.Sidebar = make([]SidebarSection, 0, len(b.raw.Sidebar))
	for i, raw := range b.raw.Sidebar {
		p := indexPath("sidebar", i)
		text := strings.TrimSpace(raw.Text)
		if err := rule(fieldPath(p, "text"), ReasonMissingField, text, validation.Required); err != nil {
			return err
		}
		section := SidebarSection{Text: text, Collapsed: raw.Collapsed, Items: make([]SidebarItem, 0, len(raw.Items))}
		for j, item := range raw.Items {
			ip := indexPath(fieldPath(p, "items"), j)
			itemText := strings.TrimSpace(item.Text)
			if err := rule(fieldPath(ip, "text"), ReasonMissingField, itemText, validation.Required); err != nil {
				return err
			}
			if item.Link == "" {
				return invalid(fieldPath(ip, "link"), ReasonMissingField, "sidebar item needs a link")
			}
			if msg := CheckLink(item.Link); msg != "" {
				return invalid(fieldPath(ip, "link"), ReasonMalformedURL, "%s", msg)
			}
			section.Items = append(section.Items, SidebarItem{
				Text: itemText,
				Link: item.Link,
				Href: ResolveLink(item.Link, b.out.Base),
			})
		}
		b.out.Sidebar = append(b.out.Sidebar, section)
	}
	return nil
}

func (b *builder) buildSearch() error {
	provider, ok := NormalizeSearchProvider(b.raw.Search.Provider)
	if !ok {
		return invalid("search.provider", ReasonUnsupportedValue, "unknown provider %q (valid: %s)",
			b.raw.Search.Provider, strings.Join(SearchProviderNames(), ", "))
	}
	if provider == SearchExternal && len(b.raw.Search.Options) == 0 {
		return invalid("search.options", ReasonMissingField, "external search requires provider options")
	}
	b.out.Search = SearchConfig{Provider: provider, Options: cloneOptions(b.raw.Search.Options)}
	return nil
}

func (b *builder) buildEditLink() error {
	raw := b.raw.EditLink
	b.out.EditLink = EditLink{Text: orDefault(raw.Text, DefaultEditLinkText)}
	if raw.Pattern == "" {
		return nil
	}
	if msg := CheckLink(raw.Pattern); msg != "" {
		return invalid("edit_link.pattern", ReasonMalformedURL, "%s", msg)
	}
	if !IsExternal(raw.Pattern) {
		return invalid("edit_link.pattern", ReasonMalformedURL, "edit link pattern must be an absolute URL")
	}
	if !strings.Contains(raw.Pattern, EditLinkPlaceholder) {
		return invalid("edit_link.pattern", ReasonMalformedURL, "edit link pattern must contain %s", EditLinkPlaceholder)
	}
	b.out.EditLink.Pattern = raw.Pattern
	return nil
}

func (b *builder) buildSocialLinks() error {
	b.out.SocialLinks = make([]SocialLink, 0, len(b.raw.SocialLinks))
	for i, raw := range b.raw.SocialLinks {
		p := indexPath("social_links", i)
		icon := strings.TrimSpace(raw.Icon)
		if err := rule(fieldPath(p, "icon"), ReasonMissingField, icon, validation.Required); err != nil {
			return err
		}
		if msg := CheckLink(raw.Link); msg != "" {
			return invalid(fieldPath(p, "link"), ReasonMalformedURL, "%s", msg)
		}
		if !IsExternal(raw.Link) {
			return invalid(fieldPath(p, "link"), ReasonMalformedURL, "social links must be absolute URLs")
		}
		b.out.SocialLinks = append(b.out.SocialLinks, SocialLink{Icon: icon, Link: raw.Link})
	}
	return nil
}

func (b *builder) buildOutline() error {
	levels := [2]int{DefaultOutlineMin, DefaultOutlineMax}
	switch len(b.raw.Outline.Levels) {
	case 0:
	case 1:
		levels = [2]int{b.raw.Outline.Levels[0], b.raw.Outline.Levels[0]}
	case 2:
		levels = [2]int{b.raw.Outline.Levels[0], b.raw.Outline.Levels[1]}
	default:
		return invalid("outline.levels", ReasonOutOfRange, "expected one level or a [min, max] pair")
	}
	for i, lvl := range levels {
		if lvl < 1 || lvl > 6 {
			return invalid(indexPath("outline.levels", i), ReasonOutOfRange, "heading level %d is outside 1..6", lvl)
		}
	}
	if levels[0] > levels[1] {
		return invalid("outline.levels", ReasonOutOfRange, "min level %d exceeds max level %d", levels[0], levels[1])
	}
	b.out.Outline = Outline{Levels: levels, Label: orDefault(b.raw.Outline.Label, DefaultOutlineLabel)}
	return nil
}

func (b *builder) buildLabels() error {
	b.out.LastUpdatedText = orDefault(b.raw.LastUpdatedText, DefaultLastUpdatedText)
	b.out.DocFooter = DocFooter{
		Prev: orDefault(b.raw.DocFooter.Prev, DefaultDocFooterPrev),
		Next: orDefault(b.raw.DocFooter.Next, DefaultDocFooterNext),
	}
	l := b.raw.Labels
	b.out.Labels = Labels{
		ReturnToTop:          orDefault(l.ReturnToTop, DefaultReturnToTopLabel),
		SidebarMenu:          orDefault(l.SidebarMenu, DefaultSidebarMenuLabel),
		DarkModeSwitch:       orDefault(l.DarkModeSwitch, DefaultDarkModeLabel),
		LightModeSwitchTitle: orDefault(l.LightModeSwitchTitle, DefaultLightModeSwitch),
		DarkModeSwitchTitle:  orDefault(l.DarkModeSwitchTitle, DefaultDarkModeSwitch),
	}
	return nil
}

// rule runs ozzo-validation rules against value and converts the first
// failure into a *ValidationError at path.
func rule(path string, reason Reason, value any, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return invalid(path, reason, "%s", err.Error())
	}
	return nil
}
