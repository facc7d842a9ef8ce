package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// menuWeightStep spaces menu weights so hand edits can slot entries between.
const menuWeightStep = 10

// HugoConfig maps cfg onto a hugo.yaml document. Navigation becomes
// menu.main (groups use parent/identifier), the sidebar and theme labels land
// under params.
func HugoConfig(cfg site.SiteConfig) ([]byte, error) {
	params := map[string]any{
		"description":      cfg.Description,
		"sidebar":          hugoSidebar(cfg.Sidebar),
		"search":           hugoSearch(cfg.Search),
		"lastUpdated":      cfg.LastUpdated,
		"lastUpdatedText":  cfg.LastUpdatedText,
		"outline":          map[string]any{"levels": []int{cfg.Outline.Levels[0], cfg.Outline.Levels[1]}, "label": cfg.Outline.Label},
		"docFooter":        map[string]any{"prev": cfg.DocFooter.Prev, "next": cfg.DocFooter.Next},
		"labels":           hugoLabels(cfg.Labels),
		"externalLinkIcon": cfg.ExternalLinkIcon,
	}
	if cfg.Logo != "" {
		params["logo"] = cfg.Logo
	}
	if cfg.Footer != (site.Footer{}) {
		params["footer"] = map[string]any{"message": cfg.Footer.Message, "copyright": cfg.Footer.Copyright}
	}
	if cfg.EditLink.Enabled() {
		params["editURL"] = map[string]any{"enable": true, "pattern": cfg.EditLink.Pattern, "text": cfg.EditLink.Text}
	}
	if len(cfg.SocialLinks) > 0 {
		links := make([]map[string]any, 0, len(cfg.SocialLinks))
		for _, l := range cfg.SocialLinks {
			links = append(links, map[string]any{"icon": l.Icon, "url": l.Link})
		}
		params["social"] = links
	}
	if len(cfg.Head) > 0 {
		head := make([]map[string]any, 0, len(cfg.Head))
		for _, h := range cfg.Head {
			tag := map[string]any{"tag": h.Tag}
			if len(h.Attrs) > 0 {
				tag["attrs"] = h.Attrs
			}
			if h.Content != "" {
				tag["content"] = h.Content
			}
			head = append(head, tag)
		}
		params["head"] = head
	}

	root := map[string]any{
		"title":        cfg.Title,
		"baseURL":      cfg.Base,
		"languageCode": "en",
		"uglyURLs":     !cfg.CleanURLs,
		"markup": map[string]any{
			"goldmark": map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{
				"style":     cfg.Markdown.Theme.Light,
				"lineNos":   cfg.Markdown.LineNumbers,
				"noClasses": false,
			},
		},
		"menu":   map[string]any{"main": hugoMenu(cfg.Nav)},
		"params": params,
	}
	if cfg.LastUpdated {
		root["enableGitInfo"] = true
	}
	if cfg.Search.Provider == site.SearchLocal {
		root["outputs"] = map[string]any{"home": []string{"HTML", "RSS", "JSON"}}
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to marshal Hugo config").Build()
	}
	return data, nil
}

func hugoMenu(nav []site.NavEntry) []map[string]any {
	menu := make([]map[string]any, 0, len(nav))
	for i, e := range nav {
		weight := (i + 1) * menuWeightStep
		if e.Kind() == site.NavLink {
			menu = append(menu, map[string]any{"name": e.Text, "url": e.Href, "weight": weight})
			continue
		}
		id := fmt.Sprintf("nav-%d", i)
		menu = append(menu, map[string]any{"name": e.Text, "identifier": id, "weight": weight})
		for j, child := range e.Items {
			menu = append(menu, map[string]any{
				"name":   child.Text,
				"url":    child.Href,
				"parent": id,
				"weight": weight + j + 1,
			})
		}
	}
	return menu
}

func hugoSidebar(sections []site.SidebarSection) []map[string]any {
	out := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		items := make([]map[string]any, 0, len(s.Items))
		for _, item := range s.Items {
			items = append(items, map[string]any{"text": item.Text, "url": item.Href})
		}
		out = append(out, map[string]any{"text": s.Text, "collapsed": s.Collapsed, "items": items})
	}
	return out
}

func hugoSearch(s site.SearchConfig) map[string]any {
	out := map[string]any{"enable": true, "provider": string(s.Provider)}
	if s.Provider == site.SearchLocal {
		out["type"] = "flexsearch"
	}
	if len(s.Options) > 0 {
		out["options"] = s.Options
	}
	return out
}

func hugoLabels(l site.Labels) map[string]any {
	return map[string]any{
		"returnToTop":          l.ReturnToTop,
		"sidebarMenu":          l.SidebarMenu,
		"darkModeSwitch":       l.DarkModeSwitch,
		"lightModeSwitchTitle": l.LightModeSwitchTitle,
		"darkModeSwitchTitle":  l.DarkModeSwitchTitle,
	}
}
