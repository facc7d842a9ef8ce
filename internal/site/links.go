package site

import (
	"net/url"
	"strings"
	"unicode"
)

// EditLinkPlaceholder is replaced by the page path in edit link patterns.
const EditLinkPlaceholder = ":path"

var externalSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// IsExternal reports whether link starts with a recognised absolute scheme.
func IsExternal(link string) bool {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return false
	}
	return externalSchemes[strings.ToLower(u.Scheme)]
}

// CheckLink returns a description of why link is not well formed, or "" when
// it is either an absolute external URL or a root-relative internal path.
func CheckLink(link string) string {
	if link == "" {
		return "link is empty"
	}
	if strings.IndexFunc(link, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return "link contains whitespace or control characters"
	}
	u, err := url.Parse(link)
	if err != nil {
		return err.Error()
	}
	if u.Scheme != "" {
		scheme := strings.ToLower(u.Scheme)
		if !externalSchemes[scheme] {
			return "unsupported scheme " + u.Scheme
		}
		if (scheme == "http" || scheme == "https") && u.Host == "" {
			return "absolute URL has no host"
		}
		if (scheme == "mailto" || scheme == "tel") && u.Opaque == "" {
			return scheme + " link has no target"
		}
		return ""
	}
	if strings.HasPrefix(link, "//") {
		return "protocol-relative links are not supported"
	}
	if !strings.HasPrefix(link, "/") {
		return "internal links must be root-relative"
	}
	return ""
}

// CheckBase returns why base is not an acceptable base path, or "".
func CheckBase(base string) string {
	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return "base must start and end with '/'"
	}
	if strings.ContainsAny(base, "?#") || strings.IndexFunc(base, unicode.IsSpace) >= 0 {
		return "base must be a plain path"
	}
	if strings.Contains(base, "//") {
		return "base contains an empty segment"
	}
	return ""
}

// ResolveLink returns the href for link on a site served under base.
// External links and links that are not root-relative are returned
// unchanged. Root-relative links receive the base prefix exactly once:
// ResolveLink(ResolveLink(l, b), b) == ResolveLink(l, b).
func ResolveLink(link, base string) string {
	if IsExternal(link) || !strings.HasPrefix(link, "/") {
		return link
	}
	if base == "" || base == "/" {
		return link
	}
	if strings.HasPrefix(link, base) {
		return link
	}
	return base + strings.TrimPrefix(link, "/")
}
