package content

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inful/mdfp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// Page is one markdown document known to the content source.
type Page struct {
	// Route is the root-relative path the page is served under, without the
	// site base: "/" for index.md, "/QUICK_START" for QUICK_START.md.
	Route string
	// SourcePath is the slash-separated path relative to the docs root; it
	// is what edit link patterns substitute for :path.
	SourcePath string
	Title      string
	// Fingerprint is the mdfp content fingerprint of frontmatter and body.
	Fingerprint string
}

// Discover walks root and returns every markdown page, sorted by route.
// Hidden directories and node_modules are skipped.
func Discover(root string) ([]Page, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, ferrors.NewError(ferrors.CategoryNotFound, "docs directory not found").
			WithContext("path", root).
			Build()
	}

	var pages []Page
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if p != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(p), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		page, err := loadPage(p, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if walkErr != nil {
		if ferrors.HasCategory(walkErr, ferrors.CategoryContent) {
			return nil, walkErr
		}
		return nil, ferrors.WrapError(walkErr, ferrors.CategoryFileSystem, "failed to walk docs directory").
			WithContext("path", root).
			Build()
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Route < pages[j].Route })
	slog.Debug("Discovered documentation pages", logfields.Path(root), logfields.Pages(len(pages)))
	return pages, nil
}

func loadPage(absPath, rel string) (Page, error) {
	data, err := os.ReadFile(absPath)
	if err != nil {
		return Page{}, err
	}
	fm, body, _, err := splitFrontmatter(data)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryContent, "invalid frontmatter").
			WithContext("path", rel).
			Build()
	}
	fields, err := parseFrontmatter(fm)
	if err != nil {
		return Page{}, ferrors.WrapError(err, ferrors.CategoryContent, "invalid frontmatter yaml").
			WithContext("path", rel).
			Build()
	}

	title, _ := fields["title"].(string)
	if strings.TrimSpace(title) == "" {
		title = firstHeading(body)
	}
	if title == "" {
		title = TitleFromPath(rel)
	}

	return Page{
		Route:       RouteFor(rel),
		SourcePath:  rel,
		Title:       strings.TrimSpace(title),
		Fingerprint: mdfp.CalculateFingerprintFromParts(strings.TrimSuffix(string(fm), "\n"), string(body)),
	}, nil
}

// RouteFor maps a docs-relative markdown path onto its served route.
func RouteFor(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), path.Ext(rel))
	dir, file := path.Split(rel)
	if strings.EqualFold(file, "index") || strings.EqualFold(file, "readme") {
		rel = strings.TrimSuffix(dir, "/")
	}
	return "/" + rel
}

// TitleFromPath derives a human title from a file name: "QUICK_START.md"
// becomes "Quick Start". Index pages take their directory's name.
func TitleFromPath(rel string) string {
	rel = filepath.ToSlash(rel)
	base := strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	if strings.EqualFold(base, "index") || strings.EqualFold(base, "readme") {
		dir := path.Dir(rel)
		if dir == "." || dir == "/" {
			return "Home"
		}
		base = path.Base(dir)
	}
	words := strings.FieldsFunc(base, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	return cases.Title(language.English).String(strings.ToLower(strings.Join(words, " ")))
}
