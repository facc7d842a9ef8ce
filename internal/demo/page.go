// Package demo serves the blueprint's example landing page, the smallest
// consumer of a built site configuration.
package demo

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/site"
)

// Link is one entry in the page's documentation list.
type Link struct {
	Text string
	Href string
}

// PageData is rendered by the landing page template.
type PageData struct {
	Title    string
	Subtitle string
	Steps    []Step
	Checks   []string
	Docs     []Link
}

// Step is a numbered next-step item.
type Step struct {
	Label string
	Body  string
}

// DefaultDocs lists the documentation links shown when no site config is available.
func DefaultDocs() []Link {
	return []Link{
		{Text: "Quick Start Guide", Href: "/QUICK_START"},
		{Text: "Workflows Reference", Href: "/WORKFLOWS"},
		{Text: "Slash Commands", Href: "/COMMANDS"},
		{Text: "Test Scenarios", Href: "/tests/scenarios"},
	}
}

// DocsFromConfig collects the sidebar leaves of cfg in render order.
func DocsFromConfig(cfg site.SiteConfig) []Link {
	var links []Link
	for _, s := range cfg.Sidebar {
		for _, item := range s.Items {
			links = append(links, Link{Text: item.Text, Href: item.Href})
		}
	}
	if len(links) == 0 {
		return DefaultDocs()
	}
	return links
}

// NewPageData returns the landing page content with the given documentation links.
func NewPageData(docs []Link) PageData {
	return PageData{
		Title:    "🎯 GitHub Workflow Blueprint",
		Subtitle: "Web Example",
		Steps: []Step{
			{Label: "Setup the blueprint:", Body: "Run sitecfg init from the repository root"},
			{Label: "Convert plan to issues:", Body: "Use the included plan.json file"},
			{Label: "Follow the workflow:", Body: "See README.md for the step-by-step guide"},
			{Label: "Test the automation:", Body: "Create PRs and watch the workflows run"},
		},
		Checks: []string{
			"sitecfg validate",
			"sitecfg check --docs docs",
			"go test ./...",
		},
		Docs: docs,
	}
}

var pageTemplate = template.Must(template.New("demo").Parse(pageHTMLTemplate))

// Handler serves the landing page at "/". Any other path is a 404.
type Handler struct {
	data         func() PageData
	errorAdapter *ferrors.HTTPErrorAdapter
}

// NewHandler builds a Handler; data is called per request so the page follows
// configuration reloads.
func NewHandler(data func() PageData) *Handler {
	if data == nil {
		data = func() PageData { return NewPageData(DefaultDocs()) }
	}
	return &Handler{data: data, errorAdapter: ferrors.NewHTTPErrorAdapter(slog.Default())}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.errorAdapter.WriteErrorResponse(w, r,
			ferrors.NewError(ferrors.CategoryNotFound, "page not found").WithContext("path", r.URL.Path).Build())
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, h.data()); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			ferrors.WrapError(err, ferrors.CategoryInternal, "failed to render demo page").Build())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

const pageHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>GitHub Workflow Blueprint</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; margin: 0; background: #f6f8fa; }
        .container { max-width: 800px; margin: 0 auto; padding: 40px 20px; }
        .hero { text-align: center; margin-bottom: 40px; }
        .subtitle { color: #57606a; }
        .card { background: #fff; border: 1px solid #d0d7de; border-radius: 6px; padding: 20px; margin-bottom: 20px; }
        .footer { text-align: center; color: #57606a; font-size: 14px; }
    </style>
</head>
<body>
<main class="container">
    <div class="hero">
        <h1>{{.Title}}</h1>
        <p class="subtitle">{{.Subtitle}}</p>
    </div>

    <section class="card">
        <h2>✅ Setup Complete!</h2>
        <p>This is a minimal example application pre-configured with the GitHub Workflow Blueprint for demonstration purposes.</p>
    </section>

    <section class="card">
        <h2>📝 Next Steps</h2>
        <ol>
        {{- range .Steps}}
            <li><strong>{{.Label}}</strong> {{.Body}}</li>
        {{- end}}
        </ol>
    </section>

    <section class="card">
        <h2>🧪 Quality Checks</h2>
        <p>Run these commands to verify everything works:</p>
        <pre><code>{{range .Checks}}{{.}}
{{end}}</code></pre>
    </section>

    <section class="card">
        <h2>📚 Documentation</h2>
        <ul>
        {{- range .Docs}}
            <li><a href="{{.Href}}">{{.Text}}</a></li>
        {{- end}}
        </ul>
    </section>

    <footer class="footer">
        <p>Generated with sitecfg</p>
    </footer>
</main>
</body>
</html>
`
