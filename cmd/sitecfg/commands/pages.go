package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/sitecfg/internal/content"
)

const fingerprintPrefix = 12

// PagesCmd implements the 'pages' command.
type PagesCmd struct {
	Docs string `name:"docs" short:"d" help:"Docs directory" default:"docs" type:"path"`
}

func (p *PagesCmd) Run(g *Global, _ *CLI) error {
	pages, err := content.Discover(p.Docs)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ROUTE\tTITLE\tSOURCE\tFINGERPRINT")
	for _, page := range pages {
		fp := page.Fingerprint
		if len(fp) > fingerprintPrefix {
			fp = fp[:fingerprintPrefix]
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", page.Route, page.Title, page.SourcePath, fp)
	}
	return tw.Flush()
}
