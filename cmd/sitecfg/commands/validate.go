package commands

import (
	"context"
	"fmt"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Docs string `name:"docs" short:"d" help:"Docs directory to cross-check links against (optional)" type:"path"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	res, err := runBuild(context.Background(), g, root.Config, v.Docs)
	if err != nil {
		return err
	}
	cfg := res.Config
	_, _ = fmt.Fprintf(g.out(), "%s: valid (%d nav entries, %d sidebar sections, %s search, base %s)\n",
		root.Config, len(cfg.Nav), len(cfg.Sidebar), cfg.Search.Provider, cfg.Base)
	for _, issue := range res.Issues {
		_, _ = fmt.Fprintf(g.out(), "warning: %s\n", issue)
	}
	return nil
}
