package commands

import (
	"context"
	"fmt"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
)

// CheckCmd implements the 'check' command. It fails when any internal link
// has no backing page.
type CheckCmd struct {
	Docs string `name:"docs" short:"d" help:"Docs directory" default:"docs" type:"path"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	res, err := runBuild(context.Background(), g, root.Config, c.Docs)
	if err != nil {
		return err
	}
	for _, issue := range res.Issues {
		_, _ = fmt.Fprintln(g.out(), issue)
	}
	if len(res.Issues) > 0 {
		return ferrors.ContentError("dangling internal links").
			Warning().
			WithContext("issues", len(res.Issues)).
			WithContext("docs", c.Docs).
			Build()
	}
	_, _ = fmt.Fprintf(g.out(), "%d pages, all links resolve\n", len(res.Pages))
	return nil
}
