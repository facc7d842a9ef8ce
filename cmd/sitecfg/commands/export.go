package commands

import (
	"context"
	"log/slog"
	"os"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
	"git.home.luguber.info/inful/sitecfg/internal/render"
)

// ExportCmd implements the 'export' command.
type ExportCmd struct {
	Format string `short:"f" help:"Output format" enum:"json,hugo" default:"json"`
	Output string `short:"o" help:"Write to file instead of stdout" type:"path"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	res, err := runBuild(context.Background(), g, root.Config, "")
	if err != nil {
		return err
	}

	var data []byte
	switch e.Format {
	case "hugo":
		data, err = render.HugoConfig(res.Config)
	default:
		data, err = render.MarshalManifest(res.Config, res.BuildID)
	}
	if err != nil {
		return err
	}

	if e.Output == "" {
		_, err = g.out().Write(data)
		return err
	}
	if err := os.WriteFile(e.Output, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to write export").
			WithContext("path", e.Output).Build()
	}
	slog.Info("Exported site configuration", logfields.Format(e.Format), logfields.Path(e.Output), logfields.BuildID(res.BuildID))
	return nil
}
