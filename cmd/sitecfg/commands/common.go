// Package commands implements the sitecfg CLI subcommands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecfg/internal/build"
	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

// Global carries shared state into subcommands.
type Global struct {
	Logger *slog.Logger
	Stdout io.Writer
	// Recorder is used by one-shot commands; serve installs its own.
	Recorder metrics.Recorder
}

func (g *Global) out() io.Writer {
	if g == nil || g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) recorder() metrics.Recorder {
	if g == nil || g.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return g.Recorder
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Site configuration file path" default:"site.yaml" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text or json)" default:"text"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate the site configuration"`
	Export   ExportCmd   `cmd:"" help:"Export the canonical configuration as a JSON manifest or Hugo config"`
	Pages    PagesCmd    `cmd:"" help:"List the pages found in a docs directory"`
	Check    CheckCmd    `cmd:"" help:"Check nav and sidebar links against a docs directory"`
	Init     InitCmd     `cmd:"" help:"Write the blueprint site configuration"`
	Serve    ServeCmd    `cmd:"" help:"Serve the demo page and configuration endpoints, rebuilding on change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := config.LogLevelInfo
	if c.Verbose {
		level = config.LogLevelDebug
	}
	slog.SetDefault(config.NewLogger(os.Stderr, level, config.NormalizeLogFormat(c.LogFormat)))
	return nil
}

// runBuild executes one build through the shared service.
func runBuild(ctx context.Context, g *Global, configPath, docsDir string) (*build.Result, error) {
	svc := build.NewService().WithRecorder(g.recorder())
	return svc.Run(ctx, build.Request{ConfigPath: configPath, DocsDir: docsDir})
}
