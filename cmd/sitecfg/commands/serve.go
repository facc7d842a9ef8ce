package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecfg/internal/metrics"
	"git.home.luguber.info/inful/sitecfg/internal/server"
	"git.home.luguber.info/inful/sitecfg/internal/watch"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr     string        `help:"Listen address" default:":8080"`
	Docs     string        `name:"docs" short:"d" help:"Docs directory to cross-check links against (optional)" type:"path"`
	Watch    bool          `help:"Rebuild when the configuration file changes" default:"true" negatable:""`
	Debounce time.Duration `help:"Delay before rebuilding after a change" default:"500ms"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	g.Recorder = metrics.NewPrometheusRecorder(reg)

	state := &server.State{}
	rebuild := func(ctx context.Context) error {
		res, err := runBuild(ctx, g, root.Config, s.Docs)
		state.Update(res, err)
		return err
	}
	// A broken initial config is reported through the endpoints; keep serving
	// so a fix can be picked up by the watcher.
	_ = rebuild(ctx)

	if s.Watch {
		w, err := watch.New(root.Config, s.Debounce, rebuild)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	return server.New(state, reg).ListenAndServe(ctx, s.Addr)
}
