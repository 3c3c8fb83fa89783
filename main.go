package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"mazehunt/pkg/game/config"
	"mazehunt/pkg/game/devtools"
	"mazehunt/pkg/game/gameplay"
	"mazehunt/pkg/game/logging"
	"mazehunt/pkg/game/menu"
	"mazehunt/pkg/game/renderer"
	ebitenrenderer "mazehunt/pkg/game/renderer/ebiten"
	"mazehunt/pkg/game/renderer/tui"
	"mazehunt/pkg/game/state"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(".env", args)
	if errors.Is(err, flag.ErrHelp) {
		config.PrintUsage(os.Stdout)
		fmt.Println()
		_ = menu.WriteBindings(os.Stdout, renderer.Plain)
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")

	if cfg.Dump {
		return dump(cfg, log)
	}

	r, err := newRenderer(cfg)
	if err != nil {
		log.WithError(err).Error("renderer init failed")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	renderer.SetRenderer(r)
	defer r.Close()

	cfg = fitViewport(cfg, log)

	g, err := gameplay.BuildGame(cfg, log)
	if err != nil {
		log.WithError(err).Error("could not build game")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if er, ok := r.(*ebitenrenderer.EbitenRenderer); ok {
		// Ebiten owns the main goroutine; the game loop runs beside it.
		go func() {
			mainLoop(g, r)
			er.Close()
		}()
		if err := er.Run(); err != nil {
			log.WithError(err).Error("window closed with error")
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	} else {
		mainLoop(g, r)
	}

	fmt.Println(renderer.Message("GOODBYE", g.Score(), g.Moves()))
	log.WithFields(logrus.Fields{
		"score":  g.Score(),
		"moves":  g.Moves(),
		"levels": g.Level,
		"hints":  g.HintsUsed,
	}).Info("game over")
	return 0
}

func mainLoop(g *state.Game, r renderer.Renderer) {
	for !g.Quit {
		r.Clear()
		r.RenderFrame(g)
		gameplay.ProcessIntent(g, r.GetInput())
	}
	r.Clear()
	r.RenderFrame(g)
}

// setupLogging builds the logger and returns a func that closes its file
func setupLogging(cfg config.Config) (*logrus.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	log, err := logging.New(cfg.LogLevel, out)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}

func newRenderer(cfg config.Config) (renderer.Renderer, error) {
	var r renderer.Renderer
	switch cfg.Renderer {
	case config.RendererEbiten:
		r = ebitenrenderer.New()
	default:
		r = tui.New()
	}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// fitViewport shrinks the maze to what the renderer can show
func fitViewport(cfg config.Config, log logrus.FieldLogger) config.Config {
	rows, cols := renderer.GetViewportSize()
	if cfg.Cols <= cols && cfg.Rows <= rows {
		return cfg
	}

	log.WithFields(logrus.Fields{
		"requested": fmt.Sprintf("%dx%d", cfg.Cols, cfg.Rows),
		"viewport":  fmt.Sprintf("%dx%d", cols, rows),
	}).Warn("maze does not fit, shrinking")

	cfg.Cols = min(cfg.Cols, cols)
	cfg.Rows = min(cfg.Rows, rows)
	return cfg
}

// dump prints one generated maze with its metadata and exits
func dump(cfg config.Config, log logrus.FieldLogger) int {
	g, err := gameplay.BuildGame(cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := devtools.WriteDump(os.Stdout, g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
