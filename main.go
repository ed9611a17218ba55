package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/jtestard/pong-duel/display/canvas"
	"github.com/jtestard/pong-duel/display/terminal"
	"github.com/jtestard/pong-duel/display/window"
	"github.com/jtestard/pong-duel/pong"
)

const (
	backendWindow   = "ebiten"
	backendTerminal = "terminal"
	backendHeadless = "headless"
)

type options struct {
	configPath string
	backend    string
	frames     int
	out        string
	serveEvery int
	debug      bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("pong-duel", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&o.backend, "backend", backendWindow, "display backend: ebiten, terminal or headless")
	fs.IntVar(&o.frames, "frames", 240, "frames to simulate (headless)")
	fs.StringVar(&o.out, "out", "", "write the last frame as PNG (headless)")
	fs.IntVar(&o.serveEvery, "serve-every", 120, "press Start every N frames (headless)")
	fs.BoolVar(&o.debug, "debug", false, "TPS overlay (ebiten) or canvas renderer logs (headless)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.backend {
	case backendWindow, backendTerminal, backendHeadless:
	default:
		return o, errors.Errorf("unknown backend %q", o.backend)
	}
	if o.frames < 0 {
		return o, errors.Errorf("frames must be non-negative, got %d", o.frames)
	}
	return o, nil
}

// setupLogging routes the standard logger. The terminal backend owns the
// screen, so without a log file its output is discarded.
func setupLogging(cfg pong.Config, backend string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		log.SetOutput(f)
		return f, nil
	case backend == backendTerminal:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return io.NopCloser(nil), nil
}

func run(o options) error {
	cfg, err := pong.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	logs, err := setupLogging(cfg, o.backend)
	if err != nil {
		return err
	}
	defer logs.Close()

	log.Printf("bootstraping new game (backend=%s, %dx%d)", o.backend, cfg.Window.Width, cfg.Window.Height)
	shell := pong.NewShell(cfg)

	switch o.backend {
	case backendTerminal:
		term, err := terminal.Open(cfg)
		if err != nil {
			return err
		}
		defer term.Close()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Println("starting the game in the terminal...")
		return term.Run(ctx, shell)

	case backendHeadless:
		if o.debug {
			gg.SetLogger(slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		c, err := canvas.New(cfg, canvas.Serve(o.serveEvery))
		if err != nil {
			return err
		}
		defer c.Close()
		c.Run(shell, o.frames)
		log.Printf("simulated %d frames, mode=%s", c.Frames(), shell.Mode())
		if m := shell.Match(); m != nil {
			l, r := m.Score()
			log.Printf("score %d:%d, phase=%s", l, r, m.Phase())
		}
		if o.out != "" {
			return c.SavePNG(o.out)
		}
		return nil

	default:
		w, err := window.New(cfg, shell, o.debug)
		if err != nil {
			return err
		}
		log.Println("starting the game...")
		return w.Run()
	}
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "pong-duel: %v\n", err)
		os.Exit(1)
	}
}
