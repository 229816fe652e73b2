package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"example.com/bc-cli/internal/config"
	"example.com/bc-cli/internal/console"
	"example.com/bc-cli/internal/game"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	in      console.LineReader
	session *game.Session
}

type Options struct {
	Stdin  *os.File // used when Input is nil
	Stdout io.Writer

	Input console.LineReader // optional; overrides Stdin
	Rand  game.Rand          // optional; crypto-seeded ChaCha8 if nil
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	in := opts.Input
	if in == nil {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		var err error
		in, err = console.Open(stdin, opts.Stdout)
		if err != nil {
			return nil, fmt.Errorf("open console: %w", err)
		}
	}

	gen := game.NewSecretGenerator(opts.Rand)
	session := game.NewSession(in, opts.Stdout, gen, log)

	return &App{cfg: cfg, log: log, in: in, session: session}, nil
}

// NewLogger builds the diagnostics logger described by cfg.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	ho := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}

func (a *App) Session() *game.Session { return a.session }

func (a *App) Run(ctx context.Context) error {
	a.log.Debug("game starting",
		"session", a.session.ID(),
		"log_format", a.cfg.Log.Format,
		"log_level", a.cfg.Log.Level,
	)

	err := a.session.Run(ctx)
	_ = a.Close()
	return err
}

func (a *App) Close() error {
	// best-effort
	if a.in != nil {
		_ = a.in.Close()
	}
	return nil
}
