package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"example.com/bc-cli/internal/app"
	"example.com/bc-cli/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Ctrl-C on piped input cancels the session, which then reveals the secret.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "bnc",
		Short:        "Cows and Bulls: guess the 4-digit secret",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			log := app.NewLogger(cfg, os.Stderr)

			a, err := app.New(cmd.Context(), cfg, log, app.Options{
				Stdin:  os.Stdin,
				Stdout: os.Stdout,
			})
			if err != nil {
				log.Error("app init failed", "err", err)
				return err
			}
			return a.Run(cmd.Context())
		},
	}
}
