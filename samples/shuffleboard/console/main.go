package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	names    Names
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "shuffleboard",
		Short: "Keep score for a game of shuffleboard.",
		Long: `Reads one command per line from standard input and prints the scoreboard
after every change:

  1  point for player one
  2  point for player two
  r  reset the scores
  q  quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				return err
			}
			log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

			return play(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), names, &log)
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&names.PlayerOne, "player-one", "Player One", "name shown for player one")
	rootCmd.Flags().StringVar(&names.PlayerTwo, "player-two", "Player Two", "name shown for player two")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level for dispatch diagnostics")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
