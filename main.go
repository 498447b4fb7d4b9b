package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/codes"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := codes.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to set up code universe")
	}
	k, n, u := codes.Stats()
	log.Debug().Int("symbols", k).Int("length", n).Int("universe", u).Msg("universe ready")

	root := &cobra.Command{
		Use:           "mastermind",
		Short:         "Mastermind game with a five-guess computer code breaker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPlayCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
