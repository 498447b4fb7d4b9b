// cmd_bench.go
//
// `mastermind bench` — solve every possible secret in the universe and
// report the guess-count distribution. For the classic 6-symbol, 4-peg game
// the worst case is 5 guesses (Knuth's five-guess bound).

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/solver"
)

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Solve every possible secret and report the guess distribution",
		RunE:  runBench,
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	universe := codes.Universe()
	out := cmd.OutOrStdout()

	dist := map[int]int{}
	worst := 0
	var worstSecret codes.Code
	start := time.Now()

	for i, secret := range universe {
		rounds, err := solveSecret(secret)
		if err != nil {
			return fmt.Errorf("secret %s: %w", secret, err)
		}
		dist[rounds]++
		if rounds > worst {
			worst, worstSecret = rounds, secret
		}
		if (i+1)%200 == 0 {
			log.Debug().Int("done", i+1).Int("total", len(universe)).Msg("bench progress")
		}
	}

	fmt.Fprintf(out, "solved %d secrets in %s\n", len(universe), time.Since(start).Round(time.Millisecond))
	for rounds := 1; rounds <= worst; rounds++ {
		fmt.Fprintf(out, "%d guesses: %d secrets\n", rounds, dist[rounds])
	}
	fmt.Fprintf(out, "worst case: %d guesses (e.g. %s)\n", worst, worstSecret)
	return nil
}

// solveSecret plays the solver against a known secret with truthful answers
// and returns the number of guesses needed.
func solveSecret(secret codes.Code) (int, error) {
	s, err := solver.New()
	if err != nil {
		return 0, err
	}
	guess, err := s.InitialGuess()
	if err != nil {
		return 0, err
	}
	for rounds := 1; ; rounds++ {
		fb := game.Score(guess, secret)
		if fb.Perfect() {
			return rounds, nil
		}
		guess, err = s.Guess(fb)
		if err != nil {
			return rounds, err
		}
	}
}
