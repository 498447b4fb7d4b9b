// cmd_play.go
//
// `mastermind play` — run one game between a code maker and a code breaker,
// each of which can be the computer or a human at the terminal.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/player"
)

func newPlayCmd() *cobra.Command {
	var makerType, breakerType, secret string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game of Mastermind",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()

			maker, err := buildMaker(makerType, secret, in, out)
			if err != nil {
				return err
			}
			breaker, err := buildBreaker(breakerType, in, out)
			if err != nil {
				return err
			}

			_, err = player.NewSession(maker, breaker, out).Play()
			return err
		},
	}

	cmd.Flags().StringVar(&makerType, "maker", "cpu", "code maker player type (cpu|human)")
	cmd.Flags().StringVar(&breakerType, "breaker", "cpu", "code breaker player type (cpu|human)")
	cmd.Flags().StringVar(&secret, "secret", "", "fixed secret for a cpu code maker (testing)")
	return cmd
}

func buildMaker(kind, secret string, in io.Reader, out io.Writer) (player.CodeMaker, error) {
	switch kind {
	case "cpu":
		if secret != "" && !codes.IsValid(codes.Normalize(secret)) {
			return nil, fmt.Errorf("invalid --secret %q", secret)
		}
		return player.NewComputerCodeMaker(codes.Code(codes.Normalize(secret))), nil
	case "human":
		return player.NewHumanCodeMaker(in, out), nil
	}
	return nil, fmt.Errorf("unknown code maker type %q (want cpu or human)", kind)
}

func buildBreaker(kind string, in io.Reader, out io.Writer) (player.CodeBreaker, error) {
	switch kind {
	case "cpu":
		return player.NewComputerCodeBreaker()
	case "human":
		return player.NewHumanCodeBreaker(in, out), nil
	}
	return nil, fmt.Errorf("unknown code breaker type %q (want cpu or human)", kind)
}
