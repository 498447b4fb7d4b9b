// internal/player/session.go
//
// Top-level loop for one game between a code maker and a code breaker.
// Responsibilities:
//   - Drive the make-code / guess / answer exchange until a perfect answer.
//   - Keep and render the guess history table after every round.
//   - Correlate log lines with a compact random session ID.

package player

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

// Session runs one game between two players.
type Session struct {
	ID      string
	maker   CodeMaker
	breaker CodeBreaker
	out     io.Writer
}

// NewSession constructs a session writing game output to out.
func NewSession(maker CodeMaker, breaker CodeBreaker, out io.Writer) *Session {
	return &Session{ID: randomID(), maker: maker, breaker: breaker, out: out}
}

// Play runs the game to completion and returns the full guess history.
// The loop ends when the maker's answer is a perfect match, or with the
// breaker's error if it cannot continue (e.g. inconsistent answers).
func (s *Session) Play() (game.History, error) {
	log.Debug().Str("session", s.ID).Msg("session starting")

	if err := s.maker.MakeCode(); err != nil {
		return nil, fmt.Errorf("make code: %w", err)
	}

	guess, err := s.breaker.InitialGuess()
	if err != nil {
		return nil, fmt.Errorf("initial guess: %w", err)
	}
	fmt.Fprintf(s.out, "[Code Breaker]: guess is %s\n", guess)

	var history game.History
	for {
		fb, err := s.maker.Answer(guess)
		if err != nil {
			return history, fmt.Errorf("answer: %w", err)
		}
		fmt.Fprintf(s.out, "[Code Maker]: answer is %s\n", fb)

		history = append(history, game.Turn{Guess: guess, Feedback: fb})
		renderHistory(s.out, history)

		if fb.Perfect() {
			fmt.Fprintf(s.out, "[Code Breaker]: code broken! it was %s in %d guesses\n",
				s.maker.Reveal(), len(history))
			log.Info().Str("session", s.ID).Int("guesses", len(history)).Msg("session solved")
			return history, nil
		}

		guess, err = s.breaker.Guess(fb)
		if err != nil {
			log.Warn().Str("session", s.ID).Err(err).Msg("breaker cannot continue")
			return history, fmt.Errorf("guess: %w", err)
		}
		if r, ok := s.breaker.(interface{ Remaining() int }); ok {
			log.Debug().Str("session", s.ID).Int("round", len(history)+1).
				Int("candidates", r.Remaining()).Msg("round played")
		}
		fmt.Fprintf(s.out, "[Code Breaker]: guess is %s\n", guess)
	}
}

// renderHistory prints the guesses so far as a bordered table:
//
//	|====|=========|====|
//	|  1 | A A B B | 02 |
//	|====|=========|====|
func renderHistory(out io.Writer, history game.History) {
	border := "|====|" + strings.Repeat("=", 2*codes.Length()+1) + "|====|"
	fmt.Fprintln(out)
	fmt.Fprintln(out, border)
	for i, turn := range history {
		fmt.Fprintf(out, "|%3d | %s | %s |\n", i+1, spaced(turn.Guess), turn.Feedback)
	}
	fmt.Fprintln(out, border)
	fmt.Fprintln(out)
}

// spaced renders a code with symbols separated by single spaces.
func spaced(c codes.Code) string {
	parts := make([]string, len(c))
	for i := 0; i < len(c); i++ {
		parts[i] = string(c[i])
	}
	return strings.Join(parts, " ")
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
