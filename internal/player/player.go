// internal/player/player.go
//
// Player roles for a Mastermind session.
// Defines:
//   - CodeMaker: owns the secret and answers guesses.
//   - CodeBreaker: produces guesses from the answers received.
//
// Each role has a computer and a human variant (cpu.go, human.go); the
// session loop in session.go only sees these interfaces.

package player

import (
	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

// CodeMaker is the side holding the secret code.
type CodeMaker interface {
	// MakeCode fixes the secret for the session.
	MakeCode() error

	// Answer scores a guess against the secret.
	Answer(guess codes.Code) (game.Feedback, error)

	// Reveal discloses the secret; called only after the game ends.
	Reveal() codes.Code
}

// CodeBreaker is the side trying to find the secret.
type CodeBreaker interface {
	// InitialGuess produces the opening guess of the session.
	InitialGuess() (codes.Code, error)

	// Guess consumes the answer to the previous guess and produces the next.
	Guess(fb game.Feedback) (codes.Code, error)
}
