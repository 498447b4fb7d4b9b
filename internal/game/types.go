// internal/game/types.go
//
// Core type definitions for the Mastermind scoring engine.
// Defines:
//   - Feedback: the (exact, partial) peg counts answering a guess.
//   - Turn/History: the ordered guess/feedback record of a session.

package game

import (
	"fmt"

	"github.com/robalobadob/mastermind/internal/codes"
)

// Feedback is the code maker's answer to a guess: Exact counts pegs that are
// the right symbol in the right position, Partial counts symbols present in
// the code but in a different position. Always Exact+Partial <= code length.
//
// Feedback values come out of Score (or are typed in by a human code maker
// and checked against Score); the solver never builds them ad hoc.
type Feedback struct {
	Exact   int
	Partial int
}

// Perfect reports whether f indicates the guess matched the code outright.
func (f Feedback) Perfect() bool {
	return f.Exact == codes.Length() && f.Partial == 0
}

// String renders feedback the way it is shown to players, e.g. "20".
func (f Feedback) String() string {
	return fmt.Sprintf("%d%d", f.Exact, f.Partial)
}

// Turn is one guess and the feedback it received.
type Turn struct {
	Guess    codes.Code
	Feedback Feedback
}

// History is the append-only record of a session's turns, oldest first.
// It exists for display; the solver only needs its own last guess.
type History []Turn
