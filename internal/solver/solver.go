// internal/solver/solver.go
//
// Five-guess Mastermind solver (Knuth 1977).
// Responsibilities:
//   - Own the candidate set for one game session and shrink it after every
//     answer; the true secret stays in the set as long as answers are
//     truthful.
//   - Emit the fixed opening guess, then minimax guesses until solved.
//   - Track state transitions: ready → awaiting feedback → solved/exhausted.
//
// Notes:
//   - One Solver per session; not safe for concurrent use and never shared.
//   - No I/O and no logging here; callers decide how to present guesses.
package solver

import (
	"errors"
	"strings"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

var (
	// ErrSequence reports a call made in the wrong state, e.g. Guess before
	// InitialGuess or after the session finished.
	ErrSequence = errors.New("solver: call out of sequence")

	// ErrInconsistentFeedback reports that the answers received so far admit
	// no code at all. Some earlier answer was wrong (or the secret changed);
	// the session cannot recover.
	ErrInconsistentFeedback = errors.New("solver: feedback inconsistent, no candidates remain")
)

// State is the solver's position in a session.
type State int

const (
	StateReady            State = iota // no guess made yet
	StateAwaitingFeedback              // a guess is out, waiting for its answer
	StateSolved                        // a perfect answer came back
	StateExhausted                     // candidate set emptied; fatal
)

// String reports a coarse name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateAwaitingFeedback:
		return "awaiting-feedback"
	case StateSolved:
		return "solved"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Solver plays the code breaker side of one game session.
type Solver struct {
	table      *Table
	state      State
	candidates []int // universe indexes still consistent with every answer
	last       int   // universe index of the last emitted guess
}

// New constructs a solver over the configured code universe.
// codes.Init must have succeeded first. The universe-squared feedback table
// is built on the first call and shared by every later solver.
func New() (*Solver, error) {
	t, err := sharedTable()
	if err != nil {
		return nil, err
	}
	return NewWithTable(t), nil
}

// NewWithTable constructs a solver over an explicit table. The candidate set
// starts as the full universe.
func NewWithTable(t *Table) *Solver {
	cands := make([]int, t.Len())
	for i := range cands {
		cands[i] = i
	}
	return &Solver{table: t, state: StateReady, candidates: cands}
}

// State returns the solver's current session state.
func (s *Solver) State() State { return s.state }

// Remaining returns how many candidate codes are still possible.
func (s *Solver) Remaining() int { return len(s.candidates) }

// InitialGuess emits the fixed opening: the first alphabet symbol repeated
// over the left half of the code and the second over the right (AABB for the
// classic 6×4 game). A two-symbol opening of this shape is known to be a
// strong first probe, and skipping the minimax scan avoids the most
// expensive Select call of the whole session, the one where every universe
// code is still a candidate.
//
// Valid only before any guess has been made.
func (s *Solver) InitialGuess() (codes.Code, error) {
	if s.state != StateReady {
		return "", ErrSequence
	}
	g, ok := s.table.Index(s.opening())
	if !ok {
		// opening falls outside a degenerate universe; probe its first code
		g = 0
	}
	s.last = g
	s.state = StateAwaitingFeedback
	return s.table.Code(g), nil
}

// opening builds the two-symbol fixed first guess from the universe's first
// two symbols.
func (s *Solver) opening() codes.Code {
	n := s.table.n
	a := string(s.table.Code(0)[0])
	b := string(s.table.Code(1)[n-1])
	return codes.Code(strings.Repeat(a, n-n/2) + strings.Repeat(b, n/2))
}

// Guess consumes the answer to the previous guess and emits the next one.
//
// The candidate set is filtered down to the codes consistent with the
// answer. Outcomes, in order:
//   - set empties: the answers contradict each other; the session moves to
//     StateExhausted and the call fails with ErrInconsistentFeedback.
//   - answer was perfect: the session is solved; the winning guess is
//     returned once more and further calls fail with ErrSequence.
//   - one candidate left: it must be the secret, return it directly.
//   - otherwise: minimax over the universe picks the next guess.
//
// Valid only while a guess is awaiting its answer.
func (s *Solver) Guess(fb game.Feedback) (codes.Code, error) {
	if s.state != StateAwaitingFeedback {
		return "", ErrSequence
	}

	s.candidates = s.table.Filter(s.candidates, s.last, fb)
	if len(s.candidates) == 0 {
		s.state = StateExhausted
		return "", ErrInconsistentFeedback
	}

	if fb.Exact == s.table.n && fb.Partial == 0 {
		s.state = StateSolved
		return s.table.Code(s.last), nil
	}

	var next int
	if len(s.candidates) == 1 {
		next = s.candidates[0]
	} else {
		next = s.table.Select(s.candidates)
	}
	s.last = next
	return s.table.Code(next), nil
}
