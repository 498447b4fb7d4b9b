// internal/player/cpu.go
//
// Computer-driven player variants.
//   - ComputerCodeMaker: random (or injected) secret, truthful answers.
//   - ComputerCodeBreaker: wraps the five-guess solver.

package player

import (
	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/solver"
)

// ComputerCodeMaker holds a secret code and answers guesses by scoring them.
type ComputerCodeMaker struct {
	code codes.Code
	with codes.Code
}

// NewComputerCodeMaker constructs a cpu code maker.
// If withCode is empty, MakeCode picks a random secret; a fixed code is
// useful for tests and replays.
func NewComputerCodeMaker(withCode codes.Code) *ComputerCodeMaker {
	return &ComputerCodeMaker{with: withCode}
}

// MakeCode fixes the secret for the session.
func (m *ComputerCodeMaker) MakeCode() error {
	if m.with != "" {
		m.code = m.with
		return nil
	}
	m.code = codes.Random()
	return nil
}

// Answer scores the guess against the secret. Always truthful.
func (m *ComputerCodeMaker) Answer(guess codes.Code) (game.Feedback, error) {
	return game.Score(guess, m.code), nil
}

// Reveal discloses the secret.
func (m *ComputerCodeMaker) Reveal() codes.Code { return m.code }

// ComputerCodeBreaker plays guesses from the solver.
type ComputerCodeBreaker struct {
	s *solver.Solver
}

// NewComputerCodeBreaker constructs a cpu code breaker over the configured
// code universe.
func NewComputerCodeBreaker() (*ComputerCodeBreaker, error) {
	s, err := solver.New()
	if err != nil {
		return nil, err
	}
	return &ComputerCodeBreaker{s: s}, nil
}

// InitialGuess emits the solver's fixed opening.
func (b *ComputerCodeBreaker) InitialGuess() (codes.Code, error) {
	return b.s.InitialGuess()
}

// Guess feeds the answer to the solver and returns its next guess.
func (b *ComputerCodeBreaker) Guess(fb game.Feedback) (codes.Code, error) {
	return b.s.Guess(fb)
}

// Remaining reports how many candidate codes the solver still considers.
func (b *ComputerCodeBreaker) Remaining() int { return b.s.Remaining() }
