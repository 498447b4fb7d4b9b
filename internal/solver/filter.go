// internal/solver/filter.go
//
// Candidate filtering: the reference definition of "still possible".

package solver

import (
	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

// Filter returns the subset of candidates that would have produced exactly
// the observed feedback for the given guess. A candidate inconsistent with
// any truthful answer can never be the secret, so the set only ever shrinks.
//
// Pure: the input slice is not mutated. Each candidate is scored once, so a
// call costs O(len(candidates) · code length). The solver itself uses the
// precomputed Table for the same computation; this form exists for callers
// that work with plain codes.
func Filter(candidates []codes.Code, guess codes.Code, observed game.Feedback) []codes.Code {
	out := make([]codes.Code, 0, len(candidates))
	for _, c := range candidates {
		if game.Score(guess, c) == observed {
			out = append(out, c)
		}
	}
	return out
}
