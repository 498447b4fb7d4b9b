// internal/game/engine.go
//
// Scoring engine for Mastermind guesses.
// Responsibilities:
//   - Score any (guess, code) pair into exact/partial peg counts using the
//     classic two-pass algorithm.
//
// Notes:
//   - Codes are assumed well-formed (equal length, alphabet symbols); the
//     presentation layer validates before anything reaches here.
//   - Pure function, no state, no errors.
package game

import "github.com/robalobadob/mastermind/internal/codes"

// Score computes the feedback for a guess against a code.
//
// Pass 1:
//   - Count exact matches (right symbol, right position).
//   - Tally the code symbols at non-matching positions.
//
// Pass 2:
//   - For each non-matching guess symbol in order: if any tally remains for
//     that symbol, award a partial peg and consume one occurrence.
//
// Consuming one tally per partial peg keeps a single code symbol from being
// credited against several duplicate guess symbols, matching the remove-one
// semantics of the physical game.
func Score(guess, code codes.Code) Feedback {
	n := len(guess)
	var fb Feedback

	// Symbol tallies for the non-exact code positions.
	var counts [256]int

	// First pass: exact pegs, plus tallies for the remaining code symbols.
	for i := 0; i < n; i++ {
		if guess[i] == code[i] {
			fb.Exact++
		} else {
			counts[code[i]]++
		}
	}

	// Second pass: partial pegs for the remaining guess symbols.
	for i := 0; i < n; i++ {
		if guess[i] == code[i] {
			continue
		}
		if counts[guess[i]] > 0 {
			fb.Partial++
			counts[guess[i]]--
		}
	}
	return fb
}
