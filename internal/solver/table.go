// internal/solver/table.go
//
// Precomputed feedback table over the code universe.
// Responsibilities:
//   - Score every (guess, candidate) pair once up front so the minimax scan
//     never recomputes feedback (it would otherwise score the whole universe
//     against the candidate set on every move).
//   - Provide index-based Filter and Select used by the Solver.
//
// Feedback values are packed into one byte as (n+1)*exact+partial, which for
// any supported code length fits comfortably and keeps the table at
// len(universe)^2 bytes.

package solver

import (
	"errors"
	"sync"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

// Table holds the universe in its fixed enumeration order together with the
// packed feedback for every ordered (guess, candidate) pair.
type Table struct {
	universe []codes.Code
	index    map[codes.Code]int
	n        int     // code length
	fb       []uint8 // row-major: fb[g*len(universe)+c]
}

// NewTable enumerates feedback for every pair in the given universe.
// Cost is O(len(universe)^2 · code length), paid once.
func NewTable(universe []codes.Code) *Table {
	t := &Table{
		universe: universe,
		index:    make(map[codes.Code]int, len(universe)),
		n:        len(universe[0]),
		fb:       make([]uint8, len(universe)*len(universe)),
	}
	for i, c := range universe {
		t.index[c] = i
	}
	for g := range universe {
		row := t.fb[g*len(universe):]
		for c := range universe {
			row[c] = t.pack(game.Score(universe[g], universe[c]))
		}
	}
	return t
}

// pack encodes feedback into a single byte.
func (t *Table) pack(f game.Feedback) uint8 {
	return uint8((t.n+1)*f.Exact + f.Partial)
}

// Feedback decodes the stored feedback for guess g against candidate c
// (both universe indexes).
func (t *Table) Feedback(g, c int) game.Feedback {
	v := int(t.fb[g*len(t.universe)+c])
	return game.Feedback{Exact: v / (t.n + 1), Partial: v % (t.n + 1)}
}

// Len returns the universe size.
func (t *Table) Len() int { return len(t.universe) }

// Code maps a universe index back to its code.
func (t *Table) Code(i int) codes.Code { return t.universe[i] }

// Index maps a code to its universe index.
func (t *Table) Index(c codes.Code) (int, bool) {
	i, ok := t.index[c]
	return i, ok
}

// Filter is the index-based equivalent of the package-level Filter: it keeps
// the candidates whose recorded feedback against guess equals observed.
func (t *Table) Filter(candidates []int, guess int, observed game.Feedback) []int {
	want := t.pack(observed)
	row := t.fb[guess*len(t.universe):]
	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		if row[c] == want {
			out = append(out, c)
		}
	}
	return out
}

// Select picks the next guess by minimax over the entire universe, not just
// the candidates: an already-eliminated code can still split the remaining
// candidates better than any surviving one.
//
// For each prospective guess the candidates are bucketed by the feedback
// they would produce; the guess's score is the number of candidates
// guaranteed eliminated under the worst-case (largest) bucket. Among
// maximal-score guesses the tie-break is:
//  1. prefer a guess that is itself still a candidate (it might win the
//     game outright, at no informational cost), then
//  2. the first in universe enumeration order.
//
// Both steps are deterministic, so identical inputs always yield the
// identical guess.
func (t *Table) Select(candidates []int) int {
	buckets := make([]int, (t.n+1)*(t.n+1))
	bestScore := -1
	var best []int

	for g := 0; g < len(t.universe); g++ {
		for i := range buckets {
			buckets[i] = 0
		}
		row := t.fb[g*len(t.universe):]
		for _, c := range candidates {
			buckets[row[c]]++
		}
		worst := 0
		for _, v := range buckets {
			if v > worst {
				worst = v
			}
		}
		score := len(candidates) - worst
		if score > bestScore {
			bestScore = score
			best = best[:0]
		}
		if score == bestScore {
			best = append(best, g)
		}
	}

	inSet := make(map[int]struct{}, len(candidates))
	for _, c := range candidates {
		inSet[c] = struct{}{}
	}
	for _, g := range best {
		if _, ok := inSet[g]; ok {
			return g
		}
	}
	return best[0]
}

// ---------------------- shared process-wide table ---------------------------

var (
	sharedOnce sync.Once
	shared     *Table
	sharedErr  error
)

// sharedTable builds the table for the configured code universe exactly once.
func sharedTable() (*Table, error) {
	sharedOnce.Do(func() {
		u := codes.Universe()
		if len(u) == 0 {
			sharedErr = errors.New("solver: codes universe not initialized")
			return
		}
		shared = NewTable(u)
	})
	return shared, sharedErr
}
