// internal/codes/codes.go
//
// Provides the code universe for the game engine and solver.
//
// Responsibilities:
//   - Hold the symbol alphabet and code length for the process (env-overridable).
//   - Enumerate the complete universe of possible codes exactly once, in a
//     fixed deterministic order (used for solver tie-breaking and tests).
//   - Supply utility functions like Random, IsValid, and Stats.
//
// Initialization behavior (Init):
//   1. If MM_ALPHABET is set, use it as the symbol alphabet (default "ABCDEF").
//   2. If MM_CODE_LEN is set, use it as the code length (default 4).
//   3. The universe (alphabet^length codes) is enumerated eagerly so that its
//      order is fixed for the lifetime of the process.
//
// Environment variables:
//   MM_ALPHABET=ABCDEF
//   MM_CODE_LEN=4
//
// Constraints:
//   • Alphabet must contain at least 2 distinct symbols, no repeats.
//   • Code length must be at least 1.
//   • Universe size is capped to keep enumeration and the solver's feedback
//     table tractable.
//   • Initialization is run once (sync.Once).

package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"
)

// A Code is an ordered, fixed-length sequence of symbols from the alphabet.
// Duplicates are allowed. Codes are plain strings and therefore immutable.
type Code string

const (
	defaultAlphabet = "ABCDEF"
	defaultLength   = 4

	// maxUniverse bounds alphabet^length; beyond this the solver's
	// universe-squared feedback table stops being reasonable.
	maxUniverse = 1 << 20
)

var (
	initOnce   sync.Once
	alphabet   string
	length     int
	universe   []Code
	initialErr error
)

// Init loads the alphabet/length configuration and enumerates the universe
// exactly once. Returns an error if the configuration is invalid.
func Init() error {
	initOnce.Do(func() {
		alphabet = defaultAlphabet
		if v := os.Getenv("MM_ALPHABET"); v != "" {
			alphabet = strings.ToUpper(strings.TrimSpace(v))
		}
		length = defaultLength
		if v := os.Getenv("MM_CODE_LEN"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				initialErr = fmt.Errorf("codes: parse MM_CODE_LEN: %w", err)
				return
			}
			length = n
		}
		initialErr = setup(alphabet, length)
	})
	return initialErr
}

// setup validates the configuration and builds the universe.
func setup(alpha string, n int) error {
	if len(alpha) < 2 {
		return errors.New("codes: alphabet needs at least 2 symbols")
	}
	seen := map[rune]struct{}{}
	for _, r := range alpha {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("codes: repeated symbol %q in alphabet", r)
		}
		seen[r] = struct{}{}
	}
	if n < 1 {
		return errors.New("codes: code length must be at least 1")
	}
	size := 1
	for i := 0; i < n; i++ {
		size *= len(alpha)
		if size > maxUniverse {
			return fmt.Errorf("codes: universe %d^%d exceeds cap", len(alpha), n)
		}
	}
	universe = Enumerate(alpha, n)
	return nil
}

// Enumerate builds every length-n code over alpha in odometer order: the
// leftmost position varies slowest, so for "ABCDEF"/4 the sequence starts
// AAAA, AAAB, AAAC, ... This order is stable and is what the solver's
// tie-break relies on.
func Enumerate(alpha string, n int) []Code {
	size := 1
	for i := 0; i < n; i++ {
		size *= len(alpha)
	}
	out := make([]Code, 0, size)
	buf := make([]byte, n)
	idx := make([]int, n)
	for {
		for i, j := range idx {
			buf[i] = alpha[j]
		}
		out = append(out, Code(buf))
		// advance the odometer, rightmost digit fastest
		pos := n - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(alpha) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}

// Universe returns the full enumeration of possible codes.
// The returned slice is shared and must not be mutated.
func Universe() []Code {
	return universe
}

// Alphabet returns the configured symbol alphabet.
func Alphabet() string { return alphabet }

// Length returns the configured code length.
func Length() int { return length }

// IsValid reports whether s has the configured length and only uses symbols
// from the alphabet. Intended for the presentation layer; the core engine
// and solver assume codes are already valid.
func IsValid(s string) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

// Normalize uppercases and trims user input before validation.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Random returns a cryptographically random code from the universe.
// If the universe is not initialized yet, falls back to "AAAA".
func Random() Code {
	if len(universe) == 0 {
		return Code(strings.Repeat(defaultAlphabet[:1], defaultLength))
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(universe))))
	return universe[nBig.Int64()]
}

// Stats returns the configured dimensions: (alphabet size, code length, universe size).
func Stats() (alphabetSize, codeLength, universeSize int) {
	return len(alphabet), length, len(universe)
}
