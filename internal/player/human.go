// internal/player/human.go
//
// Human-driven player variants, prompting over an io.Reader/io.Writer pair
// (stdin/stdout in the CLI, fixed buffers in tests).
//
// Validation happens here, at the boundary, so the engine and solver only
// ever see well-formed codes and feedback:
//   - Codes must have the configured length and alphabet.
//   - Answers must be two digits and must equal the true score of the guess
//     against the disclosed secret; a human cannot (even accidentally) feed
//     the breaker an untruthful answer.

package player

import (
	"bufio"
	"fmt"
	"io"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

// HumanCodeMaker prompts a person for the secret and for each answer.
type HumanCodeMaker struct {
	in   *bufio.Scanner
	out  io.Writer
	code codes.Code
}

// NewHumanCodeMaker constructs a human code maker reading prompts from in
// and writing them to out.
func NewHumanCodeMaker(in io.Reader, out io.Writer) *HumanCodeMaker {
	return &HumanCodeMaker{in: bufio.NewScanner(in), out: out}
}

// MakeCode prompts for a valid secret code.
func (m *HumanCodeMaker) MakeCode() error {
	fmt.Fprintln(m.out, "[Code Maker]: enter your secret code")
	c, err := promptCode(m.in, m.out)
	if err != nil {
		return err
	}
	m.code = c
	return nil
}

// Answer prompts for the answer to a guess. The input must match the true
// score of the guess against the secret; otherwise the prompt repeats.
func (m *HumanCodeMaker) Answer(guess codes.Code) (game.Feedback, error) {
	want := game.Score(guess, m.code)
	for {
		fmt.Fprintf(m.out, "[Code Maker]: answer for guess %s (two digits, e.g. 02)\n", guess)
		line, err := prompt(m.in, m.out)
		if err != nil {
			return game.Feedback{}, err
		}
		fb, ok := parseFeedback(line)
		if !ok {
			fmt.Fprintln(m.out, "invalid answer: enter exact then partial pegs, e.g. 02")
			continue
		}
		if fb != want {
			fmt.Fprintln(m.out, "that answer is not correct for your secret, try again")
			continue
		}
		return fb, nil
	}
}

// Reveal discloses the secret.
func (m *HumanCodeMaker) Reveal() codes.Code { return m.code }

// HumanCodeBreaker prompts a person for every guess.
type HumanCodeBreaker struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanCodeBreaker constructs a human code breaker reading prompts from
// in and writing them to out.
func NewHumanCodeBreaker(in io.Reader, out io.Writer) *HumanCodeBreaker {
	return &HumanCodeBreaker{in: bufio.NewScanner(in), out: out}
}

// InitialGuess prompts for the opening guess.
func (b *HumanCodeBreaker) InitialGuess() (codes.Code, error) {
	fmt.Fprintln(b.out, "[Code Breaker]: enter your first guess")
	return promptCode(b.in, b.out)
}

// Guess prompts for the next guess; the answer to the previous one has
// already been displayed by the session loop.
func (b *HumanCodeBreaker) Guess(game.Feedback) (codes.Code, error) {
	fmt.Fprintln(b.out, "[Code Breaker]: enter your next guess")
	return promptCode(b.in, b.out)
}

// ------------------------------ prompting ----------------------------------

// prompt reads one line, returning io.EOF when input runs out.
func prompt(in *bufio.Scanner, out io.Writer) (string, error) {
	fmt.Fprint(out, ">>> ")
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return in.Text(), nil
}

// promptCode reads lines until a valid code arrives.
func promptCode(in *bufio.Scanner, out io.Writer) (codes.Code, error) {
	for {
		line, err := prompt(in, out)
		if err != nil {
			return "", err
		}
		c := codes.Normalize(line)
		if codes.IsValid(c) {
			return codes.Code(c), nil
		}
		fmt.Fprintf(out, "invalid code: enter %d symbols from %q, e.g. AABB\n",
			codes.Length(), codes.Alphabet())
	}
}

// parseFeedback parses a two-digit answer like "02" into feedback, checking
// the ranges the engine guarantees (each count in [0,n], sum <= n).
func parseFeedback(s string) (game.Feedback, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return game.Feedback{}, false
	}
	fb := game.Feedback{Exact: int(s[0] - '0'), Partial: int(s[1] - '0')}
	n := codes.Length()
	if fb.Exact > n || fb.Partial > n || fb.Exact+fb.Partial > n {
		return game.Feedback{}, false
	}
	return fb, true
}
