package player

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/codes"
	"github.com/robalobadob/mastermind/internal/game"
)

func TestMain(m *testing.M) {
	if err := codes.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// TestCpuVsCpuSession plays a full computer-vs-computer game with a fixed
// secret and checks the session solves it within the five-guess bound.
func TestCpuVsCpuSession(t *testing.T) {
	maker := NewComputerCodeMaker("BCDF")
	breaker, err := NewComputerCodeBreaker()
	require.NoError(t, err)

	var out bytes.Buffer
	history, err := NewSession(maker, breaker, &out).Play()
	require.NoError(t, err)

	assert.LessOrEqual(t, len(history), 5)
	last := history[len(history)-1]
	assert.Equal(t, codes.Code("BCDF"), last.Guess)
	assert.True(t, last.Feedback.Perfect())
	assert.Equal(t, codes.Code("AABB"), history[0].Guess)
	assert.Contains(t, out.String(), "code broken")
}

// TestCpuMakerRandomSecret verifies the cpu maker picks a valid secret when
// none is injected, and answers truthfully.
func TestCpuMakerRandomSecret(t *testing.T) {
	maker := NewComputerCodeMaker("")
	require.NoError(t, maker.MakeCode())
	secret := maker.Reveal()
	assert.True(t, codes.IsValid(string(secret)))

	fb, err := maker.Answer(secret)
	require.NoError(t, err)
	assert.True(t, fb.Perfect())
}

// TestHumanMakerRejectsInvalidSecret verifies the secret prompt loops until
// a valid code arrives.
func TestHumanMakerRejectsInvalidSecret(t *testing.T) {
	in := strings.NewReader("toolong\nABCG\nabcd\n")
	var out bytes.Buffer
	maker := NewHumanCodeMaker(in, &out)

	require.NoError(t, maker.MakeCode())
	assert.Equal(t, codes.Code("ABCD"), maker.Reveal(), "input is normalized to uppercase")
	assert.Contains(t, out.String(), "invalid code")
}

// TestHumanMakerAnswerValidation verifies an answer must be well-formed and
// must match the true score of the guess against the secret.
func TestHumanMakerAnswerValidation(t *testing.T) {
	// Secret ABCD; guess AABB scores (1,1): one exact A, one misplaced B.
	in := strings.NewReader("ABCD\nx2\n03\n11\n")
	var out bytes.Buffer
	maker := NewHumanCodeMaker(in, &out)
	require.NoError(t, maker.MakeCode())

	fb, err := maker.Answer("AABB")
	require.NoError(t, err)
	assert.Equal(t, game.Feedback{Exact: 1, Partial: 1}, fb)
	assert.Contains(t, out.String(), "invalid answer")
	assert.Contains(t, out.String(), "not correct")
}

// TestHumanMakerAnswerEOF verifies running out of input surfaces an error
// instead of looping.
func TestHumanMakerAnswerEOF(t *testing.T) {
	in := strings.NewReader("ABCD\n")
	var out bytes.Buffer
	maker := NewHumanCodeMaker(in, &out)
	require.NoError(t, maker.MakeCode())

	_, err := maker.Answer("AABB")
	assert.Error(t, err)
}

// TestHumanBreakerPrompts verifies the breaker reads and validates guesses.
func TestHumanBreakerPrompts(t *testing.T) {
	in := strings.NewReader("nope\nAABB\nBCDF\n")
	var out bytes.Buffer
	breaker := NewHumanCodeBreaker(in, &out)

	g, err := breaker.InitialGuess()
	require.NoError(t, err)
	assert.Equal(t, codes.Code("AABB"), g)

	g, err = breaker.Guess(game.Feedback{Exact: 0, Partial: 2})
	require.NoError(t, err)
	assert.Equal(t, codes.Code("BCDF"), g)
}

// TestHumanMakerVsCpuBreaker drives a scripted human code maker against the
// solver: the human types the honest answer each round, so the script can
// be precomputed from the solver's deterministic guess sequence.
func TestHumanMakerVsCpuBreaker(t *testing.T) {
	secret := codes.Code("BCDF")

	// Dry-run the solver once to learn its guesses, then script the honest
	// answers a human would type.
	breaker, err := NewComputerCodeBreaker()
	require.NoError(t, err)
	var answers []string
	guess, err := breaker.InitialGuess()
	require.NoError(t, err)
	for {
		fb := game.Score(guess, secret)
		answers = append(answers, fb.String())
		if fb.Perfect() {
			break
		}
		guess, err = breaker.Guess(fb)
		require.NoError(t, err)
	}

	script := string(secret) + "\n" + strings.Join(answers, "\n") + "\n"
	maker := NewHumanCodeMaker(strings.NewReader(script), &bytes.Buffer{})
	replay, err := NewComputerCodeBreaker()
	require.NoError(t, err)

	var out bytes.Buffer
	history, err := NewSession(maker, replay, &out).Play()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(history), 5)
	assert.True(t, history[len(history)-1].Feedback.Perfect())
}

// TestRenderHistory pins the table format.
func TestRenderHistory(t *testing.T) {
	var out bytes.Buffer
	renderHistory(&out, game.History{
		{Guess: "AABB", Feedback: game.Feedback{Exact: 0, Partial: 2}},
		{Guess: "BCDF", Feedback: game.Feedback{Exact: 4, Partial: 0}},
	})
	s := out.String()
	assert.Contains(t, s, "|====|=========|====|")
	assert.Contains(t, s, "|  1 | A A B B | 02 |")
	assert.Contains(t, s, "|  2 | B C D F | 40 |")
}
