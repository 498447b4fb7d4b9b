package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/codes"
)

func TestMain(m *testing.M) {
	if err := codes.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// TestSolveSecretBound verifies the bench helper stays inside the
// five-guess bound for a handful of secrets.
func TestSolveSecretBound(t *testing.T) {
	for _, secret := range []codes.Code{"BCDF", "AAAA", "FFFF", "CAFE"} {
		rounds, err := solveSecret(secret)
		require.NoError(t, err)
		assert.LessOrEqual(t, rounds, 5, "secret %s", secret)
		assert.GreaterOrEqual(t, rounds, 1)
	}
}

// TestPlayCommandCpuVsCpu runs the play command end to end with both roles
// played by the computer and a fixed secret.
func TestPlayCommandCpuVsCpu(t *testing.T) {
	cmd := newPlayCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--maker", "cpu", "--breaker", "cpu", "--secret", "BCDF"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "code broken")
	assert.Contains(t, out.String(), "BCDF")
}

// TestBuildPlayerErrors covers the flag validation paths.
func TestBuildPlayerErrors(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("")

	_, err := buildMaker("alien", "", in, &out)
	assert.Error(t, err)

	_, err = buildMaker("cpu", "ZZZZ", in, &out)
	assert.Error(t, err)

	_, err = buildBreaker("alien", in, &out)
	assert.Error(t, err)
}
