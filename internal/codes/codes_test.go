package codes

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// TestInitDefaults verifies the classic 6-symbol, 4-peg configuration.
func TestInitDefaults(t *testing.T) {
	k, n, u := Stats()
	assert.Equal(t, 6, k)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1296, u)
	assert.Equal(t, "ABCDEF", Alphabet())
}

// TestEnumerateOrder verifies the universe's fixed odometer order: the
// solver's tie-break depends on this order never changing.
func TestEnumerateOrder(t *testing.T) {
	u := Universe()
	require.Len(t, u, 1296)

	assert.Equal(t, Code("AAAA"), u[0])
	assert.Equal(t, Code("AAAB"), u[1])
	assert.Equal(t, Code("AAAF"), u[5])
	assert.Equal(t, Code("AABA"), u[6])
	assert.Equal(t, Code("FFFF"), u[1295])

	// Odometer order coincides with lexicographic order.
	for i := 1; i < len(u); i++ {
		assert.Less(t, string(u[i-1]), string(u[i]))
	}
}

// TestEnumerateSmall checks a 2-symbol universe end to end.
func TestEnumerateSmall(t *testing.T) {
	u := Enumerate("AB", 2)
	assert.Equal(t, []Code{"AA", "AB", "BA", "BB"}, u)
}

// TestEnumerateStable verifies two enumerations are identical.
func TestEnumerateStable(t *testing.T) {
	assert.Equal(t, Enumerate("ABCDEF", 4), Enumerate("ABCDEF", 4))
}

// TestIsValid covers length and alphabet membership checks.
func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("AABB"))
	assert.True(t, IsValid("FFFF"))
	assert.False(t, IsValid("AAB"))   // too short
	assert.False(t, IsValid("AABBA")) // too long
	assert.False(t, IsValid("AABG"))  // symbol outside alphabet
	assert.False(t, IsValid("aabb"))  // lowercase is normalized before validation
	assert.True(t, IsValid(Normalize(" aabb ")))
}

// TestSetupRejectsBadConfig covers the validation paths in setup.
func TestSetupRejectsBadConfig(t *testing.T) {
	assert.Error(t, setup("A", 4))      // one symbol
	assert.Error(t, setup("AAB", 4))    // repeated symbol
	assert.Error(t, setup("ABCDEF", 0)) // zero length
	assert.Error(t, setup("ABCDEF", 9)) // universe over cap
}

// TestRandomInUniverse verifies random codes come from the universe.
func TestRandomInUniverse(t *testing.T) {
	for i := 0; i < 32; i++ {
		assert.True(t, IsValid(string(Random())))
	}
}
