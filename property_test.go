package uregex_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gorx/uregex"
)

// TestMatchesImpliesFindZero checks that Matches() success implies
// Find() from a fresh Reset also succeeds, anchored at 0, spanning the
// whole input.
func TestMatchesImpliesFindZero(t *testing.T) {
	pat := twoGroupsPattern(t)
	m := uregex.NewMatcher(pat, uregex.NewString("ab"))
	assert.Assert(t, m.Matches())

	m.Reset()
	assert.Assert(t, m.Find())
	s, _ := m.Start(0)
	e, _ := m.End(0)
	assert.Equal(t, s, 0)
	assert.Equal(t, e, 2)
}

// TestLookingAtImpliesFindZero checks that a successful LookingAt also
// succeeds as a Find anchored at 0.
func TestLookingAtImpliesFindZero(t *testing.T) {
	pat := literalPattern(t, "abc")
	m := uregex.NewMatcher(pat, uregex.NewString("abcdef"))
	assert.Assert(t, m.LookingAt())

	m.Reset()
	assert.Assert(t, m.Find())
	s, _ := m.Start(0)
	assert.Equal(t, s, 0)
}

// TestReplaceAllDollarZeroRoundTrips checks the round-trip property:
// replaceAll(repl="$0") reproduces the input unchanged.
func TestReplaceAllDollarZeroRoundTrips(t *testing.T) {
	pat := literalPattern(t, "abc")

	input := "xxabcyyabczz"
	m := uregex.NewMatcher(pat, uregex.NewString(input))
	out, err := m.ReplaceAll("$0")
	assert.NilError(t, err)
	assert.Equal(t, out, input)

	noMatchInput := "xyz"
	m = uregex.NewMatcher(pat, uregex.NewString(noMatchInput))
	out, err = m.ReplaceAll("$0")
	assert.NilError(t, err)
	assert.Equal(t, out, noMatchInput)
}

// TestFindMonotonicWithoutZeroWidth checks that, for a pattern with no
// zero-width matches, repeated Find() calls report strictly increasing
// matchStart values.
func TestFindMonotonicWithoutZeroWidth(t *testing.T) {
	pat := literalPattern(t, "a")
	m := uregex.NewMatcher(pat, uregex.NewString("aXaXaXa"))

	prev := -1
	count := 0
	for m.Find() {
		s, err := m.Start(0)
		assert.NilError(t, err)
		assert.Assert(t, s > prev)
		prev = s
		count++
	}
	assert.Equal(t, count, 4)
}

// TestFindAtBoundaries checks the boundary cases for find(start): a
// start at inputLength runs one zero-width attempt there, and a start
// past inputLength is an index-out-of-bounds error.
func TestFindAtBoundaries(t *testing.T) {
	pat := literalPattern(t, "abc")
	m := uregex.NewMatcher(pat, uregex.NewString("xxabc"))

	ok, err := m.FindAt(5)
	assert.NilError(t, err)
	assert.Assert(t, !ok)

	_, err = m.FindAt(6)
	assert.Assert(t, err != nil)
	var me *uregex.MatchError
	assert.Assert(t, errorsAs(err, &me))
	assert.Equal(t, me.Code, uregex.ErrIndexOutOfBounds)
}

// TestZeroWidthMatchAdvancesSearchCursor checks the zero-width progress
// guarantee: a zero-width match at p still lets the next Find advance,
// instead of looping forever.
func TestZeroWidthMatchAdvancesSearchCursor(t *testing.T) {
	// \b: a zero-width word-boundary assertion with no consuming atom.
	pat := wordBoundaryOnlyPattern(t)
	m := uregex.NewMatcher(pat, uregex.NewString("ab cd"))

	var spans [][2]int
	for i := 0; i < 10 && m.Find(); i++ {
		s, _ := m.Start(0)
		e, _ := m.End(0)
		spans = append(spans, [2]int{s, e})
	}
	assert.Assert(t, len(spans) < 10, "must terminate: %v", spans)
	for _, sp := range spans {
		assert.Equal(t, sp[0], sp[1])
	}
}
