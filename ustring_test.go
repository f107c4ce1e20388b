package uregex_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gorx/uregex"
)

func TestStringRoundTrip(t *testing.T) {
	s := uregex.NewString("héllo")
	assert.Equal(t, s.String(), "héllo")
}

func TestStringSlice(t *testing.T) {
	s := uregex.NewString("xxabcyy")
	assert.Equal(t, s.Slice(2, 5), "abc")
	assert.Equal(t, s.Slice(3, 3), "")
}

// TestSurrogatePairCodePointAt checks a character outside the BMP (here
// U+1F600, which requires a UTF-16 surrogate pair) decodes as one code
// point spanning two code units.
func TestSurrogatePairCodePointAt(t *testing.T) {
	s := uregex.NewString("a\U0001F600b")
	assert.Equal(t, s.Len(), 4) // 'a' + high/low surrogate + 'b'

	assert.Equal(t, s.CodePointAt(0), rune('a'))
	assert.Equal(t, s.CodePointAt(1), rune(0x1F600))
	assert.Equal(t, s.CodePointAt(3), rune('b'))
}

func TestMoveIndex32SkipsSurrogatePairs(t *testing.T) {
	s := uregex.NewString("a\U0001F600b")

	assert.Equal(t, s.MoveIndex32(0, 1), 1)
	assert.Equal(t, s.MoveIndex32(1, 1), 3)
	assert.Equal(t, s.MoveIndex32(3, 1), 4)

	assert.Equal(t, s.MoveIndex32(4, -1), 3)
	assert.Equal(t, s.MoveIndex32(3, -1), 1)
	assert.Equal(t, s.MoveIndex32(1, -1), 0)
}

func TestMoveIndex32ClampsAtBounds(t *testing.T) {
	s := uregex.NewString("ab")
	assert.Equal(t, s.MoveIndex32(2, 1), 2)
	assert.Equal(t, s.MoveIndex32(0, -1), 0)
}
