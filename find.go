package uregex

// Find attempts a match starting at matchEnd (0 after Reset; one code
// point past matchEnd when the previous match was zero-width) and at every
// subsequent code point until one succeeds or input is exhausted. On
// success it updates the match span and capture arrays and returns true.
func (m *Matcher) Find() bool {
	start := m.matchEnd
	if m.match && m.matchStart == m.matchEnd {
		// A zero-width match must not pin the search cursor in place:
		// advance past it so the next attempt can't repeat it forever.
		start = m.input.MoveIndex32(m.matchEnd, 1)
	}
	for startPos := start; startPos < m.inputLength; startPos = m.input.MoveIndex32(startPos, 1) {
		if m.runAt(startPos) {
			return true
		}
	}
	m.match = false
	return false
}

// FindAt resets the matcher, then behaves like Find but begins searching
// at start instead of 0.
func (m *Matcher) FindAt(start int) (bool, error) {
	if start < 0 || start > m.inputLength {
		return false, newIndexOutOfBoundsError("uregex: find start out of range")
	}
	m.Reset()
	if start == m.inputLength {
		return m.runAt(start), nil
	}
	for startPos := start; startPos < m.inputLength; startPos = m.input.MoveIndex32(startPos, 1) {
		if m.runAt(startPos) {
			return true, nil
		}
	}
	m.match = false
	return false, nil
}

// Matches reports whether the pattern matches the entire input, anchored
// at 0 and required to end at Len(input).
func (m *Matcher) Matches() bool {
	m.Reset()
	return m.runAt(0) && m.matchEnd == m.inputLength
}

// LookingAt reports whether the pattern matches a prefix of the input
// starting at 0.
func (m *Matcher) LookingAt() bool {
	m.Reset()
	return m.runAt(0)
}
