package uregex

const (
	backslash = '\\'
	dollar    = '$'
)

// AppendReplacement appends input[lastMatchEnd..matchStart) followed by
// the expansion of repl to dest, then sets lastMatchEnd = matchEnd. repl
// is parsed left-to-right: "\" + any code point is a literal escape; "$"
// followed by decimal digits (at most MaxCaptureDigits, or until a
// non-digit) is a capture-group reference; "$" followed by anything else
// is a literal "$".
func (m *Matcher) AppendReplacement(dest, repl string) (string, error) {
	if !m.match {
		return dest, newInvalidStateError("uregex: AppendReplacement with no match")
	}

	if m.matchStart > m.lastMatchEnd {
		dest += m.input.Slice(m.lastMatchEnd, m.matchStart)
	}

	units := []rune(repl)
	i := 0
	for i < len(units) {
		c := units[i]
		i++
		if c == backslash {
			if i >= len(units) {
				break
			}
			dest += string(units[i])
			i++
			continue
		}
		if c != dollar {
			dest += string(c)
			continue
		}

		numDigits := 0
		groupNum := 0
		for i < len(units) && numDigits < m.pattern.MaxCaptureDigits {
			d := units[i]
			if d < '0' || d > '9' {
				break
			}
			groupNum = groupNum*10 + int(d-'0')
			numDigits++
			i++
		}

		if numDigits == 0 {
			dest += string(dollar)
			continue
		}

		g, err := m.Group(groupNum)
		if err != nil {
			return dest, err
		}
		dest += g
	}

	m.lastMatchEnd = m.matchEnd
	return dest, nil
}

// AppendTail appends input[matchEnd..Len(input)) to dest.
func (m *Matcher) AppendTail(dest string) string {
	if m.matchEnd < m.inputLength {
		dest += m.input.Slice(m.matchEnd, m.inputLength)
	}
	return dest
}

// ReplaceAll resets the matcher, replaces every match with the expansion
// of repl, and returns the result.
func (m *Matcher) ReplaceAll(repl string) (string, error) {
	m.Reset()
	dest := ""
	for m.Find() {
		var err error
		dest, err = m.AppendReplacement(dest, repl)
		if err != nil {
			return dest, err
		}
	}
	return m.AppendTail(dest), nil
}

// ReplaceFirst resets the matcher and replaces only the first match,
// returning the original input unchanged if there is no match.
func (m *Matcher) ReplaceFirst(repl string) (string, error) {
	m.Reset()
	if !m.Find() {
		return m.input.String(), nil
	}
	dest, err := m.AppendReplacement("", repl)
	if err != nil {
		return dest, err
	}
	return m.AppendTail(dest), nil
}
