package uregex

// isLineTerminator reports whether r is one of the line terminators
// DOLLAR and DOTANY treat specially.
func isLineTerminator(r rune) bool {
	switch r {
	case 0x000A, 0x000D, 0x000C, 0x0085, 0x2028, 0x2029:
		return true
	}
	return false
}

// isWordBoundary is ported from ICU's RegexMatcher::isWordBoundary
// (rematch.cpp): marks are transparent to the scan in both directions,
// and the result is cIsWord XOR prevIsWord.
func (m *Matcher) isWordBoundary(pos int) bool {
	if pos >= m.inputLength {
		return false
	}
	c := m.input.CodePointAt(pos)
	if isNonSpacingOrEnclosingMark(c) {
		return false
	}
	cIsWord := Static(StaticSetWord).Contains(c)

	prevIsWord := false
	prevPos := pos
	for prevPos != 0 {
		prevPos = m.input.MoveIndex32(prevPos, -1)
		prevChar := m.input.CodePointAt(prevPos)
		if !isNonSpacingOrEnclosingMark(prevChar) {
			prevIsWord = Static(StaticSetWord).Contains(prevChar)
			break
		}
	}
	return cIsWord != prevIsWord
}

// backtrack pops one saved-state frame and restores patIdx, inputIdx, and
// every explicit group's captureStarts/captureEnds. If the stack is
// empty, the match fails outright: backtrack returns false and the
// caller stops the loop.
//
// Frame layout, as pushed by stateSave and read here top-to-bottom:
//
//	[ capStart[N], capEnd[N], ..., capStart[1], capEnd[1], savedPatIdx, savedInputIdx ]
func (m *Matcher) backtrack(inputIdx, patIdx *int) bool {
	if m.backtrackStack.empty() {
		return false
	}
	frame := m.backtrackStack.popBlock(m.captureStateSize)
	i := 0
	for g := m.pattern.NumCaptureGroups; g >= 1; g-- {
		m.captureStarts[g] = int(int32(frame[i]))
		m.captureEnds[g] = int(int32(frame[i+1]))
		i += 2
	}
	*patIdx = int(frame[i])
	*inputIdx = int(frame[i+1])
	return true
}

func (m *Matcher) stateSave(inputIdx, savedPatIdx int) {
	block := m.backtrackStack.reserveBlock(m.captureStateSize)
	i := 0
	for g := m.pattern.NumCaptureGroups; g >= 1; g-- {
		block[i] = uint32(int32(m.captureStarts[g]))
		block[i+1] = uint32(int32(m.captureEnds[g]))
		i += 2
	}
	block[i] = uint32(int32(savedPatIdx))
	block[i+1] = uint32(int32(inputIdx))
}

// runAt executes one match attempt starting at startIdx: fetch, split,
// dispatch, backtrack-on-miss. On return, m.match/m.matchStart/
// m.matchEnd/m.lastMatchEnd and the capture arrays reflect the outcome.
func (m *Matcher) runAt(startIdx int) bool {
	inputIdx := startIdx
	patIdx := 0
	isMatch := false

	for g := 1; g <= m.pattern.NumCaptureGroups; g++ {
		m.captureStarts[g] = -1
	}
	m.backtrackStack.reset()

	pat := m.pattern.Opcodes
	lit := m.pattern.LiteralText
	inputLen := m.inputLength

	for {
		op := pat[patIdx]
		opType := Type(op)
		opValue := Val(op)
		patIdx++

		switch opType {

		case OpNop:
			// no effect

		case OpBacktrack:
			if !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpOneChar:
			if inputIdx < inputLen && m.input.CodePointAt(inputIdx) == rune(opValue) {
				inputIdx = m.input.MoveIndex32(inputIdx, 1)
			} else if !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpString:
			stringStart := int(opValue)
			op = pat[patIdx]
			patIdx++
			stringLen := int(Val(op))
			end := inputIdx + stringLen
			matched := end <= inputLen
			if matched {
				units := m.input.Units()
				for i := 0; i < stringLen; i++ {
					if units[inputIdx+i] != lit[stringStart+i] {
						matched = false
						break
					}
				}
			}
			if matched {
				inputIdx = end
			} else if !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpStateSave:
			m.stateSave(inputIdx, int(opValue))

		case OpJmp:
			patIdx = int(opValue)

		case OpStartCapture:
			m.captureStarts[opValue] = inputIdx

		case OpEndCapture:
			m.captureEnds[opValue] = inputIdx

		case OpCaret:
			if inputIdx != 0 && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpDollar:
			if !m.matchesDollar(inputIdx) && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashA:
			if inputIdx != 0 && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashB:
			success := m.isWordBoundary(inputIdx)
			if opValue != 0 {
				success = !success
			}
			if !success && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashD:
			if inputIdx >= inputLen {
				if !m.backtrack(&inputIdx, &patIdx) {
					goto done
				}
				break
			}
			c := m.input.CodePointAt(inputIdx)
			success := isDecimalDigit(c)
			if opValue != 0 {
				success = !success
			}
			if success {
				inputIdx = m.input.MoveIndex32(inputIdx, 1)
			} else if !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashG:
			ok := (m.match && inputIdx == m.matchEnd) || (!m.match && inputIdx == 0)
			if !ok && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashX:
			if !m.consumeGrapheme(&inputIdx) && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpBackslashZ:
			if inputIdx != inputLen && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpStaticSetRef:
			negated := opValue&NegSet != 0
			success := negated
			if inputIdx < inputLen {
				c := m.input.CodePointAt(inputIdx)
				setID := StaticSet(opValue &^ NegSet)
				if Static(setID).Contains(c) {
					success = !success
				}
				if success {
					inputIdx = m.input.MoveIndex32(inputIdx, 1)
				}
			}
			if !success && !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpSetRef:
			if inputIdx < inputLen && m.pattern.Sets[opValue].Contains(m.input.CodePointAt(inputIdx)) {
				inputIdx = m.input.MoveIndex32(inputIdx, 1)
			} else if !m.backtrack(&inputIdx, &patIdx) {
				goto done
			}

		case OpDotAny:
			if inputIdx >= inputLen || isLineTerminator(m.input.CodePointAt(inputIdx)) {
				if !m.backtrack(&inputIdx, &patIdx) {
					goto done
				}
				break
			}
			inputIdx = m.input.MoveIndex32(inputIdx, 1)

		case OpDotAnyAll:
			if inputIdx >= inputLen {
				if !m.backtrack(&inputIdx, &patIdx) {
					goto done
				}
				break
			}
			c := m.input.CodePointAt(inputIdx)
			inputIdx = m.input.MoveIndex32(inputIdx, 1)
			if c == 0x0D && inputIdx < inputLen && m.input.CodePointAt(inputIdx) == 0x0A {
				inputIdx = m.input.MoveIndex32(inputIdx, 1)
			}

		case OpEnd:
			isMatch = true
			goto done

		case OpFail:
			isMatch = false
			goto done

		default:
			panic("uregex: unknown opcode in compiled pattern")
		}
	}

done:
	m.match = isMatch
	if isMatch {
		m.lastMatchEnd = m.matchEnd
		m.matchStart = startIdx
		m.matchEnd = inputIdx
	}
	return isMatch
}

// matchesDollar implements DOLLAR: success at end of input, at a final
// line terminator, or before a final CRLF pair.
func (m *Matcher) matchesDollar(inputIdx int) bool {
	inputLen := m.inputLength
	if inputIdx >= inputLen {
		return true
	}
	if inputIdx == inputLen-1 {
		return isLineTerminator(m.input.CodePointAt(inputIdx))
	}
	if inputIdx == inputLen-2 {
		return m.input.CodePointAt(inputIdx) == 0x0D && m.input.CodePointAt(inputIdx+1) == 0x0A
	}
	return false
}

// consumeGrapheme implements BACKSLASH_X: one code point, plus a paired
// LF after a CR, plus trailing marks after anything else that isn't a
// control character.
func (m *Matcher) consumeGrapheme(inputIdx *int) bool {
	idx := *inputIdx
	if idx >= m.inputLength {
		return false
	}
	c := m.input.CodePointAt(idx)
	idx = m.input.MoveIndex32(idx, 1)

	if c == 0x0D && idx < m.inputLength && m.input.CodePointAt(idx) == 0x0A {
		idx = m.input.MoveIndex32(idx, 1)
		*inputIdx = idx
		return true
	}

	if !isControl(c) {
		for idx < m.inputLength && isNonSpacingOrEnclosingMark(m.input.CodePointAt(idx)) {
			idx = m.input.MoveIndex32(idx, 1)
		}
	}
	*inputIdx = idx
	return true
}
