package uregex

// Matcher holds the mutable, per-match state of one matching attempt
// against one input, for one shared CompiledPattern. A *CompiledPattern
// is immutable after construction and may be shared by any number of
// Matchers, including across goroutines; a single Matcher itself is not
// safe for concurrent use — its reset, search and replacement methods
// mutate its receiver.
type Matcher struct {
	pattern *CompiledPattern

	input       String
	inputLength int

	matchStart   int
	matchEnd     int
	lastMatchEnd int
	match        bool

	// captureStarts[g]/captureEnds[g] for g in 0..NumCaptureGroups.
	// Index 0 mirrors matchStart/matchEnd. captureStarts[g] == -1 means
	// group g did not participate in the current match.
	captureStarts []int
	captureEnds   []int

	backtrackStack btStack
	// captureStateSize = 2*NumCaptureGroups + 2 (§3 "Matcher State").
	captureStateSize int
}

// NewMatcher creates a Matcher for pat against input. The matcher starts
// reset (no current match).
func NewMatcher(pat *CompiledPattern, input String) *Matcher {
	m := &Matcher{
		pattern:          pat,
		captureStateSize: 2*pat.NumCaptureGroups + 2,
	}
	m.captureStarts = make([]int, pat.NumCaptureGroups+1)
	m.captureEnds = make([]int, pat.NumCaptureGroups+1)
	m.ResetInput(input)
	return m
}

// Reset clears any current match and rewinds the search cursor to the
// start of the current input, without changing the input.
func (m *Matcher) Reset() *Matcher {
	m.matchStart = 0
	m.matchEnd = 0
	m.lastMatchEnd = 0
	m.match = false
	for g := range m.captureStarts {
		m.captureStarts[g] = -1
	}
	m.backtrackStack.reset()
	return m
}

// ResetInput rebinds the matcher to a new input and then resets.
func (m *Matcher) ResetInput(input String) *Matcher {
	m.input = input
	m.inputLength = input.Len()
	return m.Reset()
}

// Input returns the matcher's current input.
func (m *Matcher) Input() String { return m.input }

// Pattern returns the compiled pattern this matcher runs.
func (m *Matcher) Pattern() *CompiledPattern { return m.pattern }

// GroupCount returns N, the number of explicit capture groups.
func (m *Matcher) GroupCount() int { return m.pattern.NumCaptureGroups }

func (m *Matcher) requireMatch() error {
	if !m.match {
		return newInvalidStateError("uregex: no match available")
	}
	return nil
}

func (m *Matcher) checkGroup(g int) error {
	if g < 0 || g > m.pattern.NumCaptureGroups {
		return newIndexOutOfBoundsError("uregex: group index out of range")
	}
	return nil
}

// Start returns the code-unit offset at which group g begins, or -1 if g
// did not participate in the match.
func (m *Matcher) Start(g int) (int, error) {
	if err := m.requireMatch(); err != nil {
		return -1, err
	}
	if err := m.checkGroup(g); err != nil {
		return -1, err
	}
	if g == 0 {
		return m.matchStart, nil
	}
	return m.captureStarts[g], nil
}

// End returns the code-unit offset at which group g ends, or -1 if g did
// not participate in the match, regardless of any residual captureEnds
// value: captureStarts[g] == -1 is what "did not participate" means, and
// End trusts that over whatever stale value captureEnds[g] carries.
func (m *Matcher) End(g int) (int, error) {
	if err := m.requireMatch(); err != nil {
		return -1, err
	}
	if err := m.checkGroup(g); err != nil {
		return -1, err
	}
	if g == 0 {
		return m.matchEnd, nil
	}
	if m.captureStarts[g] == -1 {
		return -1, nil
	}
	return m.captureEnds[g], nil
}

// Group returns the substring matched by group g, or "" if g did not
// participate.
func (m *Matcher) Group(g int) (string, error) {
	s, err := m.Start(g)
	if err != nil {
		return "", err
	}
	e, err := m.End(g)
	if err != nil {
		return "", err
	}
	if s < 0 {
		return "", nil
	}
	return m.input.Slice(s, e), nil
}

// Matched reports whether the last search attempt found a match.
func (m *Matcher) Matched() bool { return m.match }
