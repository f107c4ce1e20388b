// Package asm is a mnemonic-level assembler for uregex.CompiledPattern.
//
// A regex parser/compiler would normally produce a CompiledPattern from
// pattern syntax; asm is not that compiler. It has no notion of regex
// syntax, precedence, or alternation — it is the textual/programmatic
// equivalent of an instruction-set assembler (the role cmd/asm plays for
// the Go toolchain), emitting one opcode word per call (two for Literal's
// STRING + STRING_LEN pair) and resolving
// forward jump targets through Label/Bind. It exists so a caller (or a
// test) has at least one concrete way to build a uregex.CompiledPattern
// by hand.
package asm

import (
	"fmt"

	"github.com/gorx/uregex"
)

// Label is a symbolic jump target, resolved to an absolute opcode index
// once Bind is called: a forward reference is recorded and patched in
// place rather than requiring every earlier offset to be recomputed,
// closer to how github.com/KromDaniel/regengo names instructions by id
// and jumps to them by label rather than by raw address.
type Label int

// Builder assembles a uregex.CompiledPattern instruction by instruction.
type Builder struct {
	ops         []uint32
	lit         []uint16
	numCaptures int
	sets        []*uregex.Set

	nextLabel Label
	resolved  map[Label]int
	pending   map[Label][]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		resolved: map[Label]int{},
		pending:  map[Label][]int{},
	}
}

// NewLabel allocates a fresh, as-yet-unbound Label.
func (b *Builder) NewLabel() Label {
	b.nextLabel++
	return b.nextLabel
}

// Here returns a Label bound to the current (about to be emitted)
// instruction position, useful for backward jumps without a forward
// declaration.
func (b *Builder) Here() Label {
	l := b.NewLabel()
	b.Bind(l)
	return l
}

// Bind resolves l to the current opcode index and patches every
// previously emitted instruction that referenced it before it was bound.
func (b *Builder) Bind(l Label) {
	pc := len(b.ops)
	b.resolved[l] = pc
	for _, idx := range b.pending[l] {
		b.ops[idx] = uregex.Op(uregex.Type(b.ops[idx]), uint32(pc))
	}
	delete(b.pending, l)
}

func (b *Builder) emit(t uregex.OpType, val uint32) int {
	idx := len(b.ops)
	b.ops = append(b.ops, uregex.Op(t, val))
	return idx
}

func (b *Builder) emitLabeled(t uregex.OpType, l Label) int {
	idx := b.emit(t, 0)
	if pc, ok := b.resolved[l]; ok {
		b.ops[idx] = uregex.Op(t, uint32(pc))
	} else {
		b.pending[l] = append(b.pending[l], idx)
	}
	return idx
}

// Nop emits NOP.
func (b *Builder) Nop() { b.emit(uregex.OpNop, 0) }

// Backtrack emits an unconditional BACKTRACK.
func (b *Builder) Backtrack() { b.emit(uregex.OpBacktrack, 0) }

// Char emits ONECHAR matching a single code point.
func (b *Builder) Char(r rune) { b.emit(uregex.OpOneChar, uint32(r)) }

// Literal emits STRING + STRING_LEN for a literal run of text, appending
// its UTF-16 encoding to the shared literal-text buffer.
func (b *Builder) Literal(s string) {
	units := uregex.NewString(s).Units()
	off := len(b.lit)
	b.lit = append(b.lit, units...)
	b.emit(uregex.OpString, uint32(off))
	b.emit(uregex.OpStringLen, uint32(len(units)))
}

// Save emits STATE_SAVE: on a later backtrack, execution resumes at l.
func (b *Builder) Save(l Label) { b.emitLabeled(uregex.OpStateSave, l) }

// Jmp emits an unconditional jump to l.
func (b *Builder) Jmp(l Label) { b.emitLabeled(uregex.OpJmp, l) }

// StartCapture emits START_CAPTURE for explicit group g (1..N).
func (b *Builder) StartCapture(g int) {
	if g > b.numCaptures {
		b.numCaptures = g
	}
	b.emit(uregex.OpStartCapture, uint32(g))
}

// EndCapture emits END_CAPTURE for explicit group g (1..N).
func (b *Builder) EndCapture(g int) {
	if g > b.numCaptures {
		b.numCaptures = g
	}
	b.emit(uregex.OpEndCapture, uint32(g))
}

// Caret emits CARET.
func (b *Builder) Caret() { b.emit(uregex.OpCaret, 0) }

// Dollar emits DOLLAR.
func (b *Builder) Dollar() { b.emit(uregex.OpDollar, 0) }

// AnchorA emits BACKSLASH_A (\A).
func (b *Builder) AnchorA() { b.emit(uregex.OpBackslashA, 0) }

// WordBoundary emits BACKSLASH_B (\b), or \B if negate is true.
func (b *Builder) WordBoundary(negate bool) {
	b.emit(uregex.OpBackslashB, boolOperand(negate))
}

// Digit emits BACKSLASH_D (\d), or \D if negate is true.
func (b *Builder) Digit(negate bool) {
	b.emit(uregex.OpBackslashD, boolOperand(negate))
}

// AnchorG emits BACKSLASH_G (\G).
func (b *Builder) AnchorG() { b.emit(uregex.OpBackslashG, 0) }

// Grapheme emits BACKSLASH_X (\X).
func (b *Builder) Grapheme() { b.emit(uregex.OpBackslashX, 0) }

// AnchorZ emits BACKSLASH_Z (\Z).
func (b *Builder) AnchorZ() { b.emit(uregex.OpBackslashZ, 0) }

// StaticSetRef emits STATIC_SETREF against one of uregex's predefined
// character classes (word/digit/space), negated if negate is true.
func (b *Builder) StaticSetRef(id uregex.StaticSet, negate bool) {
	val := uint32(id)
	if negate {
		val |= uregex.NegSet
	}
	b.emit(uregex.OpStaticSetRef, val)
}

// SetRef emits SETREF against a pattern-specific Set, registering it in
// the pattern's Sets table.
func (b *Builder) SetRef(s *uregex.Set) {
	idx := len(b.sets)
	b.sets = append(b.sets, s)
	b.emit(uregex.OpSetRef, uint32(idx))
}

// Dot emits DOTANY (default "."): any character except a line terminator.
func (b *Builder) Dot() { b.emit(uregex.OpDotAny, 0) }

// DotAll emits DOTANY_ALL ("." in dot-matches-all mode).
func (b *Builder) DotAll() { b.emit(uregex.OpDotAnyAll, 0) }

// End emits END: the program terminates with a successful match.
func (b *Builder) End() { b.emit(uregex.OpEnd, 0) }

// Fail emits FAIL: the program terminates with no match.
func (b *Builder) Fail() { b.emit(uregex.OpFail, 0) }

func boolOperand(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}

// Build finalizes the assembled program into a *uregex.CompiledPattern.
// It fails if any Label referenced by Jmp/Save was never Bind-ed.
func (b *Builder) Build() (*uregex.CompiledPattern, error) {
	for l, idxs := range b.pending {
		if len(idxs) > 0 {
			return nil, fmt.Errorf("asm: label %d never bound", l)
		}
	}
	return &uregex.CompiledPattern{
		Opcodes:          append([]uint32(nil), b.ops...),
		LiteralText:      append([]uint16(nil), b.lit...),
		NumCaptureGroups: b.numCaptures,
		MaxCaptureDigits: uregex.MaxCaptureDigitsFor(b.numCaptures),
		Sets:             append([]*uregex.Set(nil), b.sets...),
	}, nil
}
