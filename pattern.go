package uregex

// OpType is the 8-bit opcode tag packed into the high byte of an opcode
// word.
type OpType uint8

const (
	OpNop OpType = iota
	OpBacktrack
	OpOneChar
	OpString
	OpStringLen
	OpStateSave
	OpJmp
	OpStartCapture
	OpEndCapture
	OpCaret
	OpDollar
	OpBackslashA
	OpBackslashB
	OpBackslashD
	OpBackslashG
	OpBackslashX
	OpBackslashZ
	OpStaticSetRef
	OpSetRef
	OpDotAny
	OpDotAnyAll
	OpEnd
	OpFail
)

// NegSet is the single reserved high bit of a STATIC_SETREF operand that
// flags negation, keeping the negated form in the same opcode instead of
// a parallel one.
const NegSet uint32 = 1 << 23

const (
	opTypeShift = 24
	opValMask   = 0x00FFFFFF
)

// Op packs an opcode tag and a 24-bit operand into one word.
func Op(t OpType, val uint32) uint32 {
	return uint32(t)<<opTypeShift | (val & opValMask)
}

// Type extracts the 8-bit opcode tag from a word.
func Type(w uint32) OpType { return OpType(w >> opTypeShift) }

// Val extracts the 24-bit operand from a word.
func Val(w uint32) uint32 { return w & opValMask }

// CompiledPattern is the immutable, externally produced program the
// matcher interprets. This engine does not implement the regex
// parser/compiler that produces one — values of this type are built by
// package asm's Builder, or by hand for tests, or decoded from source
// emitted by package codegen.
type CompiledPattern struct {
	// Opcodes is the program: 32-bit words, high byte opcode tag, low 24
	// bits operand. STRING opcodes occupy two consecutive words (offset,
	// then length).
	Opcodes []uint32
	// LiteralText holds every literal string referenced by STRING ops, as
	// raw UTF-16 code units at absolute offsets.
	LiteralText []uint16
	// NumCaptureGroups is N; capture groups are numbered 1..N, with group
	// 0 implicitly the whole match.
	NumCaptureGroups int
	// MaxCaptureDigits bounds how many decimal digits AppendReplacement's
	// mini-parser will consume after a '$': the smallest D >= 1 with
	// 10^D > NumCaptureGroups.
	MaxCaptureDigits int
	// Sets holds the user-defined Unicode sets referenced by SETREF,
	// indexed by the opcode operand.
	Sets []*Set
}

// digitsFor computes MaxCaptureDigits for n capture groups: the smallest
// D >= 1 with 10^D > n, so a pattern with no explicit groups still
// accepts "$0".
func digitsFor(n int) int {
	d := 1
	for p := 10; p <= n; p *= 10 {
		d++
	}
	return d
}

// MaxCaptureDigitsFor exposes digitsFor to pattern builders outside this
// package (package asm) so MaxCaptureDigits never drifts out of sync with
// NumCaptureGroups.
func MaxCaptureDigitsFor(numCaptureGroups int) int { return digitsFor(numCaptureGroups) }
