package asm_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gorx/uregex"
	"github.com/gorx/uregex/asm"
)

func TestBuilderLiteralEmitsStringAndLen(t *testing.T) {
	b := asm.NewBuilder()
	b.Literal("abc")
	b.End()

	pat, err := b.Build()
	assert.NilError(t, err)
	assert.Equal(t, len(pat.Opcodes), 3) // STRING, STRING_LEN, END
	assert.Equal(t, uregex.Type(pat.Opcodes[0]), uregex.OpString)
	assert.Equal(t, uregex.Type(pat.Opcodes[1]), uregex.OpStringLen)
	assert.Equal(t, uregex.Val(pat.Opcodes[1]), uint32(3))
	assert.Equal(t, uregex.Type(pat.Opcodes[2]), uregex.OpEnd)
}

func TestBuilderLabelForwardReference(t *testing.T) {
	b := asm.NewBuilder()
	target := b.NewLabel()
	b.Jmp(target) // forward reference, not yet bound
	b.Nop()
	b.Bind(target)
	b.End()

	pat, err := b.Build()
	assert.NilError(t, err)
	assert.Equal(t, uregex.Type(pat.Opcodes[0]), uregex.OpJmp)
	assert.Equal(t, uregex.Val(pat.Opcodes[0]), uint32(2)) // index of END
}

func TestBuilderUnboundLabelFailsBuild(t *testing.T) {
	b := asm.NewBuilder()
	l := b.NewLabel()
	b.Jmp(l)
	b.End()

	_, err := b.Build()
	assert.ErrorContains(t, err, "never bound")
}

func TestBuilderCapturesDriveNumCaptureGroups(t *testing.T) {
	b := asm.NewBuilder()
	b.StartCapture(1)
	b.Char('a')
	b.EndCapture(1)
	b.StartCapture(2)
	b.Char('b')
	b.EndCapture(2)
	b.End()

	pat, err := b.Build()
	assert.NilError(t, err)
	assert.Equal(t, pat.NumCaptureGroups, 2)
	assert.Equal(t, pat.MaxCaptureDigits, uregex.MaxCaptureDigitsFor(2))
}

func TestBuilderSetRefRegistersSet(t *testing.T) {
	b := asm.NewBuilder()
	s := uregex.NewSet()
	s.AddRange('a', 'z')
	b.SetRef(s)
	b.End()

	pat, err := b.Build()
	assert.NilError(t, err)
	assert.Equal(t, uregex.Type(pat.Opcodes[0]), uregex.OpSetRef)
	assert.Equal(t, uregex.Val(pat.Opcodes[0]), uint32(0))
	assert.Equal(t, len(pat.Sets), 1)
	assert.Assert(t, pat.Sets[0].Contains('m'))
}

func TestBuilderStaticSetRefNegation(t *testing.T) {
	b := asm.NewBuilder()
	b.StaticSetRef(uregex.StaticSetDigit, true)
	b.End()

	pat, err := b.Build()
	assert.NilError(t, err)
	val := uregex.Val(pat.Opcodes[0])
	assert.Assert(t, val&uregex.NegSet != 0)
	assert.Equal(t, val&^uregex.NegSet, uint32(uregex.StaticSetDigit))
}
