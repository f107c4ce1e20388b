// Package codegen renders an assembled *uregex.CompiledPattern as Go
// source, the way github.com/KromDaniel/regengo uses
// github.com/dave/jennifer/jen to render a compiled regex program as Go
// source — except regengo emits a bespoke matching function per pattern,
// while codegen emits a plain uregex.CompiledPattern literal, because
// this engine's "compiled program" already IS data the shared Matcher
// interprets, not code to be compiled by go build.
//
// The point is the same: pay the cost of building the pattern once, at a
// build step, instead of on every process start.
package codegen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/gorx/uregex"
)

const uregexImportPath = "github.com/gorx/uregex"

// Generate renders pattern as Go source defining one package-level
// variable, varName, of type uregex.CompiledPattern, in package pkg.
func Generate(pkg, varName string, pattern *uregex.CompiledPattern) ([]byte, error) {
	if varName == "" {
		return nil, fmt.Errorf("codegen: empty variable name")
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by uregexdump. DO NOT EDIT.")

	f.Var().Id(varName).Op("=").Qual(uregexImportPath, "CompiledPattern").Values(jen.Dict{
		jen.Id("Opcodes"):          opcodesLiteral(pattern.Opcodes),
		jen.Id("LiteralText"):      uint16SliceLiteral(pattern.LiteralText),
		jen.Id("NumCaptureGroups"): jen.Lit(pattern.NumCaptureGroups),
		jen.Id("MaxCaptureDigits"): jen.Lit(pattern.MaxCaptureDigits),
		jen.Id("Sets"):             setsLiteral(pattern.Sets),
	})

	return []byte(f.GoString()), nil
}

func opcodesLiteral(ops []uint32) jen.Code {
	vals := make([]jen.Code, len(ops))
	for i, w := range ops {
		vals[i] = jen.Lit(w)
	}
	return jen.Index().Uint32().Values(vals...)
}

func uint16SliceLiteral(units []uint16) jen.Code {
	vals := make([]jen.Code, len(units))
	for i, u := range units {
		vals[i] = jen.Lit(u)
	}
	return jen.Index().Uint16().Values(vals...)
}

// setsLiteral renders []*uregex.Set as a slice of immediately-invoked
// closures, each building one Set from its ranges via AddRange — Set's
// internal range list is unexported, so codegen reconstructs it through
// the same public API asm.Builder's callers would use.
func setsLiteral(sets []*uregex.Set) jen.Code {
	items := make([]jen.Code, len(sets))
	for i, s := range sets {
		items[i] = setBuilderLiteral(s)
	}
	return jen.Index().Op("*").Qual(uregexImportPath, "Set").Values(items...)
}

func setBuilderLiteral(s *uregex.Set) jen.Code {
	body := []jen.Code{
		jen.Id("s").Op(":=").Qual(uregexImportPath, "NewSet").Call(),
	}
	for _, r := range s.Ranges() {
		body = append(body, jen.Id("s").Dot("AddRange").Call(jen.LitRune(r.Lo), jen.LitRune(r.Hi)))
	}
	body = append(body, jen.Return(jen.Id("s")))

	return jen.Func().Params().Op("*").Qual(uregexImportPath, "Set").Block(body...).Call()
}
