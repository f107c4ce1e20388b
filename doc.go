// Package uregex is a Unicode-aware backtracking regular-expression
// matcher: a bytecode interpreter that executes a compiled pattern
// program against UTF-16 text, producing match spans and capture-group
// extents.
//
// The package does not include a regex parser or compiler — building a
// *CompiledPattern from regex syntax is out of this package's scope.
// Callers construct one with package asm's Builder, decode one generated
// by package codegen, or build one by hand.
//
//	b := asm.NewBuilder()
//	b.Literal("abc")
//	b.End()
//	pat, err := b.Build()
//	m := uregex.NewMatcher(pat, uregex.NewString("xxabcyy"))
//	m.Find() // true; m.Group(0) == "abc"
package uregex
