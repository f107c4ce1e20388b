// Command uregexdump reads a line-oriented bytecode assembly listing and
// writes the Go source for the resulting uregex.CompiledPattern.
//
// Each line is one mnemonic, or a "label:" definition. Supported
// mnemonics (case-insensitive), one per line:
//
//	char <codepoint>            literal "<text>"
//	save <label>                jmp <label>
//	startcapture <n>            endcapture <n>
//	caret                       dollar
//	anchora                     anchorg                anchorz
//	wordboundary [neg]          digit [neg]
//	grapheme
//	staticsetref word|digit|space [neg]
//	setref <lo>-<hi>[,<lo>-<hi>...]
//	dot                         dotall
//	end                         fail
//	nop                         backtrack
//
// This is the front end a real regex toolchain would have over its
// assembler; it parses only these mnemonics, never regex syntax.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gorx/uregex"
	"github.com/gorx/uregex/asm"
	"github.com/gorx/uregex/codegen"
)

func main() {
	pkg := flag.String("pkg", "main", "package name for the generated file")
	varName := flag.String("var", "Pattern", "variable name for the generated pattern")
	out := flag.String("out", "", "output file (default: stdout)")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "uregexdump:", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	pattern, err := assemble(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "uregexdump:", err)
		os.Exit(1)
	}

	src, err := codegen.Generate(*pkg, *varName, pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "uregexdump:", err)
		os.Exit(1)
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "uregexdump:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(src); err != nil {
		fmt.Fprintln(os.Stderr, "uregexdump:", err)
		os.Exit(1)
	}
}

func assemble(r io.Reader) (*uregex.CompiledPattern, error) {
	b := asm.NewBuilder()
	labels := map[string]asm.Label{}
	label := func(name string) asm.Label {
		if l, ok := labels[name]; ok {
			return l
		}
		l := b.NewLabel()
		labels[name] = l
		return l
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") {
			b.Bind(label(strings.TrimSuffix(line, ":")))
			continue
		}

		fields := strings.Fields(line)
		mnemonic := strings.ToLower(fields[0])
		args := fields[1:]

		if err := assembleOne(b, label, mnemonic, args, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return b.Build()
}

func assembleOne(b *asm.Builder, label func(string) asm.Label, mnemonic string, args []string, rawLine string) error {
	switch mnemonic {
	case "nop":
		b.Nop()
	case "backtrack":
		b.Backtrack()
	case "char":
		r, err := parseCodepoint(arg(args, 0))
		if err != nil {
			return err
		}
		b.Char(r)
	case "literal":
		b.Literal(literalArg(rawLine))
	case "save":
		b.Save(label(arg(args, 0)))
	case "jmp":
		b.Jmp(label(arg(args, 0)))
	case "startcapture":
		n, err := strconv.Atoi(arg(args, 0))
		if err != nil {
			return err
		}
		b.StartCapture(n)
	case "endcapture":
		n, err := strconv.Atoi(arg(args, 0))
		if err != nil {
			return err
		}
		b.EndCapture(n)
	case "caret":
		b.Caret()
	case "dollar":
		b.Dollar()
	case "anchora":
		b.AnchorA()
	case "anchorg":
		b.AnchorG()
	case "anchorz":
		b.AnchorZ()
	case "grapheme":
		b.Grapheme()
	case "wordboundary":
		b.WordBoundary(hasFlag(args, "neg"))
	case "digit":
		b.Digit(hasFlag(args, "neg"))
	case "staticsetref":
		id, err := parseStaticSet(arg(args, 0))
		if err != nil {
			return err
		}
		b.StaticSetRef(id, hasFlag(args, "neg"))
	case "setref":
		s, err := parseSet(arg(args, 0))
		if err != nil {
			return err
		}
		b.SetRef(s)
	case "dot":
		b.Dot()
	case "dotall":
		b.DotAll()
	case "end":
		b.End()
	case "fail":
		b.Fail()
	default:
		return fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
	return nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func parseCodepoint(s string) (rune, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("bad codepoint %q: %w", s, err)
	}
	return rune(n), nil
}

func literalArg(line string) string {
	i := strings.Index(line, `"`)
	j := strings.LastIndex(line, `"`)
	if i < 0 || j <= i {
		return ""
	}
	return line[i+1 : j]
}

func parseStaticSet(s string) (uregex.StaticSet, error) {
	switch strings.ToLower(s) {
	case "word":
		return uregex.StaticSetWord, nil
	case "digit":
		return uregex.StaticSetDigit, nil
	case "space":
		return uregex.StaticSetSpace, nil
	}
	return 0, fmt.Errorf("unknown static set %q", s)
}

func parseSet(spec string) (*uregex.Set, error) {
	s := uregex.NewSet()
	for _, part := range strings.Split(spec, ",") {
		lo, hi, ok := strings.Cut(part, "-")
		loR, err := parseCodepoint(lo)
		if err != nil {
			return nil, err
		}
		hiR := loR
		if ok {
			hiR, err = parseCodepoint(hi)
			if err != nil {
				return nil, err
			}
		}
		s.AddRange(loR, hiR)
	}
	return s, nil
}
