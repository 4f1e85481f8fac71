package codefmt

import (
	"fmt"
	"io"

	"github.com/sublee/withgen/internal/syntax"
)

func wrapPrintfArgs(args []any) []any {
	for i, arg := range args {
		switch arg := arg.(type) {
		case syntax.Member, syntax.EligibleField, *syntax.Decl:
			args[i] = formatArg{arg}
		}
	}
	return args
}

type formatArg struct {
	x any
}

func (f formatArg) name() (string, bool) {
	switch x := f.x.(type) {
	case syntax.Member:
		return x.Name, true
	case syntax.EligibleField:
		return x.Name, true
	case *syntax.Decl:
		return x.Name, true
	}
	return "", false
}

func (f formatArg) typ() (string, bool) {
	switch x := f.x.(type) {
	case syntax.Member:
		return x.Type, true
	case syntax.EligibleField:
		return x.Type, true
	case *syntax.Decl:
		return x.Type(), true
	}
	return "", false
}

// Format implements fmt.Formatter interface.
//
// Supported verbs:
//
//	%n: declaration or member - name form
//	%t: member - declared type form, or declaration - receiver type form
//
// For other verbs, it falls back to the default formatting of fmt package.
func (f formatArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'n':
		name, ok := f.name()
		if !ok {
			fmt.Fprintf(s, "[%%n cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(name))

	case 't':
		typ, ok := f.typ()
		if !ok {
			fmt.Fprintf(s, "[%%t cannot format %T]", f.x)
			return
		}
		_, _ = s.Write([]byte(typ))

	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.x)
	}
}

// Sprintf creates a formatted string with the extended verbs.
func Sprintf(format string, args ...any) string {
	args = wrapPrintfArgs(args)
	return fmt.Sprintf(format, args...)
}

// Fprintf writes a formatted string with the extended verbs to w.
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	args = wrapPrintfArgs(args)
	return fmt.Fprintf(w, format, args...)
}
