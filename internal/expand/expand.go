// Package expand synthesizes copy declarations for annotated struct types.
//
// Expansion is a pure function over one declaration: it reads a
// [syntax.Decl], filters its members down to eligible fields, and renders
// the declarations of the selected strategy. Problems are reported through
// a [diag.Reporter] instead of aborting, so a flawed field degrades to a
// warning while its siblings still generate.
package expand

import (
	"strings"

	"github.com/sublee/withgen/internal/codefmt"
	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/syntax"
)

// Generated is one synthesized declaration, rendered as Go source without a
// package clause. The host splices fragments into the output file and
// formats the whole file once.
type Generated struct {
	// Name names the synthesized declaration, like "User.WithName",
	// "User.Copy", or "UserBuilder".
	Name string

	// Code is the declaration's source text.
	Code string
}

// Expand generates copy declarations for one annotated declaration.
//
// A non-struct declaration reports notAStruct and yields nothing; other
// declarations of the same file are unaffected. The namespace reserves the
// output file's top-level names so package-level identifiers introduced by
// the builder strategy never collide with existing declarations.
func Expand(decl *syntax.Decl, strategy Strategy, ns codefmt.NS, rep *diag.Reporter) []Generated {
	if decl.Kind != syntax.KindStruct {
		rep.Errorf(decl.Pos, decl.End, diag.NotAStruct,
			"cannot generate for %s %s: withgen:copy requires a struct type", decl.Kind, decl.Name)
		return nil
	}

	fields := eligible(decl, rep)

	switch strategy {
	case StrategyFields:
		return expandFields(decl, fields)
	case StrategyBuilder:
		return expandBuilder(decl, fields, ns)
	}
	panic("unknown strategy")
}

// receiverName returns the conventional one-letter receiver name for a
// declaration, like "u" for User.
func receiverName(name string) string {
	r := []rune(name)[0]
	if r == '_' {
		return "x"
	}
	return strings.ToLower(string(r))
}

// upperFirst upper-cases the first letter only. Unlike a title case, it
// keeps the rest of the name intact, so "nickName" becomes "NickName"
// rather than "Nickname".
func upperFirst(name string) string {
	r := []rune(name)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// typeParams renders the type parameter list in declaration form, like
// "[K comparable, V any]". Empty for non-generic declarations.
func typeParams(decl *syntax.Decl) string {
	if len(decl.TypeParams) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("[")
	for i, tp := range decl.TypeParams {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(tp.Name)
		b.WriteString(" ")
		b.WriteString(tp.Constraint)
	}
	b.WriteString("]")
	return b.String()
}

// typeArgs renders the type parameter list in instantiation form, like
// "[K, V]". Empty for non-generic declarations.
func typeArgs(decl *syntax.Decl) string {
	if len(decl.TypeParams) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("[")
	for i, tp := range decl.TypeParams {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(tp.Name)
	}
	b.WriteString("]")
	return b.String()
}
