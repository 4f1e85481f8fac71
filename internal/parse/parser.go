// Package parse discovers annotated declarations in Go source and builds
// the declaration model for expansion. It works on syntax alone; nothing
// here consults go/types.
package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/sublee/withgen"
	"github.com/sublee/withgen/internal/syntax"
)

// Parser collects the annotated declarations of one package.
type Parser struct {
	fset  *token.FileSet
	files []*ast.File
}

// New creates a [Parser] over the files of one package.
func New(fset *token.FileSet, files []*ast.File) (*Parser, error) {
	if fset == nil {
		return nil, errors.New("need fset")
	}
	if len(files) == 0 {
		return nil, errors.New("need files")
	}
	return &Parser{fset: fset, files: files}, nil
}

// Target is one annotated declaration together with its declaring file.
// The file carries the imports and top-level names the output file must
// respect.
type Target struct {
	Decl *syntax.Decl
	File *ast.File
}

// Parse returns the annotated declarations of the package in source order.
// Generated files are skipped, so rerunning over a package containing a
// previous output is idempotent.
//
// Accessor methods are collected from every non-generated file of the
// package. A directive on a non-struct declaration still yields a Target;
// deciding what to do with it is the expansion's business.
func (p *Parser) Parse() []Target {
	methods := p.collectAccessorMethods()

	var targets []Target
	for _, file := range p.files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			for _, d := range p.parseDecl(decl) {
				if d.Kind == syntax.KindStruct {
					d.Members = pairAccessors(d.Members, methods[d.Name])
				}
				targets = append(targets, Target{Decl: d, File: file})
			}
		}
	}
	return targets
}

// directiveComment returns the comment carrying the generation directive,
// if the doc group has one.
func directiveComment(doc *ast.CommentGroup) (*ast.Comment, bool) {
	if doc == nil {
		return nil, false
	}
	for _, c := range doc.List {
		if strings.TrimRight(c.Text, " \t") == withgen.Directive {
			return c, true
		}
	}
	return nil, false
}

// anchor derives the diagnostic anchor span of a directive comment.
func anchor(c *ast.Comment) (token.Pos, token.Pos) {
	return c.Pos(), c.Pos() + token.Pos(len(withgen.Directive))
}
