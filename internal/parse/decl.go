package parse

import (
	"go/ast"
	"go/token"
	"reflect"
	"strconv"

	"github.com/sublee/withgen/internal/syntax"
)

// parseDecl builds model declarations for one top-level declaration. Most
// declarations carry no directive and yield nothing.
func (p *Parser) parseDecl(decl ast.Decl) []*syntax.Decl {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		c, ok := directiveComment(d.Doc)
		if !ok {
			return nil
		}
		pos, end := anchor(c)
		return []*syntax.Decl{{Name: d.Name.Name, Kind: syntax.KindFunc, Pos: pos, End: end}}

	case *ast.GenDecl:
		return p.parseGenDecl(d)
	}
	return nil
}

// parseGenDecl handles type, var, and const declarations. The directive may
// sit on the declaration group when it has a single spec, or on the spec
// itself inside a grouped declaration.
func (p *Parser) parseGenDecl(d *ast.GenDecl) []*syntax.Decl {
	groupDoc := func(spec *ast.CommentGroup) (*ast.Comment, bool) {
		if c, ok := directiveComment(spec); ok {
			return c, true
		}
		if len(d.Specs) == 1 {
			return directiveComment(d.Doc)
		}
		return nil, false
	}

	var out []*syntax.Decl
	for _, spec := range d.Specs {
		switch spec := spec.(type) {
		case *ast.TypeSpec:
			c, ok := groupDoc(spec.Doc)
			if !ok {
				continue
			}
			out = append(out, p.parseTypeSpec(spec, c))

		case *ast.ValueSpec:
			c, ok := groupDoc(spec.Doc)
			if !ok || len(spec.Names) == 0 {
				continue
			}

			kind := syntax.KindVar
			if d.Tok == token.CONST {
				kind = syntax.KindConst
			}
			pos, end := anchor(c)
			out = append(out, &syntax.Decl{Name: spec.Names[0].Name, Kind: kind, Pos: pos, End: end})
		}
	}
	return out
}

// parseTypeSpec builds the declaration for an annotated type. Non-struct
// types still produce a declaration so the expansion can report them.
func (p *Parser) parseTypeSpec(spec *ast.TypeSpec, c *ast.Comment) *syntax.Decl {
	pos, end := anchor(c)
	decl := &syntax.Decl{Name: spec.Name.Name, Pos: pos, End: end}

	if spec.Assign.IsValid() {
		decl.Kind = syntax.KindAlias
		return decl
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = syntax.KindStruct
		decl.TypeParams = p.parseTypeParams(spec.TypeParams)
		decl.Members = p.parseFields(t)
	case *ast.InterfaceType:
		decl.Kind = syntax.KindInterface
	default:
		decl.Kind = syntax.KindOtherType
	}
	return decl
}

func (p *Parser) parseTypeParams(list *ast.FieldList) []syntax.TypeParam {
	if list == nil {
		return nil
	}

	var out []syntax.TypeParam
	for _, f := range list.List {
		constraint := syntax.ExprString(p.fset, f.Type)
		for _, name := range f.Names {
			out = append(out, syntax.TypeParam{Name: name.Name, Constraint: constraint})
		}
	}
	return out
}

// parseFields builds one member per declared field name, in source order.
// A multi-name field expands into one member per name. Blank fields are
// skipped; embedded fields are named after their base identifier.
func (p *Parser) parseFields(st *ast.StructType) []syntax.Member {
	var members []syntax.Member
	for _, field := range st.Fields.List {
		typ := syntax.ExprString(p.fset, field.Type)
		vis := tagVisibility(field.Tag)

		if len(field.Names) == 0 {
			base, ok := embeddedBase(field.Type)
			if !ok {
				continue
			}
			members = append(members, syntax.Member{
				Name:       base.Name,
				Type:       typ,
				Visibility: vis,
				Pos:        base.Pos(),
				End:        base.End(),
			})
			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			members = append(members, syntax.Member{
				Name:       name.Name,
				Type:       typ,
				Visibility: vis,
				Pos:        name.Pos(),
				End:        name.End(),
			})
		}
	}
	return members
}

// embeddedBase extracts the base identifier of an embedded field type.
//
//	Base
//	^^^^
//	*pkg.Base
//	     ^^^^
//	List[T]
//	^^^^
func embeddedBase(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch t := expr.(type) {
	case *ast.Ident:
		return t, true
	case *ast.StarExpr:
		return embeddedBase(t.X)
	case *ast.SelectorExpr:
		return t.Sel, true
	case *ast.IndexExpr:
		return embeddedBase(t.X)
	case *ast.IndexListExpr:
		return embeddedBase(t.X)
	}
	return nil, false
}

// tagVisibility reads the explicit visibility override from a withgen
// struct tag, like `withgen:"private"`.
func tagVisibility(tag *ast.BasicLit) syntax.Visibility {
	if tag == nil {
		return syntax.VisUnset
	}

	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return syntax.VisUnset
	}

	switch reflect.StructTag(raw).Get("withgen") {
	case "public":
		return syntax.VisPublic
	case "private":
		return syntax.VisInternal
	}
	return syntax.VisUnset
}
