package parse

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/samber/lo"

	"github.com/sublee/withgen/internal/syntax"
)

// accessorMethod is one getter- or setter-shaped method found on a type.
type accessorMethod struct {
	// name is the method name for a getter, or the name with its Set
	// prefix stripped for a setter.
	name string

	// typ is the result type of a getter or the parameter type of a
	// setter.
	typ string

	setter bool

	pos, end token.Pos
}

// collectAccessorMethods finds getter- and setter-shaped methods in every
// non-generated file of the package, grouped by receiver type name in
// source order.
func (p *Parser) collectAccessorMethods() map[string][]accessorMethod {
	out := make(map[string][]accessorMethod)
	for _, file := range p.files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil {
				continue
			}

			recv, ok := receiverBase(fn.Recv)
			if !ok {
				continue
			}

			if m, ok := p.accessorOf(fn); ok {
				out[recv] = append(out[recv], m)
			}
		}
	}
	return out
}

// receiverBase returns the receiver's base type name, seeing through
// pointers and type parameters.
func receiverBase(recv *ast.FieldList) (string, bool) {
	if len(recv.List) == 0 {
		return "", false
	}
	base, ok := embeddedBase(recv.List[0].Type)
	if !ok {
		return "", false
	}
	return base.Name, true
}

// accessorOf classifies a method as a getter (no parameters, one result)
// or a setter (one parameter, no results, a Set prefix). Anything else is
// not an accessor.
func (p *Parser) accessorOf(fn *ast.FuncDecl) (accessorMethod, bool) {
	params := countFields(fn.Type.Params)
	results := countFields(fn.Type.Results)

	if params == 0 && results == 1 {
		return accessorMethod{
			name: fn.Name.Name,
			typ:  syntax.ExprString(p.fset, fn.Type.Results.List[0].Type),
			pos:  fn.Name.Pos(),
			end:  fn.Name.End(),
		}, true
	}

	if params == 1 && results == 0 {
		base, ok := setterBase(fn.Name.Name)
		if !ok {
			return accessorMethod{}, false
		}
		return accessorMethod{
			name:   base,
			typ:    syntax.ExprString(p.fset, fn.Type.Params.List[0].Type),
			setter: true,
			pos:    fn.Name.Pos(),
			end:    fn.Name.End(),
		}, true
	}

	return accessorMethod{}, false
}

func setterBase(name string) (string, bool) {
	base, ok := strings.CutPrefix(name, "Set")
	if !ok {
		base, ok = strings.CutPrefix(name, "set")
	}
	if !ok || base == "" {
		return "", false
	}
	return base, true
}

// pairAccessors merges a struct's declared fields with the accessor
// methods of its type into the final member list, insertion-ordered.
//
// Getters become computed members unless they shadow a declared field; a
// method over storage is accessor sugar and never demotes the field.
// Setters attach to their getter pair; a lone setter defines no storage,
// so it never creates a member.
func pairAccessors(fields []syntax.Member, methods []accessorMethod) []syntax.Member {
	members := linkedhashmap.New()
	for _, f := range fields {
		members.Put(f.Name, f)
	}

	for _, m := range methods {
		if m.setter {
			continue
		}
		if _, ok := members.Get(m.name); ok {
			continue
		}
		members.Put(m.name, syntax.Member{
			Name:      m.name,
			Type:      m.typ,
			Accessors: syntax.AccessorGet,
			Pos:       m.pos,
			End:       m.end,
		})
	}

	for _, m := range methods {
		if !m.setter {
			continue
		}
		for _, key := range []string{m.name, lowerFirst(m.name)} {
			v, ok := members.Get(key)
			if !ok {
				continue
			}
			member := v.(syntax.Member)
			if member.Accessors&syntax.AccessorGet == 0 {
				continue
			}
			member.Accessors |= syntax.AccessorSet
			members.Put(key, member)
			break
		}
	}

	return lo.Map(members.Values(), func(v any, _ int) syntax.Member {
		return v.(syntax.Member)
	})
}

func countFields(list *ast.FieldList) int {
	if list == nil {
		return 0
	}

	n := 0
	for _, f := range list.List {
		if len(f.Names) == 0 {
			n++
		} else {
			n += len(f.Names)
		}
	}
	return n
}

func lowerFirst(s string) string {
	r := []rune(s)
	return strings.ToLower(string(r[0])) + string(r[1:])
}
