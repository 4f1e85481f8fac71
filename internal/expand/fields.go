package expand

import (
	"strings"

	"github.com/sublee/withgen/internal/codefmt"
	"github.com/sublee/withgen/internal/syntax"
)

// expandFields synthesizes one copy method per eligible field, in
// declaration order.
func expandFields(decl *syntax.Decl, fields []syntax.EligibleField) []Generated {
	out := make([]Generated, 0, len(fields))
	for _, f := range fields {
		method := methodName(resolveVisibility(decl, f.Member), f.Name)

		var buf strings.Builder
		w := codefmt.NewWriter(&buf).WithNS(fieldScope(decl, fields))
		writeFieldMethodCode(w, decl, fields, f, method)

		out = append(out, Generated{
			Name: codefmt.Sprintf("%n.%s", decl, method),
			Code: buf.String(),
		})
	}
	return out
}

// methodName builds the copy method name for a field under the effective
// visibility, like "WithName" or "withName".
func methodName(vis syntax.Visibility, field string) string {
	if vis == syntax.VisPublic {
		return "With" + upperFirst(field)
	}
	return "with" + upperFirst(field)
}

// fieldScope reserves every name visible inside a generated method body, so
// a chosen receiver or parameter never shadows a field or type parameter.
func fieldScope(decl *syntax.Decl, fields []syntax.EligibleField) codefmt.NS {
	ns := make(codefmt.NS)
	for _, tp := range decl.TypeParams {
		ns.Reserve(tp.Name)
	}
	for _, f := range fields {
		ns.Reserve(f.Name)
	}
	return ns
}

// writeFieldMethodCode writes one method returning a copy of the receiver
// with a single field replaced. The parameter is named after the field; the
// composite literal carries every eligible field so the copy never loses a
// sibling.
func writeFieldMethodCode(w *codefmt.Writer, decl *syntax.Decl, fields []syntax.EligibleField, f syntax.EligibleField, method string) {
	recv := w.Name(receiverName(decl.Name))

	w.Printf("// %s returns a copy of the receiver whose %n is replaced by\n", method, f)
	w.Printf("// the given value.\n")
	w.Printf("func (%s %t) %s(%n %t) %t {\n", recv, decl, method, f, f, decl)
	w.Printf("return %t{\n", decl)
	for _, g := range fields {
		if g.Name == f.Name {
			w.Printf("%n: %n,\n", g, g)
		} else {
			w.Printf("%n: %s.%n,\n", g, recv, g)
		}
	}
	w.Printf("}\n")
	w.Printf("}\n")
}
