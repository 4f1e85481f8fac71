package expand

import (
	"strings"

	"github.com/sublee/withgen/internal/codefmt"
	"github.com/sublee/withgen/internal/syntax"
)

// expandBuilder synthesizes the Copy method and its builder type. Go has no
// nested types, so the builder becomes a sibling type named <D>Builder with
// one exported field per eligible field.
//
// Copy is always exported while the builder's initializer and finalizer
// never are; revising a value is part of the type's surface but the
// plumbing between the copies is not.
func expandBuilder(decl *syntax.Decl, fields []syntax.EligibleField, ns codefmt.NS) []Generated {
	builderName := ns.Name(decl.Name + "Builder")
	newName := ns.Name("new" + upperFirst(decl.Name) + "Builder")
	toName := fieldScope(decl, fields).Name("to" + upperFirst(decl.Name))

	var buf strings.Builder
	w := codefmt.NewWriter(&buf)
	writeCopyMethodCode(w, decl, builderName, newName, toName)
	copyCode := buf.String()

	buf.Reset()
	writeBuilderCode(w, decl, fields, builderName, newName, toName)

	return []Generated{
		{Name: codefmt.Sprintf("%n.Copy", decl), Code: copyCode},
		{Name: builderName, Code: buf.String()},
	}
}

// writeCopyMethodCode writes the Copy method. It hands a builder seeded
// from the receiver to the build function and materializes the revised
// copy.
func writeCopyMethodCode(w *codefmt.Writer, decl *syntax.Decl, builderName, newName, toName string) {
	scope := fieldScope(decl, nil)
	recv := scope.Name(receiverName(decl.Name))
	varBuild := scope.Name("build")
	varB := scope.Name("b")

	w.Printf("// Copy returns a copy of the receiver revised by the build function.\n")
	w.Printf("func (%s %t) Copy(%s func(*%s%s)) %t {\n", recv, decl, varBuild, builderName, typeArgs(decl), decl)
	w.Printf("%s := %s(%s)\n", varB, newName, recv)
	w.Printf("%s(&%s)\n", varBuild, varB)
	w.Printf("return %s.%s()\n", varB, toName)
	w.Printf("}\n")
}

// writeBuilderCode writes the builder type with its initializer and
// finalizer. Builder fields keep the member's own name, type, and order.
func writeBuilderCode(w *codefmt.Writer, decl *syntax.Decl, fields []syntax.EligibleField, builderName, newName, toName string) {
	params := typeParams(decl)
	args := typeArgs(decl)

	w.Printf("// %s collects revised fields for [%n.Copy].\n", builderName, decl)
	w.Printf("type %s%s struct {\n", builderName, params)
	for _, f := range fields {
		w.Printf("%n %t\n", f, f)
	}
	w.Printf("}\n\n")

	param := fieldScope(decl, fields).Name(receiverName(decl.Name))
	w.Printf("func %s%s(%s %t) %s%s {\n", newName, params, param, decl, builderName, args)
	w.Printf("return %s%s{\n", builderName, args)
	for _, f := range fields {
		w.Printf("%n: %s.%n,\n", f, param, f)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")

	recv := fieldScope(decl, fields).Name("b")
	w.Printf("func (%s %s%s) %s() %t {\n", recv, builderName, args, toName, decl)
	w.Printf("return %t{\n", decl)
	for _, f := range fields {
		w.Printf("%n: %s.%n,\n", f, recv, f)
	}
	w.Printf("}\n")
	w.Printf("}\n")
}
