package diag

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFile(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "user.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.ParseComments|parser.SkipObjectResolution)
	require.NoError(t, err)
	return fset, file
}

func TestPrinterHeadline(t *testing.T) {
	fset, file := parseTestFile(t, "package p\n\n//withgen:copy\ntype User struct {\n\tName string\n}\n")
	directive := file.Comments[0].List[0]

	var buf bytes.Buffer
	p := NewPrinter(fset, false)
	p.Print(&buf, Diagnostic{
		Severity: SevError,
		Code:     NotAStruct,
		Message:  "boom",
		Pos:      directive.Pos(),
		End:      directive.End(),
	})

	out := buf.String()
	assert.Contains(t, out, "user.go:3:1: error: boom [withgen.notAStruct]")
	assert.Contains(t, out, "\t//withgen:copy\n\t^^^^^^^^^^^^^^\n")
}

func TestPrinterCaretPadding(t *testing.T) {
	fset, file := parseTestFile(t, "package p\n\n//withgen:copy\ntype User struct {\n\tName string\n}\n")

	structType := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec).Type.(*ast.StructType)
	name := structType.Fields.List[0].Names[0]

	var buf bytes.Buffer
	p := NewPrinter(fset, false)
	p.Print(&buf, Diagnostic{
		Severity: SevWarning,
		Code:     PropertyTypeProblem.For("Name"),
		Message:  "cannot determine the type of Name",
		Pos:      name.Pos(),
		End:      name.End(),
	})

	out := buf.String()
	assert.Contains(t, out, "user.go:5:2: warning:")
	assert.Contains(t, out, "[withgen.propertyTypeProblem(Name)]")

	// The leading tab of the source line expands to four spaces, so the
	// caret needs the same padding to sit under the field name.
	assert.Contains(t, out, "\t    Name string\n\t    ^^^^\n")
}

func TestPrinterMissingFile(t *testing.T) {
	fset := token.NewFileSet()

	var buf bytes.Buffer
	p := NewPrinter(fset, false)
	p.Print(&buf, Diagnostic{
		Severity: SevError,
		Code:     NotAStruct,
		Message:  "no anchor",
	})

	// No excerpt without a resolvable position, but the headline still
	// prints.
	assert.Equal(t, "-:-: error: no anchor [withgen.notAStruct]\n", buf.String())
}
