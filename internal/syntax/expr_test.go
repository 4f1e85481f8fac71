package syntax

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFields(t *testing.T, structBody string) (*token.FileSet, []*ast.Field) {
	t.Helper()

	src := "package p\ntype T struct {\n" + structBody + "\n}"
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "t.go", src, parser.SkipObjectResolution)
	require.NoError(t, err)

	typeSpec := file.Decls[0].(*ast.GenDecl).Specs[0].(*ast.TypeSpec)
	return fset, typeSpec.Type.(*ast.StructType).Fields.List
}

func TestExprString(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"F string", "string"},
		{"F *string", "*string"},
		{"F []byte", "[]byte"},
		{"F [4]float64", "[4]float64"},
		{"F map[string][]byte", "map[string][]byte"},
		{"F chan int", "chan int"},
		{"F func(int) error", "func(int) error"},
		{"F time.Time", "time.Time"},
		{"F *pb.User", "*pb.User"},
		{"F List[int]", "List[int]"},
		{"F Pair[K, V]", "Pair[K, V]"},
		{"F struct{ X, Y int }", "struct{ X, Y int }"},
		{"F interface{ Close() error }", "interface{ Close() error }"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			fset, fields := parseFields(t, tt.field)
			require.Len(t, fields, 1)
			assert.Equal(t, tt.want, ExprString(fset, fields[0].Type))
		})
	}
}

func TestExprStringAbsent(t *testing.T) {
	fset := token.NewFileSet()

	assert.Equal(t, "", ExprString(fset, nil))
	assert.Equal(t, "", ExprString(fset, &ast.BadExpr{}))

	// A parse error nested inside an otherwise fine expression still marks
	// the whole type as undeterminable.
	assert.Equal(t, "", ExprString(fset, &ast.StarExpr{X: &ast.BadExpr{}}))
}

func TestDeclType(t *testing.T) {
	plain := &Decl{Name: "User", Kind: KindStruct}
	assert.Equal(t, "User", plain.Type())

	generic := &Decl{
		Name: "Pair",
		Kind: KindStruct,
		TypeParams: []TypeParam{
			{Name: "K", Constraint: "comparable"},
			{Name: "V", Constraint: "any"},
		},
	}
	assert.Equal(t, "Pair[K, V]", generic.Type())
}

func TestMemberComputed(t *testing.T) {
	assert.False(t, Member{Name: "Name"}.Computed())
	assert.False(t, Member{Name: "Name", Accessors: AccessorSet}.Computed())
	assert.False(t, Member{Name: "Name", Accessors: AccessorObserve}.Computed())
	assert.True(t, Member{Name: "Name", Accessors: AccessorGet}.Computed())
	assert.True(t, Member{Name: "Name", Accessors: AccessorGet | AccessorSet}.Computed())
}
