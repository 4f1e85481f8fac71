package diag

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSON(t *testing.T) {
	fset := token.NewFileSet()
	f := fset.AddFile("user.go", -1, 100)
	f.SetLinesForContent([]byte("package p\n//withgen:copy\ntype User int\n"))

	pos := f.LineStart(2)
	diags := []Diagnostic{
		{Severity: SevError, Code: NotAStruct, Message: "boom", Pos: pos},
		{Severity: SevWarning, Code: PropertyTypeProblem.For("nickName"), Message: "poof"},
	}

	out, err := MarshalJSON(fset, diags)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"severity":"error"`)
	assert.Contains(t, s, `"code":"withgen.notAStruct"`)
	assert.Contains(t, s, `"file":"user.go"`)
	assert.Contains(t, s, `"line":2`)
	assert.Contains(t, s, `"severity":"warning"`)
	assert.Contains(t, s, `"code":"withgen.propertyTypeProblem(nickName)"`)
	assert.Contains(t, s, `"message":"poof"`)
}

func TestMarshalJSONEmpty(t *testing.T) {
	out, err := MarshalJSON(token.NewFileSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
