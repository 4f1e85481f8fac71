package codefmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/withgen/internal/syntax"
)

func TestWriterPrintf(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf).WithNS(make(NS))

	decl := &syntax.Decl{Name: "User", Kind: syntax.KindStruct}
	field := syntax.EligibleField{Member: syntax.Member{Name: "name", Type: "string"}}

	recv := w.Name("u")
	_, err := w.Printf("func (%s %t) WithName(%n %t) %t {\n", recv, decl, field, field, decl)
	assert.NoError(t, err)
	assert.Equal(t, "func (u User) WithName(name string) User {\n", buf.String())
}

func TestWriterSharedState(t *testing.T) {
	var a, b strings.Builder
	w := NewWriter(&a).WithNS(make(NS))
	w2 := w.WithBuf(&b)

	// The namespace and imports are shared between the copies.
	assert.Equal(t, "tmp", w.Name("tmp"))
	assert.Equal(t, "tmp2", w2.Name("tmp"))

	w.AddImport("", "fmt")
	w2.AddImport("pb", "example.com/gen/pb")
	assert.Equal(t, []Import{
		{Name: "", Path: "fmt"},
		{Name: "pb", Path: "example.com/gen/pb"},
	}, w.Imports())

	_, _ = w.Printf("a")
	_, _ = w2.Printf("b")
	assert.Equal(t, "a", a.String())
	assert.Equal(t, "b", b.String())
}

func TestWriterAddImport(t *testing.T) {
	w := NewWriter(&strings.Builder{})

	w.AddImport("", "fmt")
	w.AddImport("", "fmt")
	w.AddImport("pb", "example.com/foo/pb")

	// A second claim on the same alias loses.
	w.AddImport("pb", "example.com/bar/pb")

	// Dot imports never collide by name.
	w.AddImport(".", "example.com/dsl")
	w.AddImport(".", "example.com/dsl2")

	assert.Equal(t, []Import{
		{Name: "", Path: "fmt"},
		{Name: "pb", Path: "example.com/foo/pb"},
		{Name: ".", Path: "example.com/dsl"},
		{Name: ".", Path: "example.com/dsl2"},
	}, w.Imports())
}
