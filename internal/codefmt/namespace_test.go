package codefmt

import (
	"go/parser"
	"go/token"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisambiguate(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("example"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "example", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "example3", name)
	assert.True(t, more)
}

func TestNSName(t *testing.T) {
	ns := make(NS)
	assert.Equal(t, "user", ns.Name("user"))
	assert.Equal(t, "user2", ns.Name("user"))
	assert.Equal(t, "user3", ns.Name("user"))

	assert.False(t, ns.Reserve("user2"))
	assert.True(t, ns.Reserve("account"))
	assert.Equal(t, "account2", ns.Name("account"))
}

func TestNewNS(t *testing.T) {
	src := `package p

type User struct{}

func (u User) Greet() string { return "hi" }

func NewUser() User { return User{} }

var defaultUser User

const maxUsers = 10
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, parser.SkipObjectResolution)
	assert.NoError(t, err)

	ns := NewNS(file)
	assert.False(t, ns.Reserve("User"))
	assert.False(t, ns.Reserve("NewUser"))
	assert.False(t, ns.Reserve("defaultUser"))
	assert.False(t, ns.Reserve("maxUsers"))

	// Methods do not occupy the package scope.
	assert.True(t, ns.Reserve("Greet"))
}

func TestDisambiguateNumSuffix(t *testing.T) {
	pull, stop := iter.Pull(DisambiguateName("answer42"))
	defer stop()

	var name string
	var more bool

	name, more = pull()
	assert.Equal(t, "answer42", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_2", name)
	assert.True(t, more)

	name, more = pull()
	assert.Equal(t, "answer42_3", name)
	assert.True(t, more)
}
