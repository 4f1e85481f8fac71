package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithReplacesOneField(t *testing.T) {
	u := User{Name: "Heungsub", Age: 35}

	assert.Equal(t, User{Name: "sublee", Age: 35}, u.WithName("sublee"))
	assert.Equal(t, User{Name: "Heungsub", Age: 36}, u.WithAge(36))
}

func TestWithLeavesReceiver(t *testing.T) {
	u := User{Name: "Heungsub", Age: 35}
	_ = u.WithAge(36)

	assert.Equal(t, User{Name: "Heungsub", Age: 35}, u)
}

func TestWithNickName(t *testing.T) {
	u := User{Name: "Heungsub"}
	assert.Equal(t, "Heungsub", u.DisplayName())

	nick := "sublee"
	nicked := u.WithNickName(&nick)
	assert.Equal(t, "sublee", nicked.DisplayName())

	cleared := nicked.WithNickName(nil)
	assert.Equal(t, "Heungsub", cleared.DisplayName())
}

func TestWithEmail(t *testing.T) {
	u := User{Name: "Heungsub", Email: "heungsub@example.com"}
	revised := u.withEmail("sublee@example.com")

	assert.Equal(t, "sublee@example.com", revised.Email)
	assert.Equal(t, "Heungsub", revised.Name)
}
