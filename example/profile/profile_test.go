package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"example.com/withgenexample/profile"
)

func TestCopyRoundTrip(t *testing.T) {
	nick := "sublee"
	p := profile.Profile{Name: "Heungsub", Age: 35, NickName: &nick}

	assert.Equal(t, p, p.Copy(func(*profile.ProfileBuilder) {}))
}

func TestCopyRevisesAge(t *testing.T) {
	p := profile.Profile{Name: "Heungsub", Age: 35}
	revised := p.Copy(func(b *profile.ProfileBuilder) { b.Age = 36 })

	assert.Equal(t, profile.Profile{Name: "Heungsub", Age: 36}, revised)
	assert.Equal(t, profile.Profile{Name: "Heungsub", Age: 35}, p)
}

func TestCopyClearsNickName(t *testing.T) {
	nick := "sublee"
	p := profile.Profile{Name: "Heungsub", Age: 35, NickName: &nick}
	cleared := p.Copy(func(b *profile.ProfileBuilder) { b.NickName = nil })

	assert.Nil(t, cleared.NickName)
	assert.Equal(t, "Heungsub", cleared.DisplayName())
}

func TestComputedMembers(t *testing.T) {
	p := profile.Profile{Name: "Heungsub", Age: 35}
	assert.True(t, p.Adult())
	assert.Equal(t, "Heungsub", p.DisplayName())

	p.SetDisplayName("sublee")
	assert.Equal(t, "sublee", p.DisplayName())
}
