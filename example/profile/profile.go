// Package profile demonstrates the builder strategy: a single Copy
// method revising any number of fields at once.
package profile

//go:generate go tool withgen -s builder

// Profile is a public profile of a user.
//
//withgen:copy
type Profile struct {
	Name     string
	Age      int
	NickName *string
}

// DisplayName prefers the nickname over the name. Together with
// SetDisplayName it forms a computed member, so the builder carries no
// DisplayName field.
func (p Profile) DisplayName() string {
	if p.NickName != nil {
		return *p.NickName
	}
	return p.Name
}

// SetDisplayName overrides the display name by storing a nickname.
func (p *Profile) SetDisplayName(name string) {
	p.NickName = &name
}

// Adult reports whether the profile belongs to an adult.
func (p Profile) Adult() bool {
	return p.Age >= 18
}
