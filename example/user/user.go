// Package user demonstrates the fields strategy: one copy method per
// stored field.
package user

//go:generate go tool withgen

// User is a user account.
//
//withgen:copy
type User struct {
	Name     string
	Age      int
	NickName *string
	Email    string `withgen:"private"`
}

// DisplayName prefers the nickname over the name. It reads like a field
// but stores nothing, so no copy method is generated for it.
func (u User) DisplayName() string {
	if u.NickName != nil {
		return *u.NickName
	}
	return u.Name
}
