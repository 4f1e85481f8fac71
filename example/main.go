package main

import (
	"fmt"

	"example.com/withgenexample/profile"
	"example.com/withgenexample/user"
)

func main() {
	u := user.User{Name: "Heungsub", Age: 35}

	// Output: Heungsub is 36 years old
	older := u.WithAge(36)
	fmt.Printf("%s is %d years old\n", older.Name, older.Age)

	// Output: Heungsub, also known as sublee
	nick := "sublee"
	nicked := u.WithNickName(&nick)
	fmt.Printf("%s, also known as %s\n", u.DisplayName(), nicked.DisplayName())

	p := profile.Profile{Name: "Heungsub", Age: 35}
	revised := p.Copy(func(b *profile.ProfileBuilder) {
		b.Age = 36
		b.NickName = &nick
	})

	// Output: sublee (36)
	fmt.Printf("%s (%d)\n", revised.DisplayName(), revised.Age)

	// Output: Heungsub (35)
	fmt.Printf("%s (%d)\n", p.DisplayName(), p.Age)
}
