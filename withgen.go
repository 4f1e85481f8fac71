// Package withgen documents the directive for "copy with changes" code
// generation.
//
// Withgen eliminates the boilerplate of revising one or two fields of an
// immutable struct value. Annotate a struct type with the withgen:copy
// directive, and the generator produces copy helpers for every stored field.
// Because the helpers are plain methods, revised copies stay type-safe and
// refactoring-friendly without reflection or hand-written constructors.
//
// To start with Withgen, put the directive into the doc comment of a struct
// type declaration:
//
//	//withgen:copy
//	type User struct {
//		Name     string
//		Age      int
//		NickName *string
//	}
//
// Then run the withgen command. It will generate withgen_gen.go for your
// package:
//
//	go run github.com/sublee/withgen/cmd/withgen
//
// # Strategies
//
// Two generation strategies are available, selected by the -s flag or the
// strategy key of .withgen.toml. The fields strategy generates one method per
// stored field. Each method returns a new value identical to the receiver
// except for the chosen field:
//
//	// generated: (simplified)
//	func (u User) WithName(name string) User {
//		return User{Name: name, Age: u.Age, NickName: u.NickName}
//	}
//	func (u User) WithAge(age int) User { ... }
//	func (u User) WithNickName(nickName *string) User { ... }
//
// The builder strategy generates a single Copy method together with a mutable
// builder type instead. The builder is pre-populated from the receiver, the
// callback revises any number of fields in place, and Copy reassembles the
// final value:
//
//	// generated: (simplified)
//	func (u User) Copy(build func(*UserBuilder)) User {
//		b := newUserBuilder(u)
//		build(&b)
//		return b.toUser()
//	}
//
//	type UserBuilder struct {
//		Name     string
//		Age      int
//		NickName *string
//	}
//
// Multi-field revisions then cost one call instead of a method chain:
//
//	grown := u.Copy(func(b *UserBuilder) {
//		b.Age = 31
//		b.NickName = nil
//	})
//
// # Eligibility
//
// Only stored fields participate. A member backed by a getter method is
// computed rather than stored, so it never appears in the generated helpers.
// Fields whose type cannot be determined from the declaration alone are
// excluded with a propertyTypeProblem warning while their siblings still
// generate. Annotating anything other than a struct type reports a
// notAStruct error and generates nothing for that declaration.
//
// Generated methods follow the exported-ness of each field. A struct tag
// overrides it per field:
//
//	//withgen:copy
//	type Account struct {
//		ID    string `withgen:"private"` // generates withID
//		email string `withgen:"public"`  // generates WithEmail
//	}
//
// The builder strategy ignores per-field visibility: Copy is always exported
// while the builder's initializer and finalizer never are.
package withgen

// Directive marks a struct type declaration for copy generation. It must
// appear at the beginning of a line in the declaration's doc comment.
const Directive = "//withgen:copy"

// Version is the version of the withgen command. The release process
// overrides it with -ldflags.
var Version string
