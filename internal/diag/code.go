package diag

// Code is a stable diagnostic identifier. Codes are stable across releases
// so that tooling can match on them.
type Code string

const (
	// NotAStruct reports a directive on a declaration that is not a struct
	// type. The declaration expands to nothing.
	NotAStruct Code = "notAStruct"

	// PropertyTypeProblem reports a member whose type cannot be determined
	// from the declaration alone. The member is excluded while its siblings
	// still generate.
	PropertyTypeProblem Code = "propertyTypeProblem"
)

// For returns a per-member variant of the code. The member name keeps
// identifiers unique when one expansion reports several members.
//
// e.g., PropertyTypeProblem.For("nickName") => "propertyTypeProblem(nickName)"
func (c Code) For(member string) Code {
	return c + Code("("+member+")")
}

// ID returns the fully qualified identifier of the code.
//
// e.g., NotAStruct.ID() => "withgen.notAStruct"
func (c Code) ID() string {
	return "withgen." + string(c)
}
