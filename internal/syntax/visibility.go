package syntax

// Visibility is the export scope attached to a generated declaration. Go
// has two effective levels: exported and package-internal.
type Visibility uint8

const (
	// VisUnset means no explicit visibility was declared.
	VisUnset Visibility = iota

	// VisPublic exports the generated identifier.
	VisPublic

	// VisInternal keeps the generated identifier unexported.
	VisInternal
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisInternal:
		return "internal"
	}
	return "unset"
}
