// Package syntax models annotated declarations for copy generation. The
// model is built from a declaration's syntax tree alone. Types are kept as
// opaque token strings, so the model works without type-checking and never
// depends on go/types.
package syntax

import "go/token"

// Kind identifies the kind of declaration carrying the directive. Only
// [KindStruct] is expandable; every other kind reports notAStruct.
type Kind uint8

const (
	KindStruct Kind = iota
	KindInterface
	KindAlias
	KindOtherType
	KindFunc
	KindVar
	KindConst
)

func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct type"
	case KindInterface:
		return "interface type"
	case KindAlias:
		return "type alias"
	case KindOtherType:
		return "non-struct type"
	case KindFunc:
		return "function"
	case KindVar:
		return "variable"
	case KindConst:
		return "constant"
	}
	return "unknown declaration"
}

// Decl is one annotated declaration. It exists for the duration of a single
// expansion; the expansion reads it and never mutates it.
type Decl struct {
	// Name is the declared identifier.
	Name string

	// Kind is the declaration kind.
	Kind Kind

	// TypeParams are the type parameters of a generic declaration, in
	// order. Empty for non-generic declarations.
	TypeParams []TypeParam

	// Members are the declared members in source order.
	Members []Member

	// Pos and End anchor diagnostics, usually at the directive comment.
	Pos token.Pos
	End token.Pos
}

// Exported reports whether the declared name is exported.
func (d *Decl) Exported() bool { return token.IsExported(d.Name) }

// Visibility returns the declaration's own visibility, the default for
// members without an explicit one.
func (d *Decl) Visibility() Visibility {
	if d.Exported() {
		return VisPublic
	}
	return VisInternal
}

// Type returns the type expression of the declaration usable as a receiver
// or result type.
//
// e.g., "User", or "Pair[K, V]" for type Pair[K, V any].
func (d *Decl) Type() string {
	if len(d.TypeParams) == 0 {
		return d.Name
	}

	s := d.Name + "["
	for i, tp := range d.TypeParams {
		if i != 0 {
			s += ", "
		}
		s += tp.Name
	}
	return s + "]"
}

// TypeParam is one type parameter of a generic declaration.
type TypeParam struct {
	Name       string
	Constraint string
}

// Accessors is the set of accessor behaviors attached to a member.
type Accessors uint8

const (
	// AccessorGet marks a member read through a custom getter.
	AccessorGet Accessors = 1 << iota

	// AccessorSet marks a member written through a custom setter.
	AccessorSet

	// AccessorObserve marks a side-effect hook on a stored member. An
	// observer runs on assignment but does not define access, so it never
	// makes a member computed.
	AccessorObserve
)

// Member is one member entry of a [Decl].
type Member struct {
	// Name is the member identifier.
	Name string

	// Type is the member's type as an opaque token string. Empty means the
	// type cannot be determined from the declaration alone.
	Type string

	// Accessors is the member's accessor behavior.
	Accessors Accessors

	// Visibility is the explicit per-member override. [VisUnset] falls back
	// to the member's own exported-ness, then to the declaration's.
	Visibility Visibility

	// Pos and End anchor diagnostics at the member.
	Pos token.Pos
	End token.Pos
}

// Computed reports whether the member is computed rather than stored. Any
// member exposing a getter is computed, whether or not a setter is paired.
func (m Member) Computed() bool { return m.Accessors&AccessorGet != 0 }

// Exported reports whether the member name is exported.
func (m Member) Exported() bool { return token.IsExported(m.Name) }

// EligibleField is the projection of a [Member] that participates in
// generation. Every EligibleField has a non-empty type and no getter.
type EligibleField struct{ Member }
