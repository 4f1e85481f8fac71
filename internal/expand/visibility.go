package expand

import "github.com/sublee/withgen/internal/syntax"

// resolveVisibility returns the effective visibility of the copy method
// generated for one field. An explicit per-member override wins, then the
// member name's own exported-ness, then the declaration's.
//
// Only the fields strategy resolves per-field visibility. The builder
// strategy exports Copy unconditionally and never exports the builder's
// initializer and finalizer.
func resolveVisibility(decl *syntax.Decl, m syntax.Member) syntax.Visibility {
	if m.Visibility != syntax.VisUnset {
		return m.Visibility
	}
	if m.Name != "" {
		if m.Exported() {
			return syntax.VisPublic
		}
		return syntax.VisInternal
	}
	return decl.Visibility()
}
