package expand

import (
	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/syntax"
)

// eligible filters the declaration's members down to the fields that copy
// generation can carry, in declaration order. Both strategies share this
// one filter.
//
// Computed members are dropped silently; a copy method for a derived value
// would be meaningless. Observer accessors keep a member eligible since
// they hook assignment without replacing storage. A member whose type
// cannot be determined is dropped with a propertyTypeProblem warning while
// its siblings stay eligible.
func eligible(decl *syntax.Decl, rep *diag.Reporter) []syntax.EligibleField {
	fields := make([]syntax.EligibleField, 0, len(decl.Members))
	for _, m := range decl.Members {
		if m.Computed() {
			continue
		}

		if m.Type == "" {
			rep.Warnf(m.Pos, m.End, diag.PropertyTypeProblem.For(m.Name),
				"cannot determine the type of %s; excluded from copy generation", m.Name)
			continue
		}

		fields = append(fields, syntax.EligibleField{Member: m})
	}
	return fields
}
