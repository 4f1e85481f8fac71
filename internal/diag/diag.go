// Package diag defines the diagnostics reported during expansion. A
// diagnostic is anchored to a position in the user's source code and carries
// a stable code, so it can be rendered for terminals, serialized for
// tooling, or forwarded to an analysis driver.
package diag

import (
	"fmt"
	"go/token"
)

// maxDiagnostics caps how many diagnostics a reporter keeps. One broken
// declaration tends to repeat the same problem for every member, so
// everything beyond the cap is counted but dropped.
const maxDiagnostics = 1024

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string

	// Pos and End locate the problem in the source. End may be invalid.
	Pos token.Pos
	End token.Pos
}

// Reporter accumulates diagnostics in emission order. The expansion emits
// through it; the driver drains it afterwards. A Reporter must not be shared
// between concurrently running expansions.
type Reporter struct {
	fset    *token.FileSet
	diags   []Diagnostic
	dropped int
}

// NewReporter creates a [Reporter] resolving positions against fset.
func NewReporter(fset *token.FileSet) *Reporter {
	return &Reporter{fset: fset}
}

// Fset returns the file set the reporter resolves positions against.
func (r *Reporter) Fset() *token.FileSet { return r.fset }

// Report appends a diagnostic.
func (r *Reporter) Report(d Diagnostic) {
	if len(r.diags) == maxDiagnostics {
		r.dropped++
		return
	}
	r.diags = append(r.diags, d)
}

// Errorf reports an error diagnostic with a formatted message.
func (r *Reporter) Errorf(pos, end token.Pos, code Code, format string, args ...any) {
	r.Report(Diagnostic{
		Severity: SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		End:      end,
	})
}

// Warnf reports a warning diagnostic with a formatted message.
func (r *Reporter) Warnf(pos, end token.Pos, code Code, format string, args ...any) {
	r.Report(Diagnostic{
		Severity: SevWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		End:      end,
	})
}

// Diagnostics returns the accumulated diagnostics in emission order.
func (r *Reporter) Diagnostics() []Diagnostic { return r.diags }

// Dropped returns how many diagnostics were discarded over the cap.
func (r *Reporter) Dropped() int { return r.dropped }

// HasErrors reports whether any diagnostic has error severity.
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == SevError {
			return true
		}
	}
	return false
}
