package diag

import (
	"go/token"

	"fortio.org/safecast"
	"github.com/bytedance/sonic"
)

// jsonDiagnostic is the serialized form of a [Diagnostic] with its position
// resolved.
type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     uint32 `json:"line,omitempty"`
	Column   uint32 `json:"column,omitempty"`
	EndLine  uint32 `json:"endLine,omitempty"`
	EndCol   uint32 `json:"endColumn,omitempty"`
}

// MarshalJSON serializes diagnostics as a JSON array for editor and CI
// tooling. The output is a single line.
func MarshalJSON(fset *token.FileSet, diags []Diagnostic) ([]byte, error) {
	out := make([]jsonDiagnostic, 0, len(diags))
	for _, d := range diags {
		j := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}

		if d.Pos.IsValid() {
			pos := fset.Position(d.Pos)
			j.File = pos.Filename
			j.Line = jsonLine(pos.Line)
			j.Column = jsonLine(pos.Column)
		}
		if d.End.IsValid() {
			end := fset.Position(d.End)
			j.EndLine = jsonLine(end.Line)
			j.EndCol = jsonLine(end.Column)
		}

		out = append(out, j)
	}
	return sonic.Marshal(out)
}

// jsonLine narrows a line or column to the wire type. Out-of-range values
// serialize as zero, the same as "unknown".
func jsonLine(n int) uint32 {
	u, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return u
}
