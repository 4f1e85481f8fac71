package diag

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Printer renders diagnostics for terminals. It prints one headline per
// diagnostic and, when the source file is readable, an excerpt of the
// offending line with a caret underneath.
type Printer struct {
	fset  *token.FileSet
	lines map[string][]string

	errColor  *color.Color
	warnColor *color.Color
	dimColor  *color.Color
}

// NewPrinter creates a [Printer]. Coloring is forced on or off regardless
// of whether the output is a terminal; the caller decides.
func NewPrinter(fset *token.FileSet, colored bool) *Printer {
	p := &Printer{
		fset:      fset,
		lines:     make(map[string][]string),
		errColor:  color.New(color.FgRed, color.Bold),
		warnColor: color.New(color.FgYellow, color.Bold),
		dimColor:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.errColor, p.warnColor, p.dimColor} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintAll prints each diagnostic in order.
func (p *Printer) PrintAll(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		p.Print(w, d)
	}
}

// Print prints a single diagnostic.
func (p *Printer) Print(w io.Writer, d Diagnostic) {
	sevColor := p.warnColor
	if d.Severity == SevError {
		sevColor = p.errColor
	}

	pos := p.fset.Position(d.Pos)
	fmt.Fprintf(w, "%s: %s %s %s\n",
		FormatPosition(pos),
		sevColor.Sprint(d.Severity.String()+":"),
		d.Message,
		p.dimColor.Sprintf("[%s]", d.Code.ID()),
	)

	p.printExcerpt(w, d, pos, sevColor)
}

// printExcerpt prints the source line of the diagnostic with a caret under
// the reported span. It prints nothing if the file cannot be read.
func (p *Printer) printExcerpt(w io.Writer, d Diagnostic, pos token.Position, sevColor *color.Color) {
	line, ok := p.sourceLine(pos.Filename, pos.Line)
	if !ok || pos.Column < 1 || pos.Column > len(line)+1 {
		return
	}

	span := 1
	if d.End.IsValid() {
		end := p.fset.Position(d.End)
		if end.Filename == pos.Filename && end.Line == pos.Line && end.Column > pos.Column {
			stop := min(end.Column-1, len(line))
			span = runewidth.StringWidth(expandTabs(line[pos.Column-1 : stop]))
		}
	}
	span = max(span, 1)

	pad := runewidth.StringWidth(expandTabs(line[:pos.Column-1]))
	fmt.Fprintf(w, "\t%s\n", p.dimColor.Sprint(expandTabs(line)))
	fmt.Fprintf(w, "\t%s%s\n", strings.Repeat(" ", pad), sevColor.Sprint(strings.Repeat("^", span)))
}

// sourceLine returns the requested line of the file. File contents are read
// once and cached, including failed reads.
func (p *Printer) sourceLine(filename string, line int) (string, bool) {
	lines, ok := p.lines[filename]
	if !ok {
		if src, err := os.ReadFile(filename); err == nil {
			lines = strings.Split(string(src), "\n")
		}
		p.lines[filename] = lines
	}

	if line < 1 || line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// expandTabs rewrites tabs as spaces so caret padding and the printed
// excerpt measure the same.
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
