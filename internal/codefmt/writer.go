// Package codefmt provides a writer for generated code. The writer extends
// fmt verbs for the declaration model and manages unique names and imports
// of the output file.
package codefmt

import "io"

// Writer is a writer for generated code.
type Writer struct {
	w       io.Writer
	imports *importSet
	ns      NS
}

// NewWriter creates a new [Writer]. It does not initialize the namespace.
// To specify a namespace, use [Writer.WithNS].
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       w,
		imports: new(importSet),
		ns:      nil,
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.w.Write(p)
}

// Printf writes a formatted string to the underlying writer. It supports
// the extended verbs of [Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string with the extended verbs.
func (w *Writer) Sprintf(format string, args ...any) string {
	return Sprintf(format, args...)
}

// Name returns a unique name in the namespace of the writer.
func (w *Writer) Name(name string) string {
	return w.ns.Name(name)
}

// Reserve marks a name as used in the namespace of the writer.
func (w *Writer) Reserve(name string) bool {
	return w.ns.Reserve(name)
}

// WithBuf copies the writer and sets a new write buffer. The namespace and
// imports remain shared.
func (w *Writer) WithBuf(buf io.Writer) *Writer {
	return &Writer{
		w:       buf,
		imports: w.imports,
		ns:      w.ns,
	}
}

// WithNS copies the writer and sets a new namespace. The imports remain
// shared.
func (w *Writer) WithNS(ns NS) *Writer {
	return &Writer{
		w:       w.w,
		imports: w.imports,
		ns:      ns,
	}
}

// Import is one import of the output file, spelled as the source file
// spells it.
type Import struct {
	// Name is the local name. It is empty without an alias, or "." for dot
	// imports.
	Name string

	// Path is the import path.
	Path string
}

type importSet struct{ list []Import }

// AddImport records an import to emit in the output file. Duplicates are
// collapsed. Two imports claiming the same alias for different paths keep
// the first one; an unused survivor is pruned later by the import fixer.
func (w *Writer) AddImport(name, path string) {
	for _, imp := range w.imports.list {
		if imp.Path == path && imp.Name == name {
			return
		}
		if name != "" && name != "." && imp.Name == name {
			return
		}
	}
	w.imports.list = append(w.imports.list, Import{Name: name, Path: path})
}

// Imports returns the collected imports in insertion order.
func (w *Writer) Imports() []Import {
	return w.imports.list
}
