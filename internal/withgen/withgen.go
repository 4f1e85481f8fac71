// Package withgeninternal drives copy generation over loaded packages: it
// parses each package, expands every annotated declaration, and frames the
// fragments into one generated file per package.
package withgeninternal

import (
	"bytes"
	"fmt"
	"go/ast"
	"io"
	gopath "path"
	"path/filepath"
	"strconv"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"

	"github.com/sublee/withgen"
	"github.com/sublee/withgen/internal/codefmt"
	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/expand"
	"github.com/sublee/withgen/internal/parse"
)

// Withgen generates copy code for one package. Call [Withgen.Build] and
// then [Withgen.Generate] to get the generated code. Problems with the
// annotated declarations surface as diagnostics on the reporter, not as
// errors; once Build returns, Generate never fails.
type Withgen struct {
	pkg  *packages.Package
	opts Options
	rep  *diag.Reporter

	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	frags []expand.Generated
}

// New creates a new [Withgen] for the given package. The package must have
// its Syntax and must not have any errors.
func New(pkg *packages.Package, opts Options, rep *diag.Reporter) (*Withgen, error) {
	if len(pkg.Syntax) == 0 {
		return nil, fmt.Errorf("pkg %q has no syntax", pkg.Name)
	}

	var buf bytes.Buffer
	return &Withgen{
		pkg:  pkg,
		opts: opts,
		rep:  rep,
		ns:   codefmt.NewNS(sourceFiles(pkg)...),
		buf:  &buf,
		w:    codefmt.NewWriter(&buf),
	}, nil
}

// sourceFiles returns the package's non-generated files. Names declared in
// a previous output must not count as taken, or rerunning would push the
// builder to a numbered variant.
func sourceFiles(pkg *packages.Package) []*ast.File {
	var files []*ast.File
	for _, file := range pkg.Syntax {
		if !ast.IsGenerated(file) {
			files = append(files, file)
		}
	}
	return files
}

// Build parses the package and expands every annotated declaration. The
// imports of each declaring file are recorded for the output file before
// expansion, so generated package-level names also steer clear of import
// aliases.
func (wg *Withgen) Build() error {
	p, err := parse.New(wg.pkg.Fset, wg.pkg.Syntax)
	if err != nil {
		return err
	}

	targets := p.Parse()
	if len(targets) == 0 {
		return nil
	}

	seen := make(map[*ast.File]bool)
	for _, t := range targets {
		if seen[t.File] {
			continue
		}
		seen[t.File] = true
		wg.copyImports(t.File)
	}

	for _, t := range targets {
		wg.frags = append(wg.frags, expand.Expand(t.Decl, wg.opts.Strategy, wg.ns, wg.rep)...)
	}
	return nil
}

// copyImports records a declaring file's imports for the output file. The
// generated code spells field types exactly as the source file does, so the
// source file's imports are a sufficient superset; unused ones are pruned
// when the output is framed.
func (wg *Withgen) copyImports(file *ast.File) {
	for _, imp := range file.Imports {
		name := ""
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" {
			continue
		}

		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		wg.w.AddImport(name, path)

		switch name {
		case "":
			wg.ns.Reserve(gopath.Base(path))
		case ".":
		default:
			wg.ns.Reserve(name)
		}
	}
}

// Generate generates copy code for the package. It must be called after
// [Withgen.Build]. It returns nil when the package has nothing to generate.
func (wg *Withgen) Generate() []byte {
	if len(wg.frags) == 0 {
		return nil
	}

	for _, frag := range wg.frags {
		wg.w.Printf("%s\n", frag.Code)
	}
	return wg.frameCode()
}

// frameCode wraps the written fragments with the header, package clause,
// and import block, and fixes the result up through the import processor.
func (wg *Withgen) frameCode() []byte {
	versionSuffix := ""
	if withgen.Version != "" {
		versionSuffix = "@" + withgen.Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/withgen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", wg.pkg.Name)

	if imps := wg.w.Imports(); len(imps) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imps {
			if imp.Name != "" {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, wg.buf)
	code := buf.Bytes()

	// Gofmt and prune unused imports if succeeded
	outPath := filepath.Join(filepath.Dir(wg.pkg.GoFiles[0]), wg.opts.OutFile)
	if fixed, err := imports.Process(outPath, code, nil); err == nil {
		code = fixed
	}
	return code
}
