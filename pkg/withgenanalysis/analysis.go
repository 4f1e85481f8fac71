// Package withgenanalysis adapts withgen to the go/analysis framework. The
// analyzer reports the diagnostics a generation run would emit, without
// writing any file.
package withgenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/expand"
	withgeninternal "github.com/sublee/withgen/internal/withgen"
)

// Analyzer validates the usage of withgen in the package. It works on
// syntax alone; type information is never touched.
var Analyzer = &analysis.Analyzer{
	Name: "withgen",
	Doc:  "linter for withgen usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:    pass.Pkg.Name(),
		PkgPath: pass.Pkg.Path(),
		Fset:    pass.Fset,
		Syntax:  pass.Files,
	}

	// Both strategies report the same diagnostics, so the configured
	// strategy does not matter here.
	rep := diag.NewReporter(pass.Fset)
	wg, err := withgeninternal.New(pkg, withgeninternal.Options{Strategy: expand.StrategyFields}, rep)
	if err != nil {
		return nil, err
	}
	if err := wg.Build(); err != nil {
		return nil, err
	}

	for _, d := range rep.Diagnostics() {
		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: d.Code.ID(),
			Message:  d.Message,
		})
	}
	return nil, nil
}
