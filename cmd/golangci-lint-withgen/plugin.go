// golangcilintwithgen package provides a plugin for golangci-lint to
// integrate the withgen analyzer. To build a custom golangci-lint binary
// with this plugin, run the following command at this package's directory:
//
//	golangci-lint custom
//
// The resulting golangci-lint-withgen binary lints withgen usage along with
// the regular linters.
package golangcilintwithgen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/withgen/pkg/withgenanalysis"
)

func init() {
	register.Plugin("withgen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return WithgenLinter{}, nil
}

type WithgenLinter struct{}

func (WithgenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{withgenanalysis.Analyzer}, nil
}

func (WithgenLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
