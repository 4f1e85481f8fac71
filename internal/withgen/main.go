package withgeninternal

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/expand"
)

// Options configure a generation run.
type Options struct {
	// Strategy selects the copy shape to synthesize.
	Strategy expand.Strategy

	// OutFile is the output file name generated in each package.
	OutFile string

	// Tags is extra build tags to use when loading packages.
	Tags string

	// Tests indicates whether to include test files.
	Tests bool
}

// Main is the main entry point for withgen. It is used by the command-line
// tool directly.
//
// ctx can cancel package loading. wd is the path of the working directory
// and env is the environment to load packages with. patterns are the
// package patterns to process.
//
// It returns a map of output file paths to their contents together with the
// reporter holding every diagnostic of the run. Load failures return a
// non-nil error and no outputs; diagnostics alone never do.
func Main(ctx context.Context, wd string, env []string, patterns []string, opts Options) (map[string][]byte, *diag.Reporter, error) {
	pkgs, fset, err := load(ctx, wd, env, opts.Tags, opts.Tests, patterns)
	if err != nil {
		return nil, nil, err
	}

	type result struct {
		out  string
		code []byte
		rep  *diag.Reporter
		err  error
	}

	// Packages expand independently, so they can run in parallel. Results
	// land in per-package slots to keep the merged order deterministic.
	results := make([]result, len(pkgs))
	var g errgroup.Group
	for i, pkg := range pkgs {
		g.Go(func() error {
			res := &results[i]
			res.rep = diag.NewReporter(fset)

			if len(pkg.Errors) != 0 {
				res.err = fmt.Errorf("pkg %q has errors", pkg.Name)
				return nil
			}

			wg, err := New(pkg, opts, res.rep)
			if err != nil {
				res.err = err
				return nil
			}

			if err := wg.Build(); err != nil {
				res.err = err
				return nil
			}

			code := wg.Generate()
			if len(code) == 0 {
				return nil
			}

			outDir := filepath.Dir(pkg.GoFiles[0])
			if rel, err := filepath.Rel(wd, outDir); err == nil {
				outDir = rel
			}
			res.out = filepath.Join(outDir, opts.OutFile)
			res.code = code
			return nil
		})
	}
	_ = g.Wait()

	rep := diag.NewReporter(fset)
	outs := make(map[string][]byte)
	var errs error
	for _, res := range results {
		if res.rep != nil {
			for _, d := range res.rep.Diagnostics() {
				rep.Report(d)
			}
		}
		if res.err != nil {
			errs = errors.Join(errs, res.err)
			continue
		}
		if res.out != "" {
			outs[res.out] = res.code
		}
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't
		// need to attach another error message.
		return nil, rep, reorderErrors(errs)
	}

	return outs, rep, nil
}

// Dirs returns the directories of the packages matching patterns, sorted.
// The dev command watches them for changes.
func Dirs(ctx context.Context, wd string, env []string, patterns []string, opts Options) ([]string, error) {
	pkgs, _, err := load(ctx, wd, env, opts.Tags, opts.Tests, patterns)
	if err != nil {
		return nil, err
	}

	// With test variants enabled, multiple packages share a directory.
	dirs := lo.Uniq(lo.FilterMap(pkgs, func(pkg *packages.Package, _ int) (string, bool) {
		if len(pkg.GoFiles) == 0 {
			return "", false
		}
		return filepath.Dir(pkg.GoFiles[0]), true
	}))
	sort.Strings(dirs)
	return dirs, nil
}

// load loads packages in syntax mode. Nothing downstream needs type
// information.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, *token.FileSet, error) {
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Fset:    fset,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Pos == "" {
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			path, rowcol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, path); relErr == nil {
				err.Pos = rel + ":" + rowcol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, nil, errs
	}

	return pkgs, fset, nil
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	// Flatten nested errors
	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			// errors.Join collapses errors with a single error having
			// Unwrap() []error method. The underlying errors could be
			// retrieved using the Unwrap() method.
			list = append(list, u.Unwrap()...)

			// The underlying errors are appended to the list. So the
			// original error can be removed.
			list[i] = nil
			continue
		}
	}
	list = slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})

	// Sort errors by message
	sort.Slice(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
