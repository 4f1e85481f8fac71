package main

import (
	"context"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/sublee/withgen/internal/watch"
	withgeninternal "github.com/sublee/withgen/internal/withgen"
)

var devCmd = &cobra.Command{
	Use:   "dev [patterns]",
	Short: "Regenerate continuously as sources change",
	Long: `Dev watches the directories of the matched packages and regenerates
each package shortly after its sources change. Edits to generated files
are ignored. Stop with Ctrl+C.`,
	Args: cobra.ArbitraryArgs,
	RunE: runDev,
}

func runDev(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(log.InfoLevel)
	logger.Debug("resolved settings\n" + spew.Sdump(st))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// A full pass up front, so the watcher starts from generated state.
	regenerate(ctx, st, logger, args)

	dirs, err := withgeninternal.Dirs(ctx, st.wd, os.Environ(), args, st.options())
	if err != nil {
		return err
	}

	w, err := watch.New(dirs, st.outFile, 0, logger, func(ctx context.Context, dir string) {
		regenerate(ctx, st, logger, []string{dir})
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

// regenerate runs one generation pass and writes the outputs. Failures are
// logged rather than returned; the watch loop outlives them.
func regenerate(ctx context.Context, st settings, logger *log.Logger, patterns []string) {
	outs, rep, err := withgeninternal.Main(ctx, st.wd, os.Environ(), patterns, st.options())
	if perr := printDiags(st, rep); perr != nil {
		logger.Error("failed to print diagnostics", "err", perr)
	}
	if err != nil {
		logger.Error("generation failed", "err", err)
		return
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			logger.Error("failed to write", "file", out, "err", err)
			continue
		}
		logger.Info("generated", "file", out)
	}
}
