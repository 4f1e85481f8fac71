package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sublee/withgen"
	"github.com/sublee/withgen/internal/config"
	"github.com/sublee/withgen/internal/diag"
	"github.com/sublee/withgen/internal/expand"
	withgeninternal "github.com/sublee/withgen/internal/withgen"
)

// Version is overridden by the release process with -ldflags.
var Version = "dev"

var (
	strategyFlag string
	outputFlag   string
	formatFlag   string
	colorFlag    string
	tagsFlag     string
	testsFlag    bool
	verboseFlag  bool
	dryRunFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "withgen [patterns]",
	Short: `Generate "copy with changes" helpers for annotated structs`,
	Long: `Withgen generates "copy with changes" helpers for struct types
annotated with the ` + withgen.Directive + ` directive.

The fields strategy generates one With<Field> method per stored field.
The builder strategy generates a single Copy method taking a build
callback, together with a <Type>Builder type holding the revisable
fields. Patterns follow the Go package pattern syntax; without a
pattern, the package in the current directory is processed.

An optional .withgen.toml in the working directory provides defaults
for the strategy, output, color, and format flags.`,
	Example: `  withgen ./...
  withgen -s builder ./internal/model
  withgen dev ./...`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          generate,
}

func init() {
	withgen.Version = Version
	rootCmd.Version = Version

	rootCmd.PersistentFlags().StringVarP(&strategyFlag, "strategy", "s", "fields", "generation strategy (fields|builder)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "withgen_gen.go", "output file name")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "diagnostic format (text|json)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize diagnostics (auto|always|never)")
	rootCmd.PersistentFlags().StringVarP(&tagsFlag, "tags", "b", "", "comma-separated build tags")
	rootCmd.PersistentFlags().BoolVarP(&testsFlag, "tests", "t", false, "include test files")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log processing details")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "print would-be outputs without writing files")

	rootCmd.AddCommand(devCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate runs a single generation pass and writes the outputs.
func generate(cmd *cobra.Command, args []string) error {
	st, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(log.ErrorLevel)
	logger.Debug("resolved settings\n" + spew.Sdump(st))

	outs, rep, err := withgeninternal.Main(cmd.Context(), st.wd, os.Environ(), args, st.options())
	if perr := printDiags(st, rep); perr != nil {
		return perr
	}
	if err != nil {
		return err
	}

	for _, out := range slices.Sorted(maps.Keys(outs)) {
		if dryRunFlag {
			fmt.Println("Would generate:", out)
			if verboseFlag {
				os.Stdout.Write(outs[out])
			}
			continue
		}

		if err := os.WriteFile(out, outs[out], 0o644); err != nil {
			return err
		}
		fmt.Println("Generated:", out)
	}

	if rep.HasErrors() {
		return errors.New("generation failed")
	}
	return nil
}

// settings are the effective options after merging flags with the optional
// .withgen.toml of the working directory.
type settings struct {
	wd       string
	strategy expand.Strategy
	outFile  string
	format   string
	colored  bool
}

func (st settings) options() withgeninternal.Options {
	return withgeninternal.Options{
		Strategy: st.strategy,
		OutFile:  st.outFile,
		Tags:     tagsFlag,
		Tests:    testsFlag,
	}
}

// resolveSettings merges flags over the configuration file. A flag wins when
// it was set explicitly or the file leaves the key out.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return settings{}, err
	}

	cfg, _, err := config.Load(wd)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	strategyName := pick(flags.Changed("strategy"), strategyFlag, cfg.Strategy)
	outFile := pick(flags.Changed("output"), outputFlag, cfg.Output)
	format := pick(flags.Changed("format"), formatFlag, cfg.Format)
	colorMode := pick(flags.Changed("color"), colorFlag, cfg.Color)

	strategy, err := expand.ParseStrategy(strategyName)
	if err != nil {
		return settings{}, err
	}

	switch format {
	case "text", "json":
	default:
		return settings{}, fmt.Errorf("unknown format %q; want text or json", format)
	}

	colored := false
	switch colorMode {
	case "auto":
		// fatih/color detects terminals and NO_COLOR on its own.
		colored = !color.NoColor
	case "always":
		colored = true
	case "never":
	default:
		return settings{}, fmt.Errorf("unknown color %q; want auto, always, or never", colorMode)
	}

	return settings{
		wd:       wd,
		strategy: strategy,
		outFile:  outFile,
		format:   format,
		colored:  colored,
	}, nil
}

// pick returns the flag value unless the flag was left at its default and
// the file provides one.
func pick(flagSet bool, flagVal, fileVal string) string {
	if flagSet || fileVal == "" {
		return flagVal
	}
	return fileVal
}

// newLogger returns the CLI logger. The verbose flag lowers the level to
// debug regardless of the requested default.
func newLogger(level log.Level) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "withgen"})
	if verboseFlag {
		level = log.DebugLevel
	}
	logger.SetLevel(level)
	return logger
}

// printDiags renders the diagnostics of a run. Text goes to stderr; json
// goes to stdout for tooling, even when there is nothing to report.
func printDiags(st settings, rep *diag.Reporter) error {
	if rep == nil {
		return nil
	}

	if st.format == "json" {
		data, err := diag.MarshalJSON(rep.Fset(), rep.Diagnostics())
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	p := diag.NewPrinter(rep.Fset(), st.colored)
	p.PrintAll(os.Stderr, rep.Diagnostics())
	if n := rep.Dropped(); n > 0 {
		fmt.Fprintf(os.Stderr, "and %d more diagnostics not shown\n", n)
	}
	return nil
}
