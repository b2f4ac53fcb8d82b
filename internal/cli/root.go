package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chk/internal/config"
	"github.com/roach88/chk/internal/harness"
	"github.com/roach88/chk/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Config   string // optional YAML config file
	Filter   string // glob over suite:name
	Polarity string // "zero-is-yes" | "zero-is-no"
	ExitZero bool   // always exit 0, even when tests fail

	// RunIDs overrides the run ID generator (for testing).
	RunIDs harness.RunIDGenerator

	polarity harness.Polarity
	registry *registry.Registry
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the chk root command over the default registry.
// Running it without arguments executes every registered test.
func NewRootCommand() *cobra.Command {
	return newRootCommand(registry.Default(), &RootOptions{})
}

func newRootCommand(reg *registry.Registry, opts *RootOptions) *cobra.Command {
	opts.registry = reg

	cmd := &cobra.Command{
		Use:   "chk",
		Short: "Run the registered unit tests",
		Long: `Run every test case registered in this binary and print one line per test:

  [CHK] <suite>:<name>...<YES|NO>

Exit codes:
  0 - All tests passed (or --exit-zero)
  1 - One or more tests failed
  2 - Command error (bad flag, config or filter)

Examples:
  chk
  chk --filter "math:*"
  chk --format json
  chk --config chk.yaml`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveOptions(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(cmd, opts)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Filter, "filter", "", "only tests whose suite:name matches this glob")
	cmd.PersistentFlags().StringVar(&opts.Polarity, "polarity", "zero-is-yes", "indicator polarity (zero-is-yes|zero-is-no)")
	cmd.Flags().BoolVar(&opts.ExitZero, "exit-zero", false, "exit 0 even when tests fail")

	// Parse failures are command errors, not test failures. Subcommands
	// inherit this func.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	})

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// noArgs is cobra.NoArgs reporting ExitCommandError.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	}
	return nil
}

// resolveOptions applies the config file under explicitly set flags and
// validates the result.
func resolveOptions(cmd *cobra.Command, opts *RootOptions) error {
	if opts.Config != "" {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
		applyConfig(cmd, opts, cfg)
	}

	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	p, err := harness.ParsePolarity(opts.Polarity)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flag", err)
	}
	opts.polarity = p
	return nil
}

// applyConfig copies config values into opts for every flag the user did
// not set on the command line.
func applyConfig(cmd *cobra.Command, opts *RootOptions, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		opts.Verbose = cfg.Verbose
	}
	if !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if !flags.Changed("filter") {
		opts.Filter = cfg.Filter
	}
	if !flags.Changed("polarity") {
		opts.Polarity = cfg.Polarity
	}
	if flags.Lookup("exit-zero") != nil && !flags.Changed("exit-zero") {
		opts.ExitZero = cfg.ExitZero
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
