package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chk/internal/harness"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered tests without running them",
		Long: `Print the suite:name of every registered test, in run order.

Respects --filter.

Examples:
  chk list
  chk list --filter "math:*"
  chk list --format json`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTests(cmd, rootOpts)
		},
	}
}

func listTests(cmd *cobra.Command, opts *RootOptions) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	selected, err := harness.New(opts.registry, nil, harness.WithFilter(opts.Filter)).Selected()
	if errors.Is(err, harness.ErrBadFilter) {
		if out.JSON() {
			_ = out.Error(ErrCodeBadFilter, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(selected))
	for _, d := range selected {
		ids = append(ids, d.ID())
	}

	if out.JSON() {
		return out.Encode(CLIResponse{Status: "ok", Data: ids})
	}
	for _, id := range ids {
		fmt.Fprintln(out.Writer, id)
	}
	return nil
}
