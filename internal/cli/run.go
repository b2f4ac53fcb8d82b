package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/chk/internal/harness"
)

// runTests executes the registry and maps the outcome to an exit code.
func runTests(cmd *cobra.Command, opts *RootOptions) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	runner := harness.New(opts.registry, cmd.OutOrStdout(),
		append(runnerOptions(opts), harness.WithLogger(logger))...)

	summary, err := runner.Run()
	if errors.Is(err, harness.ErrBadFilter) {
		if out.JSON() {
			_ = out.Error(ErrCodeBadFilter, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "invalid filter", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write results", err)
	}

	logger.Info("summary",
		"passed", summary.Passed,
		"failed", summary.Failed,
		"total", summary.Total,
	)

	if out.JSON() {
		if err := out.Encode(summaryResponse(summary)); err != nil {
			return WrapExitError(ExitCommandError, "failed to write results", err)
		}
	}

	if summary.OK() {
		return nil
	}
	if opts.ExitZero {
		logger.Warn("tests failed; exiting 0 because of --exit-zero", "failed", summary.Failed)
		return nil
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d test(s) failed", summary.Failed))
}

func runnerOptions(opts *RootOptions) []harness.Option {
	ropts := []harness.Option{
		harness.WithPolarity(opts.polarity),
		harness.WithFilter(opts.Filter),
		harness.WithQuiet(opts.Format == "json"),
	}
	if opts.RunIDs != nil {
		ropts = append(ropts, harness.WithRunIDGenerator(opts.RunIDs))
	}
	return ropts
}

func summaryResponse(summary *harness.Summary) CLIResponse {
	resp := CLIResponse{
		Status:  "ok",
		Data:    summary,
		TraceID: summary.RunID,
	}
	if !summary.OK() {
		resp.Status = "error"
		resp.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: fmt.Sprintf("%d test(s) failed", summary.Failed),
		}
	}
	return resp
}
