package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/roach88/chk/internal/registry"
)

// ErrBadFilter is returned when the filter is not a valid glob pattern.
var ErrBadFilter = errors.New("harness: invalid filter pattern")

// Runner executes the tests of a registry.
type Runner struct {
	registry *registry.Registry
	out      io.Writer
	polarity Polarity
	filter   string
	quiet    bool
	logger   *slog.Logger
	runIDs   RunIDGenerator
}

// Option configures a Runner.
type Option func(*Runner)

// WithPolarity sets the indicator polarity.
func WithPolarity(p Polarity) Option {
	return func(r *Runner) { r.polarity = p }
}

// WithFilter restricts the run to tests whose "suite:name" matches the
// glob pattern (path.Match syntax). An empty pattern selects every test.
func WithFilter(pattern string) Option {
	return func(r *Runner) { r.filter = pattern }
}

// WithQuiet suppresses the per-test lines. Outcomes are still recorded in
// the Summary.
func WithQuiet(quiet bool) Option {
	return func(r *Runner) { r.quiet = quiet }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithRunIDGenerator replaces the UUIDv7 run ID generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(r *Runner) { r.runIDs = g }
}

// New creates a runner over reg that writes result lines to out.
func New(reg *registry.Registry, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		out:      out,
		polarity: DefaultPolarity,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDs:   UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Selected returns the descriptors the runner would invoke, in order.
func (r *Runner) Selected() ([]*registry.Descriptor, error) {
	if _, err := path.Match(r.filter, ""); err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadFilter, r.filter, err)
	}

	all := r.registry.All()
	if r.filter == "" {
		return all, nil
	}

	selected := make([]*registry.Descriptor, 0, len(all))
	for _, d := range all {
		// Pattern already validated; Match cannot fail here.
		if ok, _ := path.Match(r.filter, d.ID()); ok {
			selected = append(selected, d)
		}
	}
	return selected, nil
}

// Run invokes every selected test once, in order, writing one line per test
// as it completes. Test failures are reported in the Summary; an error is
// returned only for an invalid filter or a failed write.
func (r *Runner) Run() (*Summary, error) {
	tests, err := r.Selected()
	if err != nil {
		return nil, err
	}

	summary := NewSummary(r.runIDs.Generate())
	r.logger.Debug("run starting",
		"run_id", summary.RunID,
		"tests", len(tests),
		"polarity", r.polarity.String(),
	)

	for _, d := range tests {
		status := d.Run()
		outcome := Outcome{
			Suite:  d.Suite,
			Name:   d.Name,
			Status: status,
			Pass:   status.OK(),
		}
		summary.Add(outcome)

		r.logger.Debug("test finished",
			"id", d.ID(),
			"status", int(status),
			"pass", outcome.Pass,
		)

		if r.quiet {
			continue
		}
		if _, err := io.WriteString(r.out, FormatLine(d.Suite, d.Name, r.polarity.Indicator(status))); err != nil {
			return summary, fmt.Errorf("failed to write result for %s: %w", d.ID(), err)
		}
	}

	r.logger.Debug("run complete",
		"run_id", summary.RunID,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"total", summary.Total,
	)
	return summary, nil
}

// FormatLine renders one result line, including the trailing newline.
func FormatLine(suite, name, indicator string) string {
	return fmt.Sprintf("[CHK] %s...%s\n", registry.JoinID(suite, name), indicator)
}
