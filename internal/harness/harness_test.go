package harness

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/chk/internal/registry"
	"github.com/roach88/chk/internal/testutil"
)

func newRunner(reg *registry.Registry, out io.Writer, opts ...Option) *Runner {
	opts = append([]Option{WithRunIDGenerator(testutil.NewFixedRunIDGenerator("run-1"))}, opts...)
	return New(reg, out, opts...)
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRunEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	summary, err := newRunner(registry.New(), &buf).Run()
	require.NoError(t, err)

	assert.Empty(t, buf.String())
	assert.Equal(t, 0, summary.Total)
	assert.True(t, summary.OK())
	assert.Equal(t, "run-1", summary.RunID)
}

func TestRunInvokesEachTestOnce(t *testing.T) {
	reg := registry.New()
	counters := make([]*testutil.Counter, 5)
	for i := range counters {
		counters[i] = testutil.NewCounter(registry.Pass)
		reg.Register("suite", string(rune('a'+i)), counters[i].Func())
	}

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf).Run()
	require.NoError(t, err)

	assert.Len(t, lines(buf.String()), 5)
	assert.Equal(t, 5, summary.Total)
	for i, c := range counters {
		assert.Equal(t, 1, c.Calls(), "test %d", i)
	}
}

func TestRunFollowsRegistryOrder(t *testing.T) {
	var rec testutil.Recorder
	reg := registry.New()
	reg.Register("z", "last", rec.Func("z:last", registry.Pass))
	reg.Register("a", "first", rec.Func("a:first", registry.Fail))
	reg.Register("m", "mid", rec.Func("m:mid", registry.Pass))

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf).Run()
	require.NoError(t, err)

	assert.Equal(t, []string{"z:last", "a:first", "m:mid"}, rec.IDs())
	assert.Equal(t, []string{
		"[CHK] z:last...YES",
		"[CHK] a:first...NO",
		"[CHK] m:mid...YES",
	}, lines(buf.String()))

	require.Len(t, summary.Outcomes, 3)
	assert.Equal(t, "a:first", summary.Outcomes[1].ID())
}

func TestRunExpectOutcomes(t *testing.T) {
	tests := []struct {
		name string
		fn   registry.Func
		want string
		pass bool
	}{
		{"true expression", func() registry.Status { return registry.Expect(2+2 == 4) }, "YES", true},
		{"false expression", func() registry.Status { return registry.Expect(2+2 == 5) }, "NO", false},
		{"direct non-zero", func() registry.Status { return 7 }, "NO", false},
		{"negative", func() registry.Status { return -1 }, "NO", false},
		{"direct zero", func() registry.Status { return 0 }, "YES", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			reg.Register("case", "body", tt.fn)

			var buf bytes.Buffer
			summary, err := newRunner(reg, &buf).Run()
			require.NoError(t, err)

			assert.Equal(t, "[CHK] case:body..."+tt.want+"\n", buf.String())
			require.Len(t, summary.Outcomes, 1)
			assert.Equal(t, tt.pass, summary.Outcomes[0].Pass)
			assert.Equal(t, tt.pass, summary.OK())
		})
	}
}

func TestRunFailureDoesNotAffectSibling(t *testing.T) {
	b := testutil.NewCounter(registry.Pass)
	c := testutil.NewCounter(registry.Fail)
	reg := registry.New()
	reg.Register("A", "b", b.Func())
	reg.Register("A", "c", c.Func())

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf).Run()
	require.NoError(t, err)

	assert.Equal(t, 1, b.Calls())
	assert.Equal(t, 1, c.Calls())
	assert.Equal(t, "[CHK] A:b...YES\n[CHK] A:c...NO\n", buf.String())
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.OK())
}

func TestRunFailureDoesNotStopRun(t *testing.T) {
	reg := testutil.NewRegistry(
		testutil.Case{Suite: "s", Name: "one", Status: registry.Fail},
		testutil.Case{Suite: "s", Name: "two", Status: registry.Fail},
		testutil.Case{Suite: "s", Name: "three", Status: registry.Pass},
	)

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf).Run()
	require.NoError(t, err)

	assert.Len(t, lines(buf.String()), 3)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 1, summary.Passed)
}

func TestRunMathAdd(t *testing.T) {
	reg := registry.New()
	reg.Register("math", "add", func() registry.Status {
		return registry.Expect(2+2 == 4)
	})

	t.Run("default polarity", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := newRunner(reg, &buf).Run()
		require.NoError(t, err)
		assert.Equal(t, "[CHK] math:add...YES\n", buf.String())
	})

	t.Run("inverted polarity", func(t *testing.T) {
		var buf bytes.Buffer
		summary, err := newRunner(reg, &buf, WithPolarity(PolarityZeroIsNo)).Run()
		require.NoError(t, err)
		assert.Equal(t, "[CHK] math:add...NO\n", buf.String())
		// Pass/fail is independent of the printed word.
		assert.True(t, summary.OK())
	})
}

func TestRunFilter(t *testing.T) {
	b := testutil.NewCounter(registry.Pass)
	c := testutil.NewCounter(registry.Pass)
	reg := registry.New()
	reg.Register("math", "add", b.Func())
	reg.Register("net", "dial", c.Func())

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf, WithFilter("math:*")).Run()
	require.NoError(t, err)

	assert.Equal(t, "[CHK] math:add...YES\n", buf.String())
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, b.Calls())
	assert.Equal(t, 0, c.Calls())
}

func TestRunBadFilter(t *testing.T) {
	c := testutil.NewCounter(registry.Pass)
	reg := registry.New()
	reg.Register("math", "add", c.Func())

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf, WithFilter("math:[")).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFilter))
	assert.Nil(t, summary)
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, c.Calls())
}

func TestRunQuiet(t *testing.T) {
	reg := testutil.NewRegistry(testutil.Case{Suite: "s", Name: "t", Status: registry.Fail})

	var buf bytes.Buffer
	summary, err := newRunner(reg, &buf, WithQuiet(true)).Run()
	require.NoError(t, err)

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, summary.Failed)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunWriteError(t *testing.T) {
	reg := testutil.NewRegistry(
		testutil.Case{Suite: "s", Name: "one", Status: registry.Pass},
		testutil.Case{Suite: "s", Name: "two", Status: registry.Pass},
	)

	summary, err := newRunner(reg, failingWriter{}).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s:one")
	assert.Contains(t, err.Error(), "disk full")
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Total)
}

func TestRunLogsDebug(t *testing.T) {
	reg := testutil.NewRegistry(testutil.Case{Suite: "s", Name: "t", Status: registry.Pass})

	var logBuf, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := newRunner(reg, &out, WithLogger(logger)).Run()
	require.NoError(t, err)

	assert.Contains(t, logBuf.String(), "run starting")
	assert.Contains(t, logBuf.String(), "id=s:t")
	assert.Contains(t, logBuf.String(), "run complete")
	assert.NotContains(t, out.String(), "run starting")
}

func TestRunDefaultRunID(t *testing.T) {
	summary, err := New(registry.New(), io.Discard).Run()
	require.NoError(t, err)
	assert.Len(t, summary.RunID, 36)
}

func TestSelected(t *testing.T) {
	reg := testutil.NewRegistry(
		testutil.Case{Suite: "math", Name: "add"},
		testutil.Case{Suite: "math", Name: "sub"},
		testutil.Case{Suite: "net", Name: "dial"},
	)

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"math:add", "math:sub", "net:dial"}},
		{"math:*", []string{"math:add", "math:sub"}},
		{"*:dial", []string{"net:dial"}},
		{"math:add", []string{"math:add"}},
		{"none:*", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			selected, err := New(reg, io.Discard, WithFilter(tt.filter)).Selected()
			require.NoError(t, err)

			ids := make([]string, 0, len(selected))
			for _, d := range selected {
				ids = append(ids, d.ID())
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRunWithGolden(t *testing.T) {
	reg := testutil.NewRegistry(
		testutil.Case{Suite: "math", Name: "add", Status: registry.Pass},
		testutil.Case{Suite: "math", Name: "div", Status: registry.Fail},
		testutil.Case{Suite: "A", Name: "b", Status: registry.Pass},
		testutil.Case{Suite: "A", Name: "c", Status: 42},
	)

	summary := RunWithGolden(t, "mixed_results", reg)
	assert.Equal(t, "golden", summary.RunID)
	assert.Equal(t, 2, summary.Failed)

	RunWithGolden(t, "mixed_results_inverted", reg, WithPolarity(PolarityZeroIsNo))
}
