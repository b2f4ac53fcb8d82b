package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/chk/internal/registry"
)

// RunWithGolden runs reg and compares the printed lines against the golden
// file testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
//
// The run ID generator defaults to a fixed value so repeated runs are
// identical. Returns the summary for further assertions.
func RunWithGolden(t *testing.T, name string, reg *registry.Registry, opts ...Option) *Summary {
	t.Helper()

	var buf bytes.Buffer
	opts = append([]Option{WithRunIDGenerator(fixedRunID("golden"))}, opts...)
	summary, err := New(reg, &buf, opts...).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	AssertGolden(t, name, buf.Bytes())
	return summary
}

// AssertGolden compares output against testdata/golden/{name}.golden.
func AssertGolden(t *testing.T, name string, output []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, output)
}

type fixedRunID string

func (f fixedRunID) Generate() string { return string(f) }
