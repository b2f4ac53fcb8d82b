package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/roach88/chk/internal/registry"
	"github.com/roach88/chk/internal/testutil"
)

// newTestCommand builds a root command over reg with a fixed run ID and
// captured output.
func newTestCommand(t *testing.T, reg *registry.Registry, args ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd := newRootCommand(reg, &RootOptions{RunIDs: testutil.NewFixedRunIDGenerator("run-1")})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	return cmd, out, errOut
}

func mixedRegistry() *registry.Registry {
	return testutil.NewRegistry(
		testutil.Case{Suite: "math", Name: "add", Status: registry.Pass},
		testutil.Case{Suite: "math", Name: "div", Status: registry.Fail},
	)
}
