// Command chk runs every test case registered in the binary and prints one
// [CHK] line per test.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/chk/internal/cli"

	// Registers the bundled test cases.
	_ "github.com/roach88/chk/internal/checks"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
