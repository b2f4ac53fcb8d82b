// Package harness runs the tests held in a registry.Registry and reports
// their outcomes.
//
// # Output
//
// Each test produces exactly one line on the runner's writer, written as
// soon as the test returns:
//
//	[CHK] math:add...YES
//	[CHK] math:div...NO
//
// The indicator word is chosen by a Polarity. With DefaultPolarity a
// status of zero prints YES. Whether a test passed is always decided by
// its status being zero; the polarity only selects the word.
//
// # Guarantees
//
// Tests run sequentially on the calling goroutine, in registry order, each
// exactly once. A failing test never stops the run. A test that panics is
// not recovered: a crash inside a test body is a defect of that test.
//
// # Usage
//
//	runner := harness.New(registry.Default(), os.Stdout,
//		harness.WithFilter("math:*"),
//	)
//	summary, err := runner.Run()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !summary.OK() {
//		os.Exit(1)
//	}
package harness
