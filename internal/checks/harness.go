package checks

import (
	"bytes"

	"github.com/roach88/chk/internal/harness"
	"github.com/roach88/chk/internal/registry"
)

var (
	_ = registry.Test("harness", "line", testHarnessLine)
	_ = registry.Test("harness", "polarity", testHarnessPolarity)
	_ = registry.Test("harness", "continue", testHarnessContinue)
	_ = registry.Test("harness", "filter", testHarnessFilter)
)

func testHarnessLine() registry.Status {
	return registry.Expect(harness.FormatLine("math", "add", harness.IndicatorYes) == "[CHK] math:add...YES\n")
}

func testHarnessPolarity() registry.Status {
	yes, no := harness.PolarityZeroIsYes, harness.PolarityZeroIsNo
	return registry.Expect(yes.Indicator(registry.Pass) == harness.IndicatorYes &&
		yes.Indicator(3) == harness.IndicatorNo &&
		no.Indicator(registry.Pass) == harness.IndicatorNo &&
		no.Indicator(3) == harness.IndicatorYes)
}

// testHarnessContinue runs a nested registry whose first test fails and
// checks the second still runs and reports.
func testHarnessContinue() registry.Status {
	calls := 0
	r := registry.New()
	r.Register("A", "b", func() registry.Status {
		calls++
		return registry.Fail
	})
	r.Register("A", "c", func() registry.Status {
		calls++
		return registry.Pass
	})

	var buf bytes.Buffer
	summary, err := harness.New(r, &buf).Run()
	if err != nil {
		return registry.Fail
	}
	return registry.Expect(calls == 2 &&
		summary.Failed == 1 &&
		summary.Passed == 1 &&
		buf.String() == "[CHK] A:b...NO\n[CHK] A:c...YES\n")
}

func testHarnessFilter() registry.Status {
	r := registry.New()
	r.Register("math", "add", noop)
	r.Register("net", "dial", noop)

	selected, err := harness.New(r, nil, harness.WithFilter("net:*")).Selected()
	if err != nil {
		return registry.Fail
	}
	return registry.Expect(len(selected) == 1 && selected[0].ID() == "net:dial")
}
