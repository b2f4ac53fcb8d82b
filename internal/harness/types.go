package harness

import "github.com/roach88/chk/internal/registry"

// Outcome is the result of invoking one test.
type Outcome struct {
	Suite  string          `json:"suite"`
	Name   string          `json:"name"`
	Status registry.Status `json:"status"`
	Pass   bool            `json:"pass"`
}

// ID returns "suite:name".
func (o Outcome) ID() string {
	return registry.JoinID(o.Suite, o.Name)
}

// Summary is the outcome of a whole run.
type Summary struct {
	// RunID identifies this run (a UUIDv7 unless a generator was supplied).
	RunID string `json:"run_id"`

	// Outcomes holds one entry per invoked test, in invocation order.
	Outcomes []Outcome `json:"outcomes"`

	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// NewSummary creates an empty summary for the given run.
func NewSummary(runID string) *Summary {
	return &Summary{
		RunID:    runID,
		Outcomes: []Outcome{},
	}
}

// Add records an outcome and updates the counters.
func (s *Summary) Add(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	s.Total++
	if o.Pass {
		s.Passed++
	} else {
		s.Failed++
	}
}

// OK reports whether no recorded test failed. An empty run is OK.
func (s *Summary) OK() bool {
	return s.Failed == 0
}
