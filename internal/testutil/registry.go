package testutil

import (
	"github.com/roach88/chk/internal/registry"
)

// Case is a test declaration for building isolated registries.
type Case struct {
	Suite  string
	Name   string
	Status registry.Status
}

// NewRegistry builds an isolated registry holding one constant-status test
// per case, in the given order. Panics on invalid or duplicate cases.
func NewRegistry(cases ...Case) *registry.Registry {
	r := registry.New()
	for _, c := range cases {
		status := c.Status
		r.Register(c.Suite, c.Name, func() registry.Status { return status })
	}
	return r
}

// FixedRunIDGenerator returns the same run ID every time.
//
// This enables byte-identical JSON output across runs.
// If id is empty, Generate() returns "test-run-default".
type FixedRunIDGenerator struct {
	id string
}

// NewFixedRunIDGenerator creates a fixed run ID generator.
func NewFixedRunIDGenerator(id string) *FixedRunIDGenerator {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunIDGenerator{id: id}
}

// Generate returns the fixed run ID.
func (g *FixedRunIDGenerator) Generate() string {
	return g.id
}
