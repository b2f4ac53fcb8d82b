package testutil

import (
	"sync"

	"github.com/roach88/chk/internal/registry"
)

// Counter wraps a status into a registry.Func and counts its invocations.
//
// Used to verify that a runner invokes each test exactly once. The mutex
// lets a test read Calls while another goroutine drives the runner.
type Counter struct {
	mu     sync.Mutex
	status registry.Status
	calls  int
}

// NewCounter creates a counter whose Func returns status.
func NewCounter(status registry.Status) *Counter {
	return &Counter{status: status}
}

// Func returns the counting test function.
func (c *Counter) Func() registry.Func {
	return func() registry.Status {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.calls++
		return c.status
	}
}

// Calls returns how many times Func has been invoked.
func (c *Counter) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Recorder records the order in which tests are invoked.
type Recorder struct {
	mu  sync.Mutex
	ids []string
}

// Func returns a test function that records id and returns status.
func (r *Recorder) Func(id string, status registry.Status) registry.Func {
	return func() registry.Status {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.ids = append(r.ids, id)
		return status
	}
}

// IDs returns the recorded invocation order.
func (r *Recorder) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
