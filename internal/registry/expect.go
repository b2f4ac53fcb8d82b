package registry

// Status is the value a test returns. Zero means the test passed; any other
// value means it failed.
type Status int

const (
	// Pass is the success status.
	Pass Status = 0

	// Fail is the failure status produced by Expect.
	Fail Status = 1
)

// OK reports whether s denotes success.
func (s Status) OK() bool {
	return s == Pass
}

// Expect converts a test condition into a Status. Use it as the return
// value of a test body:
//
//	return registry.Expect(got == want)
//
// Anything the test acquired must be released before this point.
func Expect(cond bool) Status {
	if cond {
		return Pass
	}
	return Fail
}
