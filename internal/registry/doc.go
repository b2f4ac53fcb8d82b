// Package registry holds the process-wide collection of declared test cases.
//
// Test cases declare themselves from package-level variable initializers,
// so they are registered during package initialization, before main runs,
// without anyone maintaining a central list:
//
//	var _ = registry.Test("math", "add", func() registry.Status {
//		return registry.Expect(2+2 == 4)
//	})
//
// A test returns a Status: zero is success, anything else is failure.
// Expect is the only assertion primitive; it converts a boolean into a
// Status and is meant to be returned directly.
//
// # Ordering
//
// Descriptors are kept in registration order, which is Go's package
// initialization order: imported packages first, then files of a package in
// the order the compiler sees them, then declarations within a file. The
// order is stable within a package and unspecified across packages.
//
// # Duplicates
//
// Registering the same suite:name pair twice panics with a
// *RegistrationError during initialization, so a binary with a duplicate
// never reaches main. The compiler only catches two test bodies declared
// with the same function name, which is unrelated to the pair.
package registry
