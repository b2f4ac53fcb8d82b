// Package checks holds the test cases compiled into the chk binary.
//
// Each file declares its tests against registry.Default from package-level
// var initializers. A test body is a named function called test<Suite><Name>;
// two bodies with the same function name fail to compile, but registering
// the same suite:name pair twice compiles and panics during package
// initialization. Importing the package, even blank, registers the tests.
package checks
