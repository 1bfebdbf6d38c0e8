// Package testutil provides shared test utilities for pidigits.
//
// # Fixtures
//
// The fixtures.go file provides reference data:
//
//   - PiDigits - the first 100 decimal digits of pi, leading 3 included
//   - ReferenceDigits(n) - the first n reference digits as uint8 values
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t, configYAML) - creates a temp directory with a .pidigits/config.yaml
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//
// # Assertions
//
// The assertions.go file provides custom test assertions:
//
//   - AssertDigitsMatchPi(t, digits) - compares a digit slice against PiDigits
//   - AssertPrintedPi(t, output, fractional) - checks "3.1415..." driver output
//   - AssertDigit(t, d) - checks a value is a decimal digit
//
// # Timeouts
//
// The timeout.go file bounds long digit runs by the test deadline:
//
//   - ContextWithTestDeadline(t, fallback) - context ending before the test deadline
package testutil
