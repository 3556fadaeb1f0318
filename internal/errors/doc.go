// Package errors provides typed error values for kitlog.
//
// Sentinel errors let callers handle specific conditions with errors.Is()
// rather than string matching.
//
// # Error Categories
//
//   - Assertion errors: a checked condition did not hold (ErrAssertionFailed)
//   - Config errors: the config file is missing or malformed (ErrInvalidConfig)
//   - Command errors: bad command-line input (ErrInvalidCondition)
//
// # Fatal Errors
//
// An assertion failure is the only fatal kind. Check returns it as an
// *AssertionError so the top-level caller decides whether to terminate:
//
//	if err := assert.Check(len(hosts) > 0, "no hosts to deploy to"); err != nil {
//	    return err
//	}
//
// and main hands whatever bubbles up to assert.Fatal, which exits with the
// assertion exit code when IsFatal(err) holds.
package errors
