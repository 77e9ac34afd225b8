/*
Package invariants switches expensive consistency checks on and off.

Build with tag "invariants" (or with the race detector) to have sets verify
their complete structure after every mutation and to check that compared
iterators belong to the same set.
*/
package invariants

import "github.com/cockroachdb/errors"

// Check calls fn if invariant checks are enabled and panics with an
// assertion failure wrapping the error fn returns, if any.
func Check(fn func() error) {
	if !Enabled {
		return
	}
	if err := fn(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "invariant violated"))
	}
}
