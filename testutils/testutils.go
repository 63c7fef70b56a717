// Package testutils provides utilities for testing whitespace programs.
package testutils

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/whitespace"
)

// A SourceTestCase is a test case containing a whitespace program and a
// predicate to check the result.
type SourceTestCase struct {
	// Source is the program in S/T/L notation.
	Source string
	// Input is the text available to the program's read instructions.
	Input string
	// Pass is a predicate taking the output and error of running Source. If
	// Pass returns false, then the test fails.
	Pass func(output string, err error) bool
}

// Run executes the test case's program. The program's output is also written
// to a sink, and Run reports an error through t if the sink and the returned
// output differ.
func (c SourceTestCase) Run(t *testing.T) (string, error) {
	t.Helper()
	var sink strings.Builder
	out, err := whitespace.Run(whitespace.FromNotation(c.Source), strings.NewReader(c.Input), &sink)
	if out != sink.String() {
		t.Errorf("%q: returned output %q differs from written output %q", c.Source, out, sink.String())
	}
	return out, err
}

// TestFunc returns a test function for the test case.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		out, err := c.Run(t)
		if !c.Pass(out, err) {
			if err != nil {
				t.Errorf("%s: %q produced wrong result; got %q and error %v", name, c.Source, out, err)
			} else {
				t.Errorf("%s: %q produced wrong result; got %q", name, c.Source, out)
			}
		}
	}
}

// PassOutput returns a Pass function for a SourceTestCase that predicates on
// the program succeeding with exactly the given output.
func PassOutput(want string) func(string, error) bool {
	return func(output string, err error) bool {
		return err == nil && output == want
	}
}

// PassKind returns a Pass function for a SourceTestCase that predicates on
// the program failing with the given kind of error.
func PassKind(want whitespace.Kind) func(string, error) bool {
	return func(output string, err error) bool {
		return errors.Is(err, want)
	}
}

// PassPartial returns a Pass function for a SourceTestCase that predicates on
// the program failing with the given kind after producing the given output.
func PassPartial(want string, kind whitespace.Kind) func(string, error) bool {
	return func(output string, err error) bool {
		return errors.Is(err, kind) && output == want
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff the program failed.
func PassFailure() func(string, error) bool {
	return func(output string, err error) bool {
		return err != nil
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff the program ended cleanly.
func PassSuccess() func(string, error) bool {
	return func(output string, err error) bool {
		return err == nil
	}
}
