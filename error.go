package whitespace

import (
	"errors"
	"fmt"
)

// Kind classifies the reason a program failed.
type Kind int

// Failure kinds.
const (
	// Usage indicates the interpreter was invoked incorrectly, e.g. with no
	// source or an unknown encoding.
	Usage Kind = iota
	// MalformedProgram indicates an invalid instruction sequence or literal
	// encoding, found before execution.
	MalformedProgram
	// DuplicateLabel indicates a label declared more than once.
	DuplicateLabel
	// UndefinedLabel indicates a jump or call to a label never declared.
	UndefinedLabel
	// StackUnderflow indicates an operand stack with too few values.
	StackUnderflow
	// CallStackUnderflow indicates a return with no pending call.
	CallStackUnderflow
	// UndefinedHeapAddress indicates a read of a heap cell never written.
	UndefinedHeapAddress
	// ArithmeticFault indicates division or modulo by zero.
	ArithmeticFault
	// IOFault indicates failure reading input or writing output, including
	// malformed numeric input.
	IOFault
	// UncleanTermination indicates the program ran off the end of its
	// instructions without executing the end instruction.
	UncleanTermination
)

var kindNames = [...]string{
	"usage error",
	"malformed program",
	"duplicate label",
	"undefined label",
	"stack underflow",
	"call stack underflow",
	"undefined heap address",
	"arithmetic fault",
	"i/o fault",
	"unclean termination",
}

// String returns a description of the kind.
func (k Kind) String() string {
	if k < Usage || k > UncleanTermination {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error returns the kind's description. Kinds are errors so that they can be
// used as targets of errors.Is.
func (k Kind) Error() string {
	return k.String()
}

// Error is a fatal failure of a whitespace program.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// IP is the token index at which the failing instruction began, or -1 if
	// the failure is not tied to an instruction.
	IP int
	// Msg describes the failure.
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var s string
	if e.IP >= 0 {
		s = fmt.Sprintf("whitespace: %v at %d: %s", e.Kind, e.IP, e.Msg)
	} else {
		s = fmt.Sprintf("whitespace: %v: %s", e.Kind, e.Msg)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, ip int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, IP: ip, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err if it is or wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
