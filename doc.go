/*
Package whitespace implements an interpreter for the Whitespace programming
language.

Whitespace programs are made of three characters: space, tab, and line feed.
Every other character is a comment. The interpreter is a stack machine with
an operand stack of arbitrary-precision integers, a heap addressed by
integers, a call stack, and character and number I/O.

To run a program, pass its source to Run along with the input and output
streams to use:

	out, err := whitespace.Run(src, os.Stdin, os.Stdout)

Run returns everything the program printed, and it also writes each piece of
output to the output stream as soon as it is produced. Either stream may be
nil. For more control, e.g. over the character encoding or to trace
execution, create a VM with NewVM and a Config.

Failures are reported as *Error values. Each has a Kind, which can be tested
with errors.Is:

	if errors.Is(err, whitespace.StackUnderflow) {
		// ...
	}

Malformed instructions, duplicate labels, and jumps to labels which are never
declared are all detected before the program begins to execute.

Notation

In documentation and tests it is convenient to write S for space, T for tab,
and L for line feed. FromNotation converts such text into source, and
Notation converts tokens back.

Instructions

The first one or two tokens of each instruction select its group, called an
IMP: S for stack manipulation, T S for arithmetic, T T for heap access, T L
for I/O, and L for flow control. Some instructions take an operand.

Numbers are a sign (S for positive, T for negative), then zero or more bits
(S for 0, T for 1) most significant first, then L. Labels are any sequence of
S and T, ending with L.

	S S n      push n
	S T S n    copy the nth value from the top (0 is the top) onto the stack
	S T L n    discard n values below the top; if n is negative or at least
	           the number of values below the top, discard all of them
	S L S      duplicate the top value
	S L T      swap the top two values
	S L L      discard the top value

	T S S S    add
	T S S T    subtract
	T S S L    multiply
	T S T S    divide, rounding toward negative infinity
	T S T T    modulo; the result has the sign of the divisor

	T T S      store: pop a value, then an address
	T T T      retrieve: pop an address and push the value stored there

	T L S S    print the top value as a character
	T L S T    print the top value as a decimal number
	T L T S    read a character and store it at the address on top
	T L T T    read a number and store it at the address on top

	L S S l    declare label l
	L S T l    call the subroutine at l
	L S L l    jump to l
	L T S l    pop a value and jump to l if it is zero
	L T L l    pop a value and jump to l if it is negative
	L T T      return from a subroutine
	L L L      end the program

For the arithmetic instructions, the top value is the right operand. Reading
a heap address which was never written is an error.

Numbers read from input occupy one line. A 0b prefix means binary, 0x means
hexadecimal, and a leading 0 followed by more digits means octal; otherwise
the number is decimal.

A program must end by executing L L L. Running off the end of the program is
an error, even if the program printed everything it meant to.
*/
package whitespace
