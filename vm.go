package whitespace

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Config holds the external endpoints and options of a VM.
type Config struct {
	// Input is the source for the read instructions. If it is nil, any read
	// fails with an IOFault.
	Input io.Reader
	// Output, if not nil, receives each unit of output as it is produced, in
	// addition to the output accumulated for the return value of Run.
	Output io.Writer
	// Encoding names the character encoding of Input and Output. See
	// LookupEncoding for the accepted names.
	Encoding string
	// Trace, if not nil, receives a line describing each instruction before
	// it executes.
	Trace io.Writer
}

// Stats describes the most recent execution of a VM.
type Stats struct {
	// Steps is the number of instructions executed.
	Steps int
	// Coverage is the number of distinct instructions executed.
	Coverage int
	// MaxStack is the greatest depth the operand stack reached.
	MaxStack int
	// MaxCallDepth is the greatest number of simultaneously pending calls.
	MaxCallDepth int
	// HeapCells is the number of distinct heap addresses written.
	HeapCells int
}

// VM is a validated whitespace program ready to run.
type VM struct {
	// Stats holds statistics about the most recent call to Run.
	Stats Stats

	tokens []Token
	labels Labels
	cfg    Config
	enc    encoding.Encoding
	in     *bufio.Reader
}

// NewVM normalizes and validates src. No part of the program executes until
// Run is called.
func NewVM(src string, cfg Config) (*VM, error) {
	if src == "" {
		return nil, newError(Usage, -1, "no source")
	}
	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	tokens := Normalize(src)
	labels, err := Scan(tokens)
	if err != nil {
		return nil, err
	}
	vm := VM{
		tokens: tokens,
		labels: labels,
		cfg:    cfg,
		enc:    enc,
	}
	if cfg.Input != nil {
		r := cfg.Input
		// UTF-8 input is read as is so that invalid bytes can be reported
		// instead of replaced.
		if enc != unicode.UTF8 {
			r = transform.NewReader(r, enc.NewDecoder())
		}
		vm.in = bufio.NewReader(r)
	}
	return &vm, nil
}

// Run executes the program from its first instruction on a fresh stack, heap,
// and call stack, and returns the output it produced. The program must stop
// by executing the end instruction; any other outcome is an *Error. On
// failure, the returned string holds the output produced before the fault.
//
// Input is shared across calls to Run, so a second run continues reading
// where the first stopped.
func (vm *VM) Run() (string, error) {
	m := newMachine(vm)
	err := m.run()
	vm.Stats = m.stats()
	return m.out.String(), err
}

// Run validates and executes a whitespace program. input and output may be
// nil.
func Run(src string, input io.Reader, output io.Writer) (string, error) {
	vm, err := NewVM(src, Config{Input: input, Output: output})
	if err != nil {
		return "", err
	}
	return vm.Run()
}
