package whitespace

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/zephyrtronium/contains"
	"golang.org/x/text/encoding"

	"github.com/zephyrtronium/whitespace/internal/arith"
)

// machine is the state of a single execution. Values on the stack and in the
// heap are never modified after they are created, so they may be shared.
type machine struct {
	prog  *Program
	stack []*big.Int
	heap  map[string]*big.Int
	out   strings.Builder

	in    *bufio.Reader
	sink  io.Writer
	enc   *encoding.Encoder
	trace io.Writer

	covered      contains.Set
	steps        int
	coverage     int
	maxStack     int
	maxCallDepth int
}

func newMachine(vm *VM) *machine {
	m := machine{
		prog:    NewProgram(vm.tokens, vm.labels),
		heap:    make(map[string]*big.Int),
		in:      vm.in,
		sink:    vm.cfg.Output,
		trace:   vm.cfg.Trace,
		covered: contains.Set{},
	}
	if m.sink != nil {
		m.enc = vm.enc.NewEncoder()
	}
	return &m
}

func (m *machine) stats() Stats {
	return Stats{
		Steps:        m.steps,
		Coverage:     m.coverage,
		MaxStack:     m.maxStack,
		MaxCallDepth: m.maxCallDepth,
		HeapCells:    len(m.heap),
	}
}

// run executes instructions until the end instruction or a fault.
func (m *machine) run() error {
	for {
		if m.prog.AtEnd() {
			return newError(UncleanTermination, m.prog.IP(), "program ended without end instruction")
		}
		in, err := m.prog.Decode()
		if err != nil {
			return err
		}
		if m.trace != nil {
			fmt.Fprintf(m.trace, "%d\t%v\n", in.IP, in)
		}
		m.steps++
		if m.covered.Add(uintptr(in.IP)) {
			m.coverage++
		}
		done, err := m.exec(in)
		if len(m.stack) > m.maxStack {
			m.maxStack = len(m.stack)
		}
		if d := m.prog.CallDepth(); d > m.maxCallDepth {
			m.maxCallDepth = d
		}
		if done || err != nil {
			return err
		}
	}
}

// exec executes one instruction. It returns true if the program has ended.
func (m *machine) exec(in Instr) (bool, error) {
	switch in.Op {
	case Push:
		m.push(in.Arg)
	case Copy:
		n := len(m.stack) - 1
		if !in.Arg.IsInt64() || in.Arg.Sign() < 0 || in.Arg.Int64() > int64(n) {
			return false, newError(StackUnderflow, in.IP, "copy %v from stack of %d", in.Arg, len(m.stack))
		}
		m.push(m.stack[n-int(in.Arg.Int64())])
	case Slide:
		top, err := m.pop(in)
		if err != nil {
			return false, err
		}
		k := len(m.stack)
		if in.Arg.Sign() >= 0 && in.Arg.IsInt64() && in.Arg.Int64() < int64(k) {
			k = int(in.Arg.Int64())
		}
		m.stack = m.stack[:len(m.stack)-k]
		m.push(top)
	case Dup:
		v, err := m.peek(in)
		if err != nil {
			return false, err
		}
		m.push(v)
	case Swap:
		if len(m.stack) < 2 {
			return false, m.underflow(in)
		}
		n := len(m.stack)
		m.stack[n-1], m.stack[n-2] = m.stack[n-2], m.stack[n-1]
	case Drop:
		if _, err := m.pop(in); err != nil {
			return false, err
		}

	case Add, Sub, Mul, Div, Mod:
		if len(m.stack) < 2 {
			return false, m.underflow(in)
		}
		b, _ := m.pop(in)
		a, _ := m.pop(in)
		r, err := arithmetic(in, a, b)
		if err != nil {
			return false, err
		}
		m.push(r)

	case Store:
		if len(m.stack) < 2 {
			return false, m.underflow(in)
		}
		v, _ := m.pop(in)
		addr, _ := m.pop(in)
		m.heap[addr.String()] = v
	case Retrieve:
		addr, err := m.pop(in)
		if err != nil {
			return false, err
		}
		v, ok := m.heap[addr.String()]
		if !ok {
			return false, newError(UndefinedHeapAddress, in.IP, "read of undefined heap address %v", addr)
		}
		m.push(v)

	case PrintChar:
		v, err := m.pop(in)
		if err != nil {
			return false, err
		}
		if !v.IsInt64() || v.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(v.Int64())) {
			return false, newError(IOFault, in.IP, "invalid character code %v", v)
		}
		return false, m.emit(in, string(rune(v.Int64())))
	case PrintNum:
		v, err := m.pop(in)
		if err != nil {
			return false, err
		}
		return false, m.emit(in, v.String())
	case ReadChar:
		addr, err := m.pop(in)
		if err != nil {
			return false, err
		}
		if m.in == nil {
			return false, newError(IOFault, in.IP, "no input")
		}
		r, size, err := m.in.ReadRune()
		if err != nil {
			return false, &Error{Kind: IOFault, IP: in.IP, Msg: "reading character", Err: err}
		}
		if r == utf8.RuneError && size == 1 {
			return false, newError(IOFault, in.IP, "invalid UTF-8 in input")
		}
		m.heap[addr.String()] = big.NewInt(int64(r))
	case ReadNum:
		addr, err := m.pop(in)
		if err != nil {
			return false, err
		}
		if m.in == nil {
			return false, newError(IOFault, in.IP, "no input")
		}
		v, err := ReadNumber(m.in)
		if err != nil {
			return false, &Error{Kind: IOFault, IP: in.IP, Msg: "reading number", Err: err}
		}
		m.heap[addr.String()] = v

	case Mark:
		// Labels were recorded by Scan.
	case Call:
		return false, m.prog.CallLabel(in.Label)
	case Jump:
		return false, m.prog.JumpLabel(in.Label)
	case JumpZero:
		v, err := m.pop(in)
		if err != nil {
			return false, err
		}
		if v.Sign() == 0 {
			return false, m.prog.JumpLabel(in.Label)
		}
	case JumpNeg:
		v, err := m.pop(in)
		if err != nil {
			return false, err
		}
		if v.Sign() < 0 {
			return false, m.prog.JumpLabel(in.Label)
		}
	case Return:
		return false, m.prog.Return()
	case End:
		return true, nil

	default:
		panic(fmt.Errorf("whitespace: invalid Op: %v", in.Op))
	}
	return false, nil
}

// arithmetic computes a op b for an arithmetic instruction.
func arithmetic(in Instr, a, b *big.Int) (*big.Int, error) {
	switch in.Op {
	case Add:
		return new(big.Int).Add(a, b), nil
	case Sub:
		return new(big.Int).Sub(a, b), nil
	case Mul:
		return new(big.Int).Mul(a, b), nil
	}
	if b.Sign() == 0 {
		return nil, newError(ArithmeticFault, in.IP, "divide by zero")
	}
	if in.Op == Div {
		return arith.FloorDiv(a, b), nil
	}
	return arith.FloorMod(a, b), nil
}

func (m *machine) push(v *big.Int) {
	m.stack = append(m.stack, v)
}

func (m *machine) pop(in Instr) (*big.Int, error) {
	n := len(m.stack)
	if n == 0 {
		return nil, m.underflow(in)
	}
	v := m.stack[n-1]
	m.stack[n-1] = nil
	m.stack = m.stack[:n-1]
	return v, nil
}

func (m *machine) peek(in Instr) (*big.Int, error) {
	if len(m.stack) == 0 {
		return nil, m.underflow(in)
	}
	return m.stack[len(m.stack)-1], nil
}

func (m *machine) underflow(in Instr) error {
	return newError(StackUnderflow, in.IP, "%v with %d values on the stack", in.Op, len(m.stack))
}

// emit appends a unit of output and writes it to the sink, if there is one.
func (m *machine) emit(in Instr, unit string) error {
	m.out.WriteString(unit)
	if m.sink == nil {
		return nil
	}
	b, err := m.enc.String(unit)
	if err != nil {
		return &Error{Kind: IOFault, IP: in.IP, Msg: "encoding output", Err: err}
	}
	if _, err := io.WriteString(m.sink, b); err != nil {
		return &Error{Kind: IOFault, IP: in.IP, Msg: "writing output", Err: err}
	}
	return nil
}
