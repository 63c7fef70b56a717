package whitespace

import (
	"fmt"
	"math/big"
)

// Op identifies an instruction.
type Op int

// Instructions. The comment on each gives its token sequence.
const (
	// Stack manipulation

	Push Op = iota // S S <number>
	Copy           // S T S <number>
	Slide          // S T L <number>
	Dup            // S L S
	Swap           // S L T
	Drop           // S L L

	// Arithmetic

	Add // T S S S
	Sub // T S S T
	Mul // T S S L
	Div // T S T S
	Mod // T S T T

	// Heap access

	Store    // T T S
	Retrieve // T T T

	// I/O

	PrintChar // T L S S
	PrintNum  // T L S T
	ReadChar  // T L T S
	ReadNum   // T L T T

	// Flow control

	Mark     // L S S <label>
	Call     // L S T <label>
	Jump     // L S L <label>
	JumpZero // L T S <label>
	JumpNeg  // L T L <label>
	Return   // L T T
	End      // L L L

	numOps
)

var opNames = [...]string{
	"push", "copy", "slide", "dup", "swap", "drop",
	"add", "sub", "mul", "div", "mod",
	"store", "retrieve",
	"printc", "printi", "readc", "readi",
	"mark", "call", "jump", "jz", "jn", "ret", "end",
}

// opTable maps each instruction's opcode tokens, in notation, to the
// instruction. Operands are not included.
var opTable = map[string]Op{
	"SS":   Push,
	"STS":  Copy,
	"STL":  Slide,
	"SLS":  Dup,
	"SLT":  Swap,
	"SLL":  Drop,
	"TSSS": Add,
	"TSST": Sub,
	"TSSL": Mul,
	"TSTS": Div,
	"TSTT": Mod,
	"TTS":  Store,
	"TTT":  Retrieve,
	"TLSS": PrintChar,
	"TLST": PrintNum,
	"TLTS": ReadChar,
	"TLTT": ReadNum,
	"LSS":  Mark,
	"LST":  Call,
	"LSL":  Jump,
	"LTS":  JumpZero,
	"LTL":  JumpNeg,
	"LTT":  Return,
	"LLL":  End,
}

// opPrefixes holds every proper prefix of a key of opTable.
var opPrefixes = func() map[string]bool {
	m := make(map[string]bool)
	for seq := range opTable {
		for i := 1; i < len(seq); i++ {
			m[seq[:i]] = true
		}
	}
	return m
}()

// String returns the instruction's mnemonic.
func (op Op) String() string {
	if op < Push || op >= numOps {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// HasNumber returns true for instructions taking a number operand.
func (op Op) HasNumber() bool {
	switch op {
	case Push, Copy, Slide:
		return true
	}
	return false
}

// HasLabel returns true for instructions taking a label operand.
func (op Op) HasLabel() bool {
	switch op {
	case Mark, Call, Jump, JumpZero, JumpNeg:
		return true
	}
	return false
}

// Instr is one decoded instruction.
type Instr struct {
	Op Op
	// Arg is the operand of instructions for which Op.HasNumber is true.
	Arg *big.Int
	// Label is the operand of instructions for which Op.HasLabel is true, in
	// S/T notation.
	Label string
	// IP is the token index of the instruction's first token.
	IP int
}

func (in Instr) String() string {
	switch {
	case in.Op.HasNumber():
		return fmt.Sprintf("%v %v", in.Op, in.Arg)
	case in.Op.HasLabel():
		return fmt.Sprintf("%v %q", in.Op, in.Label)
	}
	return in.Op.String()
}

// Decode consumes one instruction with its operand.
func (p *Program) Decode() (Instr, error) {
	p.start = p.ip
	in := Instr{IP: p.ip}
	seq := make([]byte, 0, 4)
	for {
		t, err := p.NextToken()
		if err != nil {
			return in, newError(MalformedProgram, in.IP, "incomplete instruction %s", seq)
		}
		seq = append(seq, tokenLetters[t])
		if op, ok := opTable[string(seq)]; ok {
			in.Op = op
			break
		}
		if !opPrefixes[string(seq)] {
			return in, newError(MalformedProgram, in.IP, "invalid instruction %s", seq)
		}
	}
	var err error
	switch {
	case in.Op.HasNumber():
		in.Arg, err = p.decodeNumber()
	case in.Op.HasLabel():
		in.Label, err = p.decodeLabel()
	}
	return in, err
}
