package whitespace_test

import (
	"math/big"
	"strings"
)

// Instruction notation for building test programs.
const (
	dup      = "SLS "
	swap     = "SLT "
	drop     = "SLL "
	add      = "TSSS "
	sub      = "TSST "
	mul      = "TSSL "
	div      = "TSTS "
	mod      = "TSTT "
	store    = "TTS "
	retrieve = "TTT "
	printc   = "TLSS "
	printi   = "TLST "
	readc    = "TLTS "
	readi    = "TLTT "
	ret      = "LTT "
	end      = "LLL "
)

// num renders a number literal in notation.
func num(v *big.Int) string {
	var b strings.Builder
	if v.Sign() < 0 {
		b.WriteByte('T')
	} else {
		b.WriteByte('S')
	}
	if v.Sign() != 0 {
		bits := new(big.Int).Abs(v).Text(2)
		b.WriteString(strings.NewReplacer("0", "S", "1", "T").Replace(bits))
	}
	b.WriteString("L ")
	return b.String()
}

func push(v int64) string { return "SS" + num(big.NewInt(v)) }
func pushBig(v *big.Int) string { return "SS" + num(v) }
func copyN(n int64) string { return "STS" + num(big.NewInt(n)) }
func slide(n int64) string { return "STL" + num(big.NewInt(n)) }
func mark(l string) string { return "LSS" + l + "L " }
func call(l string) string { return "LST" + l + "L " }
func jump(l string) string { return "LSL" + l + "L " }
func jz(l string) string { return "LTS" + l + "L " }
func jn(l string) string { return "LTL" + l + "L " }

// prog joins instructions into one program.
func prog(instrs ...string) string {
	return strings.Join(instrs, "")
}
