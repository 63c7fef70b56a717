package whitespace

import (
	"fmt"
	"io"
	"math/big"
	"strings"
)

// decodeNumber consumes a signed number literal: a sign token, then bits most
// significant first, then a line token.
func (p *Program) decodeNumber() (*big.Int, error) {
	start := p.ip
	sign, err := p.NextToken()
	if err != nil {
		return nil, newError(MalformedProgram, start, "unterminated number")
	}
	if sign == Line {
		return nil, newError(MalformedProgram, start, "number must begin with a sign")
	}
	n := new(big.Int)
	for {
		bit, err := p.NextToken()
		if err != nil {
			return nil, newError(MalformedProgram, start, "unterminated number")
		}
		if bit == Line {
			break
		}
		n.Lsh(n, 1)
		if bit == Tab {
			n.SetBit(n, 0, 1)
		}
	}
	if sign == Tab {
		n.Neg(n)
	}
	return n, nil
}

// decodeLabel consumes a label literal and returns its identity in S/T
// notation.
func (p *Program) decodeLabel() (string, error) {
	start := p.ip
	var b strings.Builder
	for {
		t, err := p.NextToken()
		if err != nil {
			return "", newError(MalformedProgram, start, "unterminated label")
		}
		if t == Line {
			return b.String(), nil
		}
		b.WriteString(t.String())
	}
}

// ReadNumber reads one line from src and parses it with ParseNumber. The line
// ends at a line feed, which is consumed, or at the end of input. It is an
// error if src is already at the end.
func ReadNumber(src io.RuneReader) (*big.Int, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			if b.Len() == 0 {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
		if r == '\n' {
			break
		}
		b.WriteRune(r)
	}
	return ParseNumber(b.String())
}

// ParseNumber parses a numeric input line. A 0b prefix selects binary, 0x
// hexadecimal, and a leading 0 followed by more digits octal; anything else is
// decimal. A sign, if any, follows the prefix. One trailing carriage return is
// ignored.
func ParseNumber(s string) (*big.Int, error) {
	s = strings.TrimSuffix(s, "\r")
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "0b"):
		digits, base = s[2:], 2
	case strings.HasPrefix(s, "0x"):
		digits, base = s[2:], 16
	case len(s) > 1 && s[0] == '0':
		digits, base = s[1:], 8
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("malformed number %q", s)
	}
	return n, nil
}
