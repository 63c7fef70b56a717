package whitespace

import (
	"fmt"
	"strings"
)

// A Token is one significant character of a whitespace program.
type Token byte

const (
	// Space is the token for U+0020.
	Space Token = iota
	// Tab is the token for U+0009.
	Tab
	// Line is the token for U+000A.
	Line
)

var tokenLetters = [...]byte{'S', 'T', 'L'}

// String returns the single-letter notation for the token.
func (t Token) String() string {
	if t > Line {
		return fmt.Sprintf("Token(%d)", byte(t))
	}
	return string(tokenLetters[t])
}

// Normalize converts source text into its token stream. Every character other
// than space, tab, and line feed is a comment and is dropped. A nil result
// means the source held no significant characters.
func Normalize(src string) []Token {
	var toks []Token
	for i := 0; i < len(src); i++ {
		// Scanning bytes is fine here: no multi-byte UTF-8 sequence contains
		// an ASCII byte.
		switch src[i] {
		case ' ':
			toks = append(toks, Space)
		case '\t':
			toks = append(toks, Tab)
		case '\n':
			toks = append(toks, Line)
		}
	}
	return toks
}

// Notation renders tokens as S, T, and L letters.
func Notation(toks []Token) string {
	var b strings.Builder
	b.Grow(len(toks))
	for _, t := range toks {
		b.WriteString(t.String())
	}
	return b.String()
}

// FromNotation converts S, T, and L letters into the whitespace characters
// they name. Letters match in either case, and N is accepted as a synonym for
// L. All other characters are ignored, so notation may be spaced out.
func FromNotation(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case 'S', 's':
			b.WriteByte(' ')
		case 'T', 't':
			b.WriteByte('\t')
		case 'L', 'l', 'N', 'n':
			b.WriteByte('\n')
		}
	}
	return b.String()
}
