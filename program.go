package whitespace

// Labels maps label identities, written in S/T notation, to the token index
// immediately following the label's declaration.
type Labels map[string]int

// Program is the instruction store of one execution: the token stream, its
// label table, the instruction pointer, and the call stack.
type Program struct {
	tokens []Token
	labels Labels
	ip     int
	calls  []int

	// start is the token index of the instruction most recently decoded.
	start int
}

// NewProgram creates a program positioned at the first token. The tokens and
// labels are not copied and must not be modified while the program is in use.
func NewProgram(tokens []Token, labels Labels) *Program {
	return &Program{tokens: tokens, labels: labels}
}

// NextToken consumes the token at the instruction pointer.
func (p *Program) NextToken() (Token, error) {
	if p.ip >= len(p.tokens) {
		return 0, newError(MalformedProgram, p.ip, "read past program end")
	}
	t := p.tokens[p.ip]
	p.ip++
	return t, nil
}

// AtEnd returns true if every token has been consumed.
func (p *Program) AtEnd() bool {
	return p.ip >= len(p.tokens)
}

// IP returns the instruction pointer.
func (p *Program) IP() int {
	return p.ip
}

// CallDepth returns the number of pending calls.
func (p *Program) CallDepth() int {
	return len(p.calls)
}

// CallLabel saves the instruction pointer on the call stack and transfers
// control to the label.
func (p *Program) CallLabel(id string) error {
	to, ok := p.labels[id]
	if !ok {
		return newError(UndefinedLabel, p.start, "undefined subroutine %q", id)
	}
	p.calls = append(p.calls, p.ip)
	p.ip = to
	return nil
}

// JumpLabel transfers control to the label.
func (p *Program) JumpLabel(id string) error {
	to, ok := p.labels[id]
	if !ok {
		return newError(UndefinedLabel, p.start, "undefined label %q", id)
	}
	p.ip = to
	return nil
}

// Return resumes execution after the most recent call.
func (p *Program) Return() error {
	n := len(p.calls)
	if n == 0 {
		return newError(CallStackUnderflow, p.start, "return with empty call stack")
	}
	p.ip = p.calls[n-1]
	p.calls = p.calls[:n-1]
	return nil
}
