package whitespace

// Scan decodes every instruction of the token stream without executing any,
// checking that each is well formed, that no label is declared twice, and
// that every jump and call names a declared label. It returns the label
// table for the program.
func Scan(tokens []Token) (Labels, error) {
	type ref struct {
		label string
		ip    int
	}
	p := NewProgram(tokens, nil)
	labels := Labels{}
	var refs []ref
	for !p.AtEnd() {
		in, err := p.Decode()
		if err != nil {
			return nil, err
		}
		switch in.Op {
		case Mark:
			if _, ok := labels[in.Label]; ok {
				return nil, newError(DuplicateLabel, in.IP, "label %q declared twice", in.Label)
			}
			labels[in.Label] = p.IP()
		case Call, Jump, JumpZero, JumpNeg:
			refs = append(refs, ref{in.Label, in.IP})
		}
	}
	for _, r := range refs {
		if _, ok := labels[r.label]; !ok {
			return nil, newError(UndefinedLabel, r.ip, "undefined label %q", r.label)
		}
	}
	return labels, nil
}
