package syntax

// Parse compiles expr into a Pattern.
//
// The scan is a single left-to-right pass over a stack of open frames: the
// root frame plus one per unclosed group. Every atom is built with its final
// quantifier: after scanning an atom's content the parser looks at the next
// byte and consumes a quantifier if one is there. `x+` becomes two atoms with
// equal content, the first with One and the second with ZeroOrMore.
//
// On failure Parse returns a *Error and no Pattern.
func Parse(expr string) (Pattern, error) {
	p := &parser{
		expr:  expr,
		stack: make([]Pattern, 1, 4),
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.stack[0], nil
}

// MustParse is like Parse but panics if expr cannot be parsed.
func MustParse(expr string) Pattern {
	p, err := Parse(expr)
	if err != nil {
		panic("syntax: Parse(`" + expr + "`): " + err.Error())
	}
	return p
}

type parser struct {
	expr  string
	pos   int
	stack []Pattern // stack[0] is the root frame
	opens []int     // offsets of unclosed '('
}

// atomFunc builds an atom once its quantifier is known.
type atomFunc func(q Quant) Atom

func (p *parser) parse() error {
	for p.pos < len(p.expr) {
		start := p.pos
		c := p.expr[p.pos]
		switch c {
		case '(':
			p.pos++
			p.opens = append(p.opens, start)
			p.stack = append(p.stack, nil)

		case ')':
			if len(p.stack) == 1 {
				return p.errorAt(ErrUnmatchedCloseGroup, start)
			}
			p.pos++
			sub := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.opens = p.opens[:len(p.opens)-1]
			if err := p.emit(func(q Quant) Atom { return Group(sub.Clone(), q) }); err != nil {
				return err
			}

		case '?', '*', '+':
			// Atoms consume their own quantifier, so one seen here either
			// repeats an already quantified atom or has nothing to apply to.
			if len(p.stack[len(p.stack)-1]) > 0 {
				return p.errorAt(ErrDoubleQuantifier, start)
			}
			return p.errorAt(ErrMissingRepeatArgument, start)

		case '.':
			p.pos++
			if err := p.emit(Wildcard); err != nil {
				return err
			}

		case '\\':
			if p.pos+1 >= len(p.expr) {
				return p.errorAt(ErrUnterminatedEscape, start)
			}
			lit := p.expr[p.pos+1]
			p.pos += 2
			if err := p.emit(func(q Quant) Atom { return Literal(lit, q) }); err != nil {
				return err
			}

		default:
			p.pos++
			if err := p.emit(func(q Quant) Atom { return Literal(c, q) }); err != nil {
				return err
			}
		}
	}

	if len(p.stack) != 1 {
		return p.errorAt(ErrUnmatchedOpenGroup, p.opens[len(p.opens)-1])
	}
	return nil
}

// emit reads an optional quantifier at p.pos, builds the atom with it and
// appends the result to the current frame.
func (p *parser) emit(build atomFunc) error {
	top := len(p.stack) - 1
	if p.pos >= len(p.expr) {
		p.stack[top] = append(p.stack[top], build(One))
		return nil
	}

	switch p.expr[p.pos] {
	case '?':
		p.pos++
		p.stack[top] = append(p.stack[top], build(ZeroOrOne))
	case '*':
		p.pos++
		p.stack[top] = append(p.stack[top], build(ZeroOrMore))
	case '+':
		p.pos++
		p.stack[top] = append(p.stack[top], build(One), build(ZeroOrMore))
	default:
		p.stack[top] = append(p.stack[top], build(One))
		return nil
	}

	if p.pos < len(p.expr) && isQuantifier(p.expr[p.pos]) {
		return p.errorAt(ErrDoubleQuantifier, p.pos)
	}
	return nil
}

func (p *parser) errorAt(code ErrorCode, pos int) error {
	return &Error{Code: code, Expr: p.expr, Pos: pos}
}

func isQuantifier(c byte) bool {
	return c == '?' || c == '*' || c == '+'
}
