package syntax

import (
	"strconv"
	"strings"
)

// metachars lists the bytes that Expr escapes.
const metachars = `\.()?*+`

// String returns the quantifier name.
func (q Quant) String() string {
	switch q {
	case One:
		return "One"
	case ZeroOrOne:
		return "ZeroOrOne"
	case ZeroOrMore:
		return "ZeroOrMore"
	}
	return "Quant(" + strconv.Itoa(int(q)) + ")"
}

// String returns a debug representation such as Literal{'a', One}.
func (a Atom) String() string {
	var sb strings.Builder
	a.writeDebug(&sb)
	return sb.String()
}

// String returns a debug representation such as [Literal{'a', One} Wildcard{ZeroOrMore}].
func (p Pattern) String() string {
	var sb strings.Builder
	p.writeDebug(&sb)
	return sb.String()
}

func (a Atom) writeDebug(sb *strings.Builder) {
	switch a.Kind {
	case KindLiteral:
		sb.WriteString("Literal{")
		sb.WriteString(strconv.QuoteRuneToASCII(rune(a.Char)))
		sb.WriteString(", ")
	case KindWildcard:
		sb.WriteString("Wildcard{")
	case KindGroup:
		sb.WriteString("Group{")
		a.Sub.writeDebug(sb)
		sb.WriteString(", ")
	}
	sb.WriteString(a.Quant.String())
	sb.WriteByte('}')
}

func (p Pattern) writeDebug(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, a := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		a.writeDebug(sb)
	}
	sb.WriteByte(']')
}

// Expr renders p back into pattern text that parses to an equal Pattern.
// A One atom directly followed by a ZeroOrMore copy of itself is written
// with `+`.
func (p Pattern) Expr() string {
	var sb strings.Builder
	p.writeExpr(&sb)
	return sb.String()
}

func (p Pattern) writeExpr(sb *strings.Builder) {
	for i := 0; i < len(p); i++ {
		a := p[i]
		writeAtomBody(sb, a)
		switch a.Quant {
		case ZeroOrOne:
			sb.WriteByte('?')
		case ZeroOrMore:
			sb.WriteByte('*')
		case One:
			if i+1 < len(p) && p[i+1].Quant == ZeroOrMore && a.Equal(p[i+1].Clone(One)) {
				sb.WriteByte('+')
				i++
			}
		}
	}
}

func writeAtomBody(sb *strings.Builder, a Atom) {
	switch a.Kind {
	case KindLiteral:
		if strings.IndexByte(metachars, a.Char) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(a.Char)
	case KindWildcard:
		sb.WriteByte('.')
	case KindGroup:
		sb.WriteByte('(')
		a.Sub.writeExpr(sb)
		sb.WriteByte(')')
	}
}
