// Package syntax parses rx patterns into an atom sequence.
//
// A pattern is a flat list of atoms. Each atom is a literal byte, a wildcard
// or a parenthesized group, and carries one quantifier:
//
//	.      any byte
//	\X     the byte X, with any metacharacter meaning removed
//	(...)  group
//	?      zero or one of the previous atom
//	*      zero or more of the previous atom
//	+      one or more of the previous atom (desugared, see Parse)
//
// There are no character classes, anchors or alternation.
package syntax

// Quant is the repetition rule attached to an Atom.
type Quant uint8

const (
	// One requires exactly one occurrence.
	One Quant = iota
	// ZeroOrOne makes the atom optional.
	ZeroOrOne
	// ZeroOrMore repeats the atom greedily.
	ZeroOrMore
)

// Kind identifies which payload of an Atom is in use.
type Kind uint8

const (
	// KindLiteral matches the single byte Atom.Char.
	KindLiteral Kind = iota
	// KindWildcard matches any single byte.
	KindWildcard
	// KindGroup matches the nested Atom.Sub sequence.
	KindGroup
)

// Atom is one element of a compiled pattern.
//
// Only the payload selected by Kind is meaningful: Char for KindLiteral, Sub
// for KindGroup. A group owns its Sub slice; Clone must be used when the same
// content is needed twice.
type Atom struct {
	Kind  Kind
	Char  byte
	Sub   Pattern
	Quant Quant
}

// Pattern is an ordered sequence of atoms: a whole compiled expression or
// the body of a group. A Pattern is not modified after Parse returns it.
type Pattern []Atom

// Literal returns a literal atom for c.
func Literal(c byte, q Quant) Atom {
	return Atom{Kind: KindLiteral, Char: c, Quant: q}
}

// Wildcard returns an atom matching any byte.
func Wildcard(q Quant) Atom {
	return Atom{Kind: KindWildcard, Quant: q}
}

// Group returns a group atom owning sub.
func Group(sub Pattern, q Quant) Atom {
	return Atom{Kind: KindGroup, Sub: sub, Quant: q}
}

// Clone returns a deep copy of a with quantifier q.
func (a Atom) Clone(q Quant) Atom {
	c := a
	c.Quant = q
	if a.Kind == KindGroup {
		c.Sub = a.Sub.Clone()
	}
	return c
}

// Clone returns a deep copy of p.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	for i, a := range p {
		out[i] = a.Clone(a.Quant)
	}
	return out
}

// Equal reports whether p and q describe the same atoms.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if !p[i].Equal(q[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same kind, payload and quantifier.
func (a Atom) Equal(b Atom) bool {
	if a.Kind != b.Kind || a.Quant != b.Quant {
		return false
	}
	switch a.Kind {
	case KindLiteral:
		return a.Char == b.Char
	case KindGroup:
		return a.Sub.Equal(b.Sub)
	}
	return true
}
