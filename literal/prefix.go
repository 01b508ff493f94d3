// Package literal extracts the literal bytes a pattern's matches must start
// with, for use by a prefilter.
package literal

import (
	"github.com/coregx/rx/syntax"
)

// Literal is a byte string required at the start of every match.
//
// Complete is set when the pattern is exactly this literal, so finding the
// bytes is already a full match of length len(Bytes).
//
// Example:
//   - Pattern `abc`    → Literal{"abc", true}
//   - Pattern `ab(cd)` → Literal{"abcd", true}
//   - Pattern `ab*c`   → Literal{"a", false}
//   - Pattern `.*abc`  → Literal{"", false}
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// IsEmpty reports whether the literal constrains nothing.
func (l Literal) IsEmpty() bool {
	return len(l.Bytes) == 0
}

// String returns a debug representation, e.g. literal{abc, complete=true}.
func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Prefix returns the longest literal every match of p starts with.
//
// Leading One literals are collected, descending into leading One groups.
// The walk stops at the first wildcard or quantified atom.
func Prefix(p syntax.Pattern) Literal {
	var buf []byte
	whole := appendPrefix(&buf, p)
	return Literal{Bytes: buf, Complete: whole && len(buf) > 0}
}

// appendPrefix appends p's literal prefix to buf and reports whether p is
// made of nothing else.
func appendPrefix(buf *[]byte, p syntax.Pattern) bool {
	for _, a := range p {
		if a.Quant != syntax.One {
			return false
		}
		switch a.Kind {
		case syntax.KindLiteral:
			*buf = append(*buf, a.Char)
		case syntax.KindGroup:
			if !appendPrefix(buf, a.Sub) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Prefixes returns the prefix of every pattern, in order.
func Prefixes(ps []syntax.Pattern) []Literal {
	out := make([]Literal, len(ps))
	for i, p := range ps {
		out[i] = Prefix(p)
	}
	return out
}
