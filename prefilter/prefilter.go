// Package prefilter finds candidate start positions for a search before the
// backtracker runs.
//
// A prefilter scans for the literal prefix a match must begin with. Only
// positions where that literal occurs can start a match, so the search skips
// everything in between. Strategy is chosen from the literals:
//   - Single byte → memchr (bytes.IndexByte)
//   - Single string → memmem (bytes.Index)
//   - Several strings → Aho-Corasick automaton
//
// Example usage:
//
//	lit := literal.Prefix(syntax.MustParse("hello.*"))
//	pf := prefilter.New([]literal.Literal{lit})
//	pos := pf.Find([]byte("say hello"), 0)
//	// pos == 4
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/rx/literal"
)

// Prefilter is used to quickly find candidate match positions before running
// the backtracker.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or -1
	// if none exists. A candidate is where one of the literals begins; the
	// caller must still verify it unless IsComplete reports true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is always a full match.
	IsComplete() bool

	// LiteralLen returns the match length when IsComplete is true, else 0.
	LiteralLen() int
}

// New returns the best prefilter for lits, or nil when any literal is empty
// (some pattern can start anywhere) or lits is empty.
func New(lits []literal.Literal) Prefilter {
	if len(lits) == 0 {
		return nil
	}
	for _, lit := range lits {
		if lit.IsEmpty() {
			return nil
		}
	}

	if len(lits) == 1 {
		lit := lits[0]
		if lit.Len() == 1 {
			return newMemchr(lit.Bytes[0], lit.Complete)
		}
		return newMemmem(lit.Bytes, lit.Complete)
	}

	needles := dedupe(lits)
	if len(needles) == 1 {
		return newMemmem(needles[0], false)
	}
	pf, err := newAhoCorasick(needles)
	if err != nil {
		return nil
	}
	return pf
}

// dedupe returns the distinct literal byte strings in first-seen order.
func dedupe(lits []literal.Literal) [][]byte {
	out := make([][]byte, 0, len(lits))
	for _, lit := range lits {
		dup := false
		for _, seen := range out {
			if bytes.Equal(seen, lit.Bytes) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, lit.Bytes)
		}
	}
	return out
}

// memchr searches for a single byte.
type memchr struct {
	needle   byte
	complete bool
}

func newMemchr(needle byte, complete bool) *memchr {
	return &memchr{needle: needle, complete: complete}
}

// Find implements Prefilter.Find.
func (p *memchr) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchr) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchr) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// memmem searches for a single substring.
type memmem struct {
	needle   []byte
	complete bool
}

// newMemmem copies needle so later changes by the caller are not seen.
func newMemmem(needle []byte, complete bool) *memmem {
	return &memmem{
		needle:   append([]byte(nil), needle...),
		complete: complete,
	}
}

// Find implements Prefilter.Find.
func (p *memmem) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], p.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmem) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmem) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// ahoCorasickPrefilter searches for several literals at once. Candidates are
// never complete: the automaton does not say which pattern owns a literal.
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
}

func newAhoCorasick(needles [][]byte) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, n := range needles {
		builder.AddPattern(n)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{automaton: auto}, nil
}

// Find implements Prefilter.Find.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return false
}

// LiteralLen implements Prefilter.LiteralLen.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	return 0
}
