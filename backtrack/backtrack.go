// Package backtrack matches a syntax.Pattern against text by backtracking
// search over an explicit log.
//
// A run keeps a cursor into the text, a stack of atoms still to satisfy and
// a log with one record per satisfied atom. A record remembers every
// consumption the atom accepted (several for ZeroOrMore), so a later failure
// can give back a single repetition and resume from there instead of
// restarting the atom. The search is greedy: repetitions take as much as
// they can and only shrink when something after them fails.
//
// Matches are prefix matches: the pattern must be satisfied starting at
// offset 0 of the text, but need not consume all of it.
package backtrack

import (
	"context"

	"github.com/coregx/rx/internal/sparse"
	"github.com/coregx/rx/syntax"
)

// Config controls a Matcher.
type Config struct {
	// MaxSteps bounds the work of one match call. <= 0 means unlimited.
	MaxSteps int

	// GroupAlternatives lets a group report every distinct length its body
	// can match, in preference order. When the atoms after the group fail,
	// the parent retries with the group's next shorter alternative before
	// giving up on it. When false a group only offers its first match.
	GroupAlternatives bool
}

// DefaultConfig returns a Config with group alternatives enabled and no step
// limit.
func DefaultConfig() Config {
	return Config{GroupAlternatives: true}
}

// Matcher matches one Pattern. It is immutable and safe for concurrent use;
// all per-call state lives in the run.
type Matcher struct {
	pattern syntax.Pattern
	config  Config
}

// New returns a Matcher for p. The matcher reads p but never modifies it.
func New(p syntax.Pattern, config Config) *Matcher {
	return &Matcher{pattern: p, config: config}
}

// Pattern returns the pattern being matched.
func (m *Matcher) Pattern() syntax.Pattern {
	return m.pattern
}

// Match reports the length of the prefix of text matched by the pattern.
//
// ok is false when no assignment of consumptions satisfies the pattern; that
// is an ordinary result, not an error. err is non-nil only when the step
// limit is exceeded (ErrStepLimit) or ctx is done.
func (m *Matcher) Match(ctx context.Context, text []byte) (n int, ok bool, err error) {
	return m.MatchWith(NewBudget(ctx, m.config.MaxSteps), nil, text)
}

// MatchWith is like Match but charges b, which may be shared by several
// calls, and reuses c when non-nil. A nil b gets a fresh budget from the
// matcher's config.
func (m *Matcher) MatchWith(b *Budget, c *Cache, text []byte) (n int, ok bool, err error) {
	if b == nil {
		b = NewBudget(nil, m.config.MaxSteps)
	}
	if err := b.Err(); err != nil {
		return 0, false, err
	}
	if c == nil {
		c = NewCache()
	}
	s := &search{budget: b, cache: c, alts: m.config.GroupAlternatives}
	r := s.newRun(0, m.pattern, text)
	ok, err = r.exec()
	if err != nil || !ok {
		return 0, false, err
	}
	return r.pos, true, nil
}

// search is the state shared by a top-level run and the nested runs it
// starts for groups.
type search struct {
	budget *Budget
	cache  *Cache
	alts   bool
}

// take is one accepted consumption of an atom. group is set while a group
// take may still yield other lengths; they are produced on demand when the
// parent backtracks into the take.
type take struct {
	n     int
	group *groupMatch
}

// record is a backtrack log entry.
type record struct {
	atom      *syntax.Atom
	retriable bool
	takes     []take
}

func (rec *record) consumed() int {
	n := 0
	for _, t := range rec.takes {
		n += t.n
	}
	return n
}

func (rec *record) release() {
	for i := range rec.takes {
		rec.takes[i].group.release()
		rec.takes[i].group = nil
	}
}

type run struct {
	s       *search
	depth   int
	text    []byte
	pos     int
	pending []*syntax.Atom // top of stack is the next atom to satisfy
	log     []record
}

func (s *search) newRun(depth int, p syntax.Pattern, text []byte) *run {
	r := &run{
		s:       s,
		depth:   depth,
		text:    text,
		pending: make([]*syntax.Atom, 0, len(p)),
		log:     make([]record, 0, len(p)),
	}
	for i := len(p) - 1; i >= 0; i-- {
		r.pending = append(r.pending, &p[i])
	}
	return r
}

// canRetry reports whether backtrack could find another way to match.
func (r *run) canRetry() bool {
	for i := range r.log {
		if r.log[i].retriable {
			return true
		}
	}
	return false
}

// exec satisfies pending atoms until none remain or the search is exhausted.
func (r *run) exec() (bool, error) {
	for len(r.pending) > 0 {
		if err := r.s.budget.charge(); err != nil {
			return false, err
		}
		a := r.pending[len(r.pending)-1]
		r.pending = r.pending[:len(r.pending)-1]

		ok, err := r.eval(a)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (r *run) eval(a *syntax.Atom) (bool, error) {
	switch a.Quant {
	case syntax.One:
		t, ok, err := r.matchAt(a, false)
		if err != nil {
			return false, err
		}
		if !ok {
			return r.backtrack(a)
		}
		r.pos += t.n
		r.log = append(r.log, record{
			atom:      a,
			retriable: t.group != nil,
			takes:     []take{t},
		})

	case syntax.ZeroOrOne:
		if r.pos >= len(r.text) {
			r.log = append(r.log, record{atom: a, takes: []take{{}}})
			return true, nil
		}
		t, ok, err := r.matchAt(a, true)
		if err != nil {
			return false, err
		}
		if !ok {
			r.log = append(r.log, record{atom: a, takes: []take{{}}})
			return true, nil
		}
		r.pos += t.n
		r.log = append(r.log, record{atom: a, retriable: true, takes: []take{t}})

	case syntax.ZeroOrMore:
		rec := record{atom: a}
		for r.pos < len(r.text) {
			t, ok, err := r.matchAt(a, true)
			if err != nil {
				return false, err
			}
			if !ok {
				break
			}
			r.pos += t.n
			rec.takes = append(rec.takes, t)
			if err := r.s.budget.charge(); err != nil {
				return false, err
			}
		}
		if len(rec.takes) == 0 {
			rec.takes = []take{{}}
		} else {
			rec.retriable = true
		}
		r.log = append(r.log, rec)
	}
	return true, nil
}

// backtrack rewinds the log until some record can be shortened.
//
// failed, when non-nil, is the atom that could not be satisfied; it goes
// back on the pending stack to be retried. Records that cannot be shortened
// are undone entirely and their atoms re-queued for a fresh evaluation. The
// first record that can be shortened either switches its latest take to the
// group's next length or, for repeating quantifiers, drops that take.
// Either way the record stays in the log and backtrack reports true.
func (r *run) backtrack(failed *syntax.Atom) (bool, error) {
	if failed != nil {
		r.pending = append(r.pending, failed)
	}
	r.s.budget.backtracks++
	if err := r.s.budget.charge(); err != nil {
		return false, err
	}

	for len(r.log) > 0 {
		rec := r.log[len(r.log)-1]
		r.log = r.log[:len(r.log)-1]

		if rec.retriable && len(rec.takes) > 0 {
			last := &rec.takes[len(rec.takes)-1]
			if last.group != nil {
				n, ok, err := last.group.next()
				if err != nil {
					return false, err
				}
				if ok {
					r.pos += n - last.n
					last.n = n
					r.log = append(r.log, rec)
					return true, nil
				}
				last.group.release()
				last.group = nil
			}
			if rec.atom.Quant != syntax.One {
				r.pos -= last.n
				rec.takes = rec.takes[:len(rec.takes)-1]
				r.log = append(r.log, rec)
				return true, nil
			}
		}

		r.pos -= rec.consumed()
		rec.release()
		r.pending = append(r.pending, rec.atom)
	}
	return false, nil
}

// matchAt returns the consumption a prefers at r.pos. ok is false if a does
// not match. With positive set, zero-length matches are rejected: a
// repetition that consumes nothing is no repetition.
func (r *run) matchAt(a *syntax.Atom, positive bool) (t take, ok bool, err error) {
	switch a.Kind {
	case syntax.KindLiteral:
		if r.pos < len(r.text) && r.text[r.pos] == a.Char {
			return take{n: 1}, true, nil
		}
	case syntax.KindWildcard:
		if r.pos < len(r.text) {
			return take{n: 1}, true, nil
		}
	case syntax.KindGroup:
		return r.matchGroup(a.Sub, positive)
	}
	return take{}, false, nil
}

// matchGroup runs sub against the rest of the text in a fresh run. Only the
// first length is computed; the nested run is kept so the others can be
// produced later by groupMatch.next.
func (r *run) matchGroup(sub syntax.Pattern, positive bool) (take, bool, error) {
	nested := r.s.newRun(r.depth+1, sub, r.text[r.pos:])
	ok, err := nested.exec()
	if err != nil || !ok {
		return take{}, false, err
	}

	if !r.s.alts {
		if positive && nested.pos == 0 {
			return take{}, false, nil
		}
		return take{n: nested.pos}, true, nil
	}

	g := &groupMatch{run: nested, positive: positive, first: nested.pos}
	n := nested.pos
	if positive && n == 0 {
		if n, ok, err = g.next(); err != nil || !ok {
			g.release()
			return take{}, false, err
		}
	}
	if !nested.canRetry() {
		g.release()
		return take{n: n}, true, nil
	}
	return take{n: n, group: g}, true, nil
}

// groupMatch is a group match that can still be asked for other lengths.
type groupMatch struct {
	run      *run
	positive bool
	first    int
	seen     *sparse.Set // lengths already returned, allocated on first next
}

// next forces the nested run to backtrack until it matches with a length
// not returned before. ok is false once the nested run is exhausted.
func (g *groupMatch) next() (n int, ok bool, err error) {
	if g.seen == nil {
		g.seen = g.run.s.cache.get()
		g.seen.Insert(g.first)
	}
	for {
		more, err := g.run.backtrack(nil)
		if err != nil || !more {
			return 0, false, err
		}
		if ok, err = g.run.exec(); err != nil || !ok {
			return 0, false, err
		}
		n = g.run.pos
		if g.positive && n == 0 {
			continue
		}
		if g.seen.Insert(n) {
			return n, true, nil
		}
	}
}

// release hands the length set back to the cache. g may be nil.
func (g *groupMatch) release() {
	if g == nil || g.seen == nil {
		return
	}
	g.run.s.cache.put(g.seen)
	g.seen = nil
}
