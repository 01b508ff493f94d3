package rx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/coregx/rx/backtrack"
	"github.com/coregx/rx/literal"
	"github.com/coregx/rx/prefilter"
	"github.com/coregx/rx/syntax"
)

// Set matches several patterns against the same input.
//
// Searches over a Set scan the input once: when every pattern has a literal
// prefix, an Aho-Corasick automaton over those prefixes proposes the start
// positions to verify.
//
// Like Regex, a Set is safe for concurrent use.
type Set struct {
	exprs     []string
	matchers  []*backtrack.Matcher
	prefixes  []literal.Literal
	prefilter prefilter.Prefilter
	config    Config
	stats     counters
}

// CompileSet compiles every pattern in exprs. The error for an invalid
// pattern names its index and wraps the *syntax.Error.
//
// Example:
//
//	set, err := rx.CompileSet([]string{"GET ", "POST ", "PUT "}, rx.DefaultConfig())
func CompileSet(exprs []string, config Config) (*Set, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Set{
		exprs:    append([]string(nil), exprs...),
		matchers: make([]*backtrack.Matcher, len(exprs)),
		config:   config,
	}
	progs := make([]syntax.Pattern, len(exprs))
	for i, expr := range exprs {
		prog, err := syntax.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("rx: set pattern %d: %w", i, err)
		}
		progs[i] = prog
		s.matchers[i] = backtrack.New(prog, matcherConfig(config))
	}
	s.prefixes = literal.Prefixes(progs)
	if config.EnablePrefilter {
		s.prefilter = prefilter.New(s.prefixes)
	}
	return s, nil
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.exprs)
}

// Patterns returns the source text of every pattern, in order.
func (s *Set) Patterns() []string {
	return append([]string(nil), s.exprs...)
}

// Match returns the indices, in increasing order, of the patterns that match
// a prefix of b. Patterns stopped by the step limit count as not matching.
func (s *Set) Match(b []byte) []int {
	idx, _ := s.MatchContext(context.Background(), b)
	return idx
}

// MatchContext is like Match but stops at the first budget or context error.
// The step limit applies to the whole call.
func (s *Set) MatchContext(ctx context.Context, b []byte) ([]int, error) {
	s.stats.matches.Add(1)
	budget := backtrack.NewBudget(ctx, s.config.MaxSteps)
	cache := backtrack.NewCache()

	var (
		out []int
		err error
	)
	for i, m := range s.matchers {
		if !bytes.HasPrefix(b, s.prefixes[i].Bytes) {
			continue
		}
		var ok bool
		if _, ok, err = m.MatchWith(budget, cache, b); err != nil {
			break
		}
		if ok {
			out = append(out, i)
		}
	}
	s.stats.finish(budget, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindIndex returns the location of the leftmost match of any pattern and
// the index of that pattern. When several patterns match at the same start,
// the lowest index wins. It returns (nil, -1) if nothing matches.
func (s *Set) FindIndex(b []byte) (loc []int, idx int) {
	loc, idx, _ = s.FindIndexContext(context.Background(), b)
	return loc, idx
}

// FindIndexContext is like FindIndex but reports budget and context errors.
func (s *Set) FindIndexContext(ctx context.Context, b []byte) (loc []int, idx int, err error) {
	s.stats.searches.Add(1)
	srch := newSearch(ctx, s.config, s.prefilter, &s.stats)
	srch.try = func(text []byte) (int, int, bool, error) {
		for i, m := range s.matchers {
			if !bytes.HasPrefix(text, s.prefixes[i].Bytes) {
				continue
			}
			n, ok, err := m.MatchWith(srch.budget, srch.cache, text)
			if err != nil {
				return 0, 0, false, err
			}
			if ok {
				return n, i, true, nil
			}
		}
		return 0, 0, false, nil
	}

	start, end, idx, err := srch.find(b, 0)
	s.stats.finish(srch.budget, err)
	if err != nil || start < 0 {
		return nil, -1, err
	}
	return []int{start, end}, idx, nil
}

// Stats returns a snapshot of the execution counters.
func (s *Set) Stats() Stats {
	return s.stats.snapshot()
}

// ResetStats clears the execution counters.
func (s *Set) ResetStats() {
	s.stats.reset()
}
