package rx

import (
	"context"

	"github.com/coregx/rx/backtrack"
	"github.com/coregx/rx/prefilter"
)

// search is the state of one leftmost search call. All start positions
// share the budget, so the step limit bounds the whole call.
type search struct {
	budget    *backtrack.Budget
	cache     *backtrack.Cache
	prefilter prefilter.Prefilter
	stats     *counters

	// try runs a prefix match at the start of b and reports the length and
	// the index of the pattern that matched.
	try func(b []byte) (n, idx int, ok bool, err error)
}

func newSearch(ctx context.Context, config Config, pf prefilter.Prefilter, stats *counters) *search {
	return &search{
		budget:    backtrack.NewBudget(ctx, config.MaxSteps),
		cache:     backtrack.NewCache(),
		prefilter: pf,
		stats:     stats,
	}
}

// find returns the leftmost match starting at or after at, or start == -1.
func (s *search) find(b []byte, at int) (start, end, idx int, err error) {
	if err := s.budget.Err(); err != nil {
		return -1, -1, -1, err
	}
	for pos := at; pos <= len(b); pos++ {
		if s.prefilter != nil {
			c := s.prefilter.Find(b, pos)
			if c < 0 {
				return -1, -1, -1, nil
			}
			if s.prefilter.IsComplete() {
				s.stats.prefilterHits.Add(1)
				return c, c + s.prefilter.LiteralLen(), 0, nil
			}
			pos = c
		}

		n, i, ok, err := s.try(b[pos:])
		if err != nil {
			return -1, -1, -1, err
		}
		if ok {
			if s.prefilter != nil {
				s.stats.prefilterHits.Add(1)
			}
			return pos, pos + n, i, nil
		}
		if s.prefilter != nil {
			s.stats.prefilterMisses.Add(1)
		}
	}
	return -1, -1, -1, nil
}
