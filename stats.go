package rx

import (
	"sync/atomic"

	"github.com/coregx/rx/backtrack"
)

// Stats tracks execution statistics for a Regex or Set.
type Stats struct {
	// Matches counts prefix match calls (Match, MatchString, MatchContext).
	Matches uint64

	// Searches counts leftmost search calls (Find and friends).
	Searches uint64

	// Steps counts backtracker steps across all calls.
	Steps uint64

	// Backtracks counts backtrack invocations across all calls.
	Backtracks uint64

	// PrefilterHits counts prefilter candidates that matched.
	PrefilterHits uint64

	// PrefilterMisses counts prefilter candidates that didn't match.
	PrefilterMisses uint64

	// BudgetExceeded counts calls stopped by the step limit or a done context.
	BudgetExceeded uint64
}

// counters is the live, atomically updated form of Stats.
type counters struct {
	matches         atomic.Uint64
	searches        atomic.Uint64
	steps           atomic.Uint64
	backtracks      atomic.Uint64
	prefilterHits   atomic.Uint64
	prefilterMisses atomic.Uint64
	budgetExceeded  atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Matches:         c.matches.Load(),
		Searches:        c.searches.Load(),
		Steps:           c.steps.Load(),
		Backtracks:      c.backtracks.Load(),
		PrefilterHits:   c.prefilterHits.Load(),
		PrefilterMisses: c.prefilterMisses.Load(),
		BudgetExceeded:  c.budgetExceeded.Load(),
	}
}

func (c *counters) reset() {
	c.matches.Store(0)
	c.searches.Store(0)
	c.steps.Store(0)
	c.backtracks.Store(0)
	c.prefilterHits.Store(0)
	c.prefilterMisses.Store(0)
	c.budgetExceeded.Store(0)
}

// finish folds a finished call's budget and error into the counters. The
// backtracker only fails on budget exhaustion or a done context.
func (c *counters) finish(b *backtrack.Budget, err error) {
	c.steps.Add(uint64(b.Steps()))           //nolint:gosec // never negative
	c.backtracks.Add(uint64(b.Backtracks())) //nolint:gosec // never negative
	if err != nil {
		c.budgetExceeded.Add(1)
	}
}
