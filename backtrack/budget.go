package backtrack

import (
	"context"
	"errors"

	"github.com/coregx/rx/internal/sparse"
)

// ErrStepLimit is returned when a match exceeds its step budget.
var ErrStepLimit = errors.New("backtrack: step limit exceeded")

// ctxCheckMask controls how often the context is polled (every 256 steps).
const ctxCheckMask = 1<<8 - 1

// Budget bounds the work done by one match call, including the runs started
// for nested groups. A step is charged for every atom evaluation, every
// extra repetition of a ZeroOrMore atom and every backtrack.
//
// A Budget is not safe for concurrent use.
type Budget struct {
	ctx        context.Context
	limit      int
	steps      int
	backtracks int
}

// NewBudget returns a budget allowing limit steps. limit <= 0 disables the
// step limit; ctx is still honored. A nil ctx means context.Background().
func NewBudget(ctx context.Context, limit int) *Budget {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Budget{ctx: ctx, limit: limit}
}

// Steps returns the number of steps charged so far.
func (b *Budget) Steps() int {
	return b.steps
}

// Backtracks returns the number of backtrack invocations so far.
func (b *Budget) Backtracks() int {
	return b.backtracks
}

// Err reports whether the budget's context is already done.
func (b *Budget) Err() error {
	return b.ctx.Err()
}

func (b *Budget) charge() error {
	b.steps++
	if b.limit > 0 && b.steps > b.limit {
		return ErrStepLimit
	}
	if b.steps&ctxCheckMask == 0 {
		return b.ctx.Err()
	}
	return nil
}

// Cache holds scratch space reused across match calls on the same
// goroutine: the length sets of groups that have been backtracked into.
type Cache struct {
	free []*sparse.Set
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// get returns an empty length set.
func (c *Cache) get() *sparse.Set {
	if n := len(c.free); n > 0 {
		s := c.free[n-1]
		c.free = c.free[:n-1]
		return s
	}
	return sparse.New(0)
}

func (c *Cache) put(s *sparse.Set) {
	s.Clear()
	c.free = append(c.free, s)
}
