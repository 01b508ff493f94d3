// Package rx provides a small backtracking regex engine.
//
// The syntax is deliberately minimal: literal bytes, `.` for any byte, `\X`
// to escape X, `( )` groups, and the quantifiers `?`, `*` and `+`. There are
// no character classes, anchors or alternation, and input is treated as
// bytes.
//
// Matching is prefix matching: Match reports how many bytes at the start of
// the input the pattern consumes. Find and FindAllIndex search for the
// leftmost start position where a prefix match succeeds.
//
// Basic usage:
//
//	re, err := rx.Compile(`a.*c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, ok := re.MatchString("abcd")
//	fmt.Println(n, ok) // 3 true
//
//	loc := re.FindStringIndex("xxabc")
//	fmt.Println(loc) // [2 5]
//
// Backtracking can take exponential time on patterns such as `(a*)*b`.
// Every call is bounded by Config.MaxSteps; MatchContext additionally
// honors a context deadline.
package rx

import (
	"bytes"
	"context"

	"github.com/coregx/rx/backtrack"
	"github.com/coregx/rx/literal"
	"github.com/coregx/rx/prefilter"
	"github.com/coregx/rx/syntax"
)

// Regex represents a compiled pattern.
//
// A Regex is safe to use concurrently from multiple goroutines, except for
// ResetStats racing with readers of Stats.
type Regex struct {
	expr      string
	prog      syntax.Pattern
	matcher   *backtrack.Matcher
	prefix    literal.Literal
	prefilter prefilter.Prefilter
	config    Config
	stats     counters
}

// Compile compiles a pattern with DefaultConfig.
//
// Example:
//
//	re, err := rx.Compile(`(ab)+c`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(expr string) (*Regex, error) {
	return CompileWithConfig(expr, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var version = rx.MustCompile(`v.\..`)
func MustCompile(expr string) *Regex {
	re, err := Compile(expr)
	if err != nil {
		panic("rx: Compile(`" + expr + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Returns a *ConfigError if config is invalid, or a *syntax.Error if the
// pattern cannot be parsed.
//
// Example:
//
//	config := rx.DefaultConfig()
//	config.GroupAlternatives = false
//	re, err := rx.CompileWithConfig("(a*)b", config)
func CompileWithConfig(expr string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	prog, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		expr:    expr,
		prog:    prog,
		matcher: backtrack.New(prog, matcherConfig(config)),
		prefix:  literal.Prefix(prog),
		config:  config,
	}
	if config.EnablePrefilter {
		re.prefilter = prefilter.New([]literal.Literal{re.prefix})
	}
	return re, nil
}

func matcherConfig(c Config) backtrack.Config {
	return backtrack.Config{
		MaxSteps:          c.MaxSteps,
		GroupAlternatives: c.GroupAlternatives,
	}
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.expr
}

// Pattern returns the compiled atom sequence. The result is shared and must
// not be modified.
func (r *Regex) Pattern() syntax.Pattern {
	return r.prog
}

// Match reports the number of bytes at the start of b matched by the
// pattern. ok is false if there is no match.
//
// A call stopped by the step limit reports no match; use MatchContext to
// tell the two apart.
//
// Example:
//
//	re := rx.MustCompile(`a*`)
//	n, ok := re.Match([]byte("aaab"))
//	// n == 3, ok == true
func (r *Regex) Match(b []byte) (n int, ok bool) {
	n, ok, _ = r.MatchContext(context.Background(), b)
	return n, ok
}

// MatchString is like Match but matches against a string.
func (r *Regex) MatchString(s string) (n int, ok bool) {
	return r.Match([]byte(s))
}

// MatchContext is like Match but returns an error when the step limit is
// exceeded (backtrack.ErrStepLimit) or ctx is done. No match is not an error.
func (r *Regex) MatchContext(ctx context.Context, b []byte) (n int, ok bool, err error) {
	r.stats.matches.Add(1)
	if err := ctx.Err(); err != nil {
		r.stats.budgetExceeded.Add(1)
		return 0, false, err
	}
	if !bytes.HasPrefix(b, r.prefix.Bytes) {
		return 0, false, nil
	}
	if r.prefix.Complete {
		return r.prefix.Len(), true, nil
	}

	budget := backtrack.NewBudget(ctx, r.config.MaxSteps)
	n, ok, err = r.matcher.MatchWith(budget, nil, b)
	r.stats.finish(budget, err)
	return n, ok, err
}

// FindIndex returns a two-element slice holding the location of the
// leftmost match in b: the match is b[loc[0]:loc[1]]. It returns nil if
// there is no match.
//
// Example:
//
//	re := rx.MustCompile(`b+`)
//	loc := re.FindIndex([]byte("aabbbc"))
//	// loc == []int{2, 5}
func (r *Regex) FindIndex(b []byte) []int {
	loc, _ := r.FindIndexContext(context.Background(), b)
	return loc
}

// FindIndexContext is like FindIndex but reports budget and context errors.
// The step limit applies to the whole search, not to each start position.
func (r *Regex) FindIndexContext(ctx context.Context, b []byte) ([]int, error) {
	r.stats.searches.Add(1)
	s := r.newSearch(ctx)
	start, end, _, err := s.find(b, 0)
	r.stats.finish(s.budget, err)
	if err != nil || start < 0 {
		return nil, err
	}
	return []int{start, end}, nil
}

// Find returns the text of the leftmost match in b, or nil.
func (r *Regex) Find(b []byte) []byte {
	loc := r.FindIndex(b)
	if loc == nil {
		return nil
	}
	return b[loc[0]:loc[1]:loc[1]]
}

// FindString returns the text of the leftmost match in s, or "" if there is
// none. Use FindStringIndex to tell an empty match from no match.
func (r *Regex) FindString(s string) string {
	loc := r.FindIndex([]byte(s))
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringIndex is like FindIndex but searches a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAllIndex returns the locations of successive non-overlapping matches.
// If n >= 0 at most n matches are returned. An empty match directly after
// the previous match is skipped, as in the stdlib regexp package.
//
// Example:
//
//	re := rx.MustCompile(`ab`)
//	locs := re.FindAllIndex([]byte("ab-ab"), -1)
//	// locs == [][]int{{0, 2}, {3, 5}}
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}
	r.stats.searches.Add(1)
	s := r.newSearch(context.Background())

	var (
		out     [][]int
		err     error
		prevEnd = -1
	)
	for at := 0; at <= len(b) && (n < 0 || len(out) < n); {
		var start, end int
		start, end, _, err = s.find(b, at)
		if err != nil || start < 0 {
			break
		}
		if start == end && start == prevEnd {
			at = start + 1
			continue
		}
		out = append(out, []int{start, end})
		prevEnd = end
		if end == start {
			at = end + 1
		} else {
			at = end
		}
	}
	r.stats.finish(s.budget, err)
	return out
}

// FindAllString returns the text of successive non-overlapping matches.
func (r *Regex) FindAllString(s string, n int) []string {
	locs := r.FindAllIndex([]byte(s), n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// Stats returns a snapshot of the execution counters.
func (r *Regex) Stats() Stats {
	return r.stats.snapshot()
}

// ResetStats clears the execution counters.
func (r *Regex) ResetStats() {
	r.stats.reset()
}

func (r *Regex) newSearch(ctx context.Context) *search {
	s := newSearch(ctx, r.config, r.prefilter, &r.stats)
	s.try = func(b []byte) (int, int, bool, error) {
		if !bytes.HasPrefix(b, r.prefix.Bytes) {
			return 0, 0, false, nil
		}
		n, ok, err := r.matcher.MatchWith(s.budget, s.cache, b)
		return n, 0, ok, err
	}
	return s
}

// QuoteMeta returns s with every metacharacter escaped, so the result
// matches s literally.
//
// Example:
//
//	rx.QuoteMeta("1+1=2?") // `1\+1=2\?`
func QuoteMeta(s string) string {
	const special = `\.()?*+`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
