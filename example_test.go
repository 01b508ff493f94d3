package rx_test

import (
	"fmt"

	"github.com/coregx/rx"
)

// ExampleCompile demonstrates basic pattern compilation and matching.
func ExampleCompile() {
	re, err := rx.Compile(`a.*c`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("abcd"))
	// Output: 3 true
}

// ExampleRegex_Match shows that matches are anchored at the start of the
// input but need not consume all of it.
func ExampleRegex_Match() {
	re := rx.MustCompile(`(ab)+`)
	fmt.Println(re.Match([]byte("ababx")))
	fmt.Println(re.Match([]byte("xabab")))
	// Output:
	// 4 true
	// 0 false
}

// ExampleRegex_FindIndex demonstrates a leftmost search.
func ExampleRegex_FindIndex() {
	re := rx.MustCompile(`b+`)
	loc := re.FindIndex([]byte("aabbbc"))
	fmt.Printf("Match at [%d:%d]\n", loc[0], loc[1])
	// Output: Match at [2:5]
}

// ExampleRegex_FindAllString demonstrates finding every match.
func ExampleRegex_FindAllString() {
	re := rx.MustCompile(`a.`)
	fmt.Println(re.FindAllString("ab ac ad", -1))
	// Output: [ab ac ad]
}

// ExampleQuoteMeta demonstrates escaping metacharacters.
func ExampleQuoteMeta() {
	fmt.Println(rx.QuoteMeta("1+1=2?"))
	// Output: 1\+1=2\?
}

// ExampleSet_FindIndex demonstrates a search over several patterns.
func ExampleSet_FindIndex() {
	set, err := rx.CompileSet([]string{"GET /.*", "POST /.*"}, rx.DefaultConfig())
	if err != nil {
		panic(err)
	}
	loc, idx := set.FindIndex([]byte("> POST /login"))
	fmt.Println(loc, idx)
	// Output: [2 13] 1
}

// ExampleRegex_Pattern prints the compiled atom sequence.
func ExampleRegex_Pattern() {
	re := rx.MustCompile(`a+.`)
	fmt.Println(re.Pattern())
	// Output: [Literal{'a', One} Literal{'a', ZeroOrMore} Wildcard{One}]
}
