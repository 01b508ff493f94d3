package literal

import (
	"testing"

	"github.com/coregx/rx/syntax"
)

func TestPrefix(t *testing.T) {
	tests := []struct {
		pattern  string
		want     string
		complete bool
	}{
		{"", "", false},
		{"abc", "abc", true},
		{`a\.c`, "a.c", true},
		{"ab(cd)", "abcd", true},
		{"ab(cd)e", "abcde", true},
		{"(a(b))c", "abc", true},
		{"ab*c", "a", false},
		{"ab+", "ab", false},
		{"ab?", "a", false},
		{"a.c", "a", false},
		{".*abc", "", false},
		{"a(b.)c", "ab", false},
		{"(ab)?c", "", false},
		{"()", "", false},
		{"()ab", "ab", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			lit := Prefix(syntax.MustParse(tt.pattern))
			if string(lit.Bytes) != tt.want {
				t.Errorf("Prefix(%q) = %q, want %q", tt.pattern, lit.Bytes, tt.want)
			}
			if lit.Complete != tt.complete {
				t.Errorf("Prefix(%q).Complete = %v, want %v", tt.pattern, lit.Complete, tt.complete)
			}
			if lit.Len() != len(tt.want) || lit.IsEmpty() != (tt.want == "") {
				t.Errorf("Len/IsEmpty inconsistent for %v", lit)
			}
		})
	}
}

func TestPrefixes(t *testing.T) {
	ps := []syntax.Pattern{syntax.MustParse("foo.*"), syntax.MustParse("bar")}
	lits := Prefixes(ps)
	if len(lits) != 2 || string(lits[0].Bytes) != "foo" || string(lits[1].Bytes) != "bar" {
		t.Errorf("Prefixes = %v", lits)
	}
}

func TestLiteralString(t *testing.T) {
	lit := Literal{Bytes: []byte("test"), Complete: true}
	if got := lit.String(); got != "literal{test, complete=true}" {
		t.Errorf("String() = %q", got)
	}
}
