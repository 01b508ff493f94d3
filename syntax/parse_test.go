package syntax

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func lit(c byte) Atom { return Literal(c, One) }

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want Pattern
	}{
		{"", nil},
		{"a", Pattern{lit('a')}},
		{"abc", Pattern{lit('a'), lit('b'), lit('c')}},
		{".", Pattern{Wildcard(One)}},
		{`\*\?\+`, Pattern{lit('*'), lit('?'), lit('+')}},
		{`\\`, Pattern{lit('\\')}},
		{`\.`, Pattern{lit('.')}},
		{`\(\)`, Pattern{lit('('), lit(')')}},
		{"ab?c", Pattern{lit('a'), Literal('b', ZeroOrOne), lit('c')}},
		{"ab*c", Pattern{lit('a'), Literal('b', ZeroOrMore), lit('c')}},
		{"ab+c", Pattern{lit('a'), lit('b'), Literal('b', ZeroOrMore), lit('c')}},
		{".*", Pattern{Wildcard(ZeroOrMore)}},
		{"(abc)", Pattern{Group(Pattern{lit('a'), lit('b'), lit('c')}, One)}},
		{"()", Pattern{Group(nil, One)}},
		{"(ab)?", Pattern{Group(Pattern{lit('a'), lit('b')}, ZeroOrOne)}},
		{"(ab)+", Pattern{
			Group(Pattern{lit('a'), lit('b')}, One),
			Group(Pattern{lit('a'), lit('b')}, ZeroOrMore),
		}},
		{"a(b(c)*)d", Pattern{
			lit('a'),
			Group(Pattern{lit('b'), Group(Pattern{lit('c')}, ZeroOrMore)}, One),
			lit('d'),
		}},
		{`(\))`, Pattern{Group(Pattern{lit(')')}, One)}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.expr, err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.expr, diff)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q).Equal(want) = false", tt.expr)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr string
		code ErrorCode
		pos  int
	}{
		{`\`, ErrUnterminatedEscape, 0},
		{`ab\`, ErrUnterminatedEscape, 2},
		{")", ErrUnmatchedCloseGroup, 0},
		{"a)b", ErrUnmatchedCloseGroup, 1},
		{"(a))", ErrUnmatchedCloseGroup, 3},
		{"(", ErrUnmatchedOpenGroup, 0},
		{"(a(b)", ErrUnmatchedOpenGroup, 0},
		{"a(b(c)", ErrUnmatchedOpenGroup, 1},
		{"a??", ErrDoubleQuantifier, 2},
		{"a**", ErrDoubleQuantifier, 2},
		{"a+*", ErrDoubleQuantifier, 2},
		{"a*+", ErrDoubleQuantifier, 2},
		{"a++", ErrDoubleQuantifier, 2},
		{"(ab)?*", ErrDoubleQuantifier, 5},
		{"*", ErrMissingRepeatArgument, 0},
		{"+a", ErrMissingRepeatArgument, 0},
		{"(?a)", ErrMissingRepeatArgument, 1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Parse(tt.expr)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.expr, p)
			}
			if p != nil {
				t.Errorf("Parse(%q) returned partial pattern %v", tt.expr, p)
			}

			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%q) error type %T, want *Error", tt.expr, err)
			}
			if serr.Code != tt.code {
				t.Errorf("code = %q, want %q", serr.Code, tt.code)
			}
			if serr.Pos != tt.pos {
				t.Errorf("pos = %d, want %d", serr.Pos, tt.pos)
			}
			if serr.Expr != tt.expr {
				t.Errorf("expr = %q, want %q", serr.Expr, tt.expr)
			}
			if !errors.Is(err, &Error{Code: tt.code}) {
				t.Errorf("errors.Is(err, code %q) = false", tt.code)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Parse("(abc")
	want := "error parsing regexp: missing closing ): `(abc`"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestEscapeNeutralizesMetachars(t *testing.T) {
	for _, c := range []byte(`.()?*+\ab`) {
		expr := `\` + string(c)
		p, err := Parse(expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", expr, err)
		}
		if len(p) != 1 || p[0].Kind != KindLiteral || p[0].Char != c || p[0].Quant != One {
			t.Errorf("Parse(%q) = %v, want single literal %q", expr, p, c)
		}
	}
}

func TestPlusCopiesGroup(t *testing.T) {
	p := MustParse("(ab)+")
	if len(p) != 2 {
		t.Fatalf("len = %d, want 2", len(p))
	}
	p[0].Sub[0].Char = 'x'
	if p[1].Sub[0].Char != 'a' {
		t.Error("group copies share their sub-pattern")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("(")
}
