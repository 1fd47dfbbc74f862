package mal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	atom := func(v string) *Token { return &Token{Typ: TokenAtom, Val: v} }

	tests := []struct {
		name  string
		input string
		want  []*Token
	}{
		{
			name:  "simple call",
			input: "(+ 1 2)",
			want: []*Token{
				{Typ: TokenListOpen, Val: "("},
				atom("+"), atom("1"), atom("2"),
				{Typ: TokenListClose, Val: ")"},
			},
		},
		{
			name:  "commas are whitespace",
			input: "[1,,2, 3]",
			want: []*Token{
				{Typ: TokenVectorOpen, Val: "["},
				atom("1"), atom("2"), atom("3"),
				{Typ: TokenVectorClose, Val: "]"},
			},
		},
		{
			name:  "map braces",
			input: `{:a 1}`,
			want: []*Token{
				{Typ: TokenMapOpen, Val: "{"},
				atom(":a"), atom("1"),
				{Typ: TokenMapClose, Val: "}"},
			},
		},
		{
			name:  "string literal with escapes stays raw",
			input: `"a\"b"`,
			want:  []*Token{atom(`"a\"b"`)},
		},
		{
			name:  "string literal with spaces",
			input: `"hello world"`,
			want:  []*Token{atom(`"hello world"`)},
		},
		{
			name:  "comment runs to end of line",
			input: "1 ; the rest\n2",
			want: []*Token{
				atom("1"),
				{Typ: TokenComment, Val: "; the rest"},
				atom("2"),
			},
		},
		{
			name:  "splice sigil is one token",
			input: "~@(a)",
			want: []*Token{
				atom("~@"),
				{Typ: TokenListOpen, Val: "("},
				atom("a"),
				{Typ: TokenListClose, Val: ")"},
			},
		},
		{
			name:  "single-character sigils",
			input: "'x `y @z ^m",
			want: []*Token{
				atom("'"), atom("x"),
				atom("`"), atom("y"),
				atom("@"), atom("z"),
				atom("^"), atom("m"),
			},
		},
		{
			name:  "empty input",
			input: "   , \t ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tok := &Token{Typ: TokenAtom, Val: "abc"}
	if got := tok.String(); got != "<Token Typ=Atom (6) Val='abc'>" {
		t.Errorf("Token.String() = %q", got)
	}
}
