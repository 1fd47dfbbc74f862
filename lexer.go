package mal

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenType classifies a token produced by the tokenizer.
type TokenType int

const (
	// TokenListOpen is '('.
	TokenListOpen TokenType = iota

	// TokenListClose is ')'.
	TokenListClose

	// TokenVectorOpen is '['.
	TokenVectorOpen

	// TokenVectorClose is ']'.
	TokenVectorClose

	// TokenMapOpen is '{'.
	TokenMapOpen

	// TokenMapClose is '}'.
	TokenMapClose

	// TokenAtom is everything that stands for a single form: numbers,
	// booleans, nil, keywords, symbols, string literals and the
	// reader-macro sigils.
	TokenAtom

	// TokenComment is ';' to end of line. The reader skips these.
	TokenComment
)

// Token is a single lexical element. Val holds the raw source text of the
// token; string literals keep their surrounding quotes until the reader
// unescapes them.
type Token struct {
	Typ TokenType
	Val string
}

// String returns a human-readable representation of the token for debugging.
func (t *Token) String() string {
	typ := "Unknown"
	switch t.Typ {
	case TokenListOpen:
		typ = "ListOpen"
	case TokenListClose:
		typ = "ListClose"
	case TokenVectorOpen:
		typ = "VectorOpen"
	case TokenVectorClose:
		typ = "VectorClose"
	case TokenMapOpen:
		typ = "MapOpen"
	case TokenMapClose:
		typ = "MapClose"
	case TokenAtom:
		typ = "Atom"
	case TokenComment:
		typ = "Comment"
	}
	return fmt.Sprintf("<Token Typ=%s (%d) Val='%s'>", typ, t.Typ, t.Val)
}

// tokenRegexp splits source text into tokens. Leading whitespace and commas
// are consumed and discarded; the capture group is the token itself. The
// alternatives are, in order: the two-character splice sigil, the single
// special characters (delimiters and sigils), string literals (possibly
// unterminated; the reader rejects those), comments, and the catch-all atom.
var tokenRegexp = regexp.MustCompile(
	`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;[^\n]*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// tokenize converts a source string into a linear token stream. It is a pure
// function; lexical problems (like an unterminated string) surface later in
// the reader, never here.
func tokenize(input string) []*Token {
	var tokens []*Token
	for _, match := range tokenRegexp.FindAllStringSubmatch(input, -1) {
		text := match[1]
		if text == "" {
			continue
		}
		tokens = append(tokens, &Token{Typ: tokenType(text), Val: text})
	}
	return tokens
}

func tokenType(text string) TokenType {
	if strings.HasPrefix(text, ";") {
		return TokenComment
	}
	switch text {
	case "(":
		return TokenListOpen
	case ")":
		return TokenListClose
	case "[":
		return TokenVectorOpen
	case "]":
		return TokenVectorClose
	case "{":
		return TokenMapOpen
	case "}":
		return TokenMapClose
	}
	return TokenAtom
}
