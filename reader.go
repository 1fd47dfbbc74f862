package mal

import (
	"strconv"
	"strings"
)

// Reader consumes a token stream with a single-position cursor and produces
// a value tree, applying the reader-macro rewrites along the way.
type Reader struct {
	tokens []*Token
	idx    int
}

func newReader(tokens []*Token) *Reader {
	return &Reader{tokens: tokens}
}

// Current returns the token under the cursor, or nil when exhausted.
func (r *Reader) Current() *Token {
	if r.idx < len(r.tokens) {
		return r.tokens[r.idx]
	}
	return nil
}

// Consume advances the cursor by one token.
func (r *Reader) Consume() {
	r.idx++
}

// skipComments advances the cursor past any comment tokens.
func (r *Reader) skipComments() {
	for tok := r.Current(); tok != nil && tok.Typ == TokenComment; tok = r.Current() {
		r.Consume()
	}
}

// ReadStr parses a single form out of the input string. Empty input (or
// input holding only whitespace and comments) yields ReaderEmptyInput;
// non-whitespace tokens remaining after one complete form yield
// ReaderExtraInput.
func ReadStr(input string) (*Value, error) {
	reader := newReader(tokenize(input))

	reader.skipComments()
	if reader.Current() == nil {
		return nil, &ReaderError{Kind: ReaderEmptyInput}
	}

	form, err := reader.readForm()
	if err != nil {
		return nil, err
	}

	reader.skipComments()
	if tok := reader.Current(); tok != nil {
		return nil, &ReaderError{Kind: ReaderExtraInput, Msg: tok.Val}
	}
	return form, nil
}

// readerMacros maps a sigil to the symbol its rewrite wraps the next form in.
var readerMacros = map[string]string{
	"'":  "quote",
	"`":  "quasiquote",
	"~":  "unquote",
	"~@": "splice-unquote",
	"@":  "deref",
}

// readForm dispatches on the current token: sequences open a recursive
// read, sigils rewrite the following form, everything else is an atom.
func (r *Reader) readForm() (*Value, error) {
	r.skipComments()
	tok := r.Current()
	if tok == nil {
		return nil, readerErrorf("could not read form: input exhausted")
	}

	switch tok.Typ {
	case TokenListOpen:
		seq, err := r.readSeq(TokenListClose, ")")
		if err != nil {
			return nil, err
		}
		return NewList(seq...), nil
	case TokenVectorOpen:
		seq, err := r.readSeq(TokenVectorClose, "]")
		if err != nil {
			return nil, err
		}
		return NewVector(seq...), nil
	case TokenMapOpen:
		seq, err := r.readSeq(TokenMapClose, "}")
		if err != nil {
			return nil, err
		}
		m, err := NewMapFromSeq(seq)
		if err != nil {
			return nil, readerErrorf("bad map literal: %v", err)
		}
		return m, nil
	case TokenListClose, TokenVectorClose, TokenMapClose:
		return nil, readerErrorf("unexpected '%s'", tok.Val)
	}

	if wrapper, ok := readerMacros[tok.Val]; ok {
		r.Consume()
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return NewList(NewSymbol(wrapper), form), nil
	}

	if tok.Val == "^" {
		// ^ meta value reads as (with-meta value meta); note the swap.
		r.Consume()
		meta, err := r.readForm()
		if err != nil {
			return nil, err
		}
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return NewList(NewSymbol("with-meta"), form, meta), nil
	}

	return r.readAtom()
}

// readSeq accumulates forms until the matching close token. The opening
// token is under the cursor on entry.
func (r *Reader) readSeq(close TokenType, closeText string) ([]*Value, error) {
	r.Consume() // opening delimiter

	var seq []*Value
	for {
		r.skipComments()
		tok := r.Current()
		if tok == nil {
			return nil, readerErrorf("expected '%s', got EOF", closeText)
		}
		if tok.Typ == close {
			r.Consume()
			return seq, nil
		}
		form, err := r.readForm()
		if err != nil {
			return nil, err
		}
		seq = append(seq, form)
	}
}

// readAtom classifies an atom token, in order: nil, boolean, integer,
// keyword, string, and symbol as the catch-all.
func (r *Reader) readAtom() (*Value, error) {
	tok := r.Current()
	r.Consume()

	text := tok.Val
	switch text {
	case "nil":
		return Nil, nil
	case "true":
		return True, nil
	case "false":
		return False, nil
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return NewNumber(n), nil
	}

	if strings.HasPrefix(text, ":") {
		return NewKeyword(text[1:]), nil
	}

	if strings.HasPrefix(text, `"`) {
		return readString(text)
	}

	return NewSymbol(text), nil
}

// readString validates a quoted literal and unescapes its body, resolving
// the three escape sequences the language defines: \" to a quote, \n to a
// newline, \\ to a backslash. A quote that is part of an escape does not
// terminate the literal, so the scan decides termination, not the suffix.
func readString(text string) (*Value, error) {
	body := text[1:]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '"':
			return NewString(b.String()), nil
		case c == '\\' && i+1 < len(body):
			i++
			switch body[i] {
			case 'n':
				b.WriteByte('\n')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte('\\')
				b.WriteByte(body[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return nil, readerErrorf("expected '\"', got EOF")
}
