package index

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Tokenizer turns the text of one axis into primitive tokens.
type Tokenizer struct {
	axis     Axis
	input    string
	base     int // columns of the expression that precede input
	position int
	numStart int // start of the pending numeric literal, -1 when empty
	tokens   []*Token
}

// NewTokenizer creates a tokenizer for the text of a single axis.
func NewTokenizer(axis Axis, input string) *Tokenizer {
	return newTokenizerAt(axis, input, 0)
}

func newTokenizerAt(axis Axis, input string, base int) *Tokenizer {
	return &Tokenizer{
		axis:     axis,
		input:    input,
		base:     base,
		numStart: -1,
		tokens:   make([]*Token, 0),
	}
}

// Tokenize scans the whole input and returns the tokens found. Scanning
// stops at the first wildcard marker; anything after it is ignored.
func (t *Tokenizer) Tokenize() ([]*Token, error) {
scan:
	for t.position < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.position:])
		switch {
		case r == '-' || isDigit(r):
			if t.numStart < 0 {
				t.numStart = t.position
			}
		case r == ',':
			if err := t.flushNum(); err != nil {
				return t.tokens, err
			}
			t.emit(CommaToken, size)
		case r == '~':
			if err := t.flushNum(); err != nil {
				return t.tokens, err
			}
			t.emit(RangeToken, size)
		case r == '_':
			t.emit(AnyToken, size)
			t.position += size
			break scan
		default:
			return t.tokens, &ExpressionError{
				Axis:   t.axis,
				Col:    t.column(t.position),
				Text:   string(r),
				Reason: fmt.Sprintf("unexpected character %q", r),
			}
		}
		t.position += size
	}

	if err := t.flushNum(); err != nil {
		return t.tokens, err
	}
	return t.tokens, nil
}

// flushNum finalizes the pending numeric literal, if any.
func (t *Tokenizer) flushNum() error {
	if t.numStart < 0 {
		return nil
	}
	start := t.numStart
	t.numStart = -1

	// After a wildcard the scan position has already moved past it.
	text := numericPrefix(t.input[start:t.position])
	span := Span{Start: t.column(start), End: t.column(start + len(text))}
	n, err := strconv.Atoi(text)
	if err != nil {
		return &ExpressionError{
			Axis:   t.axis,
			Col:    span.Start,
			Text:   text,
			Reason: fmt.Sprintf("malformed number %q", text),
		}
	}
	tok := NewNumToken(text, n, span)
	tok.Axis = t.axis
	t.tokens = append(t.tokens, tok)
	return nil
}

func (t *Tokenizer) emit(tokenType TokenType, size int) {
	span := Span{Start: t.column(t.position), End: t.column(t.position + size)}
	tok := NewToken(t.input[t.position:t.position+size], tokenType, span)
	tok.Axis = t.axis
	t.tokens = append(t.tokens, tok)
}

func (t *Tokenizer) column(pos int) int {
	return t.base + pos + 1
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// numericPrefix returns the leading run of digits and minus signs.
func numericPrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != '-' && !isDigit(rune(s[i])) {
			return s[:i]
		}
	}
	return s
}
