package index

import (
	"encoding/json"
	"fmt"
)

// TokenType represents the different types of primitive tokens.
type TokenType string

const (
	NumToken   TokenType = "n" // Signed integer literal
	CommaToken TokenType = "," // Selector separator
	RangeToken TokenType = "~" // Range marker
	AnyToken   TokenType = "_" // Wildcard marker
)

// Span represents the start and end columns of a token within the whole
// expression. Columns are 1-based and End is exclusive.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// MarshalJSON implements custom JSON marshaling for Span.
func (s Span) MarshalJSON() ([]byte, error) {
	arr := [2]int{s.Start, s.End}
	return json.Marshal(arr)
}

// UnmarshalJSON implements custom JSON unmarshaling for Span.
func (s *Span) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	s.Start = arr[0]
	s.End = arr[1]
	return nil
}

// Token represents a single primitive token of an axis expression.
type Token struct {
	Text string    `json:"text"`
	Span Span      `json:"span"`
	Type TokenType `json:"type"`
	Axis Axis      `json:"axis"`

	// Numeric token fields
	Value *int `json:"value,omitempty"`
}

// NewToken creates a new token with the basic required fields.
func NewToken(text string, tokenType TokenType, span Span) *Token {
	return &Token{
		Text: text,
		Type: tokenType,
		Span: span,
	}
}

// NewNumToken creates a new numeric token carrying its parsed value.
func NewNumToken(text string, value int, span Span) *Token {
	return &Token{
		Text:  text,
		Type:  NumToken,
		Span:  span,
		Value: &value,
	}
}

// Num returns the value of a numeric token.
func (t *Token) Num() int {
	if t.Value == nil {
		return 0
	}
	return *t.Value
}

func (t *Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Type, t.Text)
}
