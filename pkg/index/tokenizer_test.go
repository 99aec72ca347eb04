package index

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// kinds flattens tokens into "type:text" pairs for comparison.
func kinds(tokens []*Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = string(tok.Type) + ":" + tok.Text
	}
	return out
}

func TestBasicTokenisation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty input", "", []string{}},
		{"Single number", "12", []string{"n:12"}},
		{"Negative number", "-4", []string{"n:-4"}},
		{"Comma list", "3,1,2", []string{"n:3", ",:,", "n:1", ",:,", "n:2"}},
		{"Bounded range", "-4~6", []string{"n:-4", "~:~", "n:6"}},
		{"Open upper range", "2~", []string{"n:2", "~:~"}},
		{"Open lower range", "~3", []string{"~:~", "n:3"}},
		{"Leading comma", ",1", []string{",:,", "n:1"}},
		{"Doubled comma", "1,,2", []string{"n:1", ",:,", ",:,", "n:2"}},
		{"Wildcard", "_", []string{"_:_"}},
		{"Wildcard stops scanning", "1,_,x;y", []string{"n:1", ",:,", "_:_"}},
		{"Number before wildcard", "12_", []string{"_:_", "n:12"}},
		{"Zero is accepted", "0", []string{"n:0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewTokenizer(Rows, tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, kinds(tokens)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumericTokenValues(t *testing.T) {
	tokens, err := NewTokenizer(Columns, "-10~7").Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	if tokens[0].Value == nil || *tokens[0].Value != -10 {
		t.Errorf("Expected value -10, got %v", tokens[0].Value)
	}
	if tokens[2].Num() != 7 {
		t.Errorf("Expected value 7, got %d", tokens[2].Num())
	}
	if tokens[1].Value != nil {
		t.Errorf("Expected range token to carry no value")
	}
}

func TestTokenSpans(t *testing.T) {
	tokens, err := newTokenizerAt(Columns, "10~-2", 4).Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []Span{{Start: 5, End: 7}, {Start: 7, End: 8}, {Start: 8, End: 10}}
	got := make([]Span, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Span
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		col   int
	}{
		{"Letter", "1,a", 3},
		{"Semicolon", "1;2", 2},
		{"Space", "1 2", 2},
		{"Plus sign", "+1", 1},
		{"Lone minus", "-", 1},
		{"Double minus", "--3", 1},
		{"Trailing minus", "3-", 1},
		{"Minus before range", "-~2", 1},
		{"Overflow", "99999999999999999999999", 1},
		{"Non-ASCII", "1,é", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenizer(Rows, tt.input).Tokenize()
			if err == nil {
				t.Fatalf("Expected an error, but got none")
			}
			if !errors.Is(err, ErrInvalidExpression) {
				t.Errorf("Expected ErrInvalidExpression, got %v", err)
			}
			var exprErr *ExpressionError
			if !errors.As(err, &exprErr) {
				t.Fatalf("Expected *ExpressionError, got %T", err)
			}
			if exprErr.Col != tt.col {
				t.Errorf("Expected column %d, got %d", tt.col, exprErr.Col)
			}
			if exprErr.Axis != Rows {
				t.Errorf("Expected row axis, got %s", exprErr.Axis)
			}
		})
	}
}

func TestTokenJSONSerialization(t *testing.T) {
	tokens, err := NewTokenizer(Rows, "4~").Tokenize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := json.Marshal(tokens)
	if err != nil {
		t.Fatalf("Failed to marshal tokens: %v", err)
	}
	want := `[{"text":"4","span":[1,2],"type":"n","axis":"row","value":4},{"text":"~","span":[2,3],"type":"~","axis":"row"}]`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}

	var back []*Token
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Failed to unmarshal tokens: %v", err)
	}
	if back[0].Span != tokens[0].Span || back[0].Num() != 4 || back[1].Axis != Rows {
		t.Errorf("Round trip lost data: %+v", back[0])
	}
}

func TestTokenizeExpression(t *testing.T) {
	tokens, err := TokenizeExpression("-1;2~")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"n:-1", "n:2", "~:~"}, kinds(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	wantAxes := []Axis{Rows, Columns, Columns}
	wantStarts := []int{1, 4, 5}
	for i, tok := range tokens {
		if tok.Axis != wantAxes[i] {
			t.Errorf("token %d: expected %s axis, got %s", i, wantAxes[i], tok.Axis)
		}
		if tok.Span.Start != wantStarts[i] {
			t.Errorf("token %d: expected start column %d, got %d", i, wantStarts[i], tok.Span.Start)
		}
	}

	for _, expr := range []string{"1", "1;x", "a;1"} {
		if _, err := TokenizeExpression(expr); !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("TokenizeExpression(%q): expected ErrInvalidExpression, got %v", expr, err)
		}
	}
}

func TestAxisText(t *testing.T) {
	var axis Axis
	if err := axis.UnmarshalText([]byte("column")); err != nil || axis != Columns {
		t.Errorf("Expected column axis, got %s (%v)", axis, err)
	}
	if err := axis.UnmarshalText([]byte("diagonal")); err == nil {
		t.Errorf("Expected an error for an unknown axis")
	}
}
