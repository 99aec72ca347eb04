package index

import "fmt"

// resolver groups primitive tokens into selectors with one token of lookahead.
type resolver struct {
	axis     Axis
	tokens   []*Token
	position int
}

// Resolve turns the tokens of one axis into its ordered selectors. A wildcard
// anywhere replaces the whole axis with a single Wildcard selector.
func Resolve(axis Axis, tokens []*Token) ([]Selector, error) {
	r := &resolver{axis: axis, tokens: tokens}
	return r.resolve()
}

func (r *resolver) resolve() ([]Selector, error) {
	sels := make([]Selector, 0, len(r.tokens))
	for {
		tok := r.next()
		if tok == nil {
			break
		}
		switch tok.Type {
		case NumToken:
			if next := r.peek(); next == nil || next.Type != RangeToken {
				sels = append(sels, Single(tok.Num()))
				continue
			}
			rangeTok := r.next()
			switch next := r.peek(); {
			case next == nil:
				sels = append(sels, Range(Bounded(tok.Num()), Unbounded()))
			case next.Type == CommaToken:
				r.next()
				sels = append(sels, Range(Bounded(tok.Num()), Unbounded()))
			case next.Type == NumToken:
				r.next()
				sels = append(sels, Range(Bounded(tok.Num()), Bounded(next.Num())))
			case next.Type == AnyToken:
				// "n~_": the wildcard still replaces the whole axis, on the
				// next iteration
			default:
				return nil, r.errorAt(next, fmt.Sprintf("unexpected %q after range %s%s", next.Text, tok.Text, rangeTok.Text))
			}
		case RangeToken:
			next := r.peek()
			switch {
			case next == nil:
				return nil, r.errorAt(tok, "range marker '~' needs a number after it")
			case next.Type == NumToken:
				r.next()
				sels = append(sels, Range(Unbounded(), Bounded(next.Num())))
			case next.Type == AnyToken:
				// "~_": left for the next iteration, which returns the wildcard
			default:
				return nil, r.errorAt(next, fmt.Sprintf("unexpected %q after range marker '~'", next.Text))
			}
		case CommaToken:
		case AnyToken:
			return []Selector{Wildcard()}, nil
		}
	}

	if len(sels) == 0 {
		return nil, &ExpressionError{Axis: r.axis, Reason: "no selectors given"}
	}
	return sels, nil
}

func (r *resolver) next() *Token {
	if r.position >= len(r.tokens) {
		return nil
	}
	tok := r.tokens[r.position]
	r.position++
	return tok
}

func (r *resolver) peek() *Token {
	if r.position >= len(r.tokens) {
		return nil
	}
	return r.tokens[r.position]
}

func (r *resolver) errorAt(tok *Token, reason string) error {
	return &ExpressionError{
		Axis:   r.axis,
		Col:    tok.Span.Start,
		Text:   tok.Text,
		Reason: reason,
	}
}
