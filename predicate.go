package stanza

import "fmt"

// Predicate is a boolean condition fragment with positional value
// bindings. The fragment text contains `?` markers, one per value, and
// is always enclosed in parentheses. Predicates are immutable once
// created; And/Or produce new compound predicates whose values are the
// left operand's followed by the right's.
type Predicate struct {
	frag   string
	values []any
}

// Expr creates a predicate from a raw fragment and its bound values.
// Markers are consumed left to right at build time; fragment identifiers
// are emitted as written, never quoted.
func Expr(fragment string, values ...any) *Predicate {
	return &Predicate{frag: "(" + fragment + ")", values: values}
}

// And combines two predicates into a parenthesized conjunction.
func (p *Predicate) And(q *Predicate) *Predicate {
	return p.compose("AND", q)
}

// Or combines two predicates into a parenthesized disjunction.
func (p *Predicate) Or(q *Predicate) *Predicate {
	return p.compose("OR", q)
}

func (p *Predicate) compose(op string, q *Predicate) *Predicate {
	values := make([]any, 0, len(p.values)+len(q.values))
	values = append(values, p.values...)
	values = append(values, q.values...)
	return &Predicate{
		frag:   "(" + p.frag + " " + op + " " + q.frag + ")",
		values: values,
	}
}

// render binds the fragment's markers starting at next and returns the
// rendered text, the values in marker order, and the next free index.
// A marker/value count mismatch is reported rather than guessed at.
func (p *Predicate) render(next int) (string, []any, int, error) {
	text, count, next := bindMarkers(p.frag, next)
	if count != len(p.values) {
		return "", nil, 0, fmt.Errorf("%w: %s has %d markers but %d values",
			ErrMarkerMismatch, p.frag, count, len(p.values))
	}
	return text, p.values, next, nil
}
