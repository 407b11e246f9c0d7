package stanza

import (
	"fmt"
	"strconv"
	"strings"
)

// UpdateBuilder assembles an UPDATE statement. SET pairs preserve call
// order and consume placeholder indices before WHERE, so WHERE markers
// start after the last SET placeholder.
type UpdateBuilder struct {
	flavor    Flavor
	table     string
	pairs     []colValue
	preds     []*Predicate
	returning []string
}

// Update creates a new UPDATE builder.
func Update() *UpdateBuilder {
	return &UpdateBuilder{}
}

// Table sets the target table.
func (b *UpdateBuilder) Table(table string) *UpdateBuilder {
	b.table = table
	return b
}

// Set adds one SET column/value pair, preserving call order.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.pairs = append(b.pairs, colValue{column: column, value: value})
	return b
}

// Where adds one predicate segment; segments conjoin with AND in call
// order, each wrapped in parentheses.
func (b *UpdateBuilder) Where(fragment string, values ...any) *UpdateBuilder {
	b.preds = append(b.preds, Expr(fragment, values...))
	return b
}

// WherePred adds an already-composed predicate.
func (b *UpdateBuilder) WherePred(p *Predicate) *UpdateBuilder {
	b.preds = append(b.preds, p)
	return b
}

// Returning sets the RETURNING column list.
func (b *UpdateBuilder) Returning(cols ...string) *UpdateBuilder {
	b.returning = append(b.returning, cols...)
	return b
}

// Flavor tags the builder with a dialect. The tag is advisory only.
func (b *UpdateBuilder) Flavor(f Flavor) *UpdateBuilder {
	b.flavor = f
	return b
}

// Clone returns a fully independent copy.
func (b *UpdateBuilder) Clone() *UpdateBuilder {
	c := *b
	c.pairs = append([]colValue(nil), b.pairs...)
	c.preds = append([]*Predicate(nil), b.preds...)
	c.returning = append([]string(nil), b.returning...)
	return &c
}

// Build renders the statement.
func (b *UpdateBuilder) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, fmt.Errorf("%w: UPDATE needs Table()", ErrNoTable)
	}

	var sql strings.Builder
	sql.WriteString("UPDATE ")
	sql.WriteString(quoteQualified(b.table))

	next := 1
	values := make([]any, 0, len(b.pairs))
	if len(b.pairs) > 0 {
		sql.WriteString("\nSET ")
		for i, p := range b.pairs {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(quoteQualified(p.column))
			sql.WriteString(" = $")
			sql.WriteString(strconv.Itoa(next))
			next++
			values = append(values, p.value)
		}
	}

	var err error
	_, values, err = writePredicates(&sql, "\nWHERE ", b.preds, next, values)
	if err != nil {
		return Statement{}, err
	}

	writeReturning(&sql, b.returning)
	return Statement{Text: sql.String(), Values: values}, nil
}
