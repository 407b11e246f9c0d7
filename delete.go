package stanza

import (
	"fmt"
	"strings"
)

// DeleteBuilder assembles a DELETE statement.
type DeleteBuilder struct {
	flavor Flavor
	table  string
	alias  string
	preds  []*Predicate
}

// Delete creates a new DELETE builder.
func Delete() *DeleteBuilder {
	return &DeleteBuilder{}
}

// From sets the target table and an optional bare alias.
func (b *DeleteBuilder) From(table string, alias ...string) *DeleteBuilder {
	b.table = table
	if len(alias) > 0 {
		b.alias = alias[0]
	}
	return b
}

// Where adds one predicate segment; segments conjoin with AND in call
// order, each wrapped in parentheses.
func (b *DeleteBuilder) Where(fragment string, values ...any) *DeleteBuilder {
	b.preds = append(b.preds, Expr(fragment, values...))
	return b
}

// WherePred adds an already-composed predicate.
func (b *DeleteBuilder) WherePred(p *Predicate) *DeleteBuilder {
	b.preds = append(b.preds, p)
	return b
}

// Flavor tags the builder with a dialect. The tag is advisory only.
func (b *DeleteBuilder) Flavor(f Flavor) *DeleteBuilder {
	b.flavor = f
	return b
}

// Clone returns a fully independent copy.
func (b *DeleteBuilder) Clone() *DeleteBuilder {
	c := *b
	c.preds = append([]*Predicate(nil), b.preds...)
	return &c
}

// Build renders the statement.
func (b *DeleteBuilder) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, fmt.Errorf("%w: DELETE needs From()", ErrNoTable)
	}

	var sql strings.Builder
	sql.WriteString("DELETE FROM ")
	sql.WriteString(renderTarget("", b.table, b.alias))

	var values []any
	var err error
	_, values, err = writePredicates(&sql, "\nWHERE ", b.preds, 1, values)
	if err != nil {
		return Statement{}, err
	}

	return Statement{Text: sql.String(), Values: values}, nil
}
