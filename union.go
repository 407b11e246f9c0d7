package stanza

import (
	"fmt"
	"strings"
)

// UnionBuilder combines already-buildable statements under set
// operators and wraps the result as an aliased derived table. Members
// are rendered in declaration order; their placeholders are renumbered
// with one shared counter so the flattened values list lines up with
// the final text. Outer ORDER BY / LIMIT / OFFSET apply to the wrapper.
type UnionBuilder struct {
	flavor   Flavor
	members  []unionMember
	alias    string
	ordering []OrderBy
	limit    *int
	offset   *int
}

type unionMember struct {
	op   string
	stmt StatementBuilder
}

// Union creates a new set-operation composer.
func Union() *UnionBuilder {
	return &UnionBuilder{}
}

// Add appends a member. The first member carries no operator; each
// subsequent member is tagged with the caller-supplied operator
// ("union", "union all", "intersect", "except"), rendered upper-case
// regardless of input case. A subsequent member added without an
// operator defaults to UNION.
func (b *UnionBuilder) Add(stmt StatementBuilder, op ...string) *UnionBuilder {
	m := unionMember{stmt: stmt}
	if len(op) > 0 {
		m.op = op[0]
	}
	b.members = append(b.members, m)
	return b
}

// As sets the derived-table alias, emitted bare. Required before Build.
func (b *UnionBuilder) As(alias string) *UnionBuilder {
	b.alias = alias
	return b
}

// OrderBy appends one outer (field, direction) pair.
func (b *UnionBuilder) OrderBy(field string, dir Direction) *UnionBuilder {
	b.ordering = append(b.ordering, OrderBy{Field: field, Direction: dir})
	return b
}

// Limit sets the outer LIMIT clause.
func (b *UnionBuilder) Limit(n int) *UnionBuilder {
	b.limit = &n
	return b
}

// Offset sets the outer OFFSET clause.
func (b *UnionBuilder) Offset(n int) *UnionBuilder {
	b.offset = &n
	return b
}

// Flavor tags the builder with a dialect. The tag is advisory only.
func (b *UnionBuilder) Flavor(f Flavor) *UnionBuilder {
	b.flavor = f
	return b
}

// Clone returns an independent copy. Member builders are shared by
// reference; the composer only reads their Build output.
func (b *UnionBuilder) Clone() *UnionBuilder {
	c := *b
	c.members = append([]unionMember(nil), b.members...)
	c.ordering = append([]OrderBy(nil), b.ordering...)
	c.limit = cloneInt(b.limit)
	c.offset = cloneInt(b.offset)
	return &c
}

// Build renders each member, renumbers placeholders across them, and
// wraps the concatenation as SELECT * FROM (...) AS alias.
func (b *UnionBuilder) Build() (Statement, error) {
	if len(b.members) == 0 {
		return Statement{}, ErrNoMembers
	}
	if b.alias == "" {
		return Statement{}, fmt.Errorf("%w: call As()", ErrNoAlias)
	}

	var sql strings.Builder
	sql.WriteString("SELECT * FROM (\n")

	next := 1
	var values []any
	for i, m := range b.members {
		st, err := m.stmt.Build()
		if err != nil {
			return Statement{}, err
		}
		if i > 0 {
			op := strings.ToUpper(strings.TrimSpace(m.op))
			if op == "" {
				op = "UNION"
			}
			sql.WriteString("\n\n")
			sql.WriteString(op)
			sql.WriteString("\n\n")
		}
		var text string
		text, next = renumberPlaceholders(st.Text, next)
		sql.WriteString(text)
		values = append(values, st.Values...)
	}

	sql.WriteString("\n) AS ")
	sql.WriteString(b.alias)

	writeOrdering(&sql, b.ordering)
	writePaging(&sql, b.limit, b.offset)

	return Statement{Text: sql.String(), Values: values}, nil
}
