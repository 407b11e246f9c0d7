package stanza

import (
	"fmt"
	"strconv"
	"strings"
)

// SelectBuilder assembles a SELECT statement. Clauses render in a fixed
// order: output list, FROM, JOINs, WHERE, GROUP BY, HAVING, ORDER BY,
// LIMIT/OFFSET. Placeholder indices are assigned in that same order by
// one running counter, so JOIN ON values precede WHERE values, which
// precede HAVING values.
type SelectBuilder struct {
	flavor   Flavor
	table    string
	alias    string
	distinct bool
	columns  []string
	joins    []joinClause
	preds    []*Predicate
	groupBy  []string
	having   []*Predicate
	ordering []OrderBy
	limit    *int
	offset   *int
	ctes     *CTEBuilder
}

type joinClause struct {
	kind  string
	table string
	alias string
	on    *Predicate
}

// Select creates a new SELECT builder. The target table is required
// before Build; everything else is optional.
func Select() *SelectBuilder {
	return &SelectBuilder{}
}

// From sets the target table and an optional alias. The alias is
// emitted bare, never quoted.
func (b *SelectBuilder) From(table string, alias ...string) *SelectBuilder {
	b.table = table
	if len(alias) > 0 {
		b.alias = alias[0]
	}
	return b
}

// Columns sets the ordered output list. Each entry is dot-split and
// quoted per segment ("u.id" renders as "u"."id"); a trailing *
// wildcard stays bare. With no columns the output list is *.
func (b *SelectBuilder) Columns(cols ...string) *SelectBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Distinct marks the output list DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.distinct = true
	return b
}

// Where adds one predicate segment. Repeated calls conjoin with AND,
// each segment wrapped in parentheses, in call order. The fragment's
// `?` markers bind the values left to right.
func (b *SelectBuilder) Where(fragment string, values ...any) *SelectBuilder {
	b.preds = append(b.preds, Expr(fragment, values...))
	return b
}

// WherePred adds an already-composed predicate.
func (b *SelectBuilder) WherePred(p *Predicate) *SelectBuilder {
	b.preds = append(b.preds, p)
	return b
}

// Join adds an inner join with a predicate ON clause.
func (b *SelectBuilder) Join(table, alias string, on *Predicate) *SelectBuilder {
	b.joins = append(b.joins, joinClause{kind: "JOIN", table: table, alias: alias, on: on})
	return b
}

// LeftJoin adds a left outer join with a predicate ON clause.
func (b *SelectBuilder) LeftJoin(table, alias string, on *Predicate) *SelectBuilder {
	b.joins = append(b.joins, joinClause{kind: "LEFT JOIN", table: table, alias: alias, on: on})
	return b
}

// GroupBy adds GROUP BY fields.
func (b *SelectBuilder) GroupBy(fields ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, fields...)
	return b
}

// Having adds one HAVING predicate segment; segments conjoin with AND.
// HAVING markers are numbered after WHERE's.
func (b *SelectBuilder) Having(fragment string, values ...any) *SelectBuilder {
	b.having = append(b.having, Expr(fragment, values...))
	return b
}

// OrderBy appends one (field, direction) pair. The field is quoted; the
// direction is emitted as literal text, upper-cased.
func (b *SelectBuilder) OrderBy(field string, dir Direction) *SelectBuilder {
	b.ordering = append(b.ordering, OrderBy{Field: field, Direction: dir})
	return b
}

// Limit sets the LIMIT clause. Emitted as literal text, never
// parameterized.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

// Offset sets the OFFSET clause.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// With attaches a CTE set. An empty set is a no-op at build time, so a
// caller can attach unconditionally.
func (b *SelectBuilder) With(ctes *CTEBuilder) *SelectBuilder {
	b.ctes = ctes
	return b
}

// Flavor tags the builder with a dialect. The tag is advisory only.
func (b *SelectBuilder) Flavor(f Flavor) *SelectBuilder {
	b.flavor = f
	return b
}

// Clone returns a fully independent copy: mutating either builder
// afterwards is not observable in the other's output.
func (b *SelectBuilder) Clone() *SelectBuilder {
	c := *b
	c.columns = append([]string(nil), b.columns...)
	c.joins = append([]joinClause(nil), b.joins...)
	c.preds = append([]*Predicate(nil), b.preds...)
	c.groupBy = append([]string(nil), b.groupBy...)
	c.having = append([]*Predicate(nil), b.having...)
	c.ordering = append([]OrderBy(nil), b.ordering...)
	c.limit = cloneInt(b.limit)
	c.offset = cloneInt(b.offset)
	if b.ctes != nil {
		c.ctes = b.ctes.Clone()
	}
	return &c
}

// Build renders the statement. It does not mutate the builder; an
// unmutated builder builds to byte-identical output every time.
func (b *SelectBuilder) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, fmt.Errorf("%w: SELECT needs From()", ErrNoTable)
	}

	next := 1
	var values []any
	var prefix string

	if b.ctes != nil {
		text, vals, n, err := b.ctes.buildFrom(next)
		if err != nil {
			return Statement{}, err
		}
		prefix, next = text, n
		values = append(values, vals...)
	}

	var sql strings.Builder
	sql.WriteString("SELECT")
	if b.distinct {
		sql.WriteString(" DISTINCT")
	}
	if len(b.columns) == 0 {
		sql.WriteString("\n *")
	} else {
		for i, col := range b.columns {
			if i > 0 {
				sql.WriteString(",")
			}
			sql.WriteString("\n ")
			sql.WriteString(quoteQualified(col))
		}
	}

	sql.WriteString("\nFROM ")
	sql.WriteString(renderTarget("", b.table, b.alias))

	for _, j := range b.joins {
		sql.WriteString("\n")
		sql.WriteString(j.kind)
		sql.WriteString(" ")
		sql.WriteString(renderTarget("", j.table, j.alias))
		if j.on != nil {
			text, vals, n, err := j.on.render(next)
			if err != nil {
				return Statement{}, err
			}
			next = n
			values = append(values, vals...)
			sql.WriteString(" ON ")
			sql.WriteString(text)
		}
	}

	var err error
	next, values, err = writePredicates(&sql, "\nWHERE ", b.preds, next, values)
	if err != nil {
		return Statement{}, err
	}

	if len(b.groupBy) > 0 {
		sql.WriteString("\nGROUP BY ")
		sql.WriteString(strings.Join(quoteColumns(b.groupBy), ", "))
	}

	next, values, err = writePredicates(&sql, "\nHAVING ", b.having, next, values)
	if err != nil {
		return Statement{}, err
	}
	_ = next

	writeOrdering(&sql, b.ordering)
	writePaging(&sql, b.limit, b.offset)

	text := sql.String()
	if prefix != "" {
		text = prefix + "\n" + text
	}
	return Statement{Text: text, Values: values}, nil
}

// writePredicates renders a conjoined predicate clause, continuing the
// running placeholder counter.
func writePredicates(sql *strings.Builder, keyword string, preds []*Predicate, next int, values []any) (int, []any, error) {
	if len(preds) == 0 {
		return next, values, nil
	}
	sql.WriteString(keyword)
	for i, p := range preds {
		if i > 0 {
			sql.WriteString(" AND ")
		}
		text, vals, n, err := p.render(next)
		if err != nil {
			return 0, nil, err
		}
		next = n
		values = append(values, vals...)
		sql.WriteString(text)
	}
	return next, values, nil
}

func writeOrdering(sql *strings.Builder, ordering []OrderBy) {
	if len(ordering) == 0 {
		return
	}
	sql.WriteString("\nORDER BY ")
	for i, o := range ordering {
		if i > 0 {
			sql.WriteString(", ")
		}
		sql.WriteString(quoteQualified(o.Field))
		sql.WriteString(" ")
		sql.WriteString(strings.ToUpper(string(o.Direction)))
	}
}

func writePaging(sql *strings.Builder, limit, offset *int) {
	switch {
	case limit != nil && offset != nil:
		sql.WriteString("\nLIMIT " + strconv.Itoa(*limit) + " OFFSET " + strconv.Itoa(*offset))
	case limit != nil:
		sql.WriteString("\nLIMIT " + strconv.Itoa(*limit))
	case offset != nil:
		sql.WriteString("\nOFFSET " + strconv.Itoa(*offset))
	}
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
