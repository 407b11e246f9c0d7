package stanza

import (
	"fmt"
	"strconv"
	"strings"
)

// colValue is one column/value pair; pair order is preserved and
// becomes parameter order.
type colValue struct {
	column string
	value  any
}

// InsertBuilder assembles an INSERT statement. Columns appear in the
// column list and the VALUES placeholder list in the order Set was
// called.
type InsertBuilder struct {
	flavor    Flavor
	table     string
	pairs     []colValue
	returning []string
}

// Insert creates a new INSERT builder.
func Insert() *InsertBuilder {
	return &InsertBuilder{}
}

// Into sets the target table.
func (b *InsertBuilder) Into(table string) *InsertBuilder {
	b.table = table
	return b
}

// Set adds one column/value pair, preserving insertion order.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	b.pairs = append(b.pairs, colValue{column: column, value: value})
	return b
}

// Returning sets the RETURNING column list.
func (b *InsertBuilder) Returning(cols ...string) *InsertBuilder {
	b.returning = append(b.returning, cols...)
	return b
}

// Flavor tags the builder with a dialect. The tag is advisory only.
func (b *InsertBuilder) Flavor(f Flavor) *InsertBuilder {
	b.flavor = f
	return b
}

// Clone returns a fully independent copy.
func (b *InsertBuilder) Clone() *InsertBuilder {
	c := *b
	c.pairs = append([]colValue(nil), b.pairs...)
	c.returning = append([]string(nil), b.returning...)
	return &c
}

// Build renders the statement. With zero pairs it renders DEFAULT
// VALUES rather than an empty column list.
func (b *InsertBuilder) Build() (Statement, error) {
	if b.table == "" {
		return Statement{}, fmt.Errorf("%w: INSERT needs Into()", ErrNoTable)
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO ")
	sql.WriteString(quoteQualified(b.table))

	values := make([]any, 0, len(b.pairs))
	if len(b.pairs) == 0 {
		sql.WriteString("\nDEFAULT VALUES")
	} else {
		cols := make([]string, len(b.pairs))
		marks := make([]string, len(b.pairs))
		for i, p := range b.pairs {
			cols[i] = quoteQualified(p.column)
			marks[i] = "$" + strconv.Itoa(i+1)
			values = append(values, p.value)
		}
		sql.WriteString(" (")
		sql.WriteString(strings.Join(cols, ", "))
		sql.WriteString(")\nVALUES (")
		sql.WriteString(strings.Join(marks, ", "))
		sql.WriteString(")")
	}

	writeReturning(&sql, b.returning)
	return Statement{Text: sql.String(), Values: values}, nil
}

func writeReturning(sql *strings.Builder, cols []string) {
	if len(cols) == 0 {
		return
	}
	sql.WriteString("\nRETURNING ")
	sql.WriteString(strings.Join(quoteColumns(cols), ", "))
}
