package stanza

import "strings"

// CTEBuilder composes a WITH clause from named, optionally recursive,
// statement definitions. Entries render in declaration order with one
// shared placeholder counter across all of them; the values list is the
// concatenation of the entries' values in the same order. Building an
// empty set yields an empty statement, a deliberate no-op so an outer
// statement can attach a CTE set unconditionally.
type CTEBuilder struct {
	entries []cteEntry
}

type cteEntry struct {
	name      string
	recursive bool
	stmt      StatementBuilder
}

// With creates a new common-table-expression composer.
func With() *CTEBuilder {
	return &CTEBuilder{}
}

// Add appends a named entry. Names are emitted bare, never quoted.
func (b *CTEBuilder) Add(name string, stmt StatementBuilder) *CTEBuilder {
	b.entries = append(b.entries, cteEntry{name: name, stmt: stmt})
	return b
}

// AddRecursive appends a named entry marked RECURSIVE.
func (b *CTEBuilder) AddRecursive(name string, stmt StatementBuilder) *CTEBuilder {
	b.entries = append(b.entries, cteEntry{name: name, recursive: true, stmt: stmt})
	return b
}

// Len reports the number of entries.
func (b *CTEBuilder) Len() int {
	return len(b.entries)
}

// Clone returns an independent copy. Entry builders are shared by
// reference; the composer only reads their Build output.
func (b *CTEBuilder) Clone() *CTEBuilder {
	return &CTEBuilder{entries: append([]cteEntry(nil), b.entries...)}
}

// Build renders the WITH clause with placeholders numbered from 1.
func (b *CTEBuilder) Build() (Statement, error) {
	text, values, _, err := b.buildFrom(1)
	if err != nil {
		return Statement{}, err
	}
	return Statement{Text: text, Values: values}, nil
}

// buildFrom renders the WITH clause continuing an outer placeholder
// counter, returning the text, the entries' values in declaration
// order, and the next free index.
func (b *CTEBuilder) buildFrom(next int) (string, []any, int, error) {
	if len(b.entries) == 0 {
		return "", nil, next, nil
	}

	var values []any
	parts := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		st, err := e.stmt.Build()
		if err != nil {
			return "", nil, 0, err
		}
		var text string
		text, next = renumberPlaceholders(st.Text, next)
		values = append(values, st.Values...)

		var part strings.Builder
		if e.recursive {
			part.WriteString("RECURSIVE ")
		}
		part.WriteString(e.name)
		part.WriteString(" AS (\n")
		part.WriteString(text)
		part.WriteString("\n)")
		parts = append(parts, part.String())
	}

	return "WITH " + strings.Join(parts, ", "), values, next, nil
}
