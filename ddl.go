package stanza

import (
	"fmt"
	"strings"
)

// Column is one DDL column definition: a name, a type descriptor, and a
// constraint set rendered in a fixed order (PRIMARY KEY, NOT NULL,
// UNIQUE, REFERENCES). Columns are values; the fluent constraint
// methods return modified copies.
type Column struct {
	name       string
	typ        ColumnType
	primaryKey bool
	notNull    bool
	unique     bool
	refTable   string
	refColumn  string
}

// Col creates a column definition.
func Col(name string, typ ColumnType) Column {
	return Column{name: name, typ: typ}
}

// PrimaryKey marks the column PRIMARY KEY.
func (c Column) PrimaryKey() Column {
	c.primaryKey = true
	return c
}

// NotNull marks the column NOT NULL.
func (c Column) NotNull() Column {
	c.notNull = true
	return c
}

// Unique marks the column UNIQUE.
func (c Column) Unique() Column {
	c.unique = true
	return c
}

// References adds a foreign-key reference to table(column).
func (c Column) References(table, column string) Column {
	c.refTable = table
	c.refColumn = column
	return c
}

func (c Column) render() string {
	var sql strings.Builder
	sql.WriteString(quoteIdent(c.name))
	sql.WriteString(" ")
	sql.WriteString(c.typ.String())
	if c.primaryKey {
		sql.WriteString(" PRIMARY KEY")
	}
	if c.notNull {
		sql.WriteString(" NOT NULL")
	}
	if c.unique {
		sql.WriteString(" UNIQUE")
	}
	if c.refTable != "" {
		sql.WriteString(" REFERENCES ")
		sql.WriteString(quoteIdent(c.refTable))
		sql.WriteString("(")
		sql.WriteString(quoteIdent(c.refColumn))
		sql.WriteString(")")
	}
	return sql.String()
}

type ddlKind int

const (
	ddlCreate ddlKind = iota
	ddlAlter
	ddlDrop
)

// TableBuilder assembles CREATE TABLE, ALTER TABLE or DROP TABLE text.
// DDL statements never carry bound values, so Build returns text alone.
type TableBuilder struct {
	kind        ddlKind
	schema      string
	name        string
	ifNotExists bool
	ifExists    bool
	columns     []Column
}

// CreateTable creates a CREATE TABLE builder for the named table.
func CreateTable(name string) *TableBuilder {
	return &TableBuilder{kind: ddlCreate, name: name}
}

// AlterTable creates an ALTER TABLE builder that adds the configured
// columns to the named table.
func AlterTable(name string) *TableBuilder {
	return &TableBuilder{kind: ddlAlter, name: name}
}

// DropTable creates a DROP TABLE builder for the named table.
func DropTable(name string) *TableBuilder {
	return &TableBuilder{kind: ddlDrop, name: name}
}

// Schema sets an explicit schema prefix, emitted bare with the table
// segment quoted.
func (b *TableBuilder) Schema(schema string) *TableBuilder {
	b.schema = schema
	return b
}

// IfNotExists adds IF NOT EXISTS to a CREATE TABLE.
func (b *TableBuilder) IfNotExists() *TableBuilder {
	b.ifNotExists = true
	return b
}

// IfExists adds IF EXISTS to a DROP TABLE.
func (b *TableBuilder) IfExists() *TableBuilder {
	b.ifExists = true
	return b
}

// AddColumns appends column definitions in order.
func (b *TableBuilder) AddColumns(cols ...Column) *TableBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Clone returns a copy with an independent column list: extending the
// clone does not affect the original's later render.
func (b *TableBuilder) Clone() *TableBuilder {
	c := *b
	c.columns = append([]Column(nil), b.columns...)
	return &c
}

// Build renders the DDL text. CREATE and ALTER require at least one
// column definition.
func (b *TableBuilder) Build() (string, error) {
	if b.name == "" {
		return "", fmt.Errorf("%w: table definition needs a name", ErrNoTable)
	}

	target := quoteIdent(b.name)
	if b.schema != "" {
		target = b.schema + "." + target
	}

	switch b.kind {
	case ddlDrop:
		if b.ifExists {
			return "DROP TABLE IF EXISTS " + target + ";", nil
		}
		return "DROP TABLE " + target + ";", nil

	case ddlAlter:
		if len(b.columns) == 0 {
			return "", fmt.Errorf("%w: ALTER TABLE %s adds nothing", ErrNoColumns, b.name)
		}
		var sql strings.Builder
		sql.WriteString("ALTER TABLE ")
		sql.WriteString(target)
		for i, col := range b.columns {
			if i > 0 {
				sql.WriteString(",")
			}
			sql.WriteString("\n  ADD COLUMN ")
			sql.WriteString(col.render())
		}
		sql.WriteString(";")
		return sql.String(), nil

	default:
		if len(b.columns) == 0 {
			return "", fmt.Errorf("%w: CREATE TABLE %s", ErrNoColumns, b.name)
		}
		var sql strings.Builder
		sql.WriteString("CREATE TABLE ")
		if b.ifNotExists {
			sql.WriteString("IF NOT EXISTS ")
		}
		sql.WriteString(target)
		sql.WriteString(" (")
		for i, col := range b.columns {
			if i > 0 {
				sql.WriteString(",")
			}
			sql.WriteString("\n  ")
			sql.WriteString(col.render())
		}
		sql.WriteString("\n);")
		return sql.String(), nil
	}
}
