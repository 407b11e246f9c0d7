package stanza

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Schema wraps a DBML project and offers builder entry points that
// reject unknown tables up front. Validation here is structural only;
// column references inside fragments are still the caller's
// responsibility.
type Schema struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column
}

// NewSchema creates a Schema from a DBML project, indexing its tables
// and columns for fast validation.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("stanza: project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}
	return s, nil
}

// HasTable reports whether the schema contains the named table.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// HasColumn reports whether the named table contains the named column.
func (s *Schema) HasColumn(table, column string) bool {
	cols, ok := s.columns[table]
	if !ok {
		return false
	}
	_, ok = cols[column]
	return ok
}

func (s *Schema) validate(table string) error {
	if !s.HasTable(table) {
		return fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
	return nil
}

// Select returns a SELECT builder targeting a validated table.
func (s *Schema) Select(table string, alias ...string) (*SelectBuilder, error) {
	if err := s.validate(table); err != nil {
		return nil, err
	}
	return Select().From(table, alias...), nil
}

// Insert returns an INSERT builder targeting a validated table.
func (s *Schema) Insert(table string) (*InsertBuilder, error) {
	if err := s.validate(table); err != nil {
		return nil, err
	}
	return Insert().Into(table), nil
}

// Update returns an UPDATE builder targeting a validated table.
func (s *Schema) Update(table string) (*UpdateBuilder, error) {
	if err := s.validate(table); err != nil {
		return nil, err
	}
	return Update().Table(table), nil
}

// Delete returns a DELETE builder targeting a validated table.
func (s *Schema) Delete(table string, alias ...string) (*DeleteBuilder, error) {
	if err := s.validate(table); err != nil {
		return nil, err
	}
	return Delete().From(table, alias...), nil
}

// CreateTable derives a CREATE TABLE builder from the named table's
// DBML definition, mapping each column's declared type to a descriptor.
// Constraints are not derived; add them via AddColumns on the result or
// alongside the generated columns.
func (s *Schema) CreateTable(name string) (*TableBuilder, error) {
	table, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	b := CreateTable(name)
	for _, col := range table.Columns {
		typ, err := ParseColumnType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("stanza: table %q column %q: %w", name, col.Name, err)
		}
		b.AddColumns(Col(col.Name, typ))
	}
	return b, nil
}
