// Package stanza assembles parameterized SQL statements from composable
// builder objects.
//
// Builders produce SQL text plus a positionally-ordered list of bound
// values; they never execute anything. Configuration is chained, and a
// terminal Build() returns an immutable snapshot:
//
//	q := stanza.Select().
//		From("users", "u").
//		Columns("u.id", "u.name").
//		Where("u.active = ?", true).
//		OrderBy("u.name", stanza.Asc).
//		Limit(10)
//
//	st, err := q.Build()
//	// st.Text:   SELECT ... WHERE (u.active = $1) ...
//	// st.Values: []any{true}
//
// Placeholders in output are $N (1-based); the Nth marker in the text is
// always bound to the Nth entry of Values. Predicate fragments use a `?`
// marker consumed left to right.
//
// # Composition
//
// Independently-built statements can be combined with the Union and With
// (common table expression) composers. Composers renumber placeholders
// across their members with one shared counter, so the flattened values
// list stays in lock-step with the final text:
//
//	u := stanza.Union().
//		Add(recentOrders).
//		Add(archivedOrders, "union all").
//		As("all_orders")
//
// # Schema validation
//
// For validated table and column references, create a Schema from a DBML
// project; its builder entry points reject unknown targets:
//
//	schema, err := stanza.NewSchema(project)
//	q, err := schema.Select("users", "u")
//
// # Mutability
//
// A builder is mutable until Build() is called; Build() itself never
// mutates, so calling it twice without intervening configuration yields
// identical output. Clone() produces a fully independent copy. Builders
// are not safe for concurrent mutation; clone before branching.
package stanza

// Statement is the immutable result of building a parameterized
// statement: SQL text and the values bound to its $N placeholders,
// in placeholder order.
type Statement struct {
	Text   string
	Values []any
}

// StatementBuilder is implemented by every parameterized statement kind
// (Select, Insert, Update, Delete, Union, CTE set).
type StatementBuilder interface {
	Build() (Statement, error)
}

// Flavor tags a builder with the SQL dialect the caller intends to
// execute against. The tag is carried through for the caller's benefit
// and is never enforced; output placeholder syntax is always $N.
type Flavor string

// Supported flavor tags.
const (
	Postgres Flavor = "postgres"
	MySQL    Flavor = "mysql"
	SQLite   Flavor = "sqlite"
)

// Direction represents sort direction in ORDER BY clauses.
type Direction string

// Sort directions.
const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// OrderBy is one (field, direction) pair of an ORDER BY clause.
type OrderBy struct {
	Field     string
	Direction Direction
}
