// Package benchmarks provides performance benchmarks for stanza.
package benchmarks

import (
	"testing"

	"github.com/stanzaql/stanza"
)

// BenchmarkSimpleSelect measures a bare SELECT build.
func BenchmarkSimpleSelect(b *testing.B) {
	q := stanza.Select().From("users")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := q.Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithPredicates measures SELECT with columns, joins and
// multiple parameterized predicates.
func BenchmarkSelectWithPredicates(b *testing.B) {
	q := stanza.Select().
		From("users", "u").
		Columns("u.id", "u.name", "o.total").
		Join("orders", "o", stanza.Expr("o.user_id = u.id")).
		Where("u.active = ?", true).
		Where("u.age >= ?", 21).
		OrderBy("u.name", stanza.Asc).
		Limit(50)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := q.Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInsert measures an INSERT build with four column pairs.
func BenchmarkInsert(b *testing.B) {
	q := stanza.Insert().
		Into("users").
		Set("name", "ada").
		Set("email", "ada@example.com").
		Set("age", 36).
		Set("active", true).
		Returning("id")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := q.Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUnion measures composing two built members, including the
// placeholder renumbering pass over each member's text.
func BenchmarkUnion(b *testing.B) {
	u := stanza.Union().
		Add(stanza.Select().From("orders").Columns("id").Where("status = ?", "open")).
		Add(stanza.Select().From("orders_archive").Columns("id").Where("status = ?", "done"), "union all").
		As("all_orders")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := u.Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCTESelect measures a SELECT with one attached CTE.
func BenchmarkCTESelect(b *testing.B) {
	recent := stanza.Select().
		From("orders").
		Columns("user_id").
		Where("created_at > ?", "2026-01-01")
	q := stanza.Select().
		With(stanza.With().Add("recent", recent)).
		From("users", "u").
		Columns("u.id").
		Where("u.id IN (SELECT user_id FROM recent)")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := q.Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}
