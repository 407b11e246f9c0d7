package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/stanzaql/stanza"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
	connStr   string
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pc.conn.Exec(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// Query executes a query and returns rows.
func (pc *PostgresContainer) Query(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Rows {
	t.Helper()
	rows, err := pc.conn.Query(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	return rows
}

// setupSchema creates the test tables from stanza DDL builders.
func setupSchema(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	users, err := stanza.CreateTable("users").
		IfNotExists().
		AddColumns(
			stanza.Col("id", stanza.BigSerial()).PrimaryKey(),
			stanza.Col("username", stanza.Varchar(255)).NotNull(),
			stanza.Col("email", stanza.Varchar(255)).NotNull(),
			stanza.Col("age", stanza.Integer()),
			stanza.Col("active", stanza.Boolean()),
		).
		Build()
	if err != nil {
		t.Fatalf("Failed to build users DDL: %v", err)
	}
	pc.Exec(ctx, t, users)

	orders, err := stanza.CreateTable("orders").
		IfNotExists().
		AddColumns(
			stanza.Col("id", stanza.BigSerial()).PrimaryKey(),
			stanza.Col("user_id", stanza.BigInt()).NotNull().References("users", "id"),
			stanza.Col("total", stanza.Numeric(10, 2)).NotNull(),
			stanza.Col("status", stanza.Varchar(50)).NotNull(),
		).
		Build()
	if err != nil {
		t.Fatalf("Failed to build orders DDL: %v", err)
	}
	pc.Exec(ctx, t, orders)
}

// seedData inserts the fixture rows through stanza INSERT builders.
func seedData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	users := []struct {
		name   string
		email  string
		age    int
		active bool
	}{
		{"alice", "alice@example.com", 30, true},
		{"bob", "bob@example.com", 25, true},
		{"charlie", "charlie@example.com", 35, false},
	}
	for _, u := range users {
		st, err := stanza.Insert().
			Into("users").
			Set("username", u.name).
			Set("email", u.email).
			Set("age", u.age).
			Set("active", u.active).
			Build()
		if err != nil {
			t.Fatalf("Failed to build insert: %v", err)
		}
		pc.Exec(ctx, t, st.Text, st.Values...)
	}

	orders := []struct {
		userID int
		total  float64
		status string
	}{
		{1, 99.99, "completed"},
		{1, 149.99, "completed"},
		{2, 49.99, "pending"},
	}
	for _, o := range orders {
		st, err := stanza.Insert().
			Into("orders").
			Set("user_id", o.userID).
			Set("total", o.total).
			Set("status", o.status).
			Build()
		if err != nil {
			t.Fatalf("Failed to build insert: %v", err)
		}
		pc.Exec(ctx, t, st.Text, st.Values...)
	}
}

func cleanupData(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()
	pc.Exec(ctx, t, `TRUNCATE TABLE orders, users RESTART IDENTITY CASCADE`)
}

func TestPostgresSelect(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	defer cleanupData(ctx, t, pc)

	st, err := stanza.Select().
		From("users", "u").
		Columns("u.username").
		Where("u.active = ?", true).
		Where("u.age >= ?", 26).
		OrderBy("u.username", stanza.Asc).
		Build()
	if err != nil {
		t.Fatalf("Failed to build select: %v", err)
	}

	rows := pc.Query(ctx, t, st.Text, st.Values...)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("Failed to scan: %v", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Rows error: %v", err)
	}

	if len(names) != 1 || names[0] != "alice" {
		t.Errorf("Expected [alice], got %v", names)
	}
}

func TestPostgresInsertReturning(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	defer cleanupData(ctx, t, pc)

	st, err := stanza.Insert().
		Into("users").
		Set("username", "diana").
		Set("email", "diana@example.com").
		Set("age", 28).
		Set("active", true).
		Returning("id").
		Build()
	if err != nil {
		t.Fatalf("Failed to build insert: %v", err)
	}

	var id int64
	if err := pc.conn.QueryRow(ctx, st.Text, st.Values...).Scan(&id); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}
	if id == 0 {
		t.Error("Expected a generated id")
	}
}

func TestPostgresUpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	defer cleanupData(ctx, t, pc)

	upd, err := stanza.Update().
		Table("orders").
		Set("status", "void").
		Where("status = ?", "pending").
		Build()
	if err != nil {
		t.Fatalf("Failed to build update: %v", err)
	}
	tag, err := pc.conn.Exec(ctx, upd.Text, upd.Values...)
	if err != nil {
		t.Fatalf("Failed to update: %v\nSQL: %s", err, upd.Text)
	}
	if tag.RowsAffected() != 1 {
		t.Errorf("Expected 1 updated row, got %d", tag.RowsAffected())
	}

	del, err := stanza.Delete().
		From("orders").
		Where("status = ?", "void").
		Build()
	if err != nil {
		t.Fatalf("Failed to build delete: %v", err)
	}
	tag, err = pc.conn.Exec(ctx, del.Text, del.Values...)
	if err != nil {
		t.Fatalf("Failed to delete: %v\nSQL: %s", err, del.Text)
	}
	if tag.RowsAffected() != 1 {
		t.Errorf("Expected 1 deleted row, got %d", tag.RowsAffected())
	}
}

func TestPostgresUnionAndCTE(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)
	seedData(ctx, t, pc)
	defer cleanupData(ctx, t, pc)

	t.Run("union", func(t *testing.T) {
		st, err := stanza.Union().
			Add(stanza.Select().From("users").Columns("id").Where("active = ?", true)).
			Add(stanza.Select().From("users").Columns("id").Where("age > ?", 30), "union").
			As("picked").
			OrderBy("id", stanza.Asc).
			Build()
		if err != nil {
			t.Fatalf("Failed to build union: %v", err)
		}

		rows := pc.Query(ctx, t, st.Text, st.Values...)
		defer rows.Close()

		var ids []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				t.Fatalf("Failed to scan: %v", err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			t.Fatalf("Rows error: %v", err)
		}
		// active users 1,2 plus over-30 user 3, deduplicated by UNION.
		if len(ids) != 3 {
			t.Errorf("Expected 3 ids, got %v", ids)
		}
	})

	t.Run("cte", func(t *testing.T) {
		completed := stanza.Select().
			From("orders").
			Columns("user_id").
			Where("status = ?", "completed")

		st, err := stanza.Select().
			With(stanza.With().Add("buyers", completed)).
			From("users", "u").
			Columns("u.username").
			Where("u.id IN (SELECT user_id FROM buyers)").
			Build()
		if err != nil {
			t.Fatalf("Failed to build cte select: %v", err)
		}

		rows := pc.Query(ctx, t, st.Text, st.Values...)
		defer rows.Close()

		var names []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				t.Fatalf("Failed to scan: %v", err)
			}
			names = append(names, name)
		}
		if err := rows.Err(); err != nil {
			t.Fatalf("Rows error: %v", err)
		}
		if len(names) != 1 || names[0] != "alice" {
			t.Errorf("Expected [alice], got %v", names)
		}
	})
}
