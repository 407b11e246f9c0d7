package stanza

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableBuild(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		sql, err := CreateTable("users").
			IfNotExists().
			AddColumns(
				Col("id", Serial()).PrimaryKey(),
				Col("name", Varchar(255)).NotNull().Unique(),
				Col("org_id", Integer()).NotNull().References("orgs", "id"),
			).
			Build()
		require.NoError(t, err)

		want := "CREATE TABLE IF NOT EXISTS \"users\" (\n" +
			"  \"id\" SERIAL PRIMARY KEY,\n" +
			"  \"name\" VARCHAR(255) NOT NULL UNIQUE,\n" +
			"  \"org_id\" INTEGER NOT NULL REFERENCES \"orgs\"(\"id\")\n" +
			");"
		assert.Equal(t, want, sql)
	})

	t.Run("schema prefix is bare with table quoted", func(t *testing.T) {
		sql, err := CreateTable("users").
			Schema("tenant_a").
			AddColumns(Col("id", Integer())).
			Build()
		require.NoError(t, err)
		assert.Contains(t, sql, "CREATE TABLE tenant_a.\"users\"")
	})

	t.Run("constraints render in fixed order", func(t *testing.T) {
		// Declared out of order; rendered PRIMARY KEY, NOT NULL, UNIQUE, REFERENCES.
		sql, err := CreateTable("t").
			AddColumns(Col("c", Integer()).References("r", "id").Unique().NotNull().PrimaryKey()).
			Build()
		require.NoError(t, err)
		assert.Contains(t, sql, "\"c\" INTEGER PRIMARY KEY NOT NULL UNIQUE REFERENCES \"r\"(\"id\")")
	})

	t.Run("missing name is a build-time error", func(t *testing.T) {
		_, err := CreateTable("").AddColumns(Col("id", Integer())).Build()
		require.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("zero columns is a build-time error", func(t *testing.T) {
		_, err := CreateTable("users").Build()
		require.ErrorIs(t, err, ErrNoColumns)
	})
}

func TestAlterAndDropTable(t *testing.T) {
	t.Run("alter adds columns", func(t *testing.T) {
		sql, err := AlterTable("users").
			AddColumns(
				Col("nickname", Text()),
				Col("score", Numeric(8, 2)).NotNull(),
			).
			Build()
		require.NoError(t, err)

		want := "ALTER TABLE \"users\"\n" +
			"  ADD COLUMN \"nickname\" TEXT,\n" +
			"  ADD COLUMN \"score\" NUMERIC(8,2) NOT NULL;"
		assert.Equal(t, want, sql)
	})

	t.Run("alter with zero columns is an error", func(t *testing.T) {
		_, err := AlterTable("users").Build()
		require.ErrorIs(t, err, ErrNoColumns)
	})

	t.Run("drop", func(t *testing.T) {
		sql, err := DropTable("users").Build()
		require.NoError(t, err)
		assert.Equal(t, "DROP TABLE \"users\";", sql)
	})

	t.Run("drop if exists", func(t *testing.T) {
		sql, err := DropTable("users").IfExists().Build()
		require.NoError(t, err)
		assert.Equal(t, "DROP TABLE IF EXISTS \"users\";", sql)
	})
}

func TestTableBuilderClone(t *testing.T) {
	orig := CreateTable("users").AddColumns(Col("id", Integer()))
	clone := orig.Clone().AddColumns(Col("extra", Text()))

	origSQL, err := orig.Build()
	require.NoError(t, err)
	assert.NotContains(t, origSQL, "extra")

	cloneSQL, err := clone.Build()
	require.NoError(t, err)
	assert.Contains(t, cloneSQL, "\"extra\" TEXT")
}
