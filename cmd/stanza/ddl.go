package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stanzaql/stanza"
)

var (
	ddlTable       string
	ddlSchema      string
	ddlIfNotExists bool
	ddlColumns     []string
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Render a CREATE TABLE statement from column specs",
	Long: `Render a CREATE TABLE statement.

Each --column spec is name:type[:constraints]. Constraints are a
comma-separated list of pk, notnull, unique and ref=table.column:

  stanza ddl --table users --column "id:integer:pk" \
      --column "org_id:integer:notnull,ref=orgs.id"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := stanza.CreateTable(ddlTable)
		if ddlSchema != "" {
			b.Schema(ddlSchema)
		}
		if ddlIfNotExists {
			b.IfNotExists()
		}
		for _, spec := range ddlColumns {
			col, err := parseColumnSpec(spec)
			if err != nil {
				return err
			}
			b.AddColumns(col)
		}

		sql, err := b.Build()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sql)
		return nil
	},
}

func init() {
	ddlCmd.Flags().StringVar(&ddlTable, "table", "", "table name (required)")
	ddlCmd.Flags().StringVar(&ddlSchema, "schema", "", "schema prefix, emitted bare")
	ddlCmd.Flags().BoolVar(&ddlIfNotExists, "if-not-exists", false, "add IF NOT EXISTS")
	ddlCmd.Flags().StringArrayVar(&ddlColumns, "column", nil, "column spec name:type[:constraints] (repeatable)")
}

// parseColumnSpec parses "name:type[:constraints]" into a column
// definition. The type may itself contain parentheses with commas, so
// the spec is split on ':' at most three ways.
func parseColumnSpec(spec string) (stanza.Column, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 || parts[0] == "" {
		return stanza.Column{}, fmt.Errorf("malformed column spec %q: want name:type[:constraints]", spec)
	}

	typ, err := stanza.ParseColumnType(parts[1])
	if err != nil {
		return stanza.Column{}, fmt.Errorf("column %q: %w", parts[0], err)
	}
	col := stanza.Col(parts[0], typ)

	if len(parts) == 3 {
		for _, c := range strings.Split(parts[2], ",") {
			switch c = strings.TrimSpace(c); {
			case c == "pk":
				col = col.PrimaryKey()
			case c == "notnull":
				col = col.NotNull()
			case c == "unique":
				col = col.Unique()
			case strings.HasPrefix(c, "ref="):
				ref := strings.SplitN(strings.TrimPrefix(c, "ref="), ".", 2)
				if len(ref) != 2 {
					return stanza.Column{}, fmt.Errorf("column %q: ref wants table.column, got %q", parts[0], c)
				}
				col = col.References(ref[0], ref[1])
			case c == "":
			default:
				return stanza.Column{}, fmt.Errorf("column %q: unknown constraint %q", parts[0], c)
			}
		}
	}
	return col, nil
}
