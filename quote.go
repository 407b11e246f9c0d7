package stanza

import "strings"

// quoteIdent double-quotes a single identifier segment, doubling any
// embedded quote characters. No other escaping is performed; string
// literals embedded in fragment text are the caller's responsibility.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteQualified quotes a possibly dot-qualified reference: each segment
// is individually quoted and rejoined, except a trailing `*` wildcard
// which is emitted bare. "u.id" becomes `"u"."id"`, "u.*" becomes
// `"u".*`.
func quoteQualified(ref string) string {
	if ref == "*" {
		return "*"
	}
	parts := strings.Split(ref, ".")
	for i, p := range parts {
		if p == "*" && i == len(parts)-1 {
			continue
		}
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// renderTarget renders a table reference. An explicit schema prefix is
// emitted bare with the table segment quoted; an alias is appended bare
// (aliases and CTE/union names are never quoted).
func renderTarget(schema, table, alias string) string {
	var name string
	if schema != "" {
		name = schema + "." + quoteIdent(table)
	} else {
		name = quoteQualified(table)
	}
	if alias != "" {
		return name + " AS " + alias
	}
	return name
}

// quoteColumns quotes a list of column references.
func quoteColumns(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = quoteQualified(c)
	}
	return out
}
