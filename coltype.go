package stanza

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnType is a value object producing a literal SQL type string. It
// is comparable: two descriptors are equal when their kind and numeric
// arguments match.
type ColumnType struct {
	kind      string
	length    int
	precision int
	scale     int
}

// Fixed-width and parameter-free type descriptors.
func Integer() ColumnType         { return ColumnType{kind: "INTEGER"} }
func SmallInt() ColumnType        { return ColumnType{kind: "SMALLINT"} }
func BigInt() ColumnType          { return ColumnType{kind: "BIGINT"} }
func Serial() ColumnType          { return ColumnType{kind: "SERIAL"} }
func BigSerial() ColumnType       { return ColumnType{kind: "BIGSERIAL"} }
func Boolean() ColumnType         { return ColumnType{kind: "BOOLEAN"} }
func Text() ColumnType            { return ColumnType{kind: "TEXT"} }
func Date() ColumnType            { return ColumnType{kind: "DATE"} }
func Timestamp() ColumnType       { return ColumnType{kind: "TIMESTAMP"} }
func TimestampTZ() ColumnType     { return ColumnType{kind: "TIMESTAMP WITH TIME ZONE"} }
func UUID() ColumnType            { return ColumnType{kind: "UUID"} }
func JSON() ColumnType            { return ColumnType{kind: "JSON"} }
func JSONB() ColumnType           { return ColumnType{kind: "JSONB"} }
func Real() ColumnType            { return ColumnType{kind: "REAL"} }
func DoublePrecision() ColumnType { return ColumnType{kind: "DOUBLE PRECISION"} }
func Bytea() ColumnType           { return ColumnType{kind: "BYTEA"} }

// Varchar is a length-parameterized character type.
func Varchar(length int) ColumnType {
	return ColumnType{kind: "VARCHAR", length: length}
}

// Char is a fixed-length character type.
func Char(length int) ColumnType {
	return ColumnType{kind: "CHAR", length: length}
}

// Numeric is a precision/scale-parameterized exact numeric type.
func Numeric(precision, scale int) ColumnType {
	return ColumnType{kind: "NUMERIC", precision: precision, scale: scale}
}

// Vector is a dimension-parameterized pgvector type.
func Vector(dimensions int) ColumnType {
	return ColumnType{kind: "VECTOR", length: dimensions}
}

// String renders the literal SQL type text.
func (t ColumnType) String() string {
	switch {
	case t.length > 0:
		return t.kind + "(" + strconv.Itoa(t.length) + ")"
	case t.precision > 0:
		return t.kind + "(" + strconv.Itoa(t.precision) + "," + strconv.Itoa(t.scale) + ")"
	default:
		return t.kind
	}
}

// ParseColumnType parses a textual type spec such as "integer",
// "varchar(255)" or "numeric(10,2)" into a descriptor. Unrecognized
// kinds pass through upper-cased with their arguments intact.
func ParseColumnType(spec string) (ColumnType, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return ColumnType{}, fmt.Errorf("stanza: empty column type")
	}

	kind := spec
	var args []int
	if open := strings.IndexByte(spec, '('); open >= 0 {
		if !strings.HasSuffix(spec, ")") {
			return ColumnType{}, fmt.Errorf("stanza: malformed column type %q", spec)
		}
		kind = strings.TrimSpace(spec[:open])
		for _, raw := range strings.Split(spec[open+1:len(spec)-1], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return ColumnType{}, fmt.Errorf("stanza: malformed column type %q: %w", spec, err)
			}
			args = append(args, n)
		}
	}

	t := ColumnType{kind: strings.ToUpper(kind)}
	switch kind := strings.ToLower(kind); kind {
	case "int", "integer":
		t = Integer()
	case "smallint":
		t = SmallInt()
	case "bigint":
		t = BigInt()
	case "serial":
		t = Serial()
	case "bigserial":
		t = BigSerial()
	case "bool", "boolean":
		t = Boolean()
	case "text":
		t = Text()
	case "date":
		t = Date()
	case "timestamp":
		t = Timestamp()
	case "timestamptz":
		t = TimestampTZ()
	case "uuid":
		t = UUID()
	case "json":
		t = JSON()
	case "jsonb":
		t = JSONB()
	case "real":
		t = Real()
	case "double precision", "float8":
		t = DoublePrecision()
	case "bytea":
		t = Bytea()
	}

	switch len(args) {
	case 0:
	case 1:
		t.length = args[0]
	case 2:
		t.precision, t.scale = args[0], args[1]
		t.length = 0
	default:
		return ColumnType{}, fmt.Errorf("stanza: column type %q has too many arguments", spec)
	}
	return t, nil
}
