// Package export renders record collections into downloadable report
// formats. The CSV dialect always quotes free-text columns; numeric and
// enum columns stay bare unless the value itself needs escaping.
package export

import "strings"

type Column[T any] struct {
	Header string
	// Text marks a free-text column, which is always double-quoted.
	Text  bool
	Value func(T) string
}

type Field struct {
	Value string
	Text  bool
}

// CSV serializes rows under a header line. Output is deterministic for a
// given input.
func CSV[T any](rows []T, columns []Column[T]) []byte {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	b.WriteString(Line(headers))

	for _, row := range rows {
		fields := make([]Field, len(columns))
		for i, col := range columns {
			fields[i] = Field{Value: col.Value(row), Text: col.Text}
		}
		b.WriteString(Row(fields))
	}
	return []byte(b.String())
}

// Line writes one bare header line; headers are trusted not to need quoting.
func Line(values []string) string {
	return strings.Join(values, ",") + "\n"
}

// Row writes one record line, quoting text fields and any value that
// carries a separator, quote or newline. Embedded quotes are doubled.
func Row(fields []Field) string {
	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = escape(field.Value, field.Text)
	}
	return strings.Join(parts, ",") + "\n"
}

func escape(value string, text bool) string {
	if !text && !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// Filename builds the download name for an export, e.g.
// customers_2024-01-15.csv or business_report_January_2024.xlsx.
func Filename(entity, period, extension string) string {
	return entity + "_" + period + "." + extension
}
