package engine

import (
	"slices"
	"strings"

	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

// Row binds one record to the table header. The header is shared between
// rows and never modified.
type Row struct {
	header []string
	values map[string]string
}

// NewRow returns a row with every header column set to ""
func NewRow(header []string) *Row {
	r := &Row{
		header: header,
		values: make(map[string]string, len(header)),
	}
	r.Clear()
	return r
}

// Set assigns value to column. Values that would break the line layout of
// a table are rejected.
func (r *Row) Set(column, value string) error {
	if _, ok := r.values[column]; !ok {
		return query.ColumnError("column %s does not exist in table", column)
	}
	if strings.Contains(value, reader.Separator) || strings.ContainsAny(value, "\r\n") {
		return query.TableError("value %q for column %s cannot contain separators or line breaks", value, column)
	}
	r.values[column] = value
	return nil
}

// Clear resets every column to ""
func (r *Row) Clear() {
	for _, column := range r.header {
		r.values[column] = ""
	}
}

// Read loads fields positionally. The field count must match the header.
func (r *Row) Read(fields []string) error {
	if len(fields) != len(r.header) {
		return query.TableError("row has %d fields but table needs %d", len(fields), len(r.header))
	}
	for i, column := range r.header {
		r.values[column] = fields[i]
	}
	return nil
}

// ApplyUpdates performs every SET assignment of q
func (r *Row) ApplyUpdates(q *query.Query) error {
	for _, update := range q.Updates {
		field, value, err := query.AsAssignment(update)
		if err != nil {
			return err
		}
		if err := r.Set(field.Value, value.Value); err != nil {
			return err
		}
	}
	return nil
}

// Matches evaluates the WHERE condition of q against the row
func (r *Row) Matches(q *query.Query) (bool, error) {
	result, err := q.Conditions.Evaluate(r.values)
	if err != nil {
		return false, err
	}
	if result.Kind != query.ResultBool {
		return false, query.SyntaxError("condition evaluates to non-boolean value: %s", result)
	}
	return result.Bool, nil
}

// Value returns the typed value of column
func (r *Row) Value(column string) (query.ExpressionResult, error) {
	return query.VariableValue(r.values, column)
}

// Fields returns the values in header order
func (r *Row) Fields() []string {
	fields := make([]string, len(r.header))
	for i, column := range r.header {
		fields[i] = r.values[column]
	}
	return fields
}

// CSVLine serializes the row in header order without a line terminator
func (r *Row) CSVLine() string {
	return reader.JoinLine(r.Fields())
}

// Projection returns the values of columns in the given order; no columns
// means every header column
func (r *Row) Projection(columns []string) []string {
	if len(columns) == 0 {
		return r.Fields()
	}
	fields := make([]string, len(columns))
	for i, column := range columns {
		fields[i] = r.values[column]
	}
	return fields
}

// validateColumns returns a Column error for the first column not in header
func validateColumns(header []string, columns []string) error {
	for _, column := range columns {
		if !slices.Contains(header, column) {
			return query.ColumnError("column %s does not exist in table", column)
		}
	}
	return nil
}
