package engine

import (
	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

// runUpdate rewrites the table, applying the SET assignments to the rows
// matching the condition. Other rows are copied verbatim.
func (e *Executor) runUpdate(q *query.Query, loc reader.Location) error {
	validate := func(header []string) error {
		targets := make([]string, 0, len(q.Updates))
		for _, update := range q.Updates {
			field, _, err := query.AsAssignment(update)
			if err != nil {
				return err
			}
			targets = append(targets, field.Value)
		}
		return validateColumns(header, targets)
	}

	return e.rewrite(loc, validate, func(row *Row, record reader.Record) (string, bool, error) {
		ok, err := row.Matches(q)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return record.Line, true, nil
		}
		if err := row.ApplyUpdates(q); err != nil {
			return "", false, err
		}
		return row.CSVLine(), true, nil
	})
}
