package engine

import (
	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

// runDelete rewrites the table without the rows matching the condition.
// Kept rows are copied verbatim.
func (e *Executor) runDelete(q *query.Query, loc reader.Location) error {
	return e.rewrite(loc, nil, func(row *Row, record reader.Record) (string, bool, error) {
		ok, err := row.Matches(q)
		if err != nil {
			return "", false, err
		}
		return record.Line, !ok, nil
	})
}
