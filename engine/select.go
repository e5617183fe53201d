package engine

import (
	"go.uber.org/zap"

	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

func (e *Executor) runSelect(q *query.Query, loc reader.Location) error {
	s, err := reader.OpenScanner(loc)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	header := s.Header()
	projection := q.ColumnNames()
	if err := validateColumns(header, projection); err != nil {
		return err
	}
	if err := validateOrdering(header, q.Ordering); err != nil {
		return err
	}

	var matched []*Row
	scanned := 0
	for s.Scan() {
		record := s.Record()
		if record.Blank() {
			continue
		}
		scanned++

		row := NewRow(header)
		if err := row.Read(record.Fields); err != nil {
			return err
		}
		ok, err := row.Matches(q)
		if err != nil {
			return err
		}
		if ok {
			matched = append(matched, row)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if err := sortRows(matched, q.Ordering); err != nil {
		return err
	}
	e.logger.Debug("select finished",
		zap.Int("scanned", scanned),
		zap.Int("matched", len(matched)))

	outHeader := header
	if len(projection) > 0 {
		outHeader = projection
	}
	results := make([][]string, len(matched))
	for i, row := range matched {
		results[i] = row.Projection(projection)
	}
	return e.formatter.Format(outHeader, results)
}
