package engine

import (
	"bufio"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gabokatta/rustic-sql/query"
	"github.com/gabokatta/rustic-sql/reader"
)

// runInsert appends one line per VALUES group. Every row is built and
// validated before the file is touched, so a bad row appends nothing.
func (e *Executor) runInsert(q *query.Query, loc reader.Location) error {
	if err := loc.Writable(); err != nil {
		return err
	}

	f, err := reader.OpenForAppend(loc.Path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	header, _, err := reader.ReadHeader(bufio.NewReader(f))
	if err != nil {
		return err
	}

	lines, err := buildInsertLines(q, header)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		return nil
	}
	if err := reader.EnsureTrailingNewline(f); err != nil {
		return err
	}
	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}

	e.logger.Debug("inserted rows", zap.String("path", loc.Path), zap.Int("rows", len(lines)))
	return nil
}

// buildInsertLines serializes every VALUES group against header. Without a
// column list the values fill the header columns in order.
func buildInsertLines(q *query.Query, header []string) ([]string, error) {
	columns := q.ColumnNames()
	if len(columns) == 0 {
		columns = header
	}
	if err := validateColumns(header, columns); err != nil {
		return nil, err
	}

	row := NewRow(header)
	lines := make([]string, 0, len(q.Inserts))
	for i, values := range q.Inserts {
		if len(values) != len(columns) {
			return nil, query.TableError("insert row %d has %d values, expected %d columns", i+1, len(values), len(columns))
		}

		row.Clear()
		for j, column := range columns {
			if err := row.Set(column, values[j].Value); err != nil {
				return nil, err
			}
		}
		lines = append(lines, row.CSVLine())
	}
	return lines, nil
}
