package engine

import (
	"sort"

	"github.com/gabokatta/rustic-sql/query"
)

// validateOrdering checks that every ORDER BY key names a header column
func validateOrdering(header []string, ordering []query.Ordering) error {
	columns := make([]string, len(ordering))
	for i, o := range ordering {
		columns[i] = o.Field.Value
	}
	return validateColumns(header, columns)
}

// sortRows sorts rows in place by the ordering keys. Rows that compare
// equal on every key keep their input order. The first comparison error
// aborts the sort.
func sortRows(rows []*Row, ordering []query.Ordering) error {
	if len(rows) < 2 || len(ordering) == 0 {
		return nil
	}

	var sortErr error
	sort.SliceStable(rows, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		c, err := compareRows(rows[i], rows[j], ordering)
		if err != nil {
			sortErr = err
			return false
		}
		return c < 0
	})
	return sortErr
}

// compareRows returns the result of the first key on which a and b differ
func compareRows(a, b *Row, ordering []query.Ordering) (int, error) {
	for _, o := range ordering {
		c, err := compareValues(a, b, o.Field.Value)
		if err != nil {
			return 0, err
		}
		if o.Direction == query.Desc {
			c = -c
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// compareValues compares the typed values of column in a and b. An empty
// value sorts before any other value, like NULL (last under DESC).
func compareValues(a, b *Row, column string) (int, error) {
	va, err := a.Value(column)
	if err != nil {
		return 0, err
	}
	vb, err := b.Value(column)
	if err != nil {
		return 0, err
	}

	if va.Kind != vb.Kind {
		switch {
		case isEmpty(va):
			return -1, nil
		case isEmpty(vb):
			return 1, nil
		}
	}
	return query.CompareResults(va, vb)
}

func isEmpty(v query.ExpressionResult) bool {
	return v.Kind == query.ResultStr && v.Str == ""
}
