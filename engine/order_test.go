package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gabokatta/rustic-sql/query"
)

func rowsOf(t *testing.T, header []string, records ...[]string) []*Row {
	t.Helper()
	rows := make([]*Row, len(records))
	for i, r := range records {
		rows[i] = NewRow(header)
		require.NoError(t, rows[i].Read(r))
	}
	return rows
}

func lines(rows []*Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.CSVLine()
	}
	return out
}

func order(column string, dir query.Direction) query.Ordering {
	return query.Ordering{
		Field:     query.Token{Value: column, Kind: query.TokenIdentifier},
		Direction: dir,
	}
}

func TestSortRows(t *testing.T) {
	header := []string{"col1", "col2"}

	tests := []struct {
		name     string
		records  [][]string
		ordering []query.Ordering
		want     []string
	}{
		{
			name:     "multi key mixed direction",
			records:  [][]string{{"1", "b"}, {"2", "a"}, {"3", "b"}},
			ordering: []query.Ordering{order("col2", query.Asc), order("col1", query.Desc)},
			want:     []string{"2,a", "3,b", "1,b"},
		},
		{
			name:     "numbers compare as integers",
			records:  [][]string{{"10", "x"}, {"9", "y"}, {"100", "z"}},
			ordering: []query.Ordering{order("col1", query.Asc)},
			want:     []string{"9,y", "10,x", "100,z"},
		},
		{
			name:     "equal keys keep input order",
			records:  [][]string{{"1", "a"}, {"2", "a"}, {"3", "a"}},
			ordering: []query.Ordering{order("col2", query.Desc)},
			want:     []string{"1,a", "2,a", "3,a"},
		},
		{
			name:     "empty values sort first",
			records:  [][]string{{"5", "a"}, {"", "b"}, {"3", "c"}},
			ordering: []query.Ordering{order("col1", query.Asc)},
			want:     []string{",b", "3,c", "5,a"},
		},
		{
			name:     "empty values sort last descending",
			records:  [][]string{{"5", "a"}, {"", "b"}, {"3", "c"}},
			ordering: []query.Ordering{order("col1", query.Desc)},
			want:     []string{"5,a", "3,c", ",b"},
		},
		{
			name:     "no ordering",
			records:  [][]string{{"2", "a"}, {"1", "b"}},
			ordering: nil,
			want:     []string{"2,a", "1,b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := rowsOf(t, header, tt.records...)
			require.NoError(t, sortRows(rows, tt.ordering))
			require.Equal(t, tt.want, lines(rows))
		})
	}
}

func TestSortRows_TypeMismatch(t *testing.T) {
	rows := rowsOf(t, []string{"id"}, []string{"1"}, []string{"abc"})

	err := sortRows(rows, []query.Ordering{order("id", query.Asc)})
	require.True(t, errors.Is(err, query.ErrSyntax), "got %v", err)
}

func TestValidateOrdering(t *testing.T) {
	header := []string{"id", "name"}
	require.NoError(t, validateOrdering(header, []query.Ordering{order("name", query.Asc)}))

	err := validateOrdering(header, []query.Ordering{order("age", query.Asc)})
	require.True(t, errors.Is(err, query.ErrColumn), "got %v", err)
}
