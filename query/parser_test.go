package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse_Select(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantTable    string
		wantColumns  []string
		wantOrdering []Ordering
	}{
		{
			name:        "star",
			query:       "SELECT * FROM users",
			wantTable:   "users",
			wantColumns: []string{},
		},
		{
			name:        "column list",
			query:       "SELECT name, email FROM users",
			wantTable:   "users",
			wantColumns: []string{"name", "email"},
		},
		{
			name:        "where and ordering",
			query:       "SELECT name, email FROM users WHERE age > 30 ORDER BY age DESC",
			wantTable:   "users",
			wantColumns: []string{"name", "email"},
			wantOrdering: []Ordering{
				{Field: ident("age"), Direction: Desc},
			},
		},
		{
			name:        "multi key ordering defaults to asc",
			query:       "select id from t order by col2, col1 desc, col3 asc",
			wantTable:   "t",
			wantColumns: []string{"id"},
			wantOrdering: []Ordering{
				{Field: ident("col2"), Direction: Asc},
				{Field: ident("col1"), Direction: Desc},
				{Field: ident("col3"), Direction: Asc},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.query)
			require.NoError(t, err)
			require.Equal(t, OperationSelect, q.Operation)
			require.Equal(t, tt.wantTable, q.Table)
			require.Equal(t, tt.wantColumns, q.ColumnNames())
			if diff := cmp.Diff(tt.wantOrdering, q.Ordering); diff != "" {
				t.Errorf("ordering mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_SelectWithoutWhereMatchesAll(t *testing.T) {
	q, err := Parse("SELECT * FROM users")
	require.NoError(t, err)
	require.Equal(t, Empty{}, q.Conditions)
}

func TestParse_Insert(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantColumns []string
		wantInserts [][]Token
	}{
		{
			name:        "column list",
			query:       "INSERT INTO users (user_id, name) VALUES (1, 'Ana')",
			wantColumns: []string{"user_id", "name"},
			wantInserts: [][]Token{{num("1"), str("Ana")}},
		},
		{
			name:        "several groups",
			query:       "INSERT INTO users (user_id, name) VALUES (1, 'Ana'), (2, 'Bo')",
			wantColumns: []string{"user_id", "name"},
			wantInserts: [][]Token{{num("1"), str("Ana")}, {num("2"), str("Bo")}},
		},
		{
			name:        "no column list",
			query:       "insert into users values (3, 'Cy', 'cy@x.com', 45)",
			wantColumns: []string{},
			wantInserts: [][]Token{{num("3"), str("Cy"), str("cy@x.com"), num("45")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.query)
			require.NoError(t, err)
			require.Equal(t, OperationInsert, q.Operation)
			require.Equal(t, "users", q.Table)
			require.Equal(t, tt.wantColumns, q.ColumnNames())
			if diff := cmp.Diff(tt.wantInserts, q.Inserts); diff != "" {
				t.Errorf("inserts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Update(t *testing.T) {
	q, err := Parse("UPDATE users SET email = 'a@b.com', age = 40 WHERE name = 'Ana'")
	require.NoError(t, err)
	require.Equal(t, OperationUpdate, q.Operation)
	require.Equal(t, "users", q.Table)

	want := []ExpressionNode{
		eq(ident("email"), str("a@b.com")),
		eq(ident("age"), num("40")),
	}
	if diff := cmp.Diff(want, q.Updates); diff != "" {
		t.Errorf("updates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(ExpressionNode(eq(ident("name"), str("Ana"))), q.Conditions); diff != "" {
		t.Errorf("conditions mismatch (-want +got):\n%s", diff)
	}

	field, value, err := AsAssignment(q.Updates[1])
	require.NoError(t, err)
	require.Equal(t, "age", field.Value)
	require.Equal(t, "40", value.Value)
}

func TestParse_Delete(t *testing.T) {
	q, err := Parse("DELETE FROM pokemon WHERE id = 1")
	require.NoError(t, err)
	require.Equal(t, OperationDelete, q.Operation)
	require.Equal(t, "pokemon", q.Table)
	require.Equal(t, ExpressionNode(eq(ident("id"), num("1"))), q.Conditions)

	q, err = Parse("DELETE FROM pokemon")
	require.NoError(t, err)
	require.Equal(t, Empty{}, q.Conditions)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
		wantMsg string
	}{
		{"empty", "   ", ErrEmptyQuery, "query is empty"},
		{"unknown operation", "DROP TABLE users", ErrSyntax, "does not start with a valid operation"},
		{"select without columns", "SELECT FROM users", ErrSyntax, "column list or *"},
		{"select star after columns", "SELECT a, * FROM users", ErrSyntax, "COLUMNS"},
		{"select without from", "SELECT * users", ErrSyntax, "expected Keyword(FROM)"},
		{"select without table", "SELECT * FROM", ErrSyntax, "could not find table identifier"},
		{"select trailing tokens", "SELECT * FROM users extra", ErrSyntax, "expected end of query"},
		{"select with set", "SELECT * FROM users SET a = 1", ErrSyntax, "invalid keyword for SELECT query, got: SET"},
		{"order by without column", "SELECT * FROM users ORDER BY", ErrSyntax, "ORDER BY requires at least one column"},
		{"update with order by", "UPDATE users SET a = 1 ORDER BY a", ErrSyntax, "ORDER BY"},
		{"update without set", "UPDATE users WHERE a = 1", ErrSyntax, "expected Keyword(SET)"},
		{"update without assignments", "UPDATE users SET WHERE a = 1", ErrSyntax, "at least one assignment"},
		{"update with column value", "UPDATE users SET a = b", ErrSyntax, "must be a literal"},
		{"update with comparison", "UPDATE users SET a > 1", ErrSyntax, "failed to parse update statement"},
		{"delete without from", "DELETE users WHERE id = 1", ErrSyntax, "expected Keyword(FROM)"},
		{"delete with order by", "DELETE FROM users ORDER BY id", ErrSyntax, "invalid keyword for DELETE query"},
		{"insert arity", "INSERT INTO users (a, b) VALUES (1)", ErrSyntax, "columns"},
		{"insert arity second row", "INSERT INTO users (a) VALUES (1), (2, 3)", ErrSyntax, "insert row 2"},
		{"insert without values", "INSERT INTO users (a, b)", ErrSyntax, "expected Keyword(VALUES)"},
		{"insert with where", "INSERT INTO users (a) VALUES (1) WHERE a = 1", ErrSyntax, "invalid keyword for INSERT query"},
		{"insert identifier value", "INSERT INTO users (a) VALUES (b)", ErrSyntax, "VALUES"},
		{"insert empty column list", "INSERT INTO users () VALUES (1)", ErrSyntax, "at least one column"},
		{"table name too long", "SELECT * FROM " + strings.Repeat("t", MaxTableNameLength+1), ErrSyntax, "table name too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestQuery_String(t *testing.T) {
	q, err := Parse("SELECT name FROM users WHERE age > 30 ORDER BY age DESC")
	require.NoError(t, err)

	s := q.String()
	require.Contains(t, s, "Query Kind: [SELECT]")
	require.Contains(t, s, `Table: "users"`)
	require.Contains(t, s, "Conditions: GreaterThan[age,30]")
	require.Contains(t, s, "Ordering: [(age:DESC)]")
}
