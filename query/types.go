package query

import (
	"fmt"
	"strings"
)

// TokenKind represents the type of a token
type TokenKind int

const (
	TokenUnknown TokenKind = iota
	TokenString
	TokenNumber
	TokenOperator
	TokenIdentifier
	TokenParenOpen
	TokenParenClose
	TokenKeyword
)

var tokenKindNames = map[TokenKind]string{
	TokenUnknown:    "Unknown",
	TokenString:     "String",
	TokenNumber:     "Number",
	TokenOperator:   "Operator",
	TokenIdentifier: "Identifier",
	TokenParenOpen:  "ParenthesisOpen",
	TokenParenClose: "ParenthesisClose",
	TokenKeyword:    "Keyword",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token represents a lexical token. Keyword tokens hold the upper-cased
// keyword text, which may span several words ("ORDER BY").
type Token struct {
	Value string
	Kind  TokenKind
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}

// Operation is the kind of statement a Query executes
type Operation int

const (
	OperationUnknown Operation = iota
	OperationSelect
	OperationUpdate
	OperationDelete
	OperationInsert
)

func (o Operation) String() string {
	switch o {
	case OperationSelect:
		return "SELECT"
	case OperationUpdate:
		return "UPDATE"
	case OperationDelete:
		return "DELETE"
	case OperationInsert:
		return "INSERT"
	default:
		return "UNKNOWN"
	}
}

// Direction is the sort direction of an ORDER BY key
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// Ordering represents a column to sort by
type Ordering struct {
	Field     Token
	Direction Direction
}

// Query represents a parsed SQL statement.
//
// Only the fields that belong to Operation are populated: Columns for
// SELECT projections and INSERT targets, Inserts for INSERT, Updates for
// UPDATE, Ordering for SELECT. Conditions is Empty when there is no WHERE
// clause. A Query is not modified after its builder returns it.
type Query struct {
	Operation  Operation
	Table      string
	Columns    []Token          // Empty means all columns
	Inserts    [][]Token        // One literal row per VALUES group
	Updates    []ExpressionNode // Equals statements: field = literal
	Conditions ExpressionNode
	Ordering   []Ordering
}

// NewQuery returns a query for op that matches every row
func NewQuery(op Operation) *Query {
	return &Query{
		Operation:  op,
		Conditions: Empty{},
	}
}

// ColumnNames returns the values of the column tokens
func (q *Query) ColumnNames() []string {
	names := make([]string, len(q.Columns))
	for i, c := range q.Columns {
		names[i] = c.Value
	}
	return names
}

// String renders the query for debug logging
func (q *Query) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query Kind: [%s]\n", q.Operation)
	fmt.Fprintf(&b, "Table: %q\n", q.Table)
	fmt.Fprintf(&b, "Columns: %v\n", q.ColumnNames())

	inserts := make([][]string, len(q.Inserts))
	for i, row := range q.Inserts {
		for _, t := range row {
			inserts[i] = append(inserts[i], t.Value)
		}
	}
	fmt.Fprintf(&b, "Inserts: %v\n", inserts)
	fmt.Fprintf(&b, "Updates: %v\n", q.Updates)
	fmt.Fprintf(&b, "Conditions: %v\n", q.Conditions)

	ordering := make([]string, len(q.Ordering))
	for i, o := range q.Ordering {
		ordering[i] = fmt.Sprintf("(%s:%s)", o.Field.Value, o.Direction)
	}
	fmt.Fprintf(&b, "Ordering: %v", ordering)
	return b.String()
}
