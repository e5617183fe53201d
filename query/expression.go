package query

import (
	"fmt"
	"strconv"
)

// ExpressionOperator is the operator of a Statement node
type ExpressionOperator int

const (
	OpNone ExpressionOperator = iota
	OpEquals
	OpNotEquals
	OpGreaterThan
	OpLessThan
	OpGreaterOrEqual
	OpLessOrEqual
	OpAnd
	OpOr
	OpNot
)

var operatorNames = map[ExpressionOperator]string{
	OpNone:           "None",
	OpEquals:         "Equals",
	OpNotEquals:      "NotEquals",
	OpGreaterThan:    "GreaterThan",
	OpLessThan:       "LessThan",
	OpGreaterOrEqual: "GreaterOrEqual",
	OpLessOrEqual:    "LessOrEqual",
	OpAnd:            "And",
	OpOr:             "Or",
	OpNot:            "Not",
}

func (o ExpressionOperator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("ExpressionOperator(%d)", int(o))
}

// comparisonOperators maps operator token text to its comparison
var comparisonOperators = map[string]ExpressionOperator{
	"=":  OpEquals,
	"!=": OpNotEquals,
	"<>": OpNotEquals,
	">":  OpGreaterThan,
	"<":  OpLessThan,
	">=": OpGreaterOrEqual,
	"<=": OpLessOrEqual,
}

// ExpressionNode is a node of a WHERE or SET expression tree.
//
// The tree is a tagged variant of Empty, Leaf and Statement; a Statement
// owns its children.
type ExpressionNode interface {
	// Evaluate resolves the node against a column name to text value map
	Evaluate(values map[string]string) (ExpressionResult, error)
	String() string
}

// Empty is the absent condition; it matches every row
type Empty struct{}

// Leaf is a terminal node holding an identifier, number or string token
type Leaf struct {
	Token Token
}

// Statement combines two subtrees with an operator. NOT keeps its operand
// on the left and Empty on the right.
type Statement struct {
	Operator ExpressionOperator
	Left     ExpressionNode
	Right    ExpressionNode
}

// Evaluate returns true: no condition matches everything
func (Empty) Evaluate(map[string]string) (ExpressionResult, error) {
	return BoolResult(true), nil
}

func (Empty) String() string {
	return "()"
}

// Evaluate resolves identifiers from values and converts literals
func (l Leaf) Evaluate(values map[string]string) (ExpressionResult, error) {
	switch l.Token.Kind {
	case TokenIdentifier:
		return VariableValue(values, l.Token.Value)
	case TokenString:
		return StrResult(l.Token.Value), nil
	case TokenNumber:
		n, err := strconv.ParseInt(l.Token.Value, 10, 64)
		if err != nil {
			return ExpressionResult{}, fmt.Errorf("malformed integer literal %s: %w", l.Token.Value, err)
		}
		return IntResult(n), nil
	default:
		return BoolResult(false), nil
	}
}

func (l Leaf) String() string {
	return l.Token.Value
}

// Evaluate evaluates both sides and applies the operator for their type
func (s Statement) Evaluate(values map[string]string) (ExpressionResult, error) {
	left, err := s.Left.Evaluate(values)
	if err != nil {
		return ExpressionResult{}, err
	}
	right, err := s.Right.Evaluate(values)
	if err != nil {
		return ExpressionResult{}, err
	}
	return applyOperator(s.Operator, left, right)
}

func (s Statement) String() string {
	return fmt.Sprintf("%s[%v,%v]", s.Operator, s.Left, s.Right)
}

// VariableValue looks up column in values. The text is an Int when it
// parses as a 64-bit integer and a Str otherwise.
func VariableValue(values map[string]string, column string) (ExpressionResult, error) {
	value, ok := values[column]
	if !ok {
		return ExpressionResult{}, ColumnError("column %s does not exist", column)
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return IntResult(n), nil
	}
	return StrResult(value), nil
}

// AsAssignment returns the field and value tokens of an assignment,
// which must be an Equals statement between two leaves
func AsAssignment(node ExpressionNode) (Token, Token, error) {
	s, ok := node.(Statement)
	if !ok {
		return Token{}, Token{}, SyntaxError("expected an assignment, but got: %v", node)
	}
	if s.Operator != OpEquals {
		return Token{}, Token{}, SyntaxError("assignment must use '=', got: %v", node)
	}
	field, leftOK := s.Left.(Leaf)
	value, rightOK := s.Right.(Leaf)
	if !leftOK || !rightOK {
		return Token{}, Token{}, SyntaxError("both sides of assignment must be leaf nodes, got: %v", node)
	}
	return field.Token, value.Token, nil
}
