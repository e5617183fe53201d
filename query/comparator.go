package query

import (
	"cmp"
	"fmt"
	"strconv"
)

// ResultKind is the runtime type of an ExpressionResult
type ResultKind int

const (
	ResultInt ResultKind = iota
	ResultStr
	ResultBool
)

func (k ResultKind) String() string {
	switch k {
	case ResultInt:
		return "Int"
	case ResultStr:
		return "Str"
	default:
		return "Bool"
	}
}

// ExpressionResult is a typed value produced by evaluation. Only the field
// selected by Kind is meaningful.
type ExpressionResult struct {
	Kind ResultKind
	Int  int64
	Str  string
	Bool bool
}

// IntResult wraps an integer
func IntResult(n int64) ExpressionResult {
	return ExpressionResult{Kind: ResultInt, Int: n}
}

// StrResult wraps a string
func StrResult(s string) ExpressionResult {
	return ExpressionResult{Kind: ResultStr, Str: s}
}

// BoolResult wraps a boolean
func BoolResult(b bool) ExpressionResult {
	return ExpressionResult{Kind: ResultBool, Bool: b}
}

func (r ExpressionResult) String() string {
	switch r.Kind {
	case ResultInt:
		return fmt.Sprintf("Int(%d)", r.Int)
	case ResultStr:
		return fmt.Sprintf("Str(%s)", strconv.Quote(r.Str))
	default:
		return fmt.Sprintf("Bool(%t)", r.Bool)
	}
}

// applyOperator dispatches on the type pair of left and right
func applyOperator(op ExpressionOperator, left, right ExpressionResult) (ExpressionResult, error) {
	if left.Kind != right.Kind {
		return ExpressionResult{}, SyntaxError("expression members must match in type, got %s and %s", left, right)
	}

	switch left.Kind {
	case ResultInt:
		return compareOrdered(left.Int, op, right.Int, "ints")
	case ResultStr:
		return compareOrdered(left.Str, op, right.Str, "strings")
	default:
		return compareBools(left.Bool, op, right.Bool)
	}
}

// compareOrdered applies a comparison operator to two ints or two strings
func compareOrdered[T cmp.Ordered](left T, op ExpressionOperator, right T, kind string) (ExpressionResult, error) {
	switch op {
	case OpEquals:
		return BoolResult(left == right), nil
	case OpNotEquals:
		return BoolResult(left != right), nil
	case OpGreaterThan:
		return BoolResult(left > right), nil
	case OpLessThan:
		return BoolResult(left < right), nil
	case OpGreaterOrEqual:
		return BoolResult(left >= right), nil
	case OpLessOrEqual:
		return BoolResult(left <= right), nil
	default:
		return ExpressionResult{}, SyntaxError("invalid comparison for %s: %s", kind, op)
	}
}

// compareBools applies a logical operator; NOT ignores right
func compareBools(left bool, op ExpressionOperator, right bool) (ExpressionResult, error) {
	switch op {
	case OpAnd:
		return BoolResult(left && right), nil
	case OpOr:
		return BoolResult(left || right), nil
	case OpNot:
		return BoolResult(!left), nil
	default:
		return ExpressionResult{}, SyntaxError("invalid operator for booleans: %s", op)
	}
}

// CompareResults orders two values of the same kind: -1 if a < b, 0 if
// equal, +1 if a > b. false sorts before true.
func CompareResults(a, b ExpressionResult) (int, error) {
	if a.Kind != b.Kind {
		return 0, SyntaxError("cannot compare %s with %s", a, b)
	}
	switch a.Kind {
	case ResultInt:
		return cmp.Compare(a.Int, b.Int), nil
	case ResultStr:
		return cmp.Compare(a.Str, b.Str), nil
	default:
		switch {
		case a.Bool == b.Bool:
			return 0, nil
		case !a.Bool:
			return -1, nil
		default:
			return 1, nil
		}
	}
}
