// Package query provides SQL statement parsing and expression evaluation
// for CSV tables.
//
// This package implements a small SQL dialect with support for:
//   - SELECT with column projection, WHERE and multi-key ORDER BY
//   - INSERT INTO with an optional column list and several VALUES groups
//   - UPDATE ... SET with literal assignments and an optional WHERE
//   - DELETE FROM with an optional WHERE
//
// # Basic Usage
//
// Parse a statement:
//
//	q, err := query.Parse("SELECT name, email FROM users WHERE age > 30 ORDER BY age DESC")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Evaluate its condition against one record:
//
//	result, err := q.Conditions.Evaluate(map[string]string{"age": "31"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Bool) // true
//
// # Pipeline
//
// Parse runs three stages:
//   - Tokenize: a state machine turning the string into Tokens. Keywords are
//     upper-cased and may span words ("INSERT INTO", "ORDER BY").
//   - Keyword validation: each operation has an allow-list of keywords that
//     is checked over the whole token stream before structural parsing.
//   - Building: a Builder per operation consumes the tokens, sharing the
//     grammar primitives of Parser and its recursive-descent expression
//     parser (OR, AND, NOT, comparison, leaf; lowest to highest).
//
// # Supported Operators
//
// WHERE clause operators:
//   - Comparison: =, !=, <>, <, >, <=, >=
//   - Logical: AND, OR, NOT
//   - Grouping: ( ... )
//
// # Type System
//
// Column values are untyped text. At evaluation time a value that parses
// as a 64-bit integer is an Int, anything else is a Str. Comparisons
// require both sides to have the same type: 5 = '5' is an error, not false.
//
// # Error Handling
//
// Failures are *Error values wrapping one of ErrSyntax, ErrColumn or
// ErrTable; use errors.Is to tell them apart. Input limits (query length,
// token count, expression depth) return the sentinel errors in
// validation.go.
package query
