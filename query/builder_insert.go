package query

var insertKeywords = []string{"INSERT INTO", "VALUES"}

// InsertBuilder builds INSERT queries:
//
//	INSERT INTO table [(col, ...)] VALUES (literal, ...), ...
//
// Without a column list every row targets all header columns in order.
type InsertBuilder struct {
	*Parser
}

// NewInsertBuilder creates a builder over the tokens after INSERT INTO
func NewInsertBuilder(tokens []Token) *InsertBuilder {
	return &InsertBuilder{Parser: NewParser(tokens)}
}

// ValidateKeywords rejects keywords outside the INSERT grammar
func (b *InsertBuilder) ValidateKeywords() error {
	return b.validateKeywords(insertKeywords, OperationInsert)
}

// Build parses the INSERT statement
func (b *InsertBuilder) Build() (*Query, error) {
	if err := b.ValidateKeywords(); err != nil {
		return nil, err
	}

	q := NewQuery(OperationInsert)

	var err error
	if q.Table, err = b.parseTable(OperationInsert); err != nil {
		return nil, err
	}
	if q.Columns, err = b.parseTargetColumns(); err != nil {
		return nil, err
	}
	if q.Inserts, err = b.parseValues(); err != nil {
		return nil, err
	}
	if err := b.expectNone(); err != nil {
		return nil, err
	}
	if err := validateArity(q); err != nil {
		return nil, err
	}
	return q, nil
}

// parseTargetColumns parses the optional parenthesized column list
func (b *InsertBuilder) parseTargetColumns() ([]Token, error) {
	if b.atKeyword("VALUES") {
		return nil, nil
	}
	if err := b.popExpecting("(", TokenParenOpen); err != nil {
		return nil, err
	}
	columns, star, err := b.parseColumns()
	if err != nil {
		return nil, err
	}
	if star || len(columns) == 0 {
		return nil, SyntaxError("INSERT column list must name at least one column")
	}
	if err := b.popExpecting(")", TokenParenClose); err != nil {
		return nil, err
	}
	return columns, nil
}

// parseValues parses VALUES followed by one or more literal groups
func (b *InsertBuilder) parseValues() ([][]Token, error) {
	if err := b.popExpecting("VALUES", TokenKeyword); err != nil {
		return nil, err
	}

	var rows [][]Token
	for {
		if err := b.popExpecting("(", TokenParenOpen); err != nil {
			return nil, err
		}
		row, err := b.parseLiterals()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)

		if t, ok := b.current(); !ok || t.Kind != TokenParenOpen {
			return rows, nil
		}
	}
}

// parseLiterals reads literals up to and including ')'
func (b *InsertBuilder) parseLiterals() ([]Token, error) {
	var row []Token
	for {
		t, ok := b.current()
		if !ok {
			return nil, SyntaxError("unclosed VALUES group, reached end of query")
		}
		b.advance()
		switch t.Kind {
		case TokenString, TokenNumber:
			row = append(row, t)
		case TokenParenClose:
			return row, nil
		default:
			return nil, unexpected("VALUES", t)
		}
	}
}

// validateArity checks every row against the declared columns
func validateArity(q *Query) error {
	if len(q.Columns) == 0 {
		return nil
	}
	for i, row := range q.Inserts {
		if len(row) != len(q.Columns) {
			return SyntaxError("insert row %d has %d values, expected %d columns", i+1, len(row), len(q.Columns))
		}
	}
	return nil
}
