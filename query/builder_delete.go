package query

var deleteKeywords = []string{"DELETE", "FROM", "WHERE", "AND", "OR", "NOT"}

// DeleteBuilder builds DELETE queries:
//
//	DELETE FROM table [WHERE expr]
type DeleteBuilder struct {
	*Parser
}

// NewDeleteBuilder creates a builder over the tokens after DELETE
func NewDeleteBuilder(tokens []Token) *DeleteBuilder {
	return &DeleteBuilder{Parser: NewParser(tokens)}
}

// ValidateKeywords rejects keywords outside the DELETE grammar
func (b *DeleteBuilder) ValidateKeywords() error {
	return b.validateKeywords(deleteKeywords, OperationDelete)
}

// Build parses the DELETE statement
func (b *DeleteBuilder) Build() (*Query, error) {
	if err := b.ValidateKeywords(); err != nil {
		return nil, err
	}

	q := NewQuery(OperationDelete)

	var err error
	if q.Table, err = b.parseTable(OperationDelete); err != nil {
		return nil, err
	}
	if q.Conditions, err = b.parseOptionalWhere(); err != nil {
		return nil, err
	}
	if err := b.expectNone(); err != nil {
		return nil, err
	}
	return q, nil
}
