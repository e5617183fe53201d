package query

var updateKeywords = []string{"UPDATE", "SET", "WHERE", "AND", "OR", "NOT"}

// UpdateBuilder builds UPDATE queries:
//
//	UPDATE table SET col = literal, ... [WHERE expr]
type UpdateBuilder struct {
	*Parser
}

// NewUpdateBuilder creates a builder over the tokens after UPDATE
func NewUpdateBuilder(tokens []Token) *UpdateBuilder {
	return &UpdateBuilder{Parser: NewParser(tokens)}
}

// ValidateKeywords rejects keywords outside the UPDATE grammar
func (b *UpdateBuilder) ValidateKeywords() error {
	return b.validateKeywords(updateKeywords, OperationUpdate)
}

// Build parses the UPDATE statement
func (b *UpdateBuilder) Build() (*Query, error) {
	if err := b.ValidateKeywords(); err != nil {
		return nil, err
	}

	q := NewQuery(OperationUpdate)

	var err error
	if q.Table, err = b.parseTable(OperationUpdate); err != nil {
		return nil, err
	}
	if q.Updates, err = b.parseUpdates(); err != nil {
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

// parseUpdates parses SET and the assignments up to WHERE or the end
func (b *UpdateBuilder) parseUpdates() ([]ExpressionNode, error) {
	if err := b.popExpecting("SET", TokenKeyword); err != nil {
		return nil, err
	}

	var updates []ExpressionNode
	for {
		if _, ok := b.current(); !ok || b.atKeyword("WHERE") {
			break
		}
		update, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := validateAssignment(update); err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	if len(updates) == 0 {
		return nil, SyntaxError("SET requires at least one assignment")
	}
	return updates, nil
}

// validateAssignment accepts only identifier = literal
func validateAssignment(node ExpressionNode) error {
	field, value, err := AsAssignment(node)
	if err != nil {
		return SyntaxError("failed to parse update statement, got: %v", node)
	}
	if field.Kind != TokenIdentifier {
		return SyntaxError("update target must be a column, got: %s", field)
	}
	if value.Kind != TokenString && value.Kind != TokenNumber {
		return SyntaxError("update value must be a literal, got: %s", value)
	}
	return nil
}
