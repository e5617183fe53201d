package query

// parseExpression parses a boolean expression starting at the current token
func (p *Parser) parseExpression() (ExpressionNode, error) {
	return p.parseOr()
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (ExpressionNode, error) {
	if err := p.depthCounter.Enter(); err != nil {
		return nil, err
	}
	defer p.depthCounter.Exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.atKeyword("OR") {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Statement{
			Operator: OpOr,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (ExpressionNode, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.atKeyword("AND") {
		p.advance()
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = Statement{
			Operator: OpAnd,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parseNot parses a prefix NOT applied to one comparison
func (p *Parser) parseNot() (ExpressionNode, error) {
	if !p.atKeyword("NOT") {
		return p.parseComparison()
	}
	p.advance()

	operand, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return Statement{
		Operator: OpNot,
		Left:     operand,
		Right:    Empty{},
	}, nil
}

// parseComparison parses leaf [op leaf]. Without an operator the bare leaf
// is returned.
func (p *Parser) parseComparison() (ExpressionNode, error) {
	left, err := p.parseLeaf()
	if err != nil {
		return nil, err
	}

	t, ok := p.current()
	if !ok || t.Kind != TokenOperator {
		return left, nil
	}
	op, isComparison := comparisonOperators[t.Value]
	if !isComparison {
		return left, nil
	}
	p.advance()

	right, err := p.parseLeaf()
	if err != nil {
		return nil, err
	}
	return Statement{
		Operator: op,
		Left:     left,
		Right:    right,
	}, nil
}

// parseLeaf parses an identifier, literal or parenthesized expression
func (p *Parser) parseLeaf() (ExpressionNode, error) {
	t, ok := p.current()
	if !ok {
		return nil, SyntaxError("reached end of query while parsing expression")
	}

	switch t.Kind {
	case TokenParenOpen:
		p.advance()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.current()
		if !ok {
			return nil, SyntaxError("unclosed parenthesis, reached end of query")
		}
		if closing.Kind != TokenParenClose {
			return nil, SyntaxError("unclosed parenthesis, got: %s", closing)
		}
		p.advance()
		return inner, nil
	case TokenIdentifier, TokenNumber, TokenString:
		p.advance()
		return Leaf{Token: t}, nil
	default:
		return nil, unexpected("expression", t)
	}
}
