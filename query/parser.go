package query

import (
	"slices"
)

// Builder assembles a Query from the tokens that follow the operation
// keyword. Each operation has its own builder; all of them share the
// grammar primitives of Parser.
type Builder interface {
	// Build parses the whole token stream into a Query
	Build() (*Query, error)

	// ValidateKeywords rejects keywords the operation does not allow
	ValidateKeywords() error
}

// Parser is the token cursor shared by the statement builders and the
// expression parser. Tokens are consumed from the front, so a WHERE clause
// leaves whatever follows it (ORDER BY) for the caller.
type Parser struct {
	tokens       []Token
	pos          int
	depthCounter *ExpressionDepthCounter
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:       tokens,
		pos:          0,
		depthCounter: NewExpressionDepthCounter(),
	}
}

// Parse validates, tokenizes and parses a SQL statement
func Parse(query string) (*Query, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens, err := Tokenize(query)
	if err != nil {
		return nil, err
	}

	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	return FromTokens(tokens)
}

// FromTokens dispatches on the first token to the matching builder
func FromTokens(tokens []Token) (*Query, error) {
	if len(tokens) == 0 {
		return nil, SyntaxError("query does not start with a valid operation")
	}

	builder, err := NewBuilder(operationOf(tokens[0]), tokens[1:])
	if err != nil {
		return nil, err
	}
	return builder.Build()
}

// NewBuilder returns the builder for op over the remaining tokens
func NewBuilder(op Operation, tokens []Token) (Builder, error) {
	switch op {
	case OperationSelect:
		return NewSelectBuilder(tokens), nil
	case OperationInsert:
		return NewInsertBuilder(tokens), nil
	case OperationUpdate:
		return NewUpdateBuilder(tokens), nil
	case OperationDelete:
		return NewDeleteBuilder(tokens), nil
	default:
		return nil, SyntaxError("query does not start with a valid operation")
	}
}

func operationOf(t Token) Operation {
	switch t.Value {
	case "SELECT":
		return OperationSelect
	case "INSERT INTO":
		return OperationInsert
	case "UPDATE":
		return OperationUpdate
	case "DELETE":
		return OperationDelete
	default:
		return OperationUnknown
	}
}

// current returns the current token; ok is false at the end of the stream
func (p *Parser) current() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// atKeyword reports whether the current token is the given keyword
func (p *Parser) atKeyword(keyword string) bool {
	t, ok := p.current()
	return ok && t.Kind == TokenKeyword && t.Value == keyword
}

// peekExpecting checks the current token without consuming it
func (p *Parser) peekExpecting(value string, kind TokenKind) error {
	t, ok := p.current()
	if !ok {
		return SyntaxError("expected %s but reached end of query", Token{Value: value, Kind: kind})
	}
	if t.Kind != kind || t.Value != value {
		return SyntaxError("expected %s, got %s", Token{Value: value, Kind: kind}, t)
	}
	return nil
}

// popExpecting checks the current token and consumes it
func (p *Parser) popExpecting(value string, kind TokenKind) error {
	if err := p.peekExpecting(value, kind); err != nil {
		return err
	}
	p.advance()
	return nil
}

// expectNone fails if any tokens remain
func (p *Parser) expectNone() error {
	if t, ok := p.current(); ok {
		return SyntaxError("expected end of query, got %s", t)
	}
	return nil
}

// unexpected reports t as out of place while parsing stage
func unexpected(stage string, t Token) error {
	return SyntaxError("unexpected token while parsing %s: %s", stage, t)
}

// validateKeywords scans every remaining token and rejects keywords that
// op does not allow. It runs before structural parsing to catch stray
// clauses, like ORDER BY in a DELETE.
func (p *Parser) validateKeywords(allowed []string, op Operation) error {
	for _, t := range p.tokens[p.pos:] {
		if t.Kind == TokenKeyword && !slices.Contains(allowed, t.Value) {
			return SyntaxError("invalid keyword for %s query, got: %s", op, t.Value)
		}
	}
	return nil
}

// parseTable reads the table name. SELECT and DELETE need FROM first.
func (p *Parser) parseTable(op Operation) (string, error) {
	if op == OperationSelect || op == OperationDelete {
		if err := p.popExpecting("FROM", TokenKeyword); err != nil {
			return "", err
		}
	}

	t, ok := p.current()
	if !ok {
		return "", SyntaxError("could not find table identifier")
	}
	if t.Kind != TokenIdentifier {
		return "", unexpected("TABLE", t)
	}
	if err := ValidateTableName(t.Value); err != nil {
		return "", SyntaxError("%v", err)
	}
	p.advance()
	return t.Value, nil
}

// parseColumns reads identifiers until '*', FROM, VALUES or ')'. A '*' is
// consumed and leaves the list empty, meaning all columns. The boolean
// reports whether a '*' was seen.
func (p *Parser) parseColumns() ([]Token, bool, error) {
	var columns []Token
	for {
		t, ok := p.current()
		if !ok {
			return columns, false, nil
		}
		switch {
		case t.Kind == TokenIdentifier:
			if err := ValidateColumnName(t.Value); err != nil {
				return nil, false, SyntaxError("%v", err)
			}
			columns = append(columns, t)
			p.advance()
		case t.Kind == TokenOperator && t.Value == "*":
			if len(columns) > 0 {
				return nil, false, unexpected("COLUMNS", t)
			}
			p.advance()
			return nil, true, nil
		case t.Kind == TokenKeyword && (t.Value == "FROM" || t.Value == "VALUES"):
			return columns, false, nil
		case t.Kind == TokenParenClose:
			return columns, false, nil
		default:
			return nil, false, unexpected("COLUMNS", t)
		}
	}
}

// parseWhere consumes WHERE and the expression after it
func (p *Parser) parseWhere() (ExpressionNode, error) {
	if err := p.popExpecting("WHERE", TokenKeyword); err != nil {
		return nil, err
	}
	return p.parseExpression()
}

// parseOptionalWhere returns Empty when no WHERE clause follows
func (p *Parser) parseOptionalWhere() (ExpressionNode, error) {
	if !p.atKeyword("WHERE") {
		return Empty{}, nil
	}
	return p.parseWhere()
}
