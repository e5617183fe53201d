package query

var selectKeywords = []string{"SELECT", "FROM", "WHERE", "ORDER BY", "ASC", "DESC", "AND", "OR", "NOT"}

// SelectBuilder builds SELECT queries:
//
//	SELECT col, ... | * FROM table [WHERE expr] [ORDER BY col [ASC|DESC], ...]
type SelectBuilder struct {
	*Parser
}

// NewSelectBuilder creates a builder over the tokens after SELECT
func NewSelectBuilder(tokens []Token) *SelectBuilder {
	return &SelectBuilder{Parser: NewParser(tokens)}
}

// ValidateKeywords rejects keywords outside the SELECT grammar
func (b *SelectBuilder) ValidateKeywords() error {
	return b.validateKeywords(selectKeywords, OperationSelect)
}

// Build parses the SELECT statement
func (b *SelectBuilder) Build() (*Query, error) {
	if err := b.ValidateKeywords(); err != nil {
		return nil, err
	}

	q := NewQuery(OperationSelect)

	columns, star, err := b.parseColumns()
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 && !star {
		return nil, SyntaxError("SELECT requires a column list or *")
	}
	q.Columns = columns

	if q.Table, err = b.parseTable(OperationSelect); err != nil {
		return nil, err
	}
	if q.Conditions, err = b.parseOptionalWhere(); err != nil {
		return nil, err
	}
	if q.Ordering, err = b.parseOrdering(); err != nil {
		return nil, err
	}
	if err := b.expectNone(); err != nil {
		return nil, err
	}
	return q, nil
}

// parseOrdering parses an optional ORDER BY list; each key defaults to ASC
func (b *SelectBuilder) parseOrdering() ([]Ordering, error) {
	if !b.atKeyword("ORDER BY") {
		return nil, nil
	}
	b.advance()

	var ordering []Ordering
	for {
		t, ok := b.current()
		if !ok {
			break
		}
		if t.Kind != TokenIdentifier {
			if len(ordering) > 0 {
				break
			}
			return nil, unexpected("ORDER BY", t)
		}
		b.advance()

		order := Ordering{Field: t, Direction: Asc}
		switch {
		case b.atKeyword("ASC"):
			b.advance()
		case b.atKeyword("DESC"):
			order.Direction = Desc
			b.advance()
		}
		ordering = append(ordering, order)
	}

	if len(ordering) == 0 {
		return nil, SyntaxError("ORDER BY requires at least one column")
	}
	return ordering, nil
}
