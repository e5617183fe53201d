package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keywords are matched longest-first, so "ORDER BY" wins over an identifier
// named "ORDER".
var reservedKeywords = []string{
	"SELECT",
	"UPDATE",
	"DELETE",
	"INSERT INTO",
	"SET",
	"VALUES",
	"ORDER BY",
	"DESC",
	"ASC",
	"FROM",
	"WHERE",
	"AND",
	"OR",
	"NOT",
}

var validOperators = []string{"*", "=", "<", ">", ">=", "<=", "!=", "<>"}

// Separators that carry no meaning for the grammar
const ignorableChars = ",;"

type lexerState int

const (
	stateBegin lexerState = iota
	stateIdentifierOrKeyword
	stateOperator
	stateNumberLiteral
	stateStringLiteral
	stateOpenParenthesis
	stateCloseParenthesis
	stateComplete
)

// Lexer tokenizes SQL query strings.
//
// It is a state machine: from stateBegin the next character selects a
// state, each state consumes one token and moves to stateComplete, which
// emits the token and returns to stateBegin.
type Lexer struct {
	input  string
	pos    int
	state  lexerState
	depth  int
	token  Token
	tokens []Token
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, state: stateBegin}
}

// Tokenize returns all tokens from the input
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// Tokenize runs the state machine to the end of the input
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.pos < len(l.input) || l.state != stateBegin {
		var err error
		switch l.state {
		case stateBegin:
			err = l.next()
		case stateIdentifierOrKeyword:
			l.readIdentifierOrKeyword()
		case stateOperator:
			err = l.readOperator()
		case stateNumberLiteral:
			l.readNumber()
		case stateStringLiteral:
			err = l.readString()
		case stateOpenParenthesis:
			err = l.readParenthesis(TokenParenOpen)
		case stateCloseParenthesis:
			err = l.readParenthesis(TokenParenClose)
		case stateComplete:
			l.tokens = append(l.tokens, l.token)
			l.token = Token{}
			l.state = stateBegin
		}
		if err != nil {
			return nil, err
		}
	}

	if l.depth != 0 {
		return nil, SyntaxError("unbalanced parenthesis, %d left unclosed", l.depth)
	}
	return l.tokens, nil
}

// charAt returns the rune starting at byte index i, or 0 past the end
func (l *Lexer) charAt(i int) rune {
	if i >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[i:])
	return r
}

// next classifies the current character and selects the next state
func (l *Lexer) next() error {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case canBeSkipped(r):
		l.pos += size
	case r >= '0' && r <= '9':
		l.state = stateNumberLiteral
	case unicode.IsLetter(r) || r == '_':
		l.state = stateIdentifierOrKeyword
	case r == '\'':
		l.state = stateStringLiteral
	case r == '(':
		l.state = stateOpenParenthesis
	case r == ')':
		l.state = stateCloseParenthesis
	case isOperatorChar(r):
		l.state = stateOperator
	default:
		return SyntaxError("could not tokenize char: %q at index: %d", r, l.pos)
	}
	return nil
}

func (l *Lexer) complete(kind TokenKind, value string) {
	l.token = Token{Value: value, Kind: kind}
	l.state = stateComplete
}

func (l *Lexer) readIdentifierOrKeyword() {
	if keyword, n := l.matchKeyword(); n > 0 {
		l.pos += n
		l.complete(TokenKeyword, keyword)
		return
	}
	start := l.pos
	l.consumeWhile(isIdentifierChar)
	l.complete(TokenIdentifier, l.input[start:l.pos])
}

func (l *Lexer) readNumber() {
	start := l.pos
	l.consumeWhile(func(r rune) bool { return r >= '0' && r <= '9' })
	l.complete(TokenNumber, l.input[start:l.pos])
}

func (l *Lexer) readOperator() error {
	op, n := l.longestMatch(validOperators, isOperatorChar)
	if n == 0 {
		return SyntaxError("unrecognized operator %q at index: %d", l.charAt(l.pos), l.pos)
	}
	l.pos += n
	l.complete(TokenOperator, op)
	return nil
}

// readString reads a single-quoted literal; \' and \\ are escapes
func (l *Lexer) readString() error {
	start := l.pos
	l.pos++ // skip opening quote

	var value strings.Builder
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '\\' && l.pos+1 < len(l.input) && (l.input[l.pos+1] == '\'' || l.input[l.pos+1] == '\\'):
			value.WriteByte(l.input[l.pos+1])
			l.pos += 2
		case c == '\'':
			l.pos++
			l.complete(TokenString, value.String())
			return nil
		default:
			value.WriteByte(c)
			l.pos++
		}
	}
	return SyntaxError("unclosed quotation mark after index: %d", start)
}

func (l *Lexer) readParenthesis(kind TokenKind) error {
	value := "("
	if kind == TokenParenClose {
		value = ")"
		l.depth--
		if l.depth < 0 {
			return SyntaxError("unbalanced parenthesis, unexpected ')' at index: %d", l.pos)
		}
	} else {
		l.depth++
	}
	l.pos++
	l.complete(kind, value)
	return nil
}

func (l *Lexer) consumeWhile(match func(rune) bool) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !match(r) {
			return
		}
		l.pos += size
	}
}

// matchKeyword returns the longest reserved keyword at the current position
// and the number of input bytes it spans. Words of a multi-word keyword may
// be separated by any run of whitespace.
func (l *Lexer) matchKeyword() (string, int) {
	best, bestLen := "", 0
	rest := l.input[l.pos:]
	for _, keyword := range reservedKeywords {
		n, ok := matchWords(rest, keyword)
		if !ok || n <= bestLen || isIdentifierChar(l.charAt(l.pos+n)) {
			continue
		}
		best, bestLen = keyword, n
	}
	return best, bestLen
}

// longestMatch returns the longest candidate found at the current position
// that is not immediately followed by another character of its class
func (l *Lexer) longestMatch(candidates []string, sameClass func(rune) bool) (string, int) {
	best, bestLen := "", 0
	for _, candidate := range candidates {
		end := l.pos + len(candidate)
		if end > len(l.input) || len(candidate) <= bestLen {
			continue
		}
		if !strings.EqualFold(l.input[l.pos:end], candidate) || sameClass(l.charAt(end)) {
			continue
		}
		best, bestLen = candidate, len(candidate)
	}
	return best, bestLen
}

func matchWords(input, keyword string) (int, bool) {
	n := 0
	for i, word := range strings.Fields(keyword) {
		if i > 0 {
			start := n
			for n < len(input) {
				r, size := utf8.DecodeRuneInString(input[n:])
				if !unicode.IsSpace(r) {
					break
				}
				n += size
			}
			if n == start {
				return 0, false
			}
		}
		if len(input)-n < len(word) || !strings.EqualFold(input[n:n+len(word)], word) {
			return 0, false
		}
		n += len(word)
	}
	return n, true
}

func canBeSkipped(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(ignorableChars, r)
}

func isIdentifierChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOperatorChar(r rune) bool {
	return strings.ContainsRune("*=<>!", r)
}
