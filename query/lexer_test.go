package query

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func kw(v string) Token { return Token{Value: v, Kind: TokenKeyword} }
func ident(v string) Token { return Token{Value: v, Kind: TokenIdentifier} }
func num(v string) Token { return Token{Value: v, Kind: TokenNumber} }
func str(v string) Token { return Token{Value: v, Kind: TokenString} }
func op(v string) Token { return Token{Value: v, Kind: TokenOperator} }

var (
	parenOpen  = Token{Value: "(", Kind: TokenParenOpen}
	parenClose = Token{Value: ")", Kind: TokenParenClose}
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "select with condition",
			input: "SELECT * FROM users WHERE age >= 30",
			want:  []Token{kw("SELECT"), op("*"), kw("FROM"), ident("users"), kw("WHERE"), ident("age"), op(">="), num("30")},
		},
		{
			name:  "lower case multi word keywords",
			input: "insert   into users values (1, 'Ana');",
			want:  []Token{kw("INSERT INTO"), ident("users"), kw("VALUES"), parenOpen, num("1"), str("Ana"), parenClose},
		},
		{
			name:  "order by with directions",
			input: "select a from t order by a desc, b",
			want:  []Token{kw("SELECT"), ident("a"), kw("FROM"), ident("t"), kw("ORDER BY"), ident("a"), kw("DESC"), ident("b")},
		},
		{
			name:  "keyword prefixes stay identifiers",
			input: "SELECT description, orders, notes FROM t",
			want:  []Token{kw("SELECT"), ident("description"), ident("orders"), ident("notes"), kw("FROM"), ident("t")},
		},
		{
			name:  "operators without spaces",
			input: "a<=b AND c<>d OR e!=f",
			want:  []Token{ident("a"), op("<="), ident("b"), kw("AND"), ident("c"), op("<>"), ident("d"), kw("OR"), ident("e"), op("!="), ident("f")},
		},
		{
			name:  "string escapes",
			input: `name = 'it\'s a \\ test'`,
			want:  []Token{ident("name"), op("="), str(`it's a \ test`)},
		},
		{
			name:  "string keeps separators and spaces",
			input: "email = ' a,b@x.com '",
			want:  []Token{ident("email"), op("="), str(" a,b@x.com ")},
		},
		{
			name:  "nested parentheses",
			input: "NOT (a = 1 AND (b = 2))",
			want:  []Token{kw("NOT"), parenOpen, ident("a"), op("="), num("1"), kw("AND"), parenOpen, ident("b"), op("="), num("2"), parenClose, parenClose},
		},
		{
			name:  "only separators",
			input: " , ; ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unclosed string", "SELECT * FROM t WHERE name = 'Ana", "unclosed quotation mark"},
		{"unclosed parenthesis", "SELECT * FROM t WHERE (a = 1", "left unclosed"},
		{"unexpected close", "SELECT * FROM t WHERE a = 1)", "unexpected ')'"},
		{"unknown character", "SELECT # FROM t", "could not tokenize char"},
		{"unknown operator", "SELECT * FROM t WHERE a =< 1", "unrecognized operator"},
		{"lone bang", "SELECT * FROM t WHERE a ! 1", "unrecognized operator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("expected syntax error, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

// render writes a token back as query text
func render(t Token) string {
	if t.Kind != TokenString {
		return t.Value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(t.Value)
	return "'" + escaped + "'"
}

func TestTokenize_RoundTrip(t *testing.T) {
	inputs := []string{
		"SELECT name, email FROM users WHERE age > 30 ORDER BY age DESC",
		"INSERT INTO users (user_id, name) VALUES (1, 'Ana'), (2, 'O\\'Neil')",
		"UPDATE users SET email = 'x@y.com' WHERE NOT (age < 18 OR name <> 'Bo')",
		"delete from pokemon where id = 1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Tokenize(input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}

			parts := make([]string, len(first))
			for i, tok := range first {
				parts[i] = render(tok)
			}

			second, err := Tokenize(strings.Join(parts, " "))
			if err != nil {
				t.Fatalf("re-Tokenize() error = %v", err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}
