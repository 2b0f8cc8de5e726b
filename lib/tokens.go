package lib

import "fmt"

type TokenType int

const (
	TokenTypeLParen TokenType = iota
	TokenTypeRParen
	TokenTypePlus
	TokenTypeMinus
	TokenTypeAsterisk
	TokenTypeSlash
	TokenTypeCaret
	TokenTypeNumber
)

// Symbol returns the canonical text of an operator or parenthesis token
// type. Numbers have no fixed symbol.
func (t TokenType) Symbol() string {
	switch t {
	case TokenTypeLParen:
		return "("
	case TokenTypeRParen:
		return ")"
	case TokenTypePlus:
		return "+"
	case TokenTypeMinus:
		return "-"
	case TokenTypeAsterisk:
		return "*"
	case TokenTypeSlash:
		return "/"
	case TokenTypeCaret:
		return "^"
	default:
		return ""
	}
}

func (t TokenType) String() string {
	if t == TokenTypeNumber {
		return "number"
	}
	if sym := t.Symbol(); sym != "" {
		return sym
	}
	return "?"
}

func (t TokenType) isBinaryOp() bool {
	switch t {
	case TokenTypePlus, TokenTypeMinus, TokenTypeAsterisk, TokenTypeSlash, TokenTypeCaret:
		return true
	}
	return false
}

// Location is a 1-based line and column plus the 0-based rune offset into
// the scanned input.
type Location struct {
	Offset int
	Line   int
	Col    int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Token is one lexical unit. Text is the raw span from the input and Value
// is only meaningful for TokenTypeNumber.
type Token struct {
	Type     TokenType
	Text     string
	Value    float64
	Location Location
}

func (t Token) String() string {
	if t.Type == TokenTypeNumber {
		return fmt.Sprintf("%s -> number: %s", t.Location, t.Text)
	}
	return fmt.Sprintf("%s -> %s", t.Location, t.Type)
}
