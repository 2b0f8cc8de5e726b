package lib

import (
	"strconv"
)

type charInfo struct {
	ch       rune
	location Location
}

// Scan converts an expression into its tokens. It stops at the first
// character that matches no token rule and returns no partial result.
func Scan(input string) ([]Token, error) {
	tokens := []Token{}
	err := lex(input, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(input string, emit func(Token)) error {
	l := newLexer(input, emit)
	return l.scan()
}

type lexer struct {
	input            []rune
	length           int
	currentCharIndex int
	currentLocation  Location
	tokenStartIndex  int
	tokenLocation    Location
	emitCallback     func(Token)
}

func newLexer(input string, emit func(Token)) *lexer {
	runes := []rune(input)
	return &lexer{
		input:            runes,
		length:           len(runes),
		currentCharIndex: 0,
		currentLocation:  Location{Offset: 0, Line: 1, Col: 1},
		tokenStartIndex:  0,
		tokenLocation:    Location{Offset: 0, Line: 1, Col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.input[i], location: l.currentLocation}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	if !ok {
		return info, false
	}
	l.currentCharIndex++
	l.currentLocation.Offset++
	if info.ch == '\n' {
		l.currentLocation.Line++
		l.currentLocation.Col = 1
	} else {
		l.currentLocation.Col++
	}
	return info, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	l.resetToken()
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}

	switch chInfo.ch {
	case '(':
		l.emit(TokenTypeLParen)
	case ')':
		l.emit(TokenTypeRParen)
	case '+':
		l.emit(TokenTypePlus)
	case '-':
		l.emit(TokenTypeMinus)
	case '*':
		l.emit(TokenTypeAsterisk)
	case '/':
		l.emit(TokenTypeSlash)
	case '^':
		l.emit(TokenTypeCaret)
	case ' ', '\t', '\r', '\n':
		// whitespace separates tokens but is never emitted
	default:
		if !isDigit(chInfo.ch) {
			return false, &UnsupportedTokenError{Char: chInfo.ch, Location: chInfo.location}
		}
		if err := l.scanNumber(); err != nil {
			return false, err
		}
	}

	return true, nil
}

func (l *lexer) emit(tokType TokenType) {
	l.emitCallback(Token{
		Type:     tokType,
		Text:     l.tokenText(),
		Location: l.tokenLocation,
	})
}

// scanNumber is called with the first digit already consumed. A '.' is only
// part of the number when a digit follows it, otherwise it is left for the
// next token.
func (l *lexer) scanNumber() error {
	l.eatDigits()

	dot, ok := l.peek(0)
	if ok && dot.ch == '.' {
		ahead, ok := l.peek(1)
		if ok && isDigit(ahead.ch) {
			_, _ = l.advance()
			l.eatDigits()
		}
	}

	text := l.tokenText()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return &NumberParseError{Text: text, Location: l.tokenLocation, Err: err}
	}

	l.emitCallback(Token{
		Type:     TokenTypeNumber,
		Text:     text,
		Value:    value,
		Location: l.tokenLocation,
	})
	return nil
}

func (l *lexer) eatDigits() {
	for {
		next, ok := l.peek(0)
		if !ok || !isDigit(next.ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) tokenText() string {
	return string(l.input[l.tokenStartIndex:l.currentCharIndex])
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
