package lib

import (
	"math"
)

// Eval scans and evaluates an expression.
func Eval(expression string) (float64, error) {
	tokens, err := Scan(expression)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}

// Evaluate computes the value of a token sequence produced by Scan using an
// operand stack and an operator stack. Operators of equal precedence,
// including '^', are applied left to right.
func Evaluate(tokens []Token) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}
	e := evaluator{
		tokens:    tokens,
		operands:  make([]float64, 0, len(tokens)/2+1),
		operators: make([]Token, 0, len(tokens)/2),
	}
	return e.run()
}

// precedence is read-only after init. '(' ranks lowest so nothing is ever
// applied past it; ')' is never pushed.
var precedence = map[TokenType]int{
	TokenTypeLParen:   0,
	TokenTypePlus:     1,
	TokenTypeMinus:    1,
	TokenTypeAsterisk: 2,
	TokenTypeSlash:    2,
	TokenTypeCaret:    3,
	TokenTypeRParen:   4,
}

type evaluator struct {
	tokens    []Token
	current   int
	operands  []float64
	operators []Token
}

func (e *evaluator) run() (float64, error) {
	for e.current < len(e.tokens) {
		tok := e.tokens[e.current]

		var err error
		switch {
		case tok.Type == TokenTypeNumber:
			e.operands = append(e.operands, tok.Value)
		case tok.Type == TokenTypeLParen:
			e.operators = append(e.operators, tok)
		case tok.Type == TokenTypeRParen:
			err = e.closeParen(tok)
		case tok.Type.isBinaryOp():
			err = e.pushOperator(tok)
		default:
			err = errorAt(tok, ErrInvalidOperator)
		}
		if err != nil {
			return 0, err
		}

		e.current++
	}

	for len(e.operators) > 0 {
		op := e.popOperator()
		if op.Type == TokenTypeLParen {
			return 0, errorAt(op, ErrMismatchedParenthesis)
		}
		if err := e.calculate(op); err != nil {
			return 0, err
		}
	}

	if len(e.operands) != 1 {
		return 0, ErrInvalidExpression
	}
	return e.operands[0], nil
}

func (e *evaluator) closeParen(tok Token) error {
	for {
		if len(e.operators) == 0 {
			return errorAt(tok, ErrMismatchedParenthesis)
		}
		op := e.popOperator()
		if op.Type == TokenTypeLParen {
			return nil
		}
		if err := e.calculate(op); err != nil {
			return err
		}
	}
}

func (e *evaluator) pushOperator(tok Token) error {
	rank := precedence[tok.Type]
	for len(e.operators) > 0 {
		top := e.operators[len(e.operators)-1]
		if precedence[top.Type] < rank {
			break
		}
		e.popOperator()
		if err := e.calculate(top); err != nil {
			return err
		}
	}
	e.operators = append(e.operators, tok)
	return nil
}

func (e *evaluator) popOperator() Token {
	op := e.operators[len(e.operators)-1]
	e.operators = e.operators[:len(e.operators)-1]
	return op
}

func (e *evaluator) popOperand() (float64, bool) {
	if len(e.operands) == 0 {
		return 0, false
	}
	v := e.operands[len(e.operands)-1]
	e.operands = e.operands[:len(e.operands)-1]
	return v, true
}

// calculate applies op to the two most recent operands. Division by zero
// follows IEEE 754 and is not an error.
func (e *evaluator) calculate(op Token) error {
	top, ok := e.popOperand()
	if !ok {
		return errorAt(op, ErrInvalidExpression)
	}
	second, ok := e.popOperand()
	if !ok {
		return errorAt(op, ErrInvalidExpression)
	}

	var result float64
	switch op.Type {
	case TokenTypeCaret:
		result = math.Pow(second, top)
	case TokenTypeAsterisk:
		result = second * top
	case TokenTypeSlash:
		result = second / top
	case TokenTypePlus:
		result = second + top
	case TokenTypeMinus:
		result = second - top
	default:
		return errorAt(op, ErrInvalidOperator)
	}

	e.operands = append(e.operands, result)
	return nil
}
