package lexer

import (
	"fmt"
)

type ErrorCode uint8

const (
	CannotParseEmpty ErrorCode = iota + 1
	MissingLeftParenthesis
	MissingRightParenthesis
	ForbiddenCharInSymbol
	CannotParseNumber
	MissingDoubleQuote
	StringDidntEnd
	NotAnSExpression
)

// ParseError is the error returned for any input the reader rejects.
// Char is set for ForbiddenCharInSymbol and Text for CannotParseNumber.
type ParseError struct {
	Code ErrorCode
	Char byte
	Text string
}

var (
	ErrCannotParseEmpty        = &ParseError{Code: CannotParseEmpty}
	ErrMissingLeftParenthesis  = &ParseError{Code: MissingLeftParenthesis}
	ErrMissingRightParenthesis = &ParseError{Code: MissingRightParenthesis}
	ErrForbiddenCharInSymbol   = &ParseError{Code: ForbiddenCharInSymbol}
	ErrCannotParseNumber       = &ParseError{Code: CannotParseNumber}
	ErrMissingDoubleQuote      = &ParseError{Code: MissingDoubleQuote}
	ErrStringDidntEnd          = &ParseError{Code: StringDidntEnd}
	ErrNotAnSExpression        = &ParseError{Code: NotAnSExpression}
)

func (e *ParseError) Error() string {
	switch e.Code {
	case CannotParseEmpty:
		return "unparseable empty expression passed in"
	case MissingLeftParenthesis:
		return "missing left parenthesis in S expression"
	case MissingRightParenthesis:
		return "missing right parenthesis in S expression"
	case ForbiddenCharInSymbol:
		return fmt.Sprintf("forbidden char in symbol %q", e.Char)
	case CannotParseNumber:
		return fmt.Sprintf("unable to parse number %q", e.Text)
	case MissingDoubleQuote:
		return "missing closing double quote in string"
	case StringDidntEnd:
		return "string literal must be followed by whitespace or )"
	case NotAnSExpression:
		return "not an S expression"
	}
	return fmt.Sprintf("parse error %d", e.Code)
}

// Is matches on the error code only so the sentinels above work with
// errors.Is whatever the char or text of the actual error.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Code == e.Code
}

func forbiddenChar(ch byte) *ParseError {
	return &ParseError{Code: ForbiddenCharInSymbol, Char: ch}
}

func badNumber(text []byte) *ParseError {
	return &ParseError{Code: CannotParseNumber, Text: string(text)}
}
