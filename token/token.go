// Package token holds the reserved bytes of the risp surface syntax and the
// character classes the reader dispatches on.
package token

import (
	"bytes"
	"strconv"

	"fortio.org/log"
	"fortio.org/sets"
)

type Class uint8

const (
	OTHER Class = iota
	SPACE
	LPAREN
	RPAREN
	DQUOTE
	SQUOTE
	DIGIT
	MINUS
)

func (c Class) String() string {
	switch c {
	case OTHER:
		return "OTHER"
	case SPACE:
		return "SPACE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case DQUOTE:
		return "DQUOTE"
	case SQUOTE:
		return "SQUOTE"
	case DIGIT:
		return "DIGIT"
	case MINUS:
		return "MINUS"
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

const (
	LeftParen  = '('
	RightParen = ')'
	DoubleQ    = '"'
	SingleQ    = '\''
	Minus      = '-'
)

// Whitespace is the ASCII whitespace set trimmed around every unit and used to
// separate atoms. Vertical tab is not part of it.
const Whitespace = " \t\n\r\f"

// Bytes that can never appear inside an atom.
var forbidden = sets.New[byte](LeftParen, RightParen, DoubleQ, SingleQ)

func Classify(ch byte) Class {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f':
		return SPACE
	case LeftParen:
		return LPAREN
	case RightParen:
		return RPAREN
	case DoubleQ:
		return DQUOTE
	case SingleQ:
		return SQUOTE
	case Minus:
		return MINUS
	}
	if IsDigit(ch) {
		return DIGIT
	}
	return OTHER
}

func IsSpace(ch byte) bool {
	return Classify(ch) == SPACE
}

func IsDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func IsForbidden(ch byte) bool {
	return forbidden.Has(ch)
}

// StartsNumber is true for the bytes that make an atom numeric.
func StartsNumber(ch byte) bool {
	c := Classify(ch)
	return c == DIGIT || c == MINUS
}

// Trim removes leading and trailing ASCII whitespace. The result shares the
// input's backing array.
func Trim(b []byte) []byte {
	return bytes.Trim(b, Whitespace)
}

// IndexCut returns where an atom starting at b[0] ends: the first whitespace
// or right parenthesis, or len(b) when the atom runs to the end.
func IndexCut(b []byte) int {
	for i, ch := range b {
		if ch == RightParen || IsSpace(ch) {
			return i
		}
	}
	return len(b)
}

// IndexForbidden returns the index of the first forbidden byte in b or -1.
func IndexForbidden(b []byte) int {
	for i, ch := range b {
		if IsForbidden(ch) {
			log.Debugf("forbidden %q at %d in %q", ch, i, b)
			return i
		}
	}
	return -1
}
