// Package lexer reads S-expressions. The reader is recursive descent and
// returns, for a buffer, the first node found plus whatever text follows it
// instead of advancing a shared cursor.
package lexer

import (
	"fmt"
	"strconv"

	"fortio.org/log"
	"risp.io/risp/ast"
	"risp.io/risp/token"
)

// DefaultMaxDepth is the deepest list nesting accepted by Tokenize.
const DefaultMaxDepth = 100_000

// Token is the result of reading one node. An empty Rest means the whole
// buffer was used (Parsed); otherwise Rest is the trimmed, never empty,
// remainder that holds the next sibling (ParsedRest).
type Token struct {
	Node ast.Node
	Rest []byte
}

func (t Token) Parsed() bool {
	return len(t.Rest) == 0
}

func parsed(n ast.Node) Token {
	return Token{Node: n}
}

func parsedRest(n ast.Node, rest []byte) Token {
	return Token{Node: n, Rest: rest}
}

func (t Token) String() string {
	if t.Parsed() {
		return "Parsed(" + ast.DebugString(t.Node) + ")"
	}
	return fmt.Sprintf("ParsedRest(%s, %q)", ast.DebugString(t.Node), t.Rest)
}

// Tokenize reads the first node of buffer with the default depth limit.
func Tokenize(buffer []byte) (Token, error) {
	return TokenizeDepth(buffer, DefaultMaxDepth)
}

// TokenizeDepth is Tokenize with an explicit nesting limit. Going over the
// limit panics, it is not a parse error.
func TokenizeDepth(buffer []byte, maxDepth int) (Token, error) {
	r := reader{maxDepth: maxDepth}
	return r.tokenize(buffer)
}

type reader struct {
	maxDepth int
	depth    int
}

func (r *reader) tokenize(buffer []byte) (Token, error) {
	trimmed := token.Trim(buffer)
	if len(trimmed) == 0 {
		return Token{}, ErrCannotParseEmpty
	}
	switch token.Classify(trimmed[0]) { //nolint:exhaustive // everything else is an atom.
	case token.RPAREN:
		return Token{}, ErrMissingLeftParenthesis
	case token.DQUOTE:
		return readString(trimmed)
	case token.LPAREN:
		return r.readList(trimmed[1:])
	default:
		return readAtom(trimmed)
	}
}

// The first byte of buf is the opening quote.
func readString(buf []byte) (Token, error) {
	end := -1
	for i := 1; i < len(buf); i++ {
		if buf[i] == token.DoubleQ {
			end = i
			break
		}
	}
	if end < 0 {
		return Token{}, ErrMissingDoubleQuote
	}
	node := ast.Str{Value: string(buf[1:end])}
	after := buf[end+1:]
	if len(after) == 0 {
		return parsed(node), nil
	}
	if c := token.Classify(after[0]); c != token.SPACE && c != token.RPAREN {
		return Token{}, ErrStringDidntEnd
	}
	return parsedRest(node, token.Trim(after)), nil
}

// buf starts just after the opening parenthesis.
func (r *reader) readList(buf []byte) (Token, error) {
	r.depth++
	if r.depth > r.maxDepth {
		log.LogVf("max depth %d reached", r.maxDepth)
		panic(fmt.Sprintf("max depth %d reached", r.maxDepth))
	}
	defer func() { r.depth-- }()
	elements := []ast.Node{}
	rest := token.Trim(buf)
	for {
		if len(rest) == 0 {
			return Token{}, ErrMissingRightParenthesis
		}
		if rest[0] == token.RightParen {
			list := ast.List{Elements: elements}
			after := token.Trim(rest[1:])
			log.Debugf("list of %d at depth %d, %d bytes left", len(elements), r.depth, len(after))
			if len(after) == 0 {
				return parsed(list), nil
			}
			return parsedRest(list, after), nil
		}
		tok, err := r.tokenize(rest)
		if err != nil {
			return Token{}, err
		}
		elements = append(elements, tok.Node)
		if tok.Parsed() {
			// Ran out of input while still inside the list.
			return Token{}, ErrMissingRightParenthesis
		}
		rest = tok.Rest
	}
}

func readAtom(buf []byte) (Token, error) {
	cut := token.IndexCut(buf)
	text := buf[:cut]
	rest := token.Trim(buf[cut:])
	if i := token.IndexForbidden(text); i >= 0 {
		return Token{}, forbiddenChar(text[i])
	}
	var node ast.Node
	if token.StartsNumber(text[0]) {
		n, err := strconv.ParseInt(string(text), 10, 64)
		if err != nil {
			log.LogVf("not a number %q: %v", text, err)
			return Token{}, badNumber(text)
		}
		node = ast.Num{Value: n}
	} else {
		node = ast.Sym{Name: string(text)}
	}
	if len(rest) == 0 {
		return parsed(node), nil
	}
	return parsedRest(node, rest), nil
}
