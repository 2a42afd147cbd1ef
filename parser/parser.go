// Package parser turns a whole unit of input (a line, a file) into the
// sequence of its top level forms by chaining the reader on each remainder.
package parser

import (
	"fortio.org/log"
	"risp.io/risp/ast"
	"risp.io/risp/lexer"
	"risp.io/risp/token"
)

type Parser struct {
	// AllowAtoms accepts bare atoms and strings as top level forms, when
	// false (the default) only lists are valid program units.
	AllowAtoms bool
	// MaxDepth is the nesting limit handed to the reader.
	MaxDepth int

	rest []byte
}

func New(input []byte) *Parser {
	return &Parser{rest: token.Trim(input), MaxDepth: lexer.DefaultMaxDepth}
}

func NewString(input string) *Parser {
	return New([]byte(input))
}

// Done is true once all the input has been consumed.
func (p *Parser) Done() bool {
	return len(p.rest) == 0
}

// Next reads the next top level form. It must not be called once Done.
func (p *Parser) Next() (ast.Node, error) {
	tok, err := lexer.TokenizeDepth(p.rest, p.MaxDepth)
	if err != nil {
		return nil, err
	}
	if err = p.checkForm(tok.Node); err != nil {
		return nil, err
	}
	p.rest = token.Trim(tok.Rest)
	return tok.Node, nil
}

func (p *Parser) checkForm(n ast.Node) error {
	if p.AllowAtoms {
		return nil
	}
	if _, ok := n.(ast.List); !ok {
		log.LogVf("top level %s is not a list", ast.DebugString(n))
		return lexer.ErrNotAnSExpression
	}
	return nil
}

// ParseProgram reads every form. Nothing is returned but the error if any
// form fails to parse. Empty input is an empty program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{Forms: []ast.Node{}}
	for !p.Done() {
		n, err := p.Next()
		if err != nil {
			return nil, err
		}
		program.Forms = append(program.Forms, n)
	}
	log.Debugf("parsed %d forms", len(program.Forms))
	return program, nil
}

// ParseOne reads input that must hold exactly one form, more than one is
// reported as NotAnSExpression.
func ParseOne(input []byte, allowAtoms bool) (ast.Node, error) {
	p := New(input)
	p.AllowAtoms = allowAtoms
	if p.Done() {
		return nil, lexer.ErrCannotParseEmpty
	}
	n, err := p.Next()
	if err != nil {
		return nil, err
	}
	if !p.Done() {
		log.LogVf("trailing input after %s: %q", n, p.rest)
		return nil, lexer.ErrNotAnSExpression
	}
	return n, nil
}
