package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"risp.io/risp/ast"
	"risp.io/risp/lexer"
	"risp.io/risp/parser"
)

func TestParseProgram(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{``, `<empty>`},
		{"   \n\t ", `<empty>`},
		{`()`, `()`},
		{`(+ 1 2)`, `(+ 1 2)`},
		{"(+ 1 2)\n(concat \"a\"   \"b\")", "(+ 1 2)\n(concat \"a\" \"b\")"},
		{`(a)(b)   (c (d))`, "(a)\n(b)\n(c (d))"},
		{"(+ 1\n   2)", `(+ 1 2)`},
	}
	for _, tc := range testCases {
		p := parser.NewString(tc.In)
		program, err := p.ParseProgram()
		require.NoError(t, err, "input %q", tc.In)
		assert.Equal(t, tc.Out, program.String(), "input %q", tc.In)
		assert.True(t, p.Done())
	}
}

func TestParseProgramErrors(t *testing.T) {
	testCases := []struct {
		In    string
		Atoms bool
		Err   error
	}{
		{`5`, false, lexer.ErrNotAnSExpression},
		{`(+ 1 2) x`, false, lexer.ErrNotAnSExpression},
		{`"str"`, false, lexer.ErrNotAnSExpression},
		{`(+ 1 2) (foo`, true, lexer.ErrMissingRightParenthesis},
		{`(a)) b`, true, lexer.ErrMissingLeftParenthesis},
		{`(f 1bad)`, true, lexer.ErrCannotParseNumber},
	}
	for _, tc := range testCases {
		p := parser.NewString(tc.In)
		p.AllowAtoms = tc.Atoms
		program, err := p.ParseProgram()
		assert.Nil(t, program, "no partial program for %q", tc.In)
		assert.True(t, errors.Is(err, tc.Err), "input %q: got %v, expected %v", tc.In, err, tc.Err)
	}
}

func TestAllowAtoms(t *testing.T) {
	p := parser.NewString(`5 "str" sym (l)`)
	p.AllowAtoms = true
	program, err := p.ParseProgram()
	require.NoError(t, err)
	assert.Equal(t, []ast.Node{
		ast.Num{Value: 5},
		ast.Str{Value: "str"},
		ast.Sym{Name: "sym"},
		ast.NewList(ast.Sym{Name: "l"}),
	}, program.Forms)
}

func TestNext(t *testing.T) {
	p := parser.NewString(" (a) (b 2) ")
	n, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "(a)", n.String())
	assert.False(t, p.Done())
	n, err = p.Next()
	require.NoError(t, err)
	assert.Equal(t, "(b 2)", n.String())
	assert.True(t, p.Done())
}

func TestParseOne(t *testing.T) {
	n, err := parser.ParseOne([]byte(" (+ 1 2) "), false)
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", n.String())

	_, err = parser.ParseOne([]byte(""), false)
	assert.ErrorIs(t, err, lexer.ErrCannotParseEmpty)

	_, err = parser.ParseOne([]byte("42"), false)
	assert.ErrorIs(t, err, lexer.ErrNotAnSExpression)

	n, err = parser.ParseOne([]byte("42"), true)
	require.NoError(t, err)
	assert.Equal(t, ast.Num{Value: 42}, n)

	_, err = parser.ParseOne([]byte("(a) (b)"), false)
	assert.ErrorIs(t, err, lexer.ErrNotAnSExpression)
}

func TestMaxDepth(t *testing.T) {
	p := parser.NewString(strings.Repeat("(", 6) + strings.Repeat(")", 6))
	p.MaxDepth = 5
	assert.Panics(t, func() { _, _ = p.ParseProgram() })
}
