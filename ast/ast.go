// Package ast holds the syntax tree produced by the risp reader: lists of
// nodes and the three atom kinds. The set of node types is closed.
package ast

import (
	"strconv"
	"strings"
)

type Node interface {
	String() string // canonical representation of the expression.
	node()
}

type List struct {
	Elements []Node
}

type Num struct {
	Value int64
}

type Sym struct {
	Name string
}

// Str holds the raw bytes between the quotes, no escape processing.
type Str struct {
	Value string
}

func (List) node() {}
func (Num) node()  {}
func (Sym) node()  {}
func (Str) node()  {}

func NewList(elements ...Node) List {
	if elements == nil {
		elements = []Node{}
	}
	return List{Elements: elements}
}

func (l List) Len() int {
	return len(l.Elements)
}

func WriteStrings[T interface{ String() string }](out *strings.Builder, list []T, sep string) {
	for i, p := range list {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(p.String())
	}
}

func (l List) String() string {
	out := strings.Builder{}
	out.WriteByte('(')
	WriteStrings(&out, l.Elements, " ")
	out.WriteByte(')')
	return out.String()
}

func (n Num) String() string {
	return strconv.FormatInt(n.Value, 10)
}

func (s Sym) String() string {
	return s.Name
}

// Not strconv.Quote: the content is shown as is, like it was typed.
func (s Str) String() string {
	return `"` + s.Value + `"`
}

// DebugString mirrors the structure of the tree, for diagnostics only.
func DebugString(n Node) string {
	out := strings.Builder{}
	debugString(&out, n)
	return out.String()
}

func debugString(out *strings.Builder, n Node) {
	switch n := n.(type) {
	case List:
		out.WriteString("List[")
		for i, e := range n.Elements {
			if i > 0 {
				out.WriteString(", ")
			}
			debugString(out, e)
		}
		out.WriteString("]")
	case Num:
		out.WriteString("Num(")
		out.WriteString(n.String())
		out.WriteString(")")
	case Sym:
		out.WriteString("Sym(")
		out.WriteString(n.Name)
		out.WriteString(")")
	case Str:
		out.WriteString("Str(")
		out.WriteString(strconv.Quote(n.Value))
		out.WriteString(")")
	default:
		out.WriteString("<nil>")
	}
}
