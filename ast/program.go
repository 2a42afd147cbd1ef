package ast

import "strings"

// Program is the sequence of top level forms of one unit of input.
type Program struct {
	Forms []Node
}

func (p *Program) String() string {
	if len(p.Forms) == 0 {
		return "<empty>"
	}
	buf := strings.Builder{}
	WriteStrings(&buf, p.Forms, "\n")
	return buf.String()
}
