package object

import (
	"strconv"
	"strings"
)

type Type uint8

type Value interface {
	Type() Type
	Inspect() string
}

const (
	UNKNOWN Type = iota
	INTEGER
	STRING
	LIST
	ANY // only used in Extension.ArgTypes, matches any value.
	LAST
)

func (t Type) String() string {
	switch t {
	case UNKNOWN:
		return "UNKNOWN"
	case INTEGER:
		return "INTEGER"
	case STRING:
		return "STRING"
	case LIST:
		return "LIST"
	case ANY:
		return "ANY"
	case LAST:
		return "LAST"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

func Equals(left, right Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch left := left.(type) {
	case Integer:
		return left.Value == right.(Integer).Value
	case String:
		return left.Value == right.(String).Value
	case List:
		return ListEquals(left.Elements, right.(List).Elements)
	default:
		return false
	}
}

func ListEquals(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}
	for i, l := range left {
		if !Equals(l, right[i]) {
			return false
		}
	}
	return true
}

// Comparable values can be used as map keys (memoization).
func Comparable(v Value) bool {
	switch v.Type() { //nolint:exhaustive // lists hold a slice.
	case INTEGER, STRING:
		return true
	default:
		return false
	}
}

type Integer struct {
	Value int64
}

func (i Integer) Type() Type { return INTEGER }

func (i Integer) Inspect() string {
	return strconv.FormatInt(i.Value, 10)
}

// String is a byte string, shown between double quotes without escaping.
type String struct {
	Value string
}

func (s String) Type() Type { return STRING }

func (s String) Inspect() string {
	return `"` + s.Value + `"`
}

type List struct {
	Elements []Value
}

func (l List) Type() Type { return LIST }

func (l List) Inspect() string {
	out := strings.Builder{}
	WriteStrings(&out, l.Elements, "(", " ", ")")
	return out.String()
}

func WriteStrings(out *strings.Builder, list []Value, before, sep, after string) {
	out.WriteString(before)
	for i, p := range list {
		if i > 0 {
			out.WriteString(sep)
		}
		out.WriteString(p.Inspect())
	}
	out.WriteString(after)
}
