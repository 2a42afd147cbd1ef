package token

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		ch       byte
		expected Class
	}{
		{' ', SPACE},
		{'\t', SPACE},
		{'\n', SPACE},
		{'\r', SPACE},
		{'\f', SPACE},
		{'\v', OTHER},
		{'(', LPAREN},
		{')', RPAREN},
		{'"', DQUOTE},
		{'\'', SQUOTE},
		{'0', DIGIT},
		{'9', DIGIT},
		{'-', MINUS},
		{'+', OTHER},
		{'a', OTHER},
	}
	for _, tt := range tests {
		if got := Classify(tt.ch); got != tt.expected {
			t.Errorf("Classify(%q) = %s, expected %s", tt.ch, got, tt.expected)
		}
	}
}

func TestForbidden(t *testing.T) {
	for _, ch := range []byte(`()"'`) {
		if !IsForbidden(ch) {
			t.Errorf("%q should be forbidden", ch)
		}
	}
	for _, ch := range []byte("ab+-*/ 1{}[]<>") {
		if IsForbidden(ch) {
			t.Errorf("%q should not be forbidden", ch)
		}
	}
	if i := IndexForbidden([]byte("a(b")); i != 1 {
		t.Errorf("IndexForbidden(a(b) = %d, expected 1", i)
	}
	if i := IndexForbidden([]byte("abc")); i != -1 {
		t.Errorf("IndexForbidden(abc) = %d, expected -1", i)
	}
}

func TestIndexCut(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"abc", 3},
		{"abc def", 3},
		{"abc) def", 3},
		{"ab)", 2},
		{"a\tb", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := IndexCut([]byte(tt.input)); got != tt.expected {
			t.Errorf("IndexCut(%q) = %d, expected %d", tt.input, got, tt.expected)
		}
	}
}

func TestTrim(t *testing.T) {
	got := string(Trim([]byte(" \t\f(a b)\r\n ")))
	if got != "(a b)" {
		t.Errorf("Trim returned %q", got)
	}
	got = string(Trim([]byte("\va\v")))
	if got != "\va\v" {
		t.Errorf("vertical tab should not be trimmed, got %q", got)
	}
}

func TestInfo(t *testing.T) {
	AddBuiltin("test_builtin")
	i := Info()
	if !i.Builtins.Has("test_builtin") {
		t.Errorf("builtin not recorded: %v", i.Builtins)
	}
	if !i.Reserved.Has("(") || len(i.Reserved) != 4 {
		t.Errorf("unexpected reserved set %v", i.Reserved)
	}
}
