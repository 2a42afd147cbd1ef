package object_test

import (
	"errors"
	"testing"

	"risp.io/risp/object"
	"risp.io/risp/trie"
)

func ints(values ...int64) []object.Value {
	res := make([]object.Value, 0, len(values))
	for _, v := range values {
		res = append(res, object.Integer{Value: v})
	}
	return res
}

func TestInspect(t *testing.T) {
	tests := []struct {
		value    object.Value
		expected string
	}{
		{object.Integer{Value: -12}, "-12"},
		{object.String{Value: `a\n"`}, `"a\n""`},
		{object.List{Elements: []object.Value{object.Integer{Value: 1}, object.String{Value: "x"}}}, `(1 "x")`},
		{object.List{}, "()"},
	}
	for _, tt := range tests {
		if got := tt.value.Inspect(); got != tt.expected {
			t.Errorf("Inspect() got %s, expected %s", got, tt.expected)
		}
	}
}

func TestEquals(t *testing.T) {
	a := object.List{Elements: ints(1, 2)}
	b := object.List{Elements: ints(1, 2)}
	c := object.List{Elements: ints(1, 3)}
	if !object.Equals(a, b) {
		t.Errorf("lists should be equal")
	}
	if object.Equals(a, c) {
		t.Errorf("lists should differ")
	}
	if object.Equals(object.Integer{Value: 1}, object.String{Value: "1"}) {
		t.Errorf("different types are never equal")
	}
	if !object.Comparable(object.String{}) || object.Comparable(a) {
		t.Errorf("unexpected Comparable results")
	}
}

func TestPlus(t *testing.T) {
	ns := object.NewNamespace()
	tests := []struct {
		args     []object.Value
		expected int64
	}{
		{nil, 0},
		{ints(), 0},
		{ints(1, 2), 3},
		{ints(-5, 2, 3), 0},
		{ints(1<<62, 1<<62-1), 1<<63 - 1},
	}
	for _, tt := range tests {
		res, err := ns.Invoke("+", tt.args)
		if err != nil {
			t.Errorf("+%v got error %v", tt.args, err)
			continue
		}
		if res.(object.Integer).Value != tt.expected {
			t.Errorf("+%v got %v, expected %d", tt.args, res, tt.expected)
		}
	}
	_, err := ns.Invoke("+", []object.Value{object.Integer{Value: 1}, object.String{Value: "a"}})
	if !errors.Is(err, object.ErrInvalidArguments) {
		t.Errorf("expected invalid arguments, got %v", err)
	}
	_, err = ns.Invoke("+", ints(1<<62, 1<<62))
	if !errors.Is(err, object.ErrInvalidArguments) {
		t.Errorf("expected overflow error, got %v", err)
	}
}

func TestOverflowHelpers(t *testing.T) {
	if _, o := object.AddInt(object.MinInt, -1); !o {
		t.Errorf("MinInt-1 should overflow")
	}
	if v, o := object.AddInt(-3, 5); o || v != 2 {
		t.Errorf("AddInt(-3,5) = %d %v", v, o)
	}
	if _, o := object.MulInt(object.MinInt, -1); !o {
		t.Errorf("MinInt*-1 should overflow")
	}
	if _, o := object.MulInt(1<<32, 1<<31); !o {
		t.Errorf("2^63 should overflow")
	}
	if v, o := object.MulInt(-4, 5); o || v != -20 {
		t.Errorf("MulInt(-4,5) = %d %v", v, o)
	}
}

func TestNamespace(t *testing.T) {
	empty := object.NewEmptyNamespace()
	if empty.Len() != 0 {
		t.Errorf("empty namespace has %d entries", empty.Len())
	}
	_, err := empty.Invoke("+", nil)
	var evalErr *object.EvalError
	if !errors.As(err, &evalErr) || evalErr.Code != object.UnableToEvalFunction || evalErr.Detail != "+" {
		t.Fatalf("expected unable to eval +, got %v", err)
	}
	if err.Error() != "there are no available functions with name: +" {
		t.Errorf("unexpected message %q", err.Error())
	}
	tr := trie.NewTrie()
	empty.RegisterTrie(tr)
	empty.Defn("answer", object.Callback(func([]object.Value) (object.Value, error) {
		return object.Integer{Value: 42}, nil
	}))
	empty.Defn("answer", object.Callback(func([]object.Value) (object.Value, error) {
		return object.Integer{Value: 43}, nil
	}))
	res, err := empty.Invoke("answer", nil)
	if err != nil || res.(object.Integer).Value != 43 {
		t.Errorf("last definition should win, got %v %v", res, err)
	}
	if empty.NumSet() != 2 || empty.Len() != 1 {
		t.Errorf("NumSet %d Len %d", empty.NumSet(), empty.Len())
	}
	if !tr.Contains("answer") {
		t.Errorf("trie should have been updated")
	}
	if !object.NewNamespace().Names().Has("+") {
		t.Errorf("default namespace should have +")
	}
}

func TestExtensionChecks(t *testing.T) {
	ext := object.Extension{
		Name:     "test_ext",
		MinArgs:  1,
		MaxArgs:  2,
		ArgTypes: []object.Type{object.INTEGER, object.STRING},
		Callback: func(args []object.Value) (object.Value, error) {
			return object.Integer{Value: int64(len(args))}, nil
		},
	}
	if err := object.CreateFunction(ext); err != nil {
		t.Fatalf("CreateFunction: %v", err)
	}
	if err := object.CreateFunction(ext); err == nil {
		t.Errorf("duplicate registration should fail")
	}
	if err := object.CreateFunction(object.Extension{Name: "+", Callback: ext.Callback}); err == nil {
		t.Errorf("builtin override should fail")
	}
	if err := object.CreateFunction(object.Extension{Name: "bad", MinArgs: 2, MaxArgs: 1, Callback: ext.Callback}); err == nil {
		t.Errorf("min > max should fail")
	}
	ns := object.NewNamespace()
	if _, ok := ns.Get("test_ext"); !ok {
		t.Fatalf("extension not in default namespace")
	}
	if _, ok := object.NewEmptyNamespace().Get("test_ext"); ok {
		t.Errorf("extension should not be in empty namespace")
	}
	tests := []struct {
		args []object.Value
		ok   bool
	}{
		{nil, false},
		{ints(1), true},
		{[]object.Value{object.Integer{Value: 1}, object.String{Value: "a"}}, true},
		{ints(1, 2), false},
		{[]object.Value{object.String{Value: "a"}}, false},
		{ints(1, 2, 3), false},
	}
	for i, tt := range tests {
		_, err := ns.Invoke("test_ext", tt.args)
		if (err == nil) != tt.ok {
			t.Errorf("test %d: args %v got err %v", i, tt.args, err)
		}
		if err != nil && !errors.Is(err, object.ErrInvalidArguments) {
			t.Errorf("test %d: wrong error kind %v", i, err)
		}
	}
}

func TestEvalErrorIs(t *testing.T) {
	if !errors.Is(object.ErrCannotEvaluateEmptyList, object.ErrInvalidArguments) {
		t.Errorf("empty list should also be invalid arguments")
	}
	if !errors.Is(object.NonSymbol("1"), object.ErrInvalidArguments) {
		t.Errorf("non symbol should also be invalid arguments")
	}
	if errors.Is(object.ErrInvalidArguments, object.ErrCannotEvaluateEmptyList) {
		t.Errorf("invalid arguments is not an empty list error")
	}
	if errors.Is(object.UnknownFunction("x"), object.ErrInvalidArguments) {
		t.Errorf("unknown function is not invalid arguments")
	}
}

func TestMakeValueSlice(t *testing.T) {
	s := object.MakeValueSlice(10)
	if len(s) != 0 || cap(s) != 10 {
		t.Errorf("unexpected slice len %d cap %d", len(s), cap(s))
	}
}
