package object

import "risp.io/risp/token"

// builtins are in every namespace made by NewNamespace.
var builtins = map[string]Extension{
	"+": {
		Name:     "+",
		MinArgs:  0,
		MaxArgs:  -1,
		Variadic: true,
		Help:     "sum of the integer arguments, 0 when there are none",
		Callback: plus,
	},
}

func init() {
	for name := range builtins {
		token.AddBuiltin(name)
	}
}

// Non integers are checked here rather than through ArgTypes to report the
// same reason whatever the position.
func plus(args []Value) (Value, error) {
	var sum int64
	for _, a := range args {
		i, ok := a.(Integer)
		if !ok {
			return nil, InvalidArgs("non-number in sum operation: %s", a.Inspect())
		}
		var overflow bool
		sum, overflow = AddInt(sum, i.Value)
		if overflow {
			return nil, InvalidArgs("integer overflow in sum operation")
		}
	}
	return Integer{Value: sum}, nil
}

// AddInt returns a+b and whether it overflowed.
func AddInt(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) != (b > 0)
}

// MulInt returns a*b and whether it overflowed.
func MulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	c := a * b
	return c, c/b != a || (a == -1 && b == MinInt) || (b == -1 && a == MinInt)
}

const MinInt = -1 << 63
