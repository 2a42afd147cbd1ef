// Package extensions adds native functions beyond the `+` builtin to every
// default namespace. Same mechanism can be used to map other go functions.
package extensions

import (
	"errors"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"github.com/rivo/uniseg"
	"risp.io/risp/object"
)

var (
	initDone  = false
	errInInit error
)

// Configure which groups of extensions get registered.
type Config struct {
	NoArithmetic bool // sub, *, /, mod, min and max are skipped if true.
	NoStrings    bool // concat and len are skipped if true.
}

// Init registers the extensions, can be called multiple time safely but should really be called only once
// before creating any eval.State. If the passed [Config] pointer is nil, everything is registered.
func Init(c *Config) error {
	if initDone {
		return errInInit
	}
	if c == nil {
		c = &Config{}
	}
	errInInit = initInternal(c)
	initDone = true
	return errInInit
}

type intFold func(acc, v int64) (int64, error)

func initInternal(c *Config) error {
	if !c.NoArithmetic {
		if err := initArithmetic(); err != nil {
			return err
		}
	}
	if !c.NoStrings {
		if err := initStrings(); err != nil {
			return err
		}
	}
	log.LogVf("extensions initialized: %d functions", len(object.ExtraFunctions()))
	return nil
}

func initArithmetic() error {
	variadic := object.Extension{
		MinArgs:  0,
		MaxArgs:  -1,
		ArgTypes: []object.Type{object.INTEGER},
	}
	for _, function := range []struct {
		name string
		fold intFold
		one  func(int64) (int64, error) // single argument case, identity if nil.
		help string
	}{
		{"sub", subFold, negate, "first argument minus the others, negation of a single argument"},
		{"*", mulFold, nil, "product of the integer arguments, 0 when there are none"},
		{"/", divFold, nil, "integer division of the first argument by the others, left to right"},
	} {
		variadic.Name = function.name
		variadic.Help = function.help
		variadic.Callback = foldCallback(function.name, function.fold, function.one)
		if err := object.CreateFunction(variadic); err != nil {
			return err
		}
	}
	err := object.CreateFunction(object.Extension{
		Name:     "mod",
		MinArgs:  2,
		MaxArgs:  2,
		ArgTypes: []object.Type{object.INTEGER, object.INTEGER},
		Help:     "remainder of the division of the first argument by the second",
		Callback: func(args []object.Value) (object.Value, error) {
			b := args[1].(object.Integer).Value
			if b == 0 {
				return nil, object.InvalidArgs("mod: division by zero")
			}
			if b == -1 {
				return object.Integer{Value: 0}, nil // MinInt % -1 traps.
			}
			return object.Integer{Value: args[0].(object.Integer).Value % b}, nil
		},
	})
	if err != nil {
		return err
	}
	minMax := object.Extension{
		MinArgs:  1,
		MaxArgs:  -1,
		ArgTypes: []object.Type{object.INTEGER},
	}
	for _, function := range []struct {
		name string
		fn   func(a, b int64) int64
	}{
		{"min", func(a, b int64) int64 { return min(a, b) }},
		{"max", func(a, b int64) int64 { return max(a, b) }},
	} {
		minMax.Name = function.name
		minMax.Help = function.name + "imum of the integer arguments"
		minMax.Callback = func(args []object.Value) (object.Value, error) {
			res := args[0].(object.Integer).Value
			for _, a := range args[1:] {
				res = function.fn(res, a.(object.Integer).Value)
			}
			return object.Integer{Value: res}, nil
		}
		if err = object.CreateFunction(minMax); err != nil {
			return err
		}
	}
	return nil
}

func initStrings() error {
	err := object.CreateFunction(object.Extension{
		Name:     "concat",
		MinArgs:  0,
		MaxArgs:  -1,
		ArgTypes: []object.Type{object.STRING},
		Help:     "concatenation of the string arguments",
		Callback: func(args []object.Value) (object.Value, error) {
			var sb strings.Builder
			for _, a := range args {
				sb.WriteString(a.(object.String).Value)
			}
			return object.String{Value: sb.String()}, nil
		},
	})
	if err != nil {
		return err
	}
	return object.CreateFunction(object.Extension{
		Name:     "len",
		MinArgs:  1,
		MaxArgs:  1,
		ArgTypes: []object.Type{object.STRING},
		Help:     "number of characters (grapheme clusters) of the string",
		Callback: func(args []object.Value) (object.Value, error) {
			n, err := safecast.Convert[int64](uniseg.GraphemeClusterCount(args[0].(object.String).Value))
			if err != nil {
				return nil, object.InvalidArgs("len: %v", err)
			}
			return object.Integer{Value: n}, nil
		},
	})
}

// foldCallback applies fold from the first argument over the rest. No
// argument at all gives 0.
func foldCallback(name string, fold intFold, one func(int64) (int64, error)) object.Callback {
	return func(args []object.Value) (object.Value, error) {
		if len(args) == 0 {
			return object.Integer{Value: 0}, nil
		}
		acc := args[0].(object.Integer).Value
		var err error
		if len(args) == 1 && one != nil {
			acc, err = one(acc)
		}
		for _, a := range args[1:] {
			if err != nil {
				break
			}
			acc, err = fold(acc, a.(object.Integer).Value)
		}
		if err != nil {
			return nil, object.InvalidArgs("%s: %v", name, err)
		}
		return object.Integer{Value: acc}, nil
	}
}

var errOverflow = errors.New("integer overflow")

func negate(v int64) (int64, error) {
	if v == object.MinInt {
		return 0, errOverflow
	}
	return -v, nil
}

func subFold(acc, v int64) (int64, error) {
	res := acc - v
	if (v > 0 && res > acc) || (v < 0 && res < acc) {
		return 0, errOverflow
	}
	return res, nil
}

func mulFold(acc, v int64) (int64, error) {
	res, overflow := object.MulInt(acc, v)
	if overflow {
		return 0, errOverflow
	}
	return res, nil
}

func divFold(acc, v int64) (int64, error) {
	if v == 0 {
		return 0, errors.New("division by zero")
	}
	if acc == object.MinInt && v == -1 {
		return 0, errOverflow
	}
	return acc / v, nil
}
