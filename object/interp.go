package object

import (
	"errors"

	"fortio.org/log"
	"risp.io/risp/token"
)

// Function is what a namespace maps names to.
type Function interface {
	Call(args []Value) (Value, error)
}

// Callback adapts a plain go function to Function.
type Callback func(args []Value) (Value, error)

func (f Callback) Call(args []Value) (Value, error) {
	return f(args)
}

// Extension is a native function with its arity and argument types checked
// before Callback runs.
type Extension struct {
	Name     string
	MinArgs  int
	MaxArgs  int    // -1 for no maximum.
	ArgTypes []Type // types of the arguments, the last one repeats for variadic extensions.
	Help     string
	Callback Callback
	Variadic bool
	// Results of extensions are memoized unless DontCache is set.
	DontCache bool
}

func (e Extension) Call(args []Value) (Value, error) {
	n := len(args)
	if n < e.MinArgs {
		return nil, InvalidArgs("%s: wrong number of arguments got=%d, want at least %d", e.Name, n, e.MinArgs)
	}
	if e.MaxArgs != -1 && n > e.MaxArgs {
		return nil, InvalidArgs("%s: wrong number of arguments got=%d, want at most %d", e.Name, n, e.MaxArgs)
	}
	for i, arg := range args {
		if len(e.ArgTypes) == 0 {
			break
		}
		want := e.ArgTypes[min(i, len(e.ArgTypes)-1)]
		if want != ANY && arg.Type() != want {
			return nil, InvalidArgs("%s: argument %d is %s (%s), want %s", e.Name, i+1, arg.Type(), arg.Inspect(), want)
		}
	}
	return e.Callback(args)
}

func (e Extension) Cacheable() bool {
	return !e.DontCache
}

var (
	extraFunctions map[string]Extension
	initDone       bool
)

// Init resets the table of extended functions to empty.
// Optional, will be called on demand the first time through CreateFunction.
func Init() {
	extraFunctions = make(map[string]Extension)
	initDone = true
}

// CreateFunction adds a new function to the table of extended functions
// copied into every namespace made by NewNamespace.
func CreateFunction(cmd Extension) error {
	if !initDone {
		Init()
	}
	if cmd.Name == "" {
		return errors.New("empty command name")
	}
	if cmd.Callback == nil {
		return errors.New(cmd.Name + ": nil callback")
	}
	if cmd.MaxArgs != -1 && cmd.MinArgs > cmd.MaxArgs {
		return errors.New(cmd.Name + ": min args > max args")
	}
	if _, ok := builtins[cmd.Name]; ok {
		return errors.New(cmd.Name + ": already a builtin")
	}
	if _, ok := extraFunctions[cmd.Name]; ok {
		return errors.New(cmd.Name + ": already defined")
	}
	cmd.Variadic = (cmd.MaxArgs == -1) || (cmd.MaxArgs > cmd.MinArgs)
	extraFunctions[cmd.Name] = cmd
	token.AddBuiltin(cmd.Name)
	log.Debugf("registered extension %q", cmd.Name)
	return nil
}

// Returns the table of extended functions to seed a default namespace.
func ExtraFunctions() map[string]Extension {
	if !initDone {
		Init()
	}
	return extraFunctions // map of structs, entries can't be changed through it.
}
