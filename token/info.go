package token

import "fortio.org/sets"

// Info enables introspection of the reserved bytes and of the builtin names
// registered so far.
type RispInfo struct {
	Reserved sets.Set[string]
	Builtins sets.Set[string]
}

var info = RispInfo{
	Reserved: sets.New("(", ")", `"`, "'"),
	Builtins: sets.New[string](),
}

func Info() RispInfo {
	return info
}

// AddBuiltin records a function name made available to every default namespace.
func AddBuiltin(name string) {
	info.Builtins.Add(name)
}
