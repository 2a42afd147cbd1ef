package object

import (
	"fortio.org/log"
	"fortio.org/sets"
	"risp.io/risp/trie"
)

// Namespace maps function names to the native functions they invoke. Entries
// are added or replaced, never removed. Not safe for concurrent use: each
// evaluation session owns its own.
type Namespace struct {
	functions map[string]Function
	trie      *trie.Trie
	numSet    int64
}

// NewEmptyNamespace returns a namespace without any function.
func NewEmptyNamespace() *Namespace {
	return &Namespace{functions: make(map[string]Function)}
}

// NewNamespace returns a namespace with the builtins and every registered
// extension.
func NewNamespace() *Namespace {
	extra := ExtraFunctions()
	ns := &Namespace{functions: make(map[string]Function, len(builtins)+len(extra))}
	for name, fn := range builtins {
		ns.functions[name] = fn
	}
	for name, fn := range extra {
		ns.functions[name] = fn
	}
	return ns
}

func (ns *Namespace) Len() int {
	return len(ns.functions)
}

// Defn registers fn under name, replacing any previous entry.
func (ns *Namespace) Defn(name string, fn Function) {
	if _, ok := ns.functions[name]; ok {
		log.LogVf("redefining %q", name)
	}
	ns.functions[name] = fn
	ns.numSet++
	if ns.trie != nil {
		ns.trie.Insert(name)
	}
}

func (ns *Namespace) Get(name string) (Function, bool) {
	fn, ok := ns.functions[name]
	return fn, ok
}

// Invoke calls the function registered as name with args.
func (ns *Namespace) Invoke(name string, args []Value) (Value, error) {
	fn, ok := ns.functions[name]
	if !ok {
		return nil, UnknownFunction(name)
	}
	return fn.Call(args)
}

// NumSet is the cumulative number of Defn calls, a change means cached
// results may be stale.
func (ns *Namespace) NumSet() int64 {
	return ns.numSet
}

func (ns *Namespace) Names() sets.Set[string] {
	names := sets.New[string]()
	for name := range ns.functions {
		names.Add(name)
	}
	return names
}

// RegisterTrie records all current and future function names in t.
func (ns *Namespace) RegisterTrie(t *trie.Trie) {
	ns.trie = t
	for name := range ns.functions {
		t.Insert(name)
	}
}
