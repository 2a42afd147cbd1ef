// Package eval walks the syntax tree and invokes the native functions of a
// namespace. A State is one evaluation session.
package eval

import (
	"fmt"

	"fortio.org/log"
	"risp.io/risp/ast"
	"risp.io/risp/lexer"
	"risp.io/risp/object"
	"risp.io/risp/parser"
)

// Maximum nesting of evaluated lists, same as the reader. Past this Eval panics
// instead of overflowing the goroutine stack.
const DefaultMaxDepth = lexer.DefaultMaxDepth

type State struct {
	ns *object.Namespace
	// Max depth / recursion level - default DefaultMaxDepth.
	MaxDepth int
	// AllowAtoms lets EvalString accept top level atoms, which evaluate to
	// themselves (or fail for symbols).
	AllowAtoms bool
	depth      int
	cache      Cache
	lastNumSet int64
}

// NewState returns a session with the default namespace (builtins and
// registered extensions).
func NewState() *State {
	return NewStateWith(object.NewNamespace())
}

// NewBlankState returns a session with an empty namespace.
func NewBlankState() *State {
	return NewStateWith(object.NewEmptyNamespace())
}

func NewStateWith(ns *object.Namespace) *State {
	return &State{
		ns:         ns,
		MaxDepth:   DefaultMaxDepth,
		cache:      NewCache(),
		lastNumSet: ns.NumSet(),
	}
}

func (s *State) Namespace() *object.Namespace {
	return s.ns
}

// Defn registers a function in the session's namespace.
func (s *State) Defn(name string, fn object.Function) {
	s.ns.Defn(name, fn)
	s.checkCache()
}

// Reset post panic recovery.
func (s *State) Reset() {
	s.depth = 0
}

func (s *State) ResetCache() {
	s.cache = NewCache()
}

// Number of memoized results.
func (s *State) CacheSize() int {
	return len(s.cache)
}

// A redefinition, through the state or directly on the namespace, may change
// results so the cache is dropped.
func (s *State) checkCache() {
	n := s.ns.NumSet()
	if n == s.lastNumSet {
		return
	}
	s.lastNumSet = n
	if s.cache != nil {
		log.LogVf("namespace changed, resetting cache of %d entries", len(s.cache))
		s.ResetCache()
	}
}

// EvalProgram evaluates each form in order and stops at the first error,
// in which case no results are returned.
func (s *State) EvalProgram(program *ast.Program) ([]object.Value, error) {
	results := make([]object.Value, 0, len(program.Forms))
	for _, form := range program.Forms {
		v, err := s.Eval(form)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}

// EvalString parses then evaluates code and returns the value of the last
// form, nil for empty input. Parse errors are returned before anything is
// evaluated.
//
//nolint:revive // eval.EvalString is fine.
func (s *State) EvalString(code string) (object.Value, error) {
	p := parser.NewString(code)
	p.AllowAtoms = s.AllowAtoms
	p.MaxDepth = s.MaxDepth
	program, err := p.ParseProgram()
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}
	results, err := s.EvalProgram(program)
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[len(results)-1], nil
}
