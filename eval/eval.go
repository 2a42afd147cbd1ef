package eval

import (
	"fmt"

	"fortio.org/log"
	"risp.io/risp/ast"
	"risp.io/risp/object"
)

// Eval evaluates node with the functions of ns, without memoization.
func Eval(node ast.Node, ns *object.Namespace) (object.Value, error) {
	s := &State{ns: ns, MaxDepth: DefaultMaxDepth}
	return s.Eval(node)
}

// Eval evaluates one node. Nesting more than MaxDepth lists, the same limit
// the reader applies, panics; Reset() must then be called before reusing the
// state.
func (s *State) Eval(node ast.Node) (object.Value, error) {
	if s.depth == 0 {
		s.checkCache()
	}
	l, ok := node.(ast.List)
	if !ok {
		return evalAtom(node)
	}
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > s.MaxDepth {
		log.LogVf("max depth %d reached", s.MaxDepth) // will be logged by the panic handler.
		panic(fmt.Sprintf("max depth %d reached", s.MaxDepth))
	}
	return s.evalList(l)
}

func evalAtom(node ast.Node) (object.Value, error) {
	switch node := node.(type) {
	case ast.Num:
		return object.Integer{Value: node.Value}, nil
	case ast.Str:
		return object.String{Value: node.Value}, nil
	case ast.Sym:
		return nil, object.InvalidArgs("cannot eval a plain symbol %q, there are no variables", node.Name)
	}
	return nil, object.InvalidArgs("unknown node type %T", node)
}

func (s *State) evalList(l ast.List) (object.Value, error) {
	if len(l.Elements) == 0 {
		return nil, object.ErrCannotEvaluateEmptyList
	}
	head, ok := l.Elements[0].(ast.Sym)
	if !ok {
		return nil, object.NonSymbol(l.Elements[0].String())
	}
	args := object.MakeValueSlice(len(l.Elements) - 1)
	for _, e := range l.Elements[1:] {
		v, err := s.Eval(e)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return s.call(head.Name, args)
}

func (s *State) call(name string, args []object.Value) (object.Value, error) {
	fn, ok := s.ns.Get(name)
	if !ok || s.cache == nil || !cacheable(fn) {
		log.Debugf("calling %s with %d args", name, len(args))
		return s.ns.Invoke(name, args)
	}
	if res, ok := s.cache.Get(name, args); ok {
		log.Debugf("cache hit for %s%v", name, args)
		return res, nil
	}
	res, err := fn.Call(args)
	if err == nil {
		s.cache.Set(name, args, res)
	}
	return res, err
}

func cacheable(fn object.Function) bool {
	c, ok := fn.(interface{ Cacheable() bool })
	return ok && c.Cacheable()
}
