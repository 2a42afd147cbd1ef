package eval

import (
	"risp.io/risp/object"
)

const MaxArgs = 4

type CacheKey struct {
	Fn   string
	Args [MaxArgs]object.Value
}

type Cache map[CacheKey]object.Value

func NewCache() Cache {
	return make(Cache)
}

func makeKey(fn string, args []object.Value) (CacheKey, bool) {
	key := CacheKey{Fn: fn}
	if len(args) > MaxArgs {
		return key, false
	}
	for i, v := range args {
		// Lists hold a slice and can't be part of a key.
		if !object.Comparable(v) {
			return key, false
		}
		key.Args[i] = v
	}
	return key, true
}

func (c Cache) Get(fn string, args []object.Value) (object.Value, bool) {
	key, ok := makeKey(fn, args)
	if !ok {
		return nil, false
	}
	result, ok := c[key]
	return result, ok
}

func (c Cache) Set(fn string, args []object.Value, result object.Value) {
	key, ok := makeKey(fn, args)
	if !ok {
		return
	}
	c[key] = result
}
