package rtr

import "github.com/wayroute/wayroute/consts"

// Router holds one pattern tree per outlet. Most route tables only ever use
// the primary outlet; trees for further outlets are created on first use.
type Router[T any] struct {
	primary Tree[T]
	outlets map[string]*Tree[T]
}

// New creates a router with an empty primary outlet tree.
func New[T any]() *Router[T] {
	return &Router[T]{}
}

// Add registers data for the given pattern under the named outlet.
func (router *Router[T]) Add(outlet string, pattern string, data T) {
	router.selectTree(outlet, true).Add(pattern, data)
}

// Lookup resolves a path within the named outlet, collecting captures.
func (router *Router[T]) Lookup(outlet string, path string) (T, []Parameter) {
	tree := router.selectTree(outlet, false)
	if tree == nil {
		var empty T
		return empty, nil
	}

	return tree.Lookup(path)
}

// LookupNoAlloc resolves a path within the named outlet without allocating.
func (router *Router[T]) LookupNoAlloc(outlet string, path string, addParameter func(string, string)) T {
	tree := router.selectTree(outlet, false)
	if tree == nil {
		var empty T
		return empty
	}

	return tree.LookupNoAlloc(path, addParameter)
}

// Map applies the transform to every registration in every outlet.
func (router *Router[T]) Map(transform func(T) T) {
	router.primary.Map(transform)

	for _, tree := range router.outlets {
		tree.Map(transform)
	}
}

// selectTree returns the tree for the outlet, optionally creating it.
func (router *Router[T]) selectTree(outlet string, create bool) *Tree[T] {
	if outlet == "" || outlet == consts.DefaultOutlet {
		return &router.primary
	}

	tree, ok := router.outlets[outlet]
	if !ok {
		if !create {
			return nil
		}

		tree = &Tree[T]{}

		if router.outlets == nil {
			router.outlets = make(map[string]*Tree[T], 2)
		}
		router.outlets[outlet] = tree
	}

	return tree
}
