package rtr

import "github.com/wayroute/wayroute/consts"

// StaticTable resolves fully-literal patterns by exact string match.
// It is consulted before the tree, which is what gives non-parameterised
// patterns priority over parameterised ones: /track/new in the table wins
// over /track/:id in the tree without any ordering rules in the tree itself.
type StaticTable[T any] struct {
	primary map[string]T
	outlets map[string]map[string]T
}

// NewStaticTable creates an initialized static table.
// Always construct through here; the zero value's maps are nil.
func NewStaticTable[T any]() *StaticTable[T] {
	return &StaticTable[T]{
		primary: make(map[string]T, 16),
	}
}

// Add registers data for an exact path under the named outlet.
func (st *StaticTable[T]) Add(outlet string, path string, data T) {
	st.selectMap(outlet, true)[path] = data
}

// Lookup returns the data registered for the exact path, or the zero value.
func (st *StaticTable[T]) Lookup(outlet string, path string) T {
	m := st.selectMap(outlet, false)
	if m == nil {
		var empty T
		return empty
	}

	return m[path]
}

// List returns every registration in the table, for inspection.
func (st *StaticTable[T]) List() (routes []RouteList) {
	for path := range st.primary {
		routes = append(routes, RouteList{Outlet: consts.DefaultOutlet, Pattern: path})
	}

	for outlet, m := range st.outlets {
		for path := range m {
			routes = append(routes, RouteList{Outlet: outlet, Pattern: path})
		}
	}

	return
}

// selectMap returns the map for the outlet, optionally creating it.
func (st *StaticTable[T]) selectMap(outlet string, create bool) map[string]T {
	if outlet == "" || outlet == consts.DefaultOutlet {
		return st.primary
	}

	m, ok := st.outlets[outlet]
	if !ok {
		if !create {
			return nil
		}

		m = make(map[string]T, 4)

		if st.outlets == nil {
			st.outlets = make(map[string]map[string]T, 2)
		}
		st.outlets[outlet] = m
	}

	return m
}
