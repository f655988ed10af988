package wayroute

import (
	"path"
)

// Group is a set of routes under a common prefix with shared guards.
// Groups organize a route table (e.g. everything under /admin behind an
// auth guard) and can be nested.
type Group struct {
	prefix   string
	router   *Router
	handlers []Handler
}

// Group creates a route group on the router with optional guards.
func (r *Router) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   prefix,
		router:   r,
		handlers: handlers,
	}
}

// Group creates a sub-group with an additional prefix and optional guards.
// The sub-group inherits the parent's guards.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		router:   g.router,
		handlers: append(g.handlers, handlers...),
	}
}

// Use adds guards to the group. They apply to routes registered afterwards,
// in the order they were added.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// Handle registers a component handler under the group prefix.
func (g *Group) Handle(pattern string, handler Handler) error {
	return g.addRoute(Route{Pattern: pattern, Handler: handler})
}

// Redirect registers a redirect under the group prefix. Group guards do not
// run for redirects; the redirected-to route carries its own.
func (g *Group) Redirect(pattern string, target string) error {
	fullPattern := path.Join("/", g.prefix, pattern)
	return g.router.Add(Route{Pattern: fullPattern, RedirectTo: target})
}

// Add registers a fully specified route under the group prefix.
func (g *Group) Add(route Route) error {
	return g.addRoute(route)
}

// addRoute joins the group prefix onto the pattern and wraps the handler in
// the group's guard chain before registering with the router.
func (g *Group) addRoute(route Route) error {
	route.Pattern = path.Join("/", g.prefix, route.Pattern)

	if route.Handler == nil {
		return g.router.Add(route)
	}

	// Wrap guards in reverse so they execute in the order they were added
	finalHandler := route.Handler

	for i := len(g.handlers) - 1; i >= 0; i-- {
		guard := g.handlers[i]
		nextHandler := finalHandler

		finalHandler = func(ctx Context) error {
			// Track whether the guard called Next. A guard that neither
			// continues the chain nor errors falls through automatically,
			// so simple guards need no Next call at all.
			nextCalled := false

			wrapper := &contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return nextHandler(ctx)
				},
			}

			err := guard(wrapper)

			if err == nil && !nextCalled {
				err = nextHandler(ctx)
			}

			return err
		}
	}

	route.Handler = finalHandler
	return g.router.Add(route)
}

// contextWrapper intercepts Next so group guards chain into each other
// instead of into the router's global chain.
type contextWrapper struct {
	Context
	next func() error
}

// Next overrides the wrapped context's Next with the group chain hop.
func (w *contextWrapper) Next() error {
	return w.next()
}
