package wayroute

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
	"github.com/wayroute/wayroute/consts"
	"github.com/wayroute/wayroute/core/rtr"
)

// Router resolves navigation targets against a route table and drives the
// matched component. Registration is not safe for concurrent use; build the
// table up front, then navigate. Navigations themselves are serialized and
// may come from any goroutine.
type Router struct {
	opts         RouterOptions
	handlers     []Handler
	static       *rtr.StaticTable[*Route]
	dynamic      *rtr.Router[*Route]
	fallbacks    map[string]*Route
	routes       []rtr.RouteList
	activated    *ActivatedRoute
	events       *EventBus
	out          outlet
	navMu        sync.Mutex
	contextPool  sync.Pool
	errorHandler func(Context, error)
}

// New creates a router with an empty route table.
func New(options ...RouterOptions) *Router {
	opts := defaultOptions()

	if len(options) == 1 {
		if options[0].MaxRedirects > 0 {
			opts.MaxRedirects = options[0].MaxRedirects
		}
		if options[0].Outlet != "" {
			opts.Outlet = options[0].Outlet
		}
		opts.Verbose = options[0].Verbose
	}

	r := &Router{
		opts:      opts,
		static:    rtr.NewStaticTable[*Route](),
		dynamic:   rtr.New[*Route](),
		activated: newActivatedRoute(),
		events:    newEventBus(),

		handlers: []Handler{
			func(c Context) error { // terminal handler: run the component
				ctx := c.(*context)

				if ctx.route == nil || ctx.route.Handler == nil {
					return ErrNoMatch
				}

				return ctx.route.Handler(c)
			},
		},
		errorHandler: func(ctx Context, err error) {
			log.Println(ctx.URL(), err)
		},
	}

	r.contextPool.New = func() any { return r.newContext() }
	return r
}

// Handle registers a component handler for the given pattern.
func (r *Router) Handle(pattern string, handler Handler) error {
	return r.Add(Route{Pattern: pattern, Handler: handler})
}

// Redirect registers a redirect for the given pattern. The target may carry
// :name placeholders referencing the pattern's captures.
func (r *Router) Redirect(pattern string, target string) error {
	return r.Add(Route{Pattern: pattern, RedirectTo: target})
}

// Add registers a fully specified route.
// Fully literal patterns land in the exact-match table, which is consulted
// before the tree; that is what gives them priority over :name patterns.
func (r *Router) Add(route Route) error {
	pattern := normalizePattern(route.Pattern)

	if err := validatePattern(pattern); err != nil {
		return err
	}

	if route.Handler == nil && route.RedirectTo == "" {
		return serr.New("route needs a handler or a redirect target", "pattern", pattern)
	}

	stored := route
	stored.Pattern = pattern

	if isStaticPattern(pattern) {
		r.static.Add(route.Outlet, pattern, &stored)

		// the tree tolerates trailing slashes; keep the table in parity
		if pattern != consts.StrSlash {
			r.static.Add(route.Outlet, pattern+consts.StrSlash, &stored)
		}
	} else {
		r.dynamic.Add(route.Outlet, pattern, &stored)

		// A root-level ** also covers paths the tree resolves exactly,
		// like the bare "/", so it is tracked separately as well.
		if pattern == consts.StrSlash+consts.CatchAll {
			if r.fallbacks == nil {
				r.fallbacks = make(map[string]*Route, 1)
			}
			r.fallbacks[outletKey(route.Outlet)] = &stored
		}
	}

	ref := route.Name
	if ref == "" && route.RedirectTo != "" {
		ref = "-> " + route.RedirectTo
	}

	r.routes = append(r.routes, rtr.RouteList{
		Outlet:     route.Outlet,
		Pattern:    pattern,
		HandlerRef: ref,
	})

	return nil
}

// MustAdd is Add, panicking on a bad route. For static tables built at startup.
func (r *Router) MustAdd(route Route) {
	if err := r.Add(route); err != nil {
		panic(err)
	}
}

// Use adds guards to the navigation chain. Guards run before the component
// in registration order and continue the chain via ctx.Next().
func (r *Router) Use(handlers ...Handler) {
	last := r.handlers[len(r.handlers)-1]
	// Re-slice to exclude the terminal handler, append the incoming guards
	r.handlers = append(r.handlers[:len(r.handlers)-1], handlers...)
	r.handlers = append(r.handlers, last) // add back the terminal handler
}

// ListRoutes returns the registered routes for inspection.
func (r *Router) ListRoutes() []rtr.RouteList {
	routes := make([]rtr.RouteList, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Activated exposes the current activation and its parameter stream.
func (r *Router) Activated() *ActivatedRoute {
	return r.activated
}

// Events exposes the navigation event bus.
func (r *Router) Events() *EventBus {
	return r.events
}

// Outlet returns the render target holding the outcome of the most recent
// navigation. Read it after Navigate returns; it is rewritten per navigation.
func (r *Router) Outlet() Outlet {
	return &r.out
}

// Navigate resolves the target, runs the guard chain and the matched
// component, follows redirects, and publishes the parameter mapping to the
// activated-route stream. Navigations are serialized.
func (r *Router) Navigate(target string) error {
	r.navMu.Lock()
	defer r.navMu.Unlock()

	id := uuid.NewString()
	r.events.publish(Event{Type: EventNavigationStart, ID: id, URL: target})

	if r.opts.Verbose {
		fmt.Printf("navigate %q\n", target)
	}

	for hops := 0; ; hops++ {
		if hops > r.opts.MaxRedirects {
			r.events.publish(Event{Type: EventNavigationError, ID: id, URL: target, Err: ErrRedirectLoop})
			return ErrRedirectLoop
		}

		ctx := r.contextPool.Get().(*context)
		ctx.reset(target)

		path, rawQuery := splitTarget(target)
		if path == "" {
			path = consts.StrSlash
		}

		base, matrix := StripMatrix(path)
		ctx.path = base
		ctx.query = parseQuery(rawQuery)

		route := r.static.Lookup(r.opts.Outlet, base)
		if route == nil {
			route = r.dynamic.LookupNoAlloc(r.opts.Outlet, base, ctx.addParameter)
		}

		if route == nil {
			if fallback := r.fallbacks[outletKey(r.opts.Outlet)]; fallback != nil {
				route = fallback
				ctx.rest = strings.TrimPrefix(base, consts.StrSlash)
			}
		}

		if route == nil {
			r.contextPool.Put(ctx)
			r.events.publish(Event{Type: EventNavigationError, ID: id, URL: target, Err: ErrNoMatch})
			return ErrNoMatch
		}

		// Matrix pairs land on top of positional captures, last wins
		for key, value := range matrix {
			ctx.params[key] = value
		}

		if route.RedirectTo != "" {
			next := expandRedirect(route.RedirectTo, ctx.params)
			r.contextPool.Put(ctx)
			r.events.publish(Event{Type: EventNavigationRedirect, ID: id, URL: target, RedirectTo: next})
			target = next
			continue
		}

		ctx.route = route
		r.out.reset()

		err := r.handlers[0](ctx)

		if err == nil && ctx.redirectTo != "" {
			next := ctx.redirectTo
			r.contextPool.Put(ctx)
			r.events.publish(Event{Type: EventNavigationRedirect, ID: id, URL: target, RedirectTo: next})
			target = next
			continue
		}

		if err != nil {
			r.errorHandler(ctx, err)
			r.events.publish(Event{Type: EventNavigationError, ID: id, URL: target, Err: err})
			r.contextPool.Put(ctx)
			return err
		}

		r.activated.set(route, ctx.params, base, target)
		r.events.publish(Event{Type: EventNavigationEnd, ID: id, URL: target})
		r.contextPool.Put(ctx)
		return nil
	}
}

// OnError replaces the default navigation error handler.
func (r *Router) OnError(handler func(Context, error)) {
	r.errorHandler = handler
}

// newContext allocates a context with the default state. Contexts render
// into the router's outlet.
func (r *Router) newContext() *context {
	return &context{
		router: r,
		out:    &r.out,
		params: make(Params, 8),
	}
}
