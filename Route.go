package wayroute

// Handler processes a resolved navigation: the component of a route.
type Handler func(ctx Context) error

// Route maps a path pattern to a component handler, or to a redirect target.
//
// Pattern syntax:
//   - literal segments:    /tracks/top
//   - parameter segments:  /track/:id    (:name spans a whole segment)
//   - catch-all fallback:  /**           (only as the final segment)
//
// A route must carry either a Handler or a RedirectTo target. RedirectTo may
// reference captures from the pattern: Route{Pattern: "/t/:id",
// RedirectTo: "/track/:id"}.
type Route struct {
	Pattern    string
	Handler    Handler
	RedirectTo string

	// Name labels the route in listings and event traces.
	Name string

	// Outlet selects the render target the route belongs to.
	// Empty means the primary outlet.
	Outlet string
}
