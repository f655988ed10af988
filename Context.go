package wayroute

import (
	"errors"
)

// Context is the interface for a navigation and its outcome.
type Context interface {
	URL() string
	Path() string
	Param(string) string
	Params() Params
	Query(string) string
	QueryParams() Params
	Rest() string
	Route() *Route
	Outlet() Outlet
	Next() error
	Error(...any) error
	Redirect(string) error
	WriteHTML(string) error
	WriteText(string) error
}

// context carries one navigation through the guard chain.
type context struct {
	router       *Router
	route        *Route
	url          string
	path         string
	rest         string
	params       Params
	query        Params
	out          *outlet // the router's render target
	redirectTo   string
	handlerCount uint8
}

// URL returns the original navigation target.
func (ctx *context) URL() string {
	return ctx.url
}

// Path returns the matched base path, matrix notation stripped.
func (ctx *context) Path() string {
	return ctx.path
}

// Param retrieves a route parameter (positional capture or matrix pair).
func (ctx *context) Param(name string) string {
	return ctx.params.Get(name)
}

// Params returns the full parameter mapping of the match.
func (ctx *context) Params() Params {
	return ctx.params
}

// Query retrieves a query-string value.
func (ctx *context) Query(name string) string {
	return ctx.query.Get(name)
}

// QueryParams returns the query-string mapping.
func (ctx *context) QueryParams() Params {
	return ctx.query
}

// Rest returns the unmatched tail when the catch-all route resolved the
// navigation, otherwise "".
func (ctx *context) Rest() string {
	return ctx.rest
}

// Route returns the matched route.
func (ctx *context) Route() *Route {
	return ctx.route
}

// Outlet returns the render target for this navigation.
func (ctx *context) Outlet() Outlet {
	return ctx.out
}

// Next executes the next handler in the guard chain.
func (ctx *context) Next() error {
	ctx.handlerCount++
	return ctx.router.handlers[ctx.handlerCount](ctx)
}

// Error provides a convenient way to wrap multiple errors.
func (ctx *context) Error(messages ...any) error {
	var combined []error

	for _, msg := range messages {
		switch err := msg.(type) {
		case error:
			combined = append(combined, err)
		case string:
			combined = append(combined, errors.New(err))
		}
	}

	return errors.Join(combined...)
}

// Redirect reroutes the navigation to a different target. The current
// handler chain finishes normally; the router then resolves the new target.
func (ctx *context) Redirect(target string) error {
	ctx.redirectTo = target
	return nil
}

// WriteHTML renders HTML content into the outlet.
func (ctx *context) WriteHTML(body string) error {
	ctx.out.SetAttr("format", "html")
	_, err := ctx.out.WriteString(body)
	return err
}

// WriteText renders plain text into the outlet.
func (ctx *context) WriteText(body string) error {
	_, err := ctx.out.WriteString(body)
	return err
}

// addParameter records a capture reported by the tree. The catch-all
// capture is kept out of the parameter mapping and exposed via Rest.
func (ctx *context) addParameter(key string, value string) {
	if key == catchAllKey {
		ctx.rest = value
		return
	}

	ctx.params[key] = value
}

// reset prepares the context for a fresh navigation target.
func (ctx *context) reset(target string) {
	ctx.url = target
	ctx.path = ""
	ctx.rest = ""
	ctx.route = nil
	ctx.redirectTo = ""
	ctx.handlerCount = 0
	ctx.query = nil

	if ctx.params == nil {
		ctx.params = make(Params, 8)
	} else {
		clear(ctx.params)
	}
}
