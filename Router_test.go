package wayroute_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/wayroute/wayroute"
)

func TestNavigateStatic(t *testing.T) {
	r := wayroute.New()

	err := r.Handle("/search", func(ctx wayroute.Context) error {
		return ctx.WriteText("search page")
	})
	assert.Equal(t, err, nil)

	err = r.Navigate("/search")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "search page")

	// trailing slash resolves the same
	err = r.Navigate("/search/")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "search page")
}

func TestNavigateParameter(t *testing.T) {
	r := wayroute.New()

	r.Handle("/track/:id", func(ctx wayroute.Context) error {
		return ctx.WriteText("track " + ctx.Param("id"))
	})

	err := r.Navigate("/track/porcelain")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "track porcelain")
}

// A literal pattern always wins over a :param pattern for the same URL,
// regardless of registration order.
func TestLiteralWinsOverParameter(t *testing.T) {
	r := wayroute.New()

	r.Handle("/track/:id", func(ctx wayroute.Context) error {
		return ctx.WriteText("by id: " + ctx.Param("id"))
	})
	r.Handle("/track/new", func(ctx wayroute.Context) error {
		return ctx.WriteText("new track form")
	})

	err := r.Navigate("/track/new")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "new track form")

	err = r.Navigate("/track/42")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "by id: 42")
}

func TestCatchAllFallback(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search", func(ctx wayroute.Context) error {
		return ctx.WriteText("search page")
	})
	r.Handle("**", func(ctx wayroute.Context) error {
		return ctx.WriteText("not found: " + ctx.Rest())
	})

	err := r.Navigate("/no/such/page")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "not found: no/such/page")

	// the root path falls back too
	err = r.Navigate("/")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "not found: ")
}

func TestNoMatch(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search", func(ctx wayroute.Context) error {
		return nil
	})

	err := r.Navigate("/missing")
	assert.Equal(t, errors.Is(err, wayroute.ErrNoMatch), true)
}

func TestQuerySeparateFromParams(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search/:term", func(ctx wayroute.Context) error {
		assert.Equal(t, ctx.Param("term"), "moby")
		assert.Equal(t, ctx.Query("page"), "2")
		assert.Equal(t, ctx.Query("mode"), "full text")
		assert.Equal(t, ctx.Params().Has("page"), false)
		return nil
	})

	err := r.Navigate("/search/moby?page=2&mode=full%20text")
	assert.Equal(t, err, nil)
}

func TestFullURLTarget(t *testing.T) {
	r := wayroute.New()

	r.Handle("/track/:id", func(ctx wayroute.Context) error {
		return ctx.WriteText(ctx.Param("id"))
	})

	err := r.Navigate("https://music.example.com/track/99?from=home")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "99")
}

func TestRedirectRoute(t *testing.T) {
	r := wayroute.New()

	r.Redirect("/old-search/:term", "/search/:term")
	r.Handle("/search/:term", func(ctx wayroute.Context) error {
		return ctx.WriteText("results for " + ctx.Param("term"))
	})

	err := r.Navigate("/old-search/moby")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "results for moby")
}

func TestRedirectLoop(t *testing.T) {
	r := wayroute.New(wayroute.RouterOptions{MaxRedirects: 3})

	r.Redirect("/a", "/b")
	r.Redirect("/b", "/a")

	err := r.Navigate("/a")
	assert.Equal(t, errors.Is(err, wayroute.ErrRedirectLoop), true)
}

func TestHandlerRedirect(t *testing.T) {
	r := wayroute.New()

	r.Handle("/gate", func(ctx wayroute.Context) error {
		return ctx.Redirect("/landing")
	})
	r.Handle("/landing", func(ctx wayroute.Context) error {
		return ctx.WriteText("landed")
	})

	err := r.Navigate("/gate")
	assert.Equal(t, err, nil)
	assert.Equal(t, string(r.Outlet().Body()), "landed")
}

func TestGuardChain(t *testing.T) {
	r := wayroute.New()

	var order []string

	r.Use(func(ctx wayroute.Context) error {
		order = append(order, "guard-1")
		return ctx.Next()
	})
	r.Use(func(ctx wayroute.Context) error {
		order = append(order, "guard-2")
		return ctx.Next()
	})

	r.Handle("/search", func(ctx wayroute.Context) error {
		order = append(order, "component")
		return nil
	})

	err := r.Navigate("/search")
	assert.Equal(t, err, nil)
	assert.Equal(t, len(order), 3)
	assert.Equal(t, order[0], "guard-1")
	assert.Equal(t, order[1], "guard-2")
	assert.Equal(t, order[2], "component")
}

func TestGuardBlocks(t *testing.T) {
	r := wayroute.New()

	denied := errors.New("denied")
	componentRan := false

	r.Use(func(ctx wayroute.Context) error {
		if ctx.Path() == "/secret" {
			return denied
		}
		return ctx.Next()
	})

	r.Handle("/secret", func(ctx wayroute.Context) error {
		componentRan = true
		return nil
	})

	r.OnError(func(ctx wayroute.Context, err error) {})

	err := r.Navigate("/secret")
	assert.Equal(t, errors.Is(err, denied), true)
	assert.Equal(t, componentRan, false)
}

func TestRouteValidation(t *testing.T) {
	r := wayroute.New()
	ok := func(ctx wayroute.Context) error { return nil }

	badPatterns := []string{
		"/track/:",
		"/track/x:id",
		"/**/track",
		"/track/*rest",
		"/:id/x/:id",
		"/a;b=c",
	}

	for _, pattern := range badPatterns {
		err := r.Handle(pattern, ok)
		if err == nil {
			t.Errorf("pattern %q should have been rejected", pattern)
		}
	}

	// a route without handler or redirect is rejected
	err := r.Add(wayroute.Route{Pattern: "/x"})
	if err == nil {
		t.Error("handlerless route should have been rejected")
	}
}

func TestListRoutes(t *testing.T) {
	r := wayroute.New()
	ok := func(ctx wayroute.Context) error { return nil }

	r.Add(wayroute.Route{Pattern: "/search", Handler: ok, Name: "search"})
	r.Handle("/track/:id", ok)
	r.Redirect("/old", "/search")

	routes := r.ListRoutes()
	assert.Equal(t, len(routes), 3)
	assert.Equal(t, routes[0].Pattern, "/search")
	assert.Equal(t, routes[0].HandlerRef, "search")
	assert.Equal(t, routes[2].HandlerRef, "-> /search")
}

func TestOutletTitle(t *testing.T) {
	r := wayroute.New()

	r.Handle("/track/:id", func(ctx wayroute.Context) error {
		ctx.Outlet().SetTitle("Track " + ctx.Param("id"))
		return ctx.WriteHTML("<h1>track</h1>")
	})

	err := r.Navigate("/track/9")
	assert.Equal(t, err, nil)
	assert.Equal(t, r.Outlet().Title(), "Track 9")
	assert.Equal(t, r.Outlet().Attr("format"), "html")
	assert.Equal(t, string(r.Outlet().Body()), "<h1>track</h1>")
}
