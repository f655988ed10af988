package wayroute_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/wayroute/wayroute"
)

func TestNavigationEvents(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search", func(ctx wayroute.Context) error {
		return nil
	})

	var events []wayroute.Event

	r.Events().SubscribeAll(func(e wayroute.Event) {
		events = append(events, e)
	})

	err := r.Navigate("/search")
	assert.Equal(t, err, nil)

	assert.Equal(t, len(events), 2)
	assert.Equal(t, events[0].Type, wayroute.EventNavigationStart)
	assert.Equal(t, events[1].Type, wayroute.EventNavigationEnd)
	assert.Equal(t, events[0].URL, "/search")

	// both events belong to the same navigation
	assert.Equal(t, events[0].ID, events[1].ID)
	assert.Equal(t, events[0].ID == "", false)
}

func TestRedirectEvents(t *testing.T) {
	r := wayroute.New()

	r.Redirect("/old", "/new")
	r.Handle("/new", func(ctx wayroute.Context) error {
		return nil
	})

	var types []wayroute.EventType
	var redirectedTo string

	r.Events().SubscribeAll(func(e wayroute.Event) {
		types = append(types, e.Type)
		if e.Type == wayroute.EventNavigationRedirect {
			redirectedTo = e.RedirectTo
		}
	})

	err := r.Navigate("/old")
	assert.Equal(t, err, nil)

	assert.Equal(t, len(types), 3)
	assert.Equal(t, types[0], wayroute.EventNavigationStart)
	assert.Equal(t, types[1], wayroute.EventNavigationRedirect)
	assert.Equal(t, types[2], wayroute.EventNavigationEnd)
	assert.Equal(t, redirectedTo, "/new")
}

func TestErrorEvent(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search", func(ctx wayroute.Context) error {
		return nil
	})

	var errEvent wayroute.Event

	r.Events().Subscribe(wayroute.EventNavigationError, func(e wayroute.Event) {
		errEvent = e
	})

	err := r.Navigate("/missing")
	assert.Equal(t, errors.Is(err, wayroute.ErrNoMatch), true)
	assert.Equal(t, errEvent.Type, wayroute.EventNavigationError)
	assert.Equal(t, errors.Is(errEvent.Err, wayroute.ErrNoMatch), true)
}

func TestEventBusClear(t *testing.T) {
	r := wayroute.New()

	r.Handle("/search", func(ctx wayroute.Context) error {
		return nil
	})

	count := 0
	r.Events().SubscribeAll(func(wayroute.Event) { count++ })
	r.Events().Clear()

	err := r.Navigate("/search")
	assert.Equal(t, err, nil)
	assert.Equal(t, count, 0)
}
