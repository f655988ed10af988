package wayroute

import "errors"

var (
	// ErrNoMatch is returned when a navigation target matches no registered
	// route and no catch-all (**) route exists to fall back to.
	ErrNoMatch = errors.New("no route matches the requested path")

	// ErrRedirectLoop is returned when a navigation chains through more
	// redirects than RouterOptions.MaxRedirects allows.
	ErrRedirectLoop = errors.New("redirect limit exceeded")
)
