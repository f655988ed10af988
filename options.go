package wayroute

import (
	"github.com/caarlos0/env/v11"
	"github.com/rohanthewiz/serr"
	"github.com/wayroute/wayroute/consts"
)

// RouterOptions configures a Router. Zero values fall back to the defaults.
type RouterOptions struct {
	// Verbose prints a line per navigation.
	Verbose bool `env:"WAYROUTE_VERBOSE"`

	// MaxRedirects bounds a navigation's redirect chain.
	MaxRedirects int `env:"WAYROUTE_MAX_REDIRECTS"`

	// Outlet names the outlet Navigate resolves against.
	Outlet string `env:"WAYROUTE_OUTLET"`
}

func defaultOptions() RouterOptions {
	return RouterOptions{
		MaxRedirects: 8,
		Outlet:       consts.DefaultOutlet,
	}
}

// OptionsFromEnv returns the default options overridden by WAYROUTE_*
// environment variables.
func OptionsFromEnv() (RouterOptions, error) {
	opts := defaultOptions()

	if err := env.Parse(&opts); err != nil {
		return opts, serr.Wrap(err, "parsing router options from environment")
	}

	return opts, nil
}
