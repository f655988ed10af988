package wayroute

import (
	"net/url"
	"strings"

	"github.com/wayroute/wayroute/consts"
)

// splitTarget splits a navigation target into its path and raw query.
// Full URLs ("scheme://host/path?query") are accepted alongside bare paths.
// Scanned manually so malformed targets degrade predictably instead of
// erroring out.
func splitTarget(target string) (path string, query string) {
	schemeEnd := strings.Index(target, consts.SchemeDelimiter)
	if schemeEnd != -1 {
		target = target[schemeEnd+len(consts.SchemeDelimiter):]

		pathStart := strings.IndexByte(target, consts.RuneFwdSlash)
		if pathStart == -1 {
			return consts.StrSlash, ""
		}

		target = target[pathStart:]
	}

	queryStart := strings.IndexByte(target, consts.RuneQuestion)
	if queryStart == -1 {
		return target, ""
	}

	return target[:queryStart], target[queryStart+1:]
}

// parseQuery parses a raw query string into a mapping. Query values stay
// separate from route params; the two are never merged.
func parseQuery(raw string) Params {
	params := Params{}

	for len(raw) > 0 {
		pair := raw
		next := strings.IndexByte(raw, consts.RuneAmpersand)

		if next == -1 {
			raw = ""
		} else {
			pair = raw[:next]
			raw = raw[next+1:]
		}

		if pair == "" {
			continue
		}

		key := pair
		value := ""

		if eq := strings.IndexByte(pair, consts.RuneEquals); eq != -1 {
			key = pair[:eq]
			value = pair[eq+1:]
		}

		if key == "" {
			continue
		}

		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}

		params[key] = value
	}

	return params
}
