package wayroute

import (
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/wayroute/wayroute/consts"
)

// catchAllKey is the capture name the tree reports for the ** segment.
// It is filtered out of Params; the unmatched tail is exposed via ctx.Rest().
// "/**" parses in the tree as a catch-all node named "*", so no pattern
// rewriting is needed between the public and internal forms.
const catchAllKey = "*"

// outletKey folds the empty outlet name onto the primary outlet.
func outletKey(outlet string) string {
	if outlet == "" {
		return consts.DefaultOutlet
	}

	return outlet
}

// normalizePattern gives every pattern a leading slash, so "**" and "/**"
// register identically.
func normalizePattern(pattern string) string {
	if !strings.HasPrefix(pattern, consts.StrSlash) {
		return consts.StrSlash + pattern
	}

	return pattern
}

// isStaticPattern reports whether a pattern is fully literal and can live in
// the exact-match table.
func isStaticPattern(pattern string) bool {
	return strings.IndexByte(pattern, consts.RuneColon) < 0 &&
		strings.IndexByte(pattern, consts.RuneAsterisk) < 0
}

// validatePattern enforces pattern syntax at registration time:
// :name spans a whole, non-empty segment; names are unique within the
// pattern; ** appears only as the final segment; matrix notation is a URL
// feature and has no place in a pattern.
func validatePattern(pattern string) error {
	if pattern == "" {
		return serr.New("route pattern is empty")
	}

	segments := strings.Split(pattern[1:], consts.StrSlash)
	seen := make(map[string]bool, 2)

	for i, segment := range segments {
		switch {
		case segment == consts.CatchAll:
			if i != len(segments)-1 {
				return serr.New("catch-all ** must be the final segment", "pattern", pattern)
			}

		case strings.IndexByte(segment, consts.RuneAsterisk) >= 0:
			return serr.New("asterisk is only valid as the ** catch-all segment",
				"pattern", pattern, "segment", segment)

		case strings.IndexByte(segment, consts.RuneColon) >= 0:
			if segment[0] != consts.RuneColon {
				return serr.New("parameter marker must start its segment",
					"pattern", pattern, "segment", segment)
			}

			name := segment[1:]

			if name == "" {
				return serr.New("parameter segment needs a name", "pattern", pattern)
			}

			if strings.IndexByte(name, consts.RuneColon) >= 0 {
				return serr.New("segment carries more than one parameter marker",
					"pattern", pattern, "segment", segment)
			}

			if seen[name] {
				return serr.New("duplicate parameter name in pattern",
					"pattern", pattern, "name", name)
			}
			seen[name] = true

		case strings.IndexByte(segment, consts.RuneSemicolon) >= 0:
			return serr.New("matrix notation belongs in navigation targets, not patterns",
				"pattern", pattern, "segment", segment)
		}
	}

	return nil
}

// expandRedirect substitutes :name placeholders in a redirect target with
// values captured from the matched pattern. Placeholders without a capture
// are left as-is.
func expandRedirect(target string, params Params) string {
	if strings.IndexByte(target, consts.RuneColon) < 0 {
		return target
	}

	segments := strings.Split(target, consts.StrSlash)

	for i, segment := range segments {
		if len(segment) > 1 && segment[0] == consts.RuneColon {
			if value, ok := params[segment[1:]]; ok {
				segments[i] = value
			}
		}
	}

	return strings.Join(segments, consts.StrSlash)
}
