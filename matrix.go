package wayroute

import (
	"strings"

	"github.com/wayroute/wayroute/consts"
)

// StripMatrix splits matrix notation off a path.
//
// Any segment may carry ;key=value pairs: /artist;id=12;mode=full/tracks
// resolves against the base path /artist/tracks while id and mode land in
// the returned mapping. Matrix pairs never influence which route matches.
//
// A pair without "=" contributes the key with an empty value. The returned
// mapping is never nil.
func StripMatrix(path string) (string, Params) {
	params := Params{}

	if strings.IndexByte(path, consts.RuneSemicolon) < 0 {
		return path, params
	}

	base := strings.Builder{}
	base.Grow(len(path))

	for len(path) > 0 {
		segEnd := strings.IndexByte(path, consts.RuneFwdSlash)
		segment := path

		if segEnd == -1 {
			path = ""
		} else {
			segment = path[:segEnd]
			path = path[segEnd+1:]
		}

		matrixStart := strings.IndexByte(segment, consts.RuneSemicolon)

		if matrixStart == -1 {
			base.WriteString(segment)
		} else {
			base.WriteString(segment[:matrixStart])
			collectMatrixPairs(segment[matrixStart+1:], params)
		}

		if segEnd != -1 {
			base.WriteByte(consts.RuneFwdSlash)
		}
	}

	return base.String(), params
}

// collectMatrixPairs adds each ;-delimited key=value pair to params.
// Empty pairs (";;") are skipped.
func collectMatrixPairs(raw string, params Params) {
	for len(raw) > 0 {
		pair := raw
		next := strings.IndexByte(raw, consts.RuneSemicolon)

		if next == -1 {
			raw = ""
		} else {
			pair = raw[:next]
			raw = raw[next+1:]
		}

		if pair == "" {
			continue
		}

		eq := strings.IndexByte(pair, consts.RuneEquals)

		if eq == -1 {
			params[pair] = ""
			continue
		}

		if key := pair[:eq]; key != "" {
			params[key] = pair[eq+1:]
		}
	}
}
