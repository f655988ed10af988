package wayroute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayroute/wayroute"
)

func TestStripMatrix(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		base   string
		params wayroute.Params
	}{
		{
			name:   "no matrix",
			path:   "/search/moby",
			base:   "/search/moby",
			params: wayroute.Params{},
		},
		{
			name:   "single pair on last segment",
			path:   "/track/99;mode=full",
			base:   "/track/99",
			params: wayroute.Params{"mode": "full"},
		},
		{
			name:   "pairs on an inner segment",
			path:   "/artist;id=12;region=us/tracks",
			base:   "/artist/tracks",
			params: wayroute.Params{"id": "12", "region": "us"},
		},
		{
			name:   "pairs on several segments",
			path:   "/artist;id=12/track;disc=2/lyrics",
			base:   "/artist/track/lyrics",
			params: wayroute.Params{"id": "12", "disc": "2"},
		},
		{
			name:   "pair without value",
			path:   "/search;exact",
			base:   "/search",
			params: wayroute.Params{"exact": ""},
		},
		{
			name:   "empty pairs are skipped",
			path:   "/search;;a=1;",
			base:   "/search",
			params: wayroute.Params{"a": "1"},
		},
		{
			name:   "same key later segment wins",
			path:   "/a;k=1/b;k=2",
			base:   "/a/b",
			params: wayroute.Params{"k": "2"},
		},
		{
			name:   "trailing slash survives",
			path:   "/search;exact=1/",
			base:   "/search/",
			params: wayroute.Params{"exact": "1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base, params := wayroute.StripMatrix(tc.path)
			assert.Equal(t, tc.base, base)
			assert.Equal(t, tc.params, params)
		})
	}
}

// Matrix parameters never influence which route matches; they only extend
// the parameter mapping of whatever route the base path resolves to.
func TestMatrixDoesNotAffectMatching(t *testing.T) {
	r := wayroute.New()

	require.NoError(t, r.Handle("/search", func(ctx wayroute.Context) error {
		return ctx.WriteText("plain search")
	}))

	require.NoError(t, r.Navigate("/search;region=us;limit=20"))
	assert.Equal(t, "plain search", string(r.Outlet().Body()))

	params, navigated := r.Activated().Snapshot()
	assert.True(t, navigated)
	assert.Equal(t, wayroute.Params{"region": "us", "limit": "20"}, params)
}

// Matrix pairs merge on top of positional captures, and a navigation
// without any optional parameters yields an empty, non-nil mapping.
func TestMatrixMergesWithCaptures(t *testing.T) {
	r := wayroute.New()

	var seen wayroute.Params

	require.NoError(t, r.Handle("/track/:id", func(ctx wayroute.Context) error {
		seen = ctx.Params()
		return nil
	}))
	require.NoError(t, r.Handle("/plain", func(ctx wayroute.Context) error {
		seen = ctx.Params()
		return nil
	}))

	require.NoError(t, r.Navigate("/track/99;mode=full;id=override"))
	assert.Equal(t, "full", seen.Get("mode"))
	// matrix entry wins over the positional capture of the same name
	assert.Equal(t, "override", seen.Get("id"))

	require.NoError(t, r.Navigate("/plain"))
	require.NotNil(t, seen)
	assert.Len(t, seen, 0)
}
