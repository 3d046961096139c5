package pathtoregexp_test

import (
	"testing"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T, pattern string, opts ...pathtoregexp.Option) pathtoregexp.MatchFunc {
	t.Helper()

	match, err := pathtoregexp.NewMatcher(pattern, opts...)
	require.NoError(t, err)

	return match
}

func TestMatch(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		path    string
		params  map[string]any
		opts    []pathtoregexp.Option
	}{
		{
			name:    "parameter",
			pattern: "/user/:id",
			path:    "/user/123",
			params:  map[string]any{"id": "123"},
		},
		{
			name:    "case-insensitive by default",
			pattern: "/user/:id",
			path:    "/USER/123",
			params:  map[string]any{"id": "123"},
		},
		{
			name:    "optional trailing delimiter",
			pattern: "/user/:id",
			path:    "/user/123/",
			params:  map[string]any{"id": "123"},
		},
		{
			name:    "custom pattern",
			pattern: `/:foo(\d+)`,
			path:    "/42",
			params:  map[string]any{"foo": "42"},
		},
		{
			name:    "wildcard crosses delimiters",
			pattern: "/files/*",
			path:    "/files/a/b.txt",
			params:  map[string]any{"0": "a/b.txt"},
		},
		{
			name:    "repeated group splits on the separator",
			pattern: "{/:foo}+",
			path:    "/a/b/c",
			params:  map[string]any{"foo": []string{"a", "b", "c"}},
		},
		{
			name:    "zero or more group absent",
			pattern: "/x{/:foo}*",
			path:    "/x",
			params:  map[string]any{},
		},
		{
			name:    "optional group absent",
			pattern: "/:x{/foobar/:y}?-:z",
			path:    "/1-2",
			params:  map[string]any{"x": "1", "z": "2"},
		},
		{
			name:    "optional group present",
			pattern: "/:x{/foobar/:y}?-:z",
			path:    "/1/foobar/8-2",
			params:  map[string]any{"x": "1", "y": "8", "z": "2"},
		},
		{
			name:    "repeated parameter",
			pattern: "/:foo+",
			path:    "/a/b",
			params:  map[string]any{"foo": []string{"a", "b"}},
		},
		{
			name:    "optional parameter inside a group",
			pattern: "/x{/:a?}",
			path:    "/x/v",
			params:  map[string]any{"a": "v"},
		},
		{
			name:    "optional parameter inside a group, absent",
			pattern: "/x{/:a?}",
			path:    "/x",
			params:  map[string]any{},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := mustMatcher(t, tc.pattern, tc.opts...)(tc.path)
			require.True(t, ok)
			assert.Equal(t, tc.params, result.Params)
			assert.Equal(t, tc.path, result.Path)
			assert.Zero(t, result.Index)
		})
	}
}

func TestMatchMiss(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		path    string
		opts    []pathtoregexp.Option
	}{
		{
			name:    "different segment",
			pattern: "/user/:id",
			path:    "/post/123",
		},
		{
			name:    "case-sensitive",
			pattern: "/user/:id",
			path:    "/USER/123",
			opts:    []pathtoregexp.Option{pathtoregexp.WithSensitive()},
		},
		{
			name:    "strict trailing delimiter",
			pattern: "/user/:id",
			path:    "/user/123/",
			opts:    []pathtoregexp.Option{pathtoregexp.WithStrict()},
		},
		{
			name:    "custom pattern mismatch",
			pattern: `/:foo(\d+)`,
			path:    "/abc",
		},
		{
			name:    "required repeat absent",
			pattern: "{/:foo}+",
			path:    "",
		},
		{
			name:    "trailing newline",
			pattern: "/user/:id",
			path:    "/user/123\n",
		},
		{
			name:    "prefix cannot consume into a segment",
			pattern: "/user",
			path:    "/username",
			opts:    []pathtoregexp.Option{pathtoregexp.WithEnd(false)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := mustMatcher(t, tc.pattern, tc.opts...)(tc.path)
			assert.False(t, ok)
			assert.Nil(t, result)
		})
	}
}

func TestMatchPrefix(t *testing.T) {
	match := mustMatcher(t, "/user", pathtoregexp.WithEnd(false))

	result, ok := match("/user/123")
	require.True(t, ok)
	assert.Equal(t, "/user", result.Path)
	assert.Zero(t, result.Index)
}

func TestMatchUnanchoredStart(t *testing.T) {
	match := mustMatcher(t, "/user/:id", pathtoregexp.WithStart(false))

	result, ok := match("/app/user/42")
	require.True(t, ok)
	assert.Equal(t, "/user/42", result.Path)
	assert.Equal(t, 4, result.Index)
	assert.Equal(t, map[string]any{"id": "42"}, result.Params)
}

func TestMatchDecodeHook(t *testing.T) {
	match := mustMatcher(t, "/user/:id", pathtoregexp.WithDecode(pathtoregexp.DecodeURIComponent))

	result, ok := match("/user/a%20b")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"id": "a b"}, result.Params)
}

func TestMatcherIsReusable(t *testing.T) {
	match := mustMatcher(t, "/user/:id")

	first, ok := match("/user/1")
	require.True(t, ok)
	second, ok := match("/user/2")
	require.True(t, ok)

	assert.Equal(t, "1", first.Params["id"])
	assert.Equal(t, "2", second.Params["id"])
}
