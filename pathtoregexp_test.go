package pathtoregexp_test

import (
	"testing"

	"github.com/dunglas/go-pathtoregexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyNames(keys []pathtoregexp.Key) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = key.Name
	}

	return names
}

func TestParseKeysOrder(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		names   []string
	}{
		{"/user/:id", []string{"id"}},
		{"/:x{/foobar/:y}?-:z", []string{"x", "y", "z"}},
		{"/files/*", []string{"0"}},
		{`/:a/(\d+)/*`, []string{"a", "0", "1"}},
		{"{/:foo}+/:bar", []string{"foo", "bar"}},
		{"/x{/:a?}", []string{"a"}},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			parsed, err := pathtoregexp.Parse(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.names, keyNames(parsed.Keys()))
		})
	}
}

func TestParseKeyPattern(t *testing.T) {
	parsed, err := pathtoregexp.Parse(`/:foo(\d+)/:bar`)
	require.NoError(t, err)

	keys := parsed.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, `\d+`, keys[0].Pattern)
	assert.Empty(t, keys[1].Pattern)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		msg     string
		offset  int
	}{
		{
			"/{a{b:foo}}",
			`Unexpected "{" at 3, expected "}": https://git.new/pathToRegexpError`,
			3,
		},
		{
			"/{a",
			`Unexpected end of pattern at 3, expected "}": https://git.new/pathToRegexpError`,
			3,
		},
		{
			"/a}b",
			`Unexpected "}" at 2, expected end of pattern: https://git.new/pathToRegexpError`,
			2,
		},
		{
			"{:x}*",
			`Missing separator for "x": https://git.new/pathToRegexpError`,
			0,
		},
		{
			":foo+",
			`Missing separator for "foo": https://git.new/pathToRegexpError`,
			0,
		},
		{
			"{/:a?}+",
			`Missing separator for "a": https://git.new/pathToRegexpError`,
			0,
		},
		{
			"/:foo/:foo",
			`Duplicate parameter name "foo" at 6`,
			6,
		},
		{
			"/:foo(abc",
			"Unbalanced pattern at 5",
			5,
		},
		{
			"/test?",
			`Unexpected "?" at 5, expected end of pattern: https://git.new/pathToRegexpError`,
			5,
		},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			_, err := pathtoregexp.Parse(tc.pattern)
			require.Error(t, err)

			var parseErr *pathtoregexp.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.msg, parseErr.Msg)
			assert.Equal(t, tc.offset, parseErr.Offset)
		})
	}
}

func TestCompileSource(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		source  string
		opts    []pathtoregexp.Option
	}{
		{
			name:    "parameter",
			pattern: "/user/:id",
			source:  `^\/user\/([^\/]+?)(?:\/)?$`,
		},
		{
			name:    "strict",
			pattern: "/user/:id",
			source:  `^\/user\/([^\/]+?)$`,
			opts:    []pathtoregexp.Option{pathtoregexp.WithStrict()},
		},
		{
			name:    "custom pattern",
			pattern: `/:foo(\d+)`,
			source:  `^\/(\d+)(?:\/)?$`,
		},
		{
			name:    "wildcard",
			pattern: "/files/*",
			source:  `^\/files\/(.*)(?:\/)?$`,
		},
		{
			name:    "unanchored end",
			pattern: "/user",
			source:  `^\/user(?:\/(?=$))?(?=\/|$)`,
			opts:    []pathtoregexp.Option{pathtoregexp.WithEnd(false)},
		},
		{
			name:    "unanchored end on delimiter",
			pattern: "/user/",
			source:  `^\/user\/(?:\/(?=$))?`,
			opts:    []pathtoregexp.Option{pathtoregexp.WithEnd(false)},
		},
		{
			name:    "unanchored start",
			pattern: "/user/:id",
			source:  `\/user\/([^\/]+?)(?:\/)?$`,
			opts:    []pathtoregexp.Option{pathtoregexp.WithStart(false)},
		},
		{
			name:    "optional group",
			pattern: "/:x{/foobar/:y}?-:z",
			source:  `^\/([^\/]+?)(?:\/foobar\/([^\/]+?))?-([^\/]+?)(?:\/)?$`,
		},
		{
			name:    "repeated group",
			pattern: "{/:foo}+",
			source:  `^(?:\/((?:[^\/]+?)(?:\/(?:[^\/]+?))*))(?:\/)?$`,
		},
		{
			name:    "zero or more group",
			pattern: "{/:foo}*",
			source:  `^(?:\/((?:[^\/]+?)(?:\/(?:[^\/]+?))*))?(?:\/)?$`,
		},
		{
			name:    "optional parameter pulls its prefix",
			pattern: "/user/:id?",
			source:  `^\/user(?:\/([^\/]+?))?(?:\/)?$`,
		},
		{
			name:    "repeated parameter",
			pattern: "/:foo+",
			source:  `^(?:\/((?:[^\/]+?)(?:\/(?:[^\/]+?))*))(?:\/)?$`,
		},
		{
			name:    "optional parameter inside a group",
			pattern: "/x{/:a?}",
			source:  `^\/x(?:(?:\/([^\/]+?))?)(?:\/)?$`,
		},
		{
			name:    "fixed text group",
			pattern: "/x{/foobar}?",
			source:  `^\/x(?:\/foobar)?(?:\/)?$`,
		},
		{
			name:    "custom delimiter",
			pattern: ".:host",
			source:  `^\.([^\.]+?)(?:\.)?$`,
			opts:    []pathtoregexp.Option{pathtoregexp.WithDelimiter(".")},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			compiled, err := pathtoregexp.Compile(tc.pattern, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.source, compiled.Source)
		})
	}
}

func TestCompileFlags(t *testing.T) {
	insensitive := pathtoregexp.MustCompile("/user/:id")
	assert.Equal(t, "i", insensitive.Flags)

	sensitive := pathtoregexp.MustCompile("/user/:id", pathtoregexp.WithSensitive())
	assert.Empty(t, sensitive.Flags)
}

func TestCompileIsDeterministic(t *testing.T) {
	first := pathtoregexp.MustCompile("/:x{/y/:z}*")
	second := pathtoregexp.MustCompile("/:x{/y/:z}*")

	assert.Equal(t, first, second)
}

func TestCompileKeysMatchParsedKeys(t *testing.T) {
	parsed, err := pathtoregexp.Parse("/:x{/foobar/:y}?-:z")
	require.NoError(t, err)

	compiled := parsed.Compile()
	assert.Equal(t, parsed.Keys(), compiled.Keys)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { pathtoregexp.MustParse("/:foo(") })
	assert.NotPanics(t, func() { pathtoregexp.MustParse("/:foo") })
}
