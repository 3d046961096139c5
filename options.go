package pathtoregexp

// Transform rewrites a single parameter value while building or matching a
// path, e.g. EncodeURIComponent and DecodeURIComponent.
type Transform func(string) string

type options struct {
	sensitive bool
	strict    bool
	end       bool
	start     bool
	delimiter string
	encode    Transform
	decode    Transform
}

// Option configures pattern compilation, building and matching.
type Option func(*options)

func compileOptions(opts []Option) *options {
	o := &options{
		end:       true,
		start:     true,
		delimiter: "/",
		encode:    identity,
		decode:    identity,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func identity(value string) string { return value }

// WithSensitive makes matching case-sensitive. Matching is case-insensitive
// by default.
func WithSensitive() Option {
	return func(o *options) { o.sensitive = true }
}

// WithStrict disallows the optional trailing delimiter that an end-anchored
// pattern accepts by default.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithEnd controls whether the compiled pattern is anchored at the end of the
// path, true by default. An unanchored pattern still only matches up to a
// delimiter boundary, so a prefix match cannot consume into the next segment.
func WithEnd(end bool) Option {
	return func(o *options) { o.end = end }
}

// WithStart controls whether the compiled pattern is anchored at the start of
// the path, true by default.
func WithStart(start bool) Option {
	return func(o *options) { o.start = start }
}

// WithDelimiter sets the segment delimiter, "/" by default. It bounds the
// default parameter pattern and the optional trailing delimiter.
func WithDelimiter(delimiter string) Option {
	return func(o *options) { o.delimiter = delimiter }
}

// WithEncode sets the transform applied to every parameter value while
// building a path, identity by default.
func WithEncode(encode Transform) Option {
	return func(o *options) {
		if encode != nil {
			o.encode = encode
		}
	}
}

// WithDecode sets the transform applied to every captured value while
// matching a path, identity by default.
func WithDecode(decode Transform) Option {
	return func(o *options) {
		if decode != nil {
			o.decode = decode
		}
	}
}
