// Package pathtoregexp compiles route templates such as "/user/:id" into
// regular expressions and into path builder functions.
//
// The grammar is the one of path-to-regexp: https://github.com/pillarjs/path-to-regexp.
//
// Parsing, compiling, building and matching are pure functions over immutable
// values: a ParsedPattern, CompiledPattern, BuildFunc or MatchFunc may be
// constructed once and used concurrently without synchronization. Compile
// once, invoke many times.
package pathtoregexp

// Key describes one capturable parameter of a pattern. Keys appear in the
// order the parameters occur in the pattern text, including inside groups;
// this is also the order of the corresponding capture groups in a compiled
// pattern.
type Key struct {
	// Name is the parameter name, or the zero-based position rendered in
	// decimal for unnamed matching groups.
	Name string
	// Pattern is the custom matching pattern, empty when the parameter uses
	// the default segment pattern.
	Pattern string

	repeat    bool
	separator string
}

// ParsedPattern is the parsed form of a pattern string. It is read-only once
// produced.
type ParsedPattern struct {
	parts partList
	keys  []Key
}

// Keys returns the pattern's parameter keys in order of appearance. The
// returned slice must not be mutated.
func (p *ParsedPattern) Keys() []Key { return p.keys }

// CompiledPattern is the regular-expression rendering of a pattern: an
// anchored source string, its flags ("i" unless matching is case-sensitive)
// and the keys correlating capture groups to parameter names. Source and
// Flags are plain text so external tooling, such as a backtracking-complexity
// scanner, can inspect them.
type CompiledPattern struct {
	Source string
	Flags  string
	Keys   []Key
}

// Parse turns a pattern string into its parsed form. It fails with a
// *ParseError carrying the offending rune offset when the pattern is
// malformed. Options do not influence parsing; they are accepted so call
// sites can thread one option set through any entry point.
func Parse(pattern string, _ ...Option) (*ParsedPattern, error) {
	return parse(pattern)
}

// MustParse is like Parse but panics on a malformed pattern. It simplifies
// safe initialization of package-level variables.
func MustParse(pattern string, opts ...Option) *ParsedPattern {
	p, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Compile parses a pattern string and generates its regular expression.
func Compile(pattern string, opts ...Option) (*CompiledPattern, error) {
	p, err := Parse(pattern, opts...)
	if err != nil {
		return nil, err
	}

	return p.Compile(opts...), nil
}

// MustCompile is like Compile but panics on a malformed pattern.
func MustCompile(pattern string, opts ...Option) *CompiledPattern {
	c, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}

	return c
}
