package pathtoregexp

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// MatchResult is the outcome of a successful match: the matched substring,
// its rune index in the input and the decoded parameter values. Params holds
// a string per single parameter and a []string per repeated one; keys inside
// an unmatched optional group are absent.
type MatchResult struct {
	Path   string         `json:"path"`
	Index  int            `json:"index"`
	Params map[string]any `json:"params"`
}

// MatchFunc recognizes a concrete path. A non-matching input is an ordinary
// outcome, reported as (nil, false), never as an error.
type MatchFunc func(path string) (*MatchResult, bool)

// NewMatcher parses a pattern string and compiles its matcher.
func NewMatcher(pattern string, opts ...Option) (MatchFunc, error) {
	p, err := Parse(pattern, opts...)
	if err != nil {
		return nil, err
	}

	return p.NewMatcher(opts...)
}

// NewMatcher compiles the pattern's matcher. Execution is delegated to the
// regexp2 backtracking engine, which supports the lookahead assertions an
// unanchored pattern relies on.
func (p *ParsedPattern) NewMatcher(opts ...Option) (MatchFunc, error) {
	o := compileOptions(opts)

	// Execution swaps the published "$" anchor for `\z`: the backtracking
	// engine gives "$" .NET semantics, under which an end-anchored pattern
	// would also accept a path with a trailing newline.
	executable := p.compile(o, `\z`)

	re, err := regexp2.Compile(executable.Source, regexpOptionsFromFlags(executable.Flags))
	if err != nil {
		return nil, err
	}

	keys := executable.Keys
	decode := o.decode

	return func(path string) (*MatchResult, bool) {
		m, err := re.FindStringMatch(path)
		if err != nil || m == nil {
			return nil, false
		}

		params := make(map[string]any, len(keys))
		for i := range keys {
			key := &keys[i]

			group := m.GroupByNumber(i + 1)
			if group == nil || len(group.Captures) == 0 {
				continue
			}

			if key.repeat {
				// Split before decoding: the decode hook may well produce
				// separator code points of its own.
				elements := strings.Split(group.String(), key.separator)
				for j := range elements {
					elements[j] = decode(elements[j])
				}

				params[key.Name] = elements
			} else {
				params[key.Name] = decode(group.String())
			}
		}

		return &MatchResult{Path: m.String(), Index: m.Index, Params: params}, true
	}, nil
}

func regexpOptionsFromFlags(flags string) regexp2.RegexOptions {
	reOptions := regexp2.None
	if strings.ContainsRune(flags, 'i') {
		reOptions |= regexp2.IgnoreCase
	}

	return reOptions
}
