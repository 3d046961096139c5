package pathtoregexp

import (
	"strings"
	"unicode/utf8"
)

const fullWildcardRegexpValue = ".*"

type partType uint8

const (
	// partText represents literal text, matched and emitted verbatim.
	partText partType = iota
	// partParameter represents a named matching group, with an optional custom regular expression.
	partParameter
	// partWildcard represents a matching group that greedily matches across delimiter boundaries.
	partWildcard
	// partGroup represents a braced sub-pattern with an optional modifier.
	partGroup
)

type partModifier uint8

const (
	// The part does not have a modifier.
	partModifierNone partModifier = iota
	// The part has an optional modifier indicated by the U+003F (?) code point.
	partModifierOptional
	// The part has a "zero or more" modifier indicated by the U+002A (*) code point.
	partModifierZeroOrMore
	// The part has a "one or more" modifier indicated by the U+002B (+) code point.
	partModifierOneOrMore
)

type part struct {
	pType    partType
	value    string
	name     string
	pattern  string
	parts    partList
	modifier partModifier
	// separator joins and splits the repeated captures of a group carrying a
	// repeat modifier. The parser guarantees it is non-empty for such groups.
	separator string
}

type partList []part

// countMatchingGroups counts the matching groups of the list, including the
// ones nested in sub-groups.
func (pl partList) countMatchingGroups() int {
	n := 0
	for i := range pl {
		switch pl[i].pType {
		case partParameter, partWildcard:
			n++
		case partGroup:
			n += pl[i].parts.countMatchingGroups()
		}
	}

	return n
}

// repeatShape returns the literal text surrounding the single matching group
// of a repeated group. The parser rejects repeated groups with any other
// shape.
func (p *part) repeatShape() (before string, prm *part, after string) {
	for i := range p.parts {
		sub := &p.parts[i]
		if sub.pType == partText {
			if prm == nil {
				before += sub.value
			} else {
				after += sub.value
			}

			continue
		}

		prm = sub
	}

	return before, prm, after
}

// regexpValue is the expression a matching group captures, without the
// capturing parentheses.
func (p *part) regexpValue(o *options) string {
	if p.pType == partWildcard {
		return fullWildcardRegexpValue
	}
	if p.pattern != "" {
		return p.pattern
	}

	return generateSegmentWildcardRegexp(o)
}

func (pl partList) writeRegexpSource(result *strings.Builder, o *options) {
	for i := range pl {
		p := &pl[i]

		switch p.pType {
		case partText:
			if p.modifier == partModifierNone {
				result.WriteString(escapeRegexpString(p.value))

				continue
			}

			result.WriteString("(?:")
			result.WriteString(escapeRegexpString(p.value))
			result.WriteByte(')')
			result.WriteByte(convertModifierToString(p.modifier))

		case partParameter, partWildcard:
			result.WriteByte('(')
			result.WriteString(p.regexpValue(o))
			result.WriteByte(')')

			if p.modifier == partModifierOptional {
				result.WriteByte('?')
			}

		case partGroup:
			switch p.modifier {
			case partModifierNone, partModifierOptional:
				result.WriteString("(?:")
				p.parts.writeRegexpSource(result, o)
				result.WriteByte(')')

				if modifierToString := convertModifierToString(p.modifier); modifierToString != 0 {
					result.WriteByte(modifierToString)
				}

			default:
				// A repeated group emits a single capture spanning every
				// repetition, so the matcher can split it back on the
				// separator.
				before, prm, after := p.repeatShape()

				result.WriteString("(?:")
				result.WriteString(escapeRegexpString(before))
				result.WriteString("((?:")
				result.WriteString(prm.regexpValue(o))
				result.WriteString(")(?:")
				result.WriteString(escapeRegexpString(p.separator))
				result.WriteString("(?:")
				result.WriteString(prm.regexpValue(o))
				result.WriteString("))*)")
				result.WriteString(escapeRegexpString(after))
				result.WriteByte(')')

				if p.modifier == partModifierZeroOrMore {
					result.WriteByte('?')
				}
			}
		}
	}
}

// endsWithDelimiter reports whether the pattern text ends on a delimiter code
// point, in which case an unanchored pattern needs no boundary lookahead.
func (pl partList) endsWithDelimiter(delimiter string) bool {
	if len(pl) == 0 {
		return false
	}

	last := &pl[len(pl)-1]
	if last.pType != partText || last.value == "" {
		return false
	}

	lastCodePoint, _ := utf8.DecodeLastRuneInString(last.value)

	return strings.ContainsRune(delimiter, lastCodePoint)
}

func convertModifierToString(m partModifier) byte {
	switch m {
	case partModifierZeroOrMore:
		return '*'
	case partModifierOptional:
		return '?'
	case partModifierOneOrMore:
		return '+'
	default:
		return 0
	}
}

func generateSegmentWildcardRegexp(o *options) string {
	return "[^" + escapeRegexpString(o.delimiter) + "]+?"
}

// Compile generates the anchored regular expression recognizing the pattern.
// The output is deterministic: compiling the same pattern twice yields
// structurally identical CompiledPattern values.
func (p *ParsedPattern) Compile(opts ...Option) *CompiledPattern {
	return p.compile(compileOptions(opts), "$")
}

// compile generates the source with a configurable end-of-string anchor. The
// published Source uses "$"; the matcher executes a `\z` variant because the
// backtracking engine gives "$" .NET semantics, where it also matches before
// a trailing newline.
func (p *ParsedPattern) compile(o *options, endAnchor string) *CompiledPattern {
	var result strings.Builder

	if o.start {
		result.WriteByte('^')
	}

	p.parts.writeRegexpSource(&result, o)

	delimiter := escapeRegexpString(o.delimiter)

	if o.end {
		if !o.strict {
			result.WriteString("(?:")
			result.WriteString(delimiter)
			result.WriteString(")?")
		}

		result.WriteString(endAnchor)
	} else {
		if !o.strict {
			result.WriteString("(?:")
			result.WriteString(delimiter)
			result.WriteString("(?=")
			result.WriteString(endAnchor)
			result.WriteString("))?")
		}

		if !p.parts.endsWithDelimiter(o.delimiter) {
			result.WriteString("(?=")
			result.WriteString(delimiter)
			result.WriteByte('|')
			result.WriteString(endAnchor)
			result.WriteByte(')')
		}
	}

	flags := "i"
	if o.sensitive {
		flags = ""
	}

	return &CompiledPattern{Source: result.String(), Flags: flags, Keys: p.keys}
}
