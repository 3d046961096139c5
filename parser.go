package pathtoregexp

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type patternParser struct {
	tokenList       []token
	keys            []Key
	index           int
	nextNumericName int
}

func parse(input string) (*ParsedPattern, error) {
	tl, err := tokenize(input)
	if err != nil {
		return nil, err
	}

	p := &patternParser{tokenList: tl}

	parts, err := p.consume(tokenEnd)
	if err != nil {
		return nil, err
	}

	return &ParsedPattern{parts: parts, keys: p.keys}, nil
}

// consume runs the top-level production until endType: tokenEnd at the top
// level, tokenClose inside a group. The grammar is LL(1) at the token level,
// so a single lookahead token selects every branch.
func (p *patternParser) consume(endType tokenType) (partList, error) {
	var parts partList
	var pending strings.Builder

	flushText := func() {
		if pending.Len() == 0 {
			return
		}

		parts = append(parts, part{pType: partText, value: pending.String()})
		pending.Reset()
	}

	for {
		tok := p.tokenList[p.index]

		switch tok.tType {
		case tokenChar, tokenEscapedChar:
			pending.WriteString(tok.value)
			p.index++

		case tokenName, tokenRegexp, tokenAsterisk:
			prm, err := p.consumeParameter()
			if err != nil {
				return nil, err
			}

			modifier := p.tryConsumeModifier()
			if modifier == partModifierNone {
				flushText()
				parts = append(parts, prm)

				continue
			}

			// A modifier on a bare matching group wraps it in an implicit
			// group, pulling the single immediately preceding literal code
			// point in as the group's leading text and separator. The
			// inference is deliberately this narrow: anything further back is
			// ambiguous and rejected.
			if pending.Len() == 0 {
				if modifier == partModifierOptional {
					prm.modifier = partModifierOptional
					parts = append(parts, prm)

					continue
				}

				return nil, newParseError(tok.index, "Missing separator for %q: %s", prm.name, debugURL)
			}

			text := pending.String()
			_, size := utf8.DecodeLastRuneInString(text)
			separator := text[len(text)-size:]

			pending.Reset()
			pending.WriteString(text[:len(text)-size])
			flushText()

			if modifier != partModifierOptional {
				p.markRepeated(len(p.keys)-1, separator)
			}

			parts = append(parts, part{
				pType:     partGroup,
				parts:     partList{{pType: partText, value: separator}, prm},
				modifier:  modifier,
				separator: separator,
			})

		case tokenOpen:
			if endType == tokenClose {
				return nil, p.unexpected(tok, endType)
			}

			flushText()
			p.index++
			keysBefore := len(p.keys)

			inner, err := p.consume(tokenClose)
			if err != nil {
				return nil, err
			}

			group, err := p.finishGroup(tok, inner, p.tryConsumeModifier(), keysBefore)
			if err != nil {
				return nil, err
			}
			if group != nil {
				parts = append(parts, *group)
			}

		case tokenModifier:
			return nil, p.unexpected(tok, endType)

		default: // tokenClose, tokenEnd
			if tok.tType != endType {
				return nil, p.unexpected(tok, endType)
			}

			p.index++
			flushText()

			return parts, nil
		}
	}
}

// consumeParameter consumes a name (with an optional custom pattern), a bare
// custom pattern or a wildcard, and records its key.
func (p *patternParser) consumeParameter() (part, error) {
	tok := p.tokenList[p.index]

	var prm part
	switch tok.tType {
	case tokenName:
		p.index++
		prm = part{pType: partParameter, name: tok.value}

		if next := p.tokenList[p.index]; next.tType == tokenRegexp {
			prm.pattern = next.value
			p.index++
		}

	case tokenRegexp:
		p.index++
		prm = part{pType: partParameter, name: p.takeNumericName(), pattern: tok.value}

	case tokenAsterisk:
		p.index++
		prm = part{pType: partWildcard, name: p.takeNumericName()}
	}

	if err := p.appendKey(prm, tok.index); err != nil {
		return part{}, err
	}

	return prm, nil
}

func (p *patternParser) tryConsumeModifier() partModifier {
	switch tok := p.tokenList[p.index]; tok.tType {
	case tokenModifier:
		p.index++
		if tok.value == "?" {
			return partModifierOptional
		}

		return partModifierOneOrMore

	case tokenAsterisk:
		p.index++

		return partModifierZeroOrMore
	}

	return partModifierNone
}

// finishGroup validates a closed group and resolves its separator. A group
// without any matching group collapses to fixed text.
func (p *patternParser) finishGroup(openToken token, inner partList, modifier partModifier, keysBefore int) (*part, error) {
	// Counted recursively: a modified bare parameter inside the group has
	// already been wrapped in an implicit sub-group, and its key is already
	// recorded, so the group must not collapse over it.
	matchingGroups := inner.countMatchingGroups()

	if matchingGroups == 0 {
		var text strings.Builder
		for i := range inner {
			text.WriteString(inner[i].value)
		}

		if text.Len() == 0 {
			return nil, nil
		}

		return &part{pType: partText, value: text.String(), modifier: modifier}, nil
	}

	group := &part{pType: partGroup, parts: inner, modifier: modifier}

	if modifier == partModifierZeroOrMore || modifier == partModifierOneOrMore {
		before, prm, after := group.repeatShape()

		// Repetition needs a single capture and a resolvable separator to
		// split it on, so exactly one top-level matching group preceded by
		// literal text. An implicit sub-group left by a modified bare
		// parameter cannot be repeated again.
		if matchingGroups > 1 || prm == nil || prm.pType == partGroup || before == "" {
			return nil, newParseError(openToken.index, "Missing separator for %q: %s", inner.firstMatchingGroupName(), debugURL)
		}

		group.separator = after + before
		p.markRepeated(keysBefore, group.separator)
	}

	return group, nil
}

func (pl partList) firstMatchingGroupName() string {
	for i := range pl {
		switch pl[i].pType {
		case partParameter, partWildcard:
			return pl[i].name

		case partGroup:
			if name := pl[i].parts.firstMatchingGroupName(); name != "" {
				return name
			}
		}
	}

	return ""
}

func (p *patternParser) appendKey(prm part, index int) error {
	for i := range p.keys {
		if p.keys[i].Name == prm.name {
			return newParseError(index, "Duplicate parameter name %q at %d", prm.name, index)
		}
	}

	p.keys = append(p.keys, Key{Name: prm.name, Pattern: prm.pattern})

	return nil
}

// markRepeated records, on every key from index from on, that its capture
// spans repetitions joined by separator.
func (p *patternParser) markRepeated(from int, separator string) {
	for i := from; i < len(p.keys); i++ {
		p.keys[i].repeat = true
		p.keys[i].separator = separator
	}
}

func (p *patternParser) takeNumericName() string {
	name := strconv.Itoa(p.nextNumericName)
	p.nextNumericName++

	return name
}

func (p *patternParser) unexpected(tok token, endType tokenType) error {
	found := strconv.Quote(tok.value)
	if tok.tType == tokenEnd {
		found = "end of pattern"
	}

	expected := `"}"`
	if endType == tokenEnd {
		expected = "end of pattern"
	}

	return newParseError(tok.index, "Unexpected %s at %d, expected %s: %s", found, tok.index, expected, debugURL)
}
