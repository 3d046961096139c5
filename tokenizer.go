package pathtoregexp

import (
	"golang.org/x/exp/utf8string"
)

type tokenizer struct {
	input     *utf8string.String
	tokenList []token
	index     int
	nextIndex int
	codePoint rune
}

// tokenize splits a pattern string into a flat token list. Offsets are rune
// indexes into the input. The only grammar enforced here is the
// well-formedness of "(...)" custom patterns: their content is sliced out of
// the input as a single token, so the precise offsets would be lost if the
// checks were deferred to the parser.
func tokenize(input string) ([]token, error) {
	t := tokenizer{
		input:     utf8string.NewString(input),
		tokenList: make([]token, 0, len(input)),
	}

	length := t.input.RuneCount()

	for t.index < length {
		t.seekAndGetNextCodePoint(t.index)

		switch t.codePoint {
		case '*':
			t.addTokenWithDefaultPositionAndLength(tokenAsterisk)

		case '+', '?':
			t.addTokenWithDefaultPositionAndLength(tokenModifier)

		case '\\':
			if t.index == length-1 {
				return nil, newParseError(t.index, "Unexpected end of pattern at %d", t.index)
			}

			escapedIndex := t.nextIndex
			t.getNextCodePoint()
			t.addTokenWithDefaultLength(tokenEscapedChar, t.nextIndex, escapedIndex)

		case '{':
			t.addTokenWithDefaultPositionAndLength(tokenOpen)

		case '}':
			t.addTokenWithDefaultPositionAndLength(tokenClose)

		case ':':
			namePosition := t.nextIndex
			nameStart := namePosition

			for namePosition < length {
				t.seekAndGetNextCodePoint(namePosition)
				if !isWordCodePoint(t.codePoint) {
					break
				}

				namePosition = t.nextIndex
			}

			if namePosition <= nameStart {
				return nil, newParseError(nameStart, "Missing parameter name at %d", nameStart)
			}

			t.addTokenWithDefaultLength(tokenName, namePosition, nameStart)

		case '(':
			if err := t.consumeRegexpToken(length); err != nil {
				return nil, err
			}

		default:
			t.addTokenWithDefaultPositionAndLength(tokenChar)
		}
	}

	t.addTokenWithDefaultLength(tokenEnd, t.index, t.index)

	return t.tokenList, nil
}

// consumeRegexpToken scans a "(...)" custom pattern starting at t.index,
// honoring nested non-capturing parentheses and backslash escapes.
func (t *tokenizer) consumeRegexpToken(length int) error {
	depth := 1
	start := t.index
	regexpPosition := t.nextIndex
	regexpStart := regexpPosition

Loop:
	for regexpPosition < length {
		t.seekAndGetNextCodePoint(regexpPosition)

		if regexpPosition == regexpStart && t.codePoint == '?' {
			return newParseError(regexpPosition, `Pattern cannot start with "?" at %d`, regexpPosition)
		}

		switch t.codePoint {
		case '\\':
			if regexpPosition == length-1 {
				return newParseError(start, "Unbalanced pattern at %d", start)
			}

			t.getNextCodePoint()

		case ')':
			depth--
			if depth == 0 {
				regexpPosition = t.nextIndex
				break Loop
			}

		case '(':
			depth++

			if regexpPosition == length-1 {
				return newParseError(start, "Unbalanced pattern at %d", start)
			}

			temporaryPosition := t.nextIndex
			t.getNextCodePoint()

			if t.codePoint != '?' {
				return newParseError(regexpPosition, "Capturing groups are not allowed at %d", regexpPosition)
			}

			t.nextIndex = temporaryPosition
		}

		regexpPosition = t.nextIndex
	}

	if depth != 0 {
		return newParseError(start, "Unbalanced pattern at %d", start)
	}

	regexpLength := regexpPosition - regexpStart - 1
	if regexpLength == 0 {
		return newParseError(start, "Missing pattern at %d", start)
	}

	t.addToken(tokenRegexp, regexpPosition, regexpStart, regexpLength)

	return nil
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

func (t *tokenizer) addToken(tType tokenType, nextPosition, valuePosition, valueLength int) {
	t.tokenList = append(t.tokenList, token{
		tType: tType,
		index: t.index,
		value: t.input.Slice(valuePosition, valuePosition+valueLength),
	})
	t.index = nextPosition
}

func (t *tokenizer) addTokenWithDefaultLength(tType tokenType, nextPosition, valuePosition int) {
	t.addToken(tType, nextPosition, valuePosition, nextPosition-valuePosition)
}

func (t *tokenizer) addTokenWithDefaultPositionAndLength(tType tokenType) {
	t.addTokenWithDefaultLength(tType, t.nextIndex, t.index)
}

func isWordCodePoint(codePoint rune) bool {
	return codePoint == '_' ||
		('0' <= codePoint && codePoint <= '9') ||
		('a' <= codePoint && codePoint <= 'z') ||
		('A' <= codePoint && codePoint <= 'Z')
}
