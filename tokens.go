package pathtoregexp

// token is a primitive lexer token. index is the rune offset of the token in
// the pattern string, used for error reporting.
type token struct {
	tType tokenType
	index int
	value string
}

type tokenType uint8

const (
	// tokenOpen represents a U+007B ({) code point opening a group.
	tokenOpen tokenType = iota
	// tokenClose represents a U+007D (}) code point closing a group.
	tokenClose
	// tokenRegexp represents a custom matching pattern of the form "(<regular expression>)". The value excludes the surrounding parentheses.
	tokenRegexp
	// tokenName represents a named parameter of the form ":<name>". The name value is restricted to word code points.
	tokenName
	// tokenChar represents a pattern code point without any special syntactical meaning.
	tokenChar
	// tokenEscapedChar represents a code point escaped using a backslash like "\<char>".
	tokenEscapedChar
	// tokenModifier represents a U+003F (?) or U+002B (+) code point modifying the preceding matching group.
	tokenModifier
	// tokenAsterisk represents a U+002A (*) code point that can be either a wildcard matching group or a "zero or more" modifier.
	tokenAsterisk
	// tokenEnd represents the end of the pattern string.
	tokenEnd
)
