package pathtoregexp

import (
	"fmt"
	"strconv"
)

// debugURL is appended to grammar errors whose fix is not obvious from the
// message alone.
const debugURL = "https://git.new/pathToRegexpError"

// ParseError reports a malformed pattern string. Offset is the rune index in
// the pattern where the grammar rule was violated. A pattern that fails to
// parse must not be used.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string { return e.Msg }

func newParseError(offset int, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// ValidationError reports a parameter value that a builder cannot serialize
// into a path. Unlike a ParseError it is recoverable: the caller retries with
// a corrected value.
type ValidationError struct {
	Key string
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func errExpectedString(key string) *ValidationError {
	return &ValidationError{Key: key, Msg: fmt.Sprintf("Expected %q to be a string", key)}
}

func errExpectedElementString(key string, i int) *ValidationError {
	return &ValidationError{Key: key, Msg: fmt.Sprintf("Expected %q to be a string", key+"/"+strconv.Itoa(i))}
}

func errExpectedArray(key string) *ValidationError {
	return &ValidationError{Key: key, Msg: fmt.Sprintf("Expected %q to be an array", key)}
}

func errInvalidValue(key, value string) *ValidationError {
	return &ValidationError{Key: key, Msg: fmt.Sprintf("Invalid value for %q: %q", key, value)}
}
