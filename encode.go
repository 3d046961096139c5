package pathtoregexp

import (
	"net/url"

	whatwgurl "github.com/dunglas/whatwg-url/url"
)

var percentEncoder = whatwgurl.NewParser()

// EncodeURIComponent percent-encodes value so it can travel inside a single
// path segment, including "/" itself. It is meant as a WithEncode hook:
//
//	build, _ := pathtoregexp.NewBuilder("/user/:id", pathtoregexp.WithEncode(pathtoregexp.EncodeURIComponent))
func EncodeURIComponent(value string) string {
	return percentEncoder.PercentEncodeString(value, whatwgurl.UserInfoPercentEncodeSet)
}

// DecodeURIComponent reverses percent-encoding, for use as a WithDecode hook.
// A value with malformed escapes is returned unchanged.
func DecodeURIComponent(value string) string {
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}

	return decoded
}
