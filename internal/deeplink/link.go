// Package deeplink recognises takma:// URLs in launch arguments and buffers
// the one captured at startup until the UI layer asks for it.
package deeplink

import "strings"

// Scheme is the URL scheme the application registers with the OS.
const Scheme = "takma"

// Prefix is the lowercase scheme prefix a deep link starts with.
const Prefix = Scheme + "://"

// HasScheme reports whether s starts with Prefix, ignoring case.
// No further parsing happens here; the UI layer validates the rest.
func HasScheme(s string) bool {
	return len(s) >= len(Prefix) && strings.EqualFold(s[:len(Prefix)], Prefix)
}

// FromArgs returns the first element of argv after the executable path that
// looks like a deep link. It is used on the startup path, where argv is the
// process's own argument vector.
func FromArgs(argv []string) (string, bool) {
	if len(argv) <= 1 {
		return "", false
	}
	for _, arg := range argv[1:] {
		if HasScheme(arg) {
			return arg, true
		}
	}
	return "", false
}

// Candidate returns argv[1] when a second launch carried any argument beyond
// the executable path.
//
// Unlike FromArgs no scheme check is applied: a user can pass an arbitrary
// string, and the UI layer decides whether it is a usable link.
func Candidate(argv []string) (string, bool) {
	if len(argv) <= 1 {
		return "", false
	}
	return argv[1], true
}
