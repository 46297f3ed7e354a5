package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToProperCase uppercases the first rune and lowercases the rest. This is a
// deliberately naive transform: multi-word and already-mixed-case names are
// not handled, matching how the cleanup job has always normalized the roster.
func ToProperCase(name string) string {
	if name == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
