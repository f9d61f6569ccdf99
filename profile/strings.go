package profile

import "unicode/utf8"

// EncodedStringLen returns the wire size of s: its UTF-8 length plus the
// null terminator. Invalid UTF-8 sequences count as U+FFFD.
func EncodedStringLen(s string) int {
	n := 1
	for _, r := range s {
		n += utf8.RuneLen(r)
	}

	return n
}

// AppendString appends s as null-terminated UTF-8. Every code point is
// re-encoded, so invalid byte sequences become U+FFFD.
func AppendString(dst []byte, s string) []byte {
	for _, r := range s {
		dst = utf8.AppendRune(dst, r)
	}

	return append(dst, 0)
}
