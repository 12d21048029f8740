// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "strings"

const (
	bitsInByte           = 8
	bitsInBase64Char     = 6
	checksumSizeInBytes  = 4
)

// IsBase62Char reports whether ch is an ASCII letter or digit.
func IsBase62Char(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// IsBase64Char reports whether ch is a standard base64 alphabet character.
func IsBase64Char(ch byte) bool {
	return IsBase62Char(ch) || ch == '+' || ch == '/'
}

// IsBase64URLChar reports whether ch is a URL-safe base64 alphabet
// character.
func IsBase64URLChar(ch byte) bool {
	return IsBase62Char(ch) || ch == '-' || ch == '_'
}

// IsURLUnreservedChar reports whether ch is one of the characters defined
// as "unreserved" for use in a URL per RFC 3986, restricted to the subset
// relevant to identifiable-secret alphabets (base64url plus '~' and '.').
func IsURLUnreservedChar(ch byte) bool {
	return IsBase64URLChar(ch) || ch == '~' || ch == '.'
}

var standardToURLReplacer = strings.NewReplacer("+", "-", "/", "_")
var urlToStandardReplacer = strings.NewReplacer("-", "+", "_", "/")

// transformToURL converts a standard base64-encoded string to its
// URL-safe equivalent.
func transformToURL(s string) string {
	return standardToURLReplacer.Replace(s)
}

// transformToStandard converts a URL-safe base64-encoded string to its
// standard equivalent.
func transformToStandard(s string) string {
	return urlToStandardReplacer.Replace(s)
}

// spillover computes the number of bits (0, 2, or 4) by which a decoded
// byte count overflows into the final 6-bit base64 cell. Every
// base64-encoded character carries 6 bits, so for a prefix of countOfBytes
// bytes the number of "spillover" bits flowing into, but not completely
// filling, the next 6-bit cell is (countOfBytes*8) mod 6.
func spillover(countOfBytes int) int {
	return (countOfBytes * bitsInByte) % bitsInBase64Char
}

// paddingFor returns the '=' padding suffix required to bring s to a
// multiple of 4 characters, but only when s carries no padding already and
// fewer than three characters are required (a correctly-sized base64
// string never needs three padding characters).
func paddingFor(s string) string {
	paddingCount := 4 - len(s)%4
	if !strings.HasSuffix(s, "=") && paddingCount < 3 {
		return strings.Repeat("=", paddingCount)
	}
	return ""
}
