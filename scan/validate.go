// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scan

import "github.com/ModChain/idsecrets"

func isBase64Byte(b byte) bool {
	return idsecrets.IsBase64Char(b) || b == '-' || b == '_'
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isURLUnreserved(b byte) bool {
	return idsecrets.IsURLUnreservedChar(b)
}

// his32MatchedBytes returns the number of leading bytes of data that form
// a structurally valid His32Utf8 candidate: 33 base64 characters, a
// 4-character signature (already matched by the caller), a checksum
// character restricted to [A-P], 5 more base64 characters, and an optional
// trailing '='. It returns 0 when data doesn't fit the shape.
func his32MatchedBytes(data []byte) int {
	const minLen = 43
	if len(data) < minLen {
		return 0
	}
	for _, b := range data[0:33] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	if data[37] < 'A' || data[37] > 'P' {
		return 0
	}
	for _, b := range data[38:43] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	if len(data) >= his32UTF8Len && data[43] == '=' {
		return his32UTF8Len
	}
	return minLen
}

// his64MatchedBytes is the His64Utf8 analogue of his32MatchedBytes: 76
// base64 characters, a 4-character signature, 5 base64 characters, a
// checksum character restricted to [AQgw], and up to two trailing '='.
func his64MatchedBytes(data []byte) int {
	const minLen = 86
	if len(data) < minLen {
		return 0
	}
	for _, b := range data[0:76] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	for _, b := range data[80:85] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	if data[85] != 'A' && data[85] != 'Q' && data[85] != 'g' && data[85] != 'w' {
		return 0
	}
	if len(data) >= his64UTF8Len {
		for _, b := range data[86:88] {
			if b != '=' {
				return minLen
			}
		}
		return his64UTF8Len
	}
	return minLen
}

// his2MatchedBytes validates the common-annotated-key structural shape:
// equivalent to the regex
// [A-Za-z0-9]{52}JQQJ9(9|D)[A-Za-z0-9][A-L][A-Za-z0-9]{16}[A-Za-z][A-Za-z0-9]{7}([A-Za-z0-9]{2}==)?
func his2MatchedBytes(data []byte) int {
	if len(data) < his2UTF8ShortLen {
		return 0
	}
	for _, b := range data[0:52] {
		if !isAlnum(b) {
			return 0
		}
	}
	// bytes 52..58 hold the fixed "JQQJ9" + {'9','D'} signature; the
	// caller has already matched "JQQJ" to reach this point, so only the
	// remaining two characters are re-checked here.
	if data[52] != 'J' || data[53] != 'Q' || data[54] != 'Q' || data[55] != 'J' || data[56] != '9' {
		return 0
	}
	if data[57] != '9' && data[57] != 'D' {
		return 0
	}
	if !isAlnum(data[58]) {
		return 0
	}
	if data[59] < 'A' || data[59] > 'L' {
		return 0
	}
	for _, b := range data[60:76] {
		if !isAlnum(b) {
			return 0
		}
	}
	if !isAlpha(data[76]) {
		return 0
	}
	for _, b := range data[77:84] {
		if !isAlnum(b) {
			return 0
		}
	}
	if len(data) < his2UTF8Len {
		return his2UTF8ShortLen
	}
	for _, b := range data[84:86] {
		if !isAlnum(b) {
			return his2UTF8ShortLen
		}
	}
	for _, b := range data[86:] {
		if b != '=' {
			return his2UTF8ShortLen
		}
	}
	return his2UTF8Len
}

// aadMatchedBytes validates the AAD family: a 3-byte URL-unreserved prefix,
// the 3-character signature (already matched by the caller, at offset
// 3..6), and a URL-unreserved tail running to the end of the candidate.
// Which of the two total lengths applies is determined by the signature's
// first character: "7Q~" keys are 37 bytes, "8Q~" keys are 40.
func aadMatchedBytes(data []byte) int {
	const prefixLen = 3
	if len(data) < aadShortUTF8Len {
		return 0
	}
	for _, b := range data[:prefixLen] {
		if !isURLUnreserved(b) {
			return 0
		}
	}

	var total int
	switch data[prefixLen] {
	case '7':
		total = aadShortUTF8Len
	case '8':
		total = aadLongUTF8Len
	default:
		return 0
	}
	if len(data) < total {
		return 0
	}
	for _, b := range data[prefixLen+3 : total] {
		if !isURLUnreserved(b) {
			return 0
		}
	}
	return total
}

// his39MatchedBytes validates the 39-byte family: 42 base64 characters, a
// 4-character signature (already matched), a checksum character restricted
// to [A-D], and 5 more base64 characters. 39 raw bytes base64-encode to
// exactly 52 characters, so there's no padding variant to resolve.
func his39MatchedBytes(data []byte) int {
	if len(data) < his39UTF8Len {
		return 0
	}
	for _, b := range data[0:42] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	if data[46] < 'A' || data[46] > 'D' {
		return 0
	}
	for _, b := range data[47:52] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	return his39UTF8Len
}

// his40MatchedBytes is the His40 analogue of his64MatchedBytes: 44 base64
// characters, a 4-character signature, 5 base64 characters, a checksum
// character restricted to [AQgw], and up to two trailing '='.
func his40MatchedBytes(data []byte) int {
	const minLen = 54
	if len(data) < minLen {
		return 0
	}
	for _, b := range data[0:44] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	for _, b := range data[48:53] {
		if !isBase64Byte(b) {
			return 0
		}
	}
	if data[53] != 'A' && data[53] != 'Q' && data[53] != 'g' && data[53] != 'w' {
		return 0
	}
	if len(data) >= his40UTF8Len {
		for _, b := range data[54:56] {
			if b != '=' {
				return minLen
			}
		}
		return his40UTF8Len
	}
	return minLen
}

// convertUTF16 decodes little-endian UTF-16 bytes into ASCII/Latin-1 bytes
// written to out, stopping at the first code unit with a non-zero high
// byte (signature bytes are always within the 0x00-0x7F range, so this is
// sufficient for candidate validation). It returns the number of bytes
// written.
func convertUTF16(utf16 []byte, out []byte) int {
	n := len(utf16) / 2
	if len(out) < n || n == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		if utf16[2*i+1] != 0 {
			return i
		}
		out[i] = utf16[2*i]
	}
	return n
}
