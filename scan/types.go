// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scan implements a single-pass streaming scanner for
// identifiable-secret signatures, detecting candidate matches across UTF-8
// and UTF-16 (little- and big-endian) encodings without buffering the
// entire input.
package scan

// MatchType identifies which identifiable-secret family a match belongs
// to, together with its text encoding. The numeric values are part of the
// package's stable external contract: callers that persist or transmit a
// MatchType must not see these renumbered.
type MatchType int

const (
	His32UTF8 MatchType = iota + 1
	His32UTF16
	His64UTF8
	His64UTF16
	His2UTF8
	His2UTF16
	// AADUTF8/AADUTF16 and the 39/40-byte families are appended after the
	// original six rather than interleaved, so that a caller who already
	// persisted the original numeric values never sees them renumbered.
	AADUTF8
	AADUTF16
	His39UTF8
	His39UTF16
	His40UTF8
	His40UTF16
)

func (t MatchType) String() string {
	switch t {
	case His32UTF8:
		return "His32Utf8"
	case His32UTF16:
		return "His32Utf16"
	case His64UTF8:
		return "His64Utf8"
	case His64UTF16:
		return "His64Utf16"
	case His2UTF8:
		return "His2Utf8"
	case His2UTF16:
		return "His2Utf16"
	case AADUTF8:
		return "AadUtf8"
	case AADUTF16:
		return "AadUtf16"
	case His39UTF8:
		return "His39Utf8"
	case His39UTF16:
		return "His39Utf16"
	case His40UTF8:
		return "His40Utf8"
	case His40UTF16:
		return "His40Utf16"
	default:
		return "Unknown"
	}
}

const (
	his32UTF8Len  = 44
	his64UTF8Len  = 88
	his32UTF16Len = his32UTF8Len * 2
	his64UTF16Len = his64UTF8Len * 2

	his2UTF8ShortLen  = 84
	his2UTF8Len       = 88
	his2UTF16ShortLen = his2UTF8ShortLen * 2
	his2UTF16Len      = his2UTF8Len * 2

	// aadShortUTF8Len/aadLongUTF8Len are the two distinct total lengths the
	// AAD family's two signature variants ("7Q~" => short, "8Q~" => long)
	// encode to; they aren't padding variants of one underlying length the
	// way the other families' short/long forms are.
	aadShortUTF8Len  = 37
	aadLongUTF8Len   = 40
	aadShortUTF16Len = aadShortUTF8Len * 2
	aadLongUTF16Len  = aadLongUTF8Len * 2

	his39UTF8Len  = 52
	his39UTF16Len = his39UTF8Len * 2

	his40UTF8Len  = 56
	his40UTF16Len = his40UTF8Len * 2
)

// PossibleMatch is a candidate signature location found by the fast
// accumulator scan. It has not yet been validated against the full
// structural shape of its family; call Resolve or ResolveReader to confirm
// it and extract a Match.
type PossibleMatch struct {
	Start int64
	Type  MatchType
}

// maxLen returns the encoded byte length this candidate's family occupies
// when fully present and unpadded.
func (p PossibleMatch) maxLen() int {
	switch p.Type {
	case His2UTF8:
		return his2UTF8Len
	case His2UTF16:
		return his2UTF16Len
	case His32UTF8:
		return his32UTF8Len
	case His32UTF16:
		return his32UTF16Len
	case His64UTF8:
		return his64UTF8Len
	case His64UTF16:
		return his64UTF16Len
	case AADUTF8:
		return aadLongUTF8Len
	case AADUTF16:
		return aadLongUTF16Len
	case His39UTF8:
		return his39UTF8Len
	case His39UTF16:
		return his39UTF16Len
	case His40UTF8:
		return his40UTF8Len
	case His40UTF16:
		return his40UTF16Len
	default:
		return 0
	}
}

// Match is a confirmed identifiable-secret occurrence, with its decoded
// UTF-8 text when the caller requested it.
type Match struct {
	Start int64
	Len   int64
	Type  MatchType
	Text  string
}
