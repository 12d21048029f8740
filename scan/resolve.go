// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scan

import "io"

func checkBytesV1(mtype MatchType, start int64, data []byte, wantText bool) (Match, bool) {
	switch mtype {
	case His32UTF8:
		n := his32MatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His32UTF8, start, int64(n), data[:n], wantText), true

	case His64UTF8:
		n := his64MatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His64UTF8, start, int64(n), data[:n], wantText), true

	case His32UTF16:
		bytes := make([]byte, his32UTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := his32MatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His32UTF8, start, int64(count*2), bytes[:count], wantText), true

	case His64UTF16:
		bytes := make([]byte, his64UTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := his64MatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His64UTF8, start, int64(count*2), bytes[:count], wantText), true

	case AADUTF8:
		n := aadMatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(AADUTF8, start, int64(n), data[:n], wantText), true

	case AADUTF16:
		bytes := make([]byte, aadLongUTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := aadMatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(AADUTF8, start, int64(count*2), bytes[:count], wantText), true

	case His39UTF8:
		n := his39MatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His39UTF8, start, int64(n), data[:n], wantText), true

	case His39UTF16:
		bytes := make([]byte, his39UTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := his39MatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His39UTF8, start, int64(count*2), bytes[:count], wantText), true

	case His40UTF8:
		n := his40MatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His40UTF8, start, int64(n), data[:n], wantText), true

	case His40UTF16:
		bytes := make([]byte, his40UTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := his40MatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His40UTF8, start, int64(count*2), bytes[:count], wantText), true

	default:
		return Match{}, false
	}
}

func checkBytesV2(mtype MatchType, start int64, data []byte, wantText bool) (Match, bool) {
	switch mtype {
	case His2UTF8:
		n := his2MatchedBytes(data)
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His2UTF8, start, int64(n), data[:n], wantText), true

	case His2UTF16:
		bytes := make([]byte, his2UTF8Len)
		count := convertUTF16(data, bytes)
		if len(data)&1 == 1 {
			bytes[count] = data[len(data)-1]
			count++
		}
		n := his2MatchedBytes(bytes[:count])
		if n == 0 {
			return Match{}, false
		}
		return newMatch(His2UTF16, start, int64(count*2), bytes[:count], wantText), true

	default:
		return Match{}, false
	}
}

func newMatch(mtype MatchType, start, length int64, data []byte, wantText bool) Match {
	m := Match{Start: start, Len: length, Type: mtype}
	if wantText {
		m.Text = string(data)
	}
	return m
}

// MatchesBytes validates p's structural shape against data, which must
// begin at p.Start within the original scanned buffer. It returns false
// when data doesn't conform to p.Type's byte layout, which happens when
// the accumulator's signature hit was coincidental rather than a genuine
// identifiable secret.
func (p PossibleMatch) MatchesBytes(data []byte, wantText bool) (Match, bool) {
	end := p.maxLen()
	if len(data) < end {
		end = len(data)
	}
	switch p.Type {
	case His2UTF8, His2UTF16:
		return checkBytesV2(p.Type, p.Start, data[:end], wantText)
	default:
		return checkBytesV1(p.Type, p.Start, data[:end], wantText)
	}
}

// MatchesReader seeks reader to p.Start, reads up to p.maxLen() bytes into
// buf, and validates the structural shape exactly as MatchesBytes does.
// buf must be at least as large as p's family's maximum encoded length.
func (p PossibleMatch) MatchesReader(reader io.ReadSeeker, buf []byte, wantText bool) (Match, bool, error) {
	want := p.maxLen()
	if len(buf) < want {
		return Match{}, false, ErrBufferTooSmall
	}

	if _, err := reader.Seek(p.Start, io.SeekStart); err != nil {
		return Match{}, false, err
	}

	read := 0
	for read < want {
		n, err := reader.Read(buf[read:want])
		read += n
		if n == 0 || err == io.EOF {
			break
		}
		if err != nil {
			return Match{}, false, err
		}
	}

	switch p.Type {
	case His2UTF8, His2UTF16:
		m, ok := checkBytesV2(p.Type, p.Start, buf[:read], wantText)
		return m, ok, nil
	default:
		m, ok := checkBytesV1(p.Type, p.Start, buf[:read], wantText)
		return m, ok, nil
	}
}
