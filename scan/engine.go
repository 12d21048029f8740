// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scan

import (
	"errors"
	"io"
)

// ErrBufferTooSmall is returned by (*PossibleMatch).MatchesReader when the
// caller-supplied buffer cannot hold a full candidate match.
var ErrBufferTooSmall = errors.New("scan: buffer not big enough")

// Engine performs a single pass over a byte stream, maintaining a 64-bit
// rolling accumulator of the most recently seen bytes and comparing it
// against a small set of known signature bit patterns. It never buffers
// more than the current 16-byte chunk, so arbitrarily large inputs can be
// scanned in bounded memory.
type Engine struct {
	options    Options
	accum      uint64
	index      int64
	lastAIndex int64
	lastQIndex int64
	checks     []PossibleMatch
}

// NewEngine constructs an Engine. By default every registered family
// (AAD, the HIS v1 32/39/40/64-byte families, and HIS v2) is scanned; pass
// WithOnly or the per-family Without* options to narrow that.
func NewEngine(opts ...Option) *Engine {
	return &Engine{options: newOptions(opts...)}
}

// HasPossibleMatches reports whether the engine has accumulated any
// candidate matches since construction or the last Reset.
func (e *Engine) HasPossibleMatches() bool { return len(e.checks) > 0 }

// PossibleMatches returns the candidate matches accumulated so far. The
// returned slice is owned by the Engine and is invalidated by the next
// call to Reset.
func (e *Engine) PossibleMatches() []PossibleMatch { return e.checks }

// Reset clears all scan state, allowing the Engine to be reused for a new
// input without reallocating.
func (e *Engine) Reset() {
	e.accum = 0
	e.index = 0
	e.lastAIndex = 0
	e.lastQIndex = 0
	e.checks = e.checks[:0]
}

func (e *Engine) aDistance() int64 { return e.index - e.lastAIndex }
func (e *Engine) qDistance() int64 { return e.index - e.lastQIndex }

func (e *Engine) aInAccum() bool { return e.aDistance() < 8 }
func (e *Engine) qInAccum() bool { return e.qDistance() < 8 }

func (e *Engine) v1Enabled() bool {
	return e.options.aad || e.options.his32 || e.options.his39 || e.options.his40 || e.options.his64
}

func (e *Engine) v2Enabled() bool { return e.options.his2 }

// matchSigV1 inspects the accumulator for one of the fixed-offset HIS v1
// signature patterns ('A'-anchored: 32/39/40/64-byte; 'Q'-anchored: AAD) at
// the UTF-8 and UTF-16 byte distances where each can occur.
func (e *Engine) matchSigV1() {
	aDist := e.aDistance()

	if aDist == 4 || aDist == 3 {
		switch e.accum & 0xFFFFFFFF {
		case 0x41496F54, // AIoT
			0x2B415362, // +ASb
			0x2B414568, // +AEh
			0x2B41526D, // +ARm
			0x417A4361, // AzCa
			0x415A4547: // AZEG
			if e.options.his32 && e.index >= 37 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 37, Type: His32UTF8})
			}
		case 0x4150494D, // APIM
			0x41434462, // ACDb
			0x2B414261, // +ABa
			0x2B414D43, // +AMC
			0x2B415374: // +ASt
			if e.options.his64 && e.index >= 80 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 80, Type: His64UTF8})
			}
		case 0x417A5365, // AzSe
			0x2B414352: // +ACR
			if e.options.his39 && e.index >= 46 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 46, Type: His39UTF8})
			}
		case 0x417A4675: // AzFu
			if e.options.his40 && e.index >= 48 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 48, Type: His40UTF8})
			}
		}
	}

	if aDist == 7 || aDist == 5 {
		switch e.accum {
		case 0x00410049006F0054,
			0x002B004100530062,
			0x002B004100450068,
			0x002B00410052006D,
			0x0041007A00430061,
			0x0041005A00450047:
			if e.options.his32 && e.index >= 73 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 73, Type: His32UTF16})
			}
		case 0x004100500049004D,
			0x0041004300440062,
			0x002B004100420061,
			0x002B0041004D0043,
			0x002B004100530074:
			if e.options.his64 && e.index >= 159 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 159, Type: His64UTF16})
			}
		case 0x0041007A00530065,
			0x002B004100430052:
			if e.options.his39 && e.index >= 91 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 91, Type: His39UTF16})
			}
		case 0x0041007A00460075:
			if e.options.his40 && e.index >= 95 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 95, Type: His40UTF16})
			}
		}
	}

	if !e.options.aad {
		return
	}
	switch e.qDistance() {
	case 2:
		switch e.accum & 0xFFFFFF {
		case 0x37517E, 0x38517E: // "7Q~", "8Q~"
			if e.index >= 6 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 6, Type: AADUTF8})
			}
		}
	case 3:
		switch e.accum & 0xFFFFFFFFFFFF {
		case 0x00370051007E, 0x00380051007E: // "7Q~", "8Q~"
			if e.index >= 11 {
				e.checks = append(e.checks, PossibleMatch{Start: e.index - 11, Type: AADUTF16})
			}
		}
	}
}

// matchSigV2 inspects the accumulator for the common-annotated-key "JQQJ"
// signature in UTF-8 or UTF-16 form. The caller only invokes this when the
// most recently consumed byte is 'J', since that's the final byte of both
// patterns.
func (e *Engine) matchSigV2() {
	if !e.options.his2 {
		return
	}
	if e.accum&0xFFFFFFFF == 0x4A51514A {
		if e.index >= 56 {
			e.checks = append(e.checks, PossibleMatch{Start: e.index - 56, Type: His2UTF8})
		}
	} else if e.accum == 0x004A00510051004A {
		if e.index >= 111 {
			e.checks = append(e.checks, PossibleMatch{Start: e.index - 111, Type: His2UTF16})
		}
	}
}

func (e *Engine) byteScanV1(data []byte) {
	for _, b := range data {
		if b == 'A' {
			e.lastAIndex = e.index
		}
		if b == 'Q' {
			e.lastQIndex = e.index
		}
		e.accum = e.accum<<8 | uint64(b)
		e.index++
		e.matchSigV1()
	}
}

func (e *Engine) byteScanV2(data []byte) {
	for _, b := range data {
		e.accum = e.accum<<8 | uint64(b)
		e.index++
		if b != 'J' {
			continue
		}
		e.matchSigV2()
	}
}

func (e *Engine) byteScanAll(data []byte) {
	for _, b := range data {
		if b == 'A' {
			e.lastAIndex = e.index
		}
		if b == 'Q' {
			e.lastQIndex = e.index
		}
		e.accum = e.accum<<8 | uint64(b)
		e.index++
		if b != 'J' {
			e.matchSigV1()
		} else {
			e.matchSigV2()
		}
	}
}

// ParseBytes scans data for candidate signature matches, appending any it
// finds to the engine's accumulated PossibleMatches. Input is processed in
// 16-byte chunks; a chunk containing none of the anchor characters the
// active families care about is folded into the accumulator without a
// byte-by-byte scan.
func (e *Engine) ParseBytes(data []byte) {
	n := len(data)
	chunked := n - n%16
	var buf [8]byte

	v1, v2 := e.v1Enabled(), e.v2Enabled()
	needA := e.options.his32 || e.options.his39 || e.options.his40 || e.options.his64
	needQ := e.options.aad

	switch {
	case v1 && v2:
		for i := 0; i < chunked; i += 16 {
			chunk := data[i : i+16]
			if !e.aInAccum() && !e.qInAccum() {
				found := false
				for _, b := range chunk {
					if b == 'J' || (needA && b == 'A') || (needQ && b == 'Q') {
						found = true
						break
					}
				}
				if !found {
					e.index += 16
					copy(buf[:], chunk[8:16])
					e.accum = beToU64(buf[:])
					continue
				}
			}
			e.byteScanAll(chunk)
		}
		e.byteScanAll(data[chunked:])

	case v1:
		for i := 0; i < chunked; i += 16 {
			chunk := data[i : i+16]
			if !e.aInAccum() && !e.qInAccum() {
				found := false
				for _, b := range chunk {
					if (needA && b == 'A') || (needQ && b == 'Q') {
						found = true
						break
					}
				}
				if !found {
					e.index += 16
					copy(buf[:], chunk[8:16])
					e.accum = beToU64(buf[:])
					continue
				}
			}
			e.byteScanV1(chunk)
		}
		e.byteScanV1(data[chunked:])

	case v2:
		for i := 0; i < chunked; i += 16 {
			chunk := data[i : i+16]
			found := false
			for _, b := range chunk {
				if b == 'J' {
					found = true
					break
				}
			}
			if !found {
				e.index += 16
				copy(buf[:], chunk[8:16])
				e.accum = beToU64(buf[:])
				continue
			}
			e.byteScanV2(chunk)
		}
		e.byteScanV2(data[chunked:])

	default:
		e.index += int64(n)
	}
}

func beToU64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// ParseReader resets the engine and streams reader through ParseBytes in
// fixed-size blocks, never holding more than one block in memory.
func (e *Engine) ParseReader(reader io.Reader) error {
	e.Reset()

	buf := make([]byte, 64*1024)
	for {
		n, err := reader.Read(buf)
		if n > 0 {
			e.ParseBytes(buf[:n])
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}
