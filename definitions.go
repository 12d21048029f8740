// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

// ChecksumSize describes whether a family's trailing checksum occupies 3
// or 4 encoded bytes, which in turn determines which checksum character
// class its final encoded characters are restricted to.
type ChecksumSize int

const (
	// SmallChecksum marks a 3-byte (24-bit) embedded checksum, as used by
	// the AAD and 39-byte families.
	SmallChecksum ChecksumSize = iota
	// LargeChecksum marks a full 4-byte (32-bit) embedded checksum, as
	// used by the 32/40/64-byte families.
	LargeChecksum
)

// Definition describes the fixed byte layout of one identifiable-secret
// family: its registered name, its embedded textual signature, the
// signature's anchor character used by the scan engine, and the number of
// bytes preceding and composing the signature window.
type Definition struct {
	// Name is the family's SEC101 registry identifier.
	Name string
	// Signatures lists every base64-rendered signature variant recognized
	// for this family (several families share a single byte layout across
	// multiple distinct 4-character signatures).
	Signatures []string
	// SigChar is the anchor byte the scan engine keys its fast path on.
	SigChar byte
	// Before is the number of bytes preceding the signature within the
	// encoded secret.
	Before int
	// Length is the full unpadded encoded length of the secret.
	Length int
	// Checksum describes the embedded checksum's size class.
	Checksum ChecksumSize
}

// Definitions is the built-in registry of identifiable-secret families
// known to this package, as catalogued by the HIS v1 family table. It's
// provided for introspection and documentation purposes; the scan
// engine's hot path matches against the literal byte patterns derived
// from this table rather than iterating it at scan time.
var Definitions = []Definition{
	{
		// The AAD family has two length variants, one per signature, with
		// the signature near the front of the secret rather than near the
		// end as the other families have it.
		Name:       "SEC101/156",
		Signatures: []string{"7Q~"},
		SigChar:    'Q',
		Before:     6,
		Length:     37,
		Checksum:   SmallChecksum,
	},
	{
		Name:       "SEC101/156",
		Signatures: []string{"8Q~"},
		SigChar:    'Q',
		Before:     6,
		Length:     40,
		Checksum:   SmallChecksum,
	},
	{
		Name:       "SEC101/171-178,154,190",
		Signatures: []string{"+ASb", "+AEh", "+ARm", "AIoT", "AzCa", "AZEG"},
		SigChar:    'A',
		Before:     37,
		Length:     44,
		Checksum:   LargeChecksum,
	},
	{
		Name:       "SEC101/166,176",
		Signatures: []string{"AzSe", "+ACR"},
		SigChar:    'A',
		Before:     46,
		Length:     52,
		Checksum:   SmallChecksum,
	},
	{
		Name:       "SEC101/158",
		Signatures: []string{"AzFu"},
		SigChar:    'A',
		Before:     48,
		Length:     56,
		Checksum:   LargeChecksum,
	},
	{
		Name:       "SEC101/152,160,163,170,181",
		Signatures: []string{"+ASt", "ACDb", "+ABa", "+AMC", "APIM"},
		SigChar:    'A',
		Before:     80,
		Length:     88,
		Checksum:   LargeChecksum,
	},
	{
		Name:       "SEC101/200",
		Signatures: []string{"JQQJ"},
		SigChar:    'Q',
		Before:     56,
		Length:     88,
		Checksum:   SmallChecksum,
	},
}
