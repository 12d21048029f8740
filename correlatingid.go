// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// sha256Pool amortizes hash.Hash allocation across concurrent callers. Go
// has no stable thread identity to key a thread-local cache on (goroutines
// are not OS threads), so a sync.Pool stands in for the reference
// implementation's thread-local SHA-256 scratch state; every hasher is
// Reset before being returned to the pool.
var sha256Pool = sync.Pool{
	New: func() any { return sha256.New() },
}

func getSHA256() hash.Hash {
	return sha256Pool.Get().(hash.Hash)
}

func putSHA256(h hash.Hash) {
	h.Reset()
	sha256Pool.Put(h)
}

// sha256HexUpper returns the uppercase hex-encoded SHA-256 digest of text.
func sha256HexUpper(text string) string {
	h := getSHA256()
	defer putSHA256(h)

	h.Write([]byte(text))
	sum := h.Sum(nil)
	return strings.ToUpper(hex.EncodeToString(sum))
}

// GenerateCrossCompanyCorrelatingID derives a 20-character base64
// correlating identifier (C3ID) from text. The derivation hashes text with
// SHA-256, hex-encodes the digest in uppercase, prefixes it with a fixed
// domain-separation label, hashes the result with SHA-256 again, and
// base64-encodes the first 15 bytes of that second digest — 15 bytes
// encodes to exactly 20 base64 characters with no padding required.
//
// The result is deterministic: it exists purely to let callers report and
// deduplicate detected secrets without handling the secret text itself.
func GenerateCrossCompanyCorrelatingID(text string) string {
	innerHex := sha256HexUpper(text)

	h := getSHA256()
	defer putSHA256(h)

	h.Write([]byte("CrossMicrosoftCorrelatingId:" + innerHex))
	checksum := h.Sum(nil)

	return base64.StdEncoding.EncodeToString(checksum[0:15])
}
