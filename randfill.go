// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"
)

// csrandomBytes returns n cryptographically random bytes, generated by a
// ChaCha20 stream cipher keyed and nonced from OS entropy. Generator state
// is never reused across calls: every invocation draws a fresh key and
// nonce from crypto/rand.
func csrandomBytes(n int) ([]byte, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}

	zeros := make([]byte, n)
	out := make([]byte, n)
	cipher.XORKeyStream(out, zeros)
	return out, nil
}
