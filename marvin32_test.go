// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "testing"

// TestComputeHash verifies the Marvin32 algorithm against the two
// published SymCrypt reference vectors.
func TestComputeHash(t *testing.T) {
	tests := []struct {
		name string
		data string
		seed uint64
		want uint64
	}{
		{"abc", "abc", 0xD53CD9CECD0893B7, 0x22C74339492769BF},
		{"alphabet", "abcdefghijklmnopqrstuvwxyz", 0x0DDDDEEEEFFFF000, 0xA128EB7E7260ACA2},
	}

	for _, test := range tests {
		data := []byte(test.data)
		got := uint64(ComputeHash(data, test.seed, 0, len(data)))
		if got != test.want {
			t.Errorf("%s: got %#x want %#x", test.name, got, test.want)
		}
	}
}

// TestComputeHash32 checks the fold-to-32-bit identity against the
// matching 64-bit hash.
func TestComputeHash32(t *testing.T) {
	data := []byte("abc")
	seed := uint64(0xD53CD9CECD0893B7)

	hash64 := ComputeHash(data, seed, 0, len(data))
	hash32 := ComputeHash32(data, seed, 0, len(data))

	want := int32(hash64>>32) ^ int32(hash64)
	if hash32 != want {
		t.Errorf("got %#x want %#x", uint32(hash32), uint32(want))
	}
}

// TestComputeHashEmptyBuffer ensures Marvin32 accepts a zero-length
// window, including an offset sitting exactly at the end of data.
func TestComputeHashEmptyBuffer(t *testing.T) {
	var empty []byte
	if _, err := func() (v int64, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errFromRecover(r)
			}
		}()
		return ComputeHash(empty, 1, 0, 0), nil
	}(); err != nil {
		t.Errorf("unexpected panic hashing an empty buffer: %v", err)
	}

	data := []byte("abc")
	if _, err := func() (v int64, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errFromRecover(r)
			}
		}()
		return ComputeHash(data, 1, len(data), 0), nil
	}(); err != nil {
		t.Errorf("unexpected panic hashing at an end-of-buffer offset: %v", err)
	}
}

// TestComputeHashOutOfRangePanics ensures contract violations panic rather
// than silently truncating or reading out of bounds.
func TestComputeHashOutOfRangePanics(t *testing.T) {
	data := []byte("abc")

	tests := []struct {
		name   string
		offset int
		length int
	}{
		{"negative offset", -1, 1},
		{"offset past end", 4, 0},
		{"negative length", 0, -1},
		{"length past end", 0, 4},
	}

	for _, test := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected a panic", test.name)
				}
			}()
			ComputeHash(data, 1, test.offset, test.length)
		}()
	}
}

func errFromRecover(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &Error{Description: "panic"}
}
