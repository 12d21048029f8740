// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "testing"

func TestComputeHISv1ChecksumSeed(t *testing.T) {
	tests := []struct {
		literal string
		want    uint64
	}{
		{"ROSeed00", 0x524F536565643030},
		{"RWSeed00", 0x5257536565643030},
	}

	for _, test := range tests {
		got, err := ComputeHISv1ChecksumSeed(test.literal)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.literal, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %#x want %#x", test.literal, got, test.want)
		}
	}
}

func TestComputeHISv1ChecksumSeedRejectsBadLiterals(t *testing.T) {
	tests := []string{"short", "waytoolongliteral", "NoDigitAt"}
	for _, literal := range tests {
		if _, err := ComputeHISv1ChecksumSeed(literal); err == nil {
			t.Errorf("%q: expected an error", literal)
		}
	}
}

func TestGenerateAndValidateURLSafeBase64Key(t *testing.T) {
	seed, err := ComputeHISv1ChecksumSeed("RWSeed00")
	if err != nil {
		t.Fatalf("computing checksum seed: %v", err)
	}

	key, err := GenerateURLSafeBase64Key(seed, 32, "ABCD", true)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	if !ValidateBase64Key(key, seed, "ABCD", true) {
		t.Errorf("generated key %q failed to validate", key)
	}

	if ValidateBase64Key(key, seed+1, "ABCD", true) {
		t.Errorf("key validated against the wrong checksum seed")
	}

	if ValidateBase64Key(key, seed, "WXYZ", true) {
		t.Errorf("key validated against the wrong signature")
	}
}

func TestGenerateAndValidateStandardSafeBase64Key(t *testing.T) {
	seed, err := ComputeHISv1ChecksumSeed("ROSeed00")
	if err != nil {
		t.Fatalf("computing checksum seed: %v", err)
	}

	key, err := GenerateStandardSafeBase64Key(seed, 48, "WXYZ")
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}

	if !ValidateBase64Key(key, seed, "WXYZ", false) {
		t.Errorf("generated key %q failed to validate", key)
	}
}

func TestGenerateURLSafeBase64KeyRejectsBadLength(t *testing.T) {
	seed, _ := ComputeHISv1ChecksumSeed("RWSeed00")

	if _, err := GenerateURLSafeBase64Key(seed, MinimumGeneratedKeySize-1, "ABCD", true); err == nil {
		t.Errorf("expected an error for a too-short key length")
	}
	if _, err := GenerateURLSafeBase64Key(seed, MaximumGeneratedKeySize+1, "ABCD", true); err == nil {
		t.Errorf("expected an error for a too-long key length")
	}
}
