// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mask

import (
	"strings"
	"testing"

	"github.com/ModChain/idsecrets"
)

func TestMaskSecretsTwoAdjacentHISv2Keys(t *testing.T) {
	key1, err := idsecrets.GenerateCommonAnnotatedTestKey(idsecrets.VersionTwoChecksumSeed(), "ABCD", true, nil, nil, false, 'A')
	if err != nil {
		t.Fatalf("generating fixture key 1: %v", err)
	}
	key2, err := idsecrets.GenerateCommonAnnotatedTestKey(idsecrets.VersionTwoChecksumSeed(), "WXYZ", true, nil, nil, false, 'B')
	if err != nil {
		t.Fatalf("generating fixture key 2: %v", err)
	}
	if key1 == "" || key2 == "" {
		t.Fatalf("fixture generation produced an empty key, need a different test_char")
	}

	input := key1 + " test_string " + key2

	m := NewMasker(WithChecksumValidation())
	redacted, did := m.MaskSecrets([]byte(input))
	if !did {
		t.Fatalf("expected a redaction to occur")
	}

	if strings.Contains(redacted, key1) || strings.Contains(redacted, key2) {
		t.Fatalf("redacted text still contains a raw key: %q", redacted)
	}
	if !strings.Contains(redacted, "SEC101/200:") {
		t.Fatalf("expected redacted text to carry the SEC101/200 label, got %q", redacted)
	}
	if !strings.Contains(redacted, " test_string ") {
		t.Fatalf("expected the separator text to survive redaction, got %q", redacted)
	}
}

func TestMaskSecretsNoMatches(t *testing.T) {
	m := NewMasker()
	redacted, did := m.MaskSecrets([]byte("nothing sensitive here"))
	if did {
		t.Fatalf("expected no redaction")
	}
	if redacted != "nothing sensitive here" {
		t.Fatalf("unexpected mutation of clean input: %q", redacted)
	}
}
