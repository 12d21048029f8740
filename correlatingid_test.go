// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "testing"

// TestGenerateCrossCompanyCorrelatingID checks the published C3ID fixture
// and the function's purity/length invariants.
func TestGenerateCrossCompanyCorrelatingID(t *testing.T) {
	got := GenerateCrossCompanyCorrelatingID("test")
	want := "rPHgxCVAOw6CZsT9xXEw"
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestGenerateCrossCompanyCorrelatingIDIsPure(t *testing.T) {
	inputs := []string{"", "test", "a longer piece of scanned text", "🚀 unicode"}
	for _, in := range inputs {
		first := GenerateCrossCompanyCorrelatingID(in)
		second := GenerateCrossCompanyCorrelatingID(in)
		if first != second {
			t.Errorf("%q: not pure, got %s then %s", in, first, second)
		}
		if len(first) != 20 {
			t.Errorf("%q: length %d, want 20", in, len(first))
		}
	}
}
