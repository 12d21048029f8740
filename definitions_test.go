// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "testing"

func TestDefinitionsWellFormed(t *testing.T) {
	// A (name, length) pair must be unique, but a name may appear more than
	// once when a family has more than one total-length variant (AAD has
	// two: one per signature).
	type key struct {
		name   string
		length int
	}
	seen := map[key]bool{}
	for _, def := range Definitions {
		if def.Name == "" {
			t.Errorf("definition has an empty name")
		}
		k := key{def.Name, def.Length}
		if seen[k] {
			t.Errorf("duplicate definition %q at length %d", def.Name, def.Length)
		}
		seen[k] = true

		if len(def.Signatures) == 0 {
			t.Errorf("%s: no signatures registered", def.Name)
		}
		for _, sig := range def.Signatures {
			if len(sig) == 0 {
				t.Errorf("%s: empty signature string", def.Name)
			}
		}
		if def.Before <= 0 || def.Length <= def.Before {
			t.Errorf("%s: implausible before/length (%d/%d)", def.Name, def.Before, def.Length)
		}
	}
}
