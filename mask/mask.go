// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mask composes the scan engine and HIS validators into a
// single-pass secret redactor: it finds candidate identifiable secrets,
// confirms their structural shape, optionally verifies their checksum, and
// replaces each confirmed occurrence with a stable, non-reversible label.
package mask

import (
	"encoding/base64"
	"sort"

	"github.com/ModChain/idsecrets"
	"github.com/ModChain/idsecrets/scan"
)

// familyLabel returns the SEC101-style label used to build a default
// redaction token for t, taken from the Definition registry's family
// names. Several of these numbers cover more than one concrete signature
// (e.g. the 32-byte family spans SEC101/171-178,154,190): disambiguating
// further would require the specific signature bytes matched, which
// MatchType alone doesn't carry, so the group name is used as-is.
func familyLabel(t scan.MatchType) string {
	switch t {
	case scan.His2UTF8, scan.His2UTF16:
		return "SEC101/200"
	case scan.AADUTF8, scan.AADUTF16:
		return "SEC101/156"
	case scan.His32UTF8, scan.His32UTF16:
		return "SEC101/171-178,154,190"
	case scan.His39UTF8, scan.His39UTF16:
		return "SEC101/166,176"
	case scan.His40UTF8, scan.His40UTF16:
		return "SEC101/158"
	case scan.His64UTF8, scan.His64UTF16:
		return "SEC101/152,160,163,170,181"
	default:
		return "SEC101/UNKNOWN"
	}
}

// span is a half-open [start, end) byte range within the original input
// slated for replacement by a single redaction token.
type span struct {
	start int64
	end   int64
	token string
}

// Masker finds and redacts identifiable secrets in arbitrary text.
type Masker struct {
	opts Options
}

// NewMasker constructs a Masker. By default it redacts both HIS v1 and HIS
// v2 families and does not verify checksums.
func NewMasker(opts ...Option) *Masker {
	return &Masker{opts: newOptions(opts...)}
}

// MaskSecrets scans input for identifiable secrets and returns the
// redacted text along with whether any redaction occurred. Overlapping or
// contiguous candidate matches are merged into a single redaction span so
// that two keys sharing boundary bytes never produce a mangled partial
// replacement.
func (m *Masker) MaskSecrets(input []byte) (string, bool) {
	engine := scan.NewEngine(m.opts.scanOptions()...)
	engine.ParseBytes(input)

	candidates := engine.PossibleMatches()
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Start < candidates[j].Start
	})

	var spans []span
	for _, pm := range candidates {
		match, ok := pm.MatchesBytes(input[clampStart(pm.Start, len(input)):], true)
		if !ok {
			continue
		}

		if m.opts.validateChecksum && (match.Type == scan.His2UTF8 || match.Type == scan.His2UTF16) {
			if !validateHISv2Checksum(match.Text) {
				continue
			}
		}

		token := m.opts.defaultToken
		if token == "" {
			token = familyLabel(match.Type) + ":" + idsecrets.GenerateCrossCompanyCorrelatingID(match.Text)
		}

		start := match.Start
		end := match.Start + match.Len
		spans = append(spans, span{start: start, end: end, token: token})
	}

	merged := mergeSpans(spans)
	if len(merged) == 0 {
		return string(input), false
	}

	return applySpans(input, merged), true
}

func clampStart(start int64, n int) int {
	if int(start) > n {
		return n
	}
	if start < 0 {
		return 0
	}
	return int(start)
}

// validateHISv2Checksum extracts the 3-byte provider signature embedded at
// byte offset 57 of a decoded common-annotated key, base64-encodes it back
// into its 4-character form, and re-runs the full HIS v2 checksum
// validation against that signature.
func validateHISv2Checksum(keyText string) bool {
	decoded, err := base64.StdEncoding.DecodeString(keyText)
	if err != nil || len(decoded) < 60 {
		return false
	}
	sig := base64.StdEncoding.EncodeToString(decoded[57:60])
	return idsecrets.TryValidateCommonAnnotatedKey(keyText, sig)
}

func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

func applySpans(input []byte, spans []span) string {
	var out []byte
	var cursor int64
	for _, s := range spans {
		if s.start < cursor {
			continue
		}
		out = append(out, input[cursor:s.start]...)
		out = append(out, s.token...)
		cursor = s.end
	}
	if int(cursor) < len(input) {
		out = append(out, input[cursor:]...)
	}
	return string(out)
}
