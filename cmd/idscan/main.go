// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command idscan scans a file for identifiable secrets and reports or
// redacts any it finds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ModChain/idsecrets/mask"
	"github.com/ModChain/idsecrets/scan"
)

func main() {
	file := flag.String("file", "", "path to the file to scan (required)")
	redact := flag.Bool("redact", false, "print a redacted copy of the file instead of listing matches")
	validateChecksum := flag.Bool("validate-checksum", false, "require HIS v2 checksum and signature validation before redacting")
	flag.Parse()

	if *file == "" {
		log.Fatal("idscan: -file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("idscan: reading %s: %v", *file, err)
	}

	if *redact {
		runRedact(data, *validateChecksum)
		return
	}
	runList(data)
}

func runList(data []byte) {
	engine := scan.NewEngine()
	engine.ParseBytes(data)

	if !engine.HasPossibleMatches() {
		fmt.Println("no candidate matches found")
		return
	}

	for _, pm := range engine.PossibleMatches() {
		m, ok := pm.MatchesBytes(data[pm.Start:], false)
		if !ok {
			continue
		}
		fmt.Printf("%-14s offset=%-8d len=%d\n", m.Type, m.Start, m.Len)
	}
}

func runRedact(data []byte, validateChecksum bool) {
	var opts []mask.Option
	if validateChecksum {
		opts = append(opts, mask.WithChecksumValidation())
	}
	m := mask.NewMasker(opts...)

	redacted, did := m.MaskSecrets(data)
	if !did {
		fmt.Println("no redactions applied")
	}
	fmt.Print(redacted)
}
