// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package idsecrets implements generation and validation of identifiable
secrets: credential strings deliberately watermarked with a short embedded
signature and a Marvin32 checksum so that they can be located in arbitrary
text with a negligible false-positive rate.

The package provides three independent building blocks:

  - Marvin32 (ComputeHash, ComputeHash32), a seeded non-cryptographic
    checksum used purely as a watermark, never as a MAC.
  - HIS v1 key generation and validation (GenerateURLSafeBase64Key,
    GenerateStandardSafeBase64Key, ValidateBase64Key).
  - HIS v2 / common-annotated-key generation and validation
    (GenerateCommonAnnotatedKey, TryValidateCommonAnnotatedKey).

Streaming detection of these signatures in arbitrary byte streams lives in
the sibling scan package; composing detection with redaction lives in the
mask package.
*/
package idsecrets
