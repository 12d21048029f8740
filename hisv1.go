// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// MinimumGeneratedKeySize is the smallest key length, in bytes, that
// GenerateStandardSafeBase64Key/GenerateURLSafeBase64Key will accept. It
// provides a floor of 128 bits of entropy once the fixed signature and
// checksum bytes are subtracted.
const MinimumGeneratedKeySize = 24

// MaximumGeneratedKeySize is the largest key length, in bytes, that
// GenerateStandardSafeBase64Key/GenerateURLSafeBase64Key will accept.
const MaximumGeneratedKeySize = 4096

const requiredSignatureLen = 4

// ComputeHISv1ChecksumSeed derives a 64-bit Marvin32 checksum seed from an
// 8-character versioned key kind literal such as "ReadKey0" or "RWSeed00".
// The literal must be exactly 8 ASCII characters long and end with a digit;
// the seed is formed by reversing the byte order of the literal and
// interpreting the result as a little-endian uint64, which domain-separates
// the checksum watermark for this class of generated keys from every other
// class sharing the Marvin32 algorithm.
func ComputeHISv1ChecksumSeed(versionedKeyKind string) (uint64, error) {
	if len(versionedKeyKind) != 8 {
		return 0, makeError(ErrContractViolation,
			"the versioned literal must be 8 characters long and end with a digit")
	}
	last := versionedKeyKind[7]
	if last < '0' || last > '9' {
		return 0, makeError(ErrContractViolation,
			"the versioned literal must be 8 characters long and end with a digit")
	}

	var seed uint64
	for i := 0; i < 8; i++ {
		seed |= uint64(versionedKeyKind[7-i]) << (8 * i)
	}
	return seed, nil
}

func mustComputeHISv1ChecksumSeed(versionedKeyKind string) uint64 {
	seed, err := ComputeHISv1ChecksumSeed(versionedKeyKind)
	if err != nil {
		panic(err)
	}
	return seed
}

// GenerateURLSafeBase64Key generates an identifiable secret in a
// URL-compatible format, replacing '+' with '-' and '/' with '_'. When
// elidePadding is true, trailing '=' padding characters are stripped;
// otherwise they're retained, since some URL base64 decoders expect padding
// to be present and others expect it removed.
func GenerateURLSafeBase64Key(checksumSeed uint64, keyLengthInBytes int, base64EncodedSignature string, elidePadding bool) (string, error) {
	secret, err := generateBase64KeyHelper(checksumSeed, keyLengthInBytes, base64EncodedSignature, true)
	if err != nil {
		return "", err
	}
	if elidePadding {
		return strings.TrimRight(secret, "="), nil
	}
	return secret, nil
}

// GenerateStandardSafeBase64Key generates an identifiable secret using the
// standard base64 alphabet ('+', '/', with '=' padding).
func GenerateStandardSafeBase64Key(checksumSeed uint64, keyLengthInBytes int, base64EncodedSignature string) (string, error) {
	return generateBase64KeyHelper(checksumSeed, keyLengthInBytes, base64EncodedSignature, false)
}

func generateBase64KeyHelper(checksumSeed uint64, keyLengthInBytes int, base64EncodedSignature string, encodeForURL bool) (string, error) {
	if keyLengthInBytes > MaximumGeneratedKeySize {
		return "", makeError(ErrContractViolation,
			fmt.Sprintf("key length (%d bytes) must be less than %d bytes", keyLengthInBytes, MaximumGeneratedKeySize))
	}
	if keyLengthInBytes < MinimumGeneratedKeySize {
		return "", makeError(ErrContractViolation,
			fmt.Sprintf("key length (%d bytes) must be at least %d bytes to provide sufficient security (>128 bits of entropy)", keyLengthInBytes, MinimumGeneratedKeySize))
	}

	if err := validateBase64EncodedSignature(base64EncodedSignature, encodeForURL); err != nil {
		return "", err
	}

	// 'S' == signature byte : 'C' == checksum byte : '?' == sensitive byte
	// ????????????????????????????????????????????????????????????????????????????SSSSCCCCCC==
	//
	// 'Identifiable keys' create security value by encoding signatures in
	// both the binary and base64-encoded forms of the token. The minimum
	// key length enforced above means this does not compromise the actual
	// entropy of the key.
	randomBytes, err := csrandomBytes(keyLengthInBytes)
	if err != nil {
		return "", err
	}

	return generateKeyWithAppendedSignatureAndChecksum(randomBytes, base64EncodedSignature, checksumSeed, encodeForURL), nil
}

func validateBase64EncodedSignature(sig string, encodeForURL bool) error {
	if len(sig) != requiredSignatureLen {
		return makeError(ErrContractViolation, "base64-encoded signature must be 4 characters long")
	}

	for i := 0; i < len(sig); i++ {
		ch := sig[i]
		var valid bool
		if encodeForURL {
			valid = IsBase64URLChar(ch)
		} else {
			valid = IsBase64Char(ch)
		}
		if !valid {
			prefix := ""
			if encodeForURL {
				prefix = "URL "
			}
			return makeError(ErrContractViolation,
				fmt.Sprintf("signature contains one or more illegal %sbase64-encoded characters: %s", prefix, sig))
		}
	}
	return nil
}

// generateKeyWithAppendedSignatureAndChecksum overwrites the last 8 bytes
// of keyValue with a signature that will render verbatim once base64
// encoded, followed by a little-endian Marvin32 checksum, then base64
// (optionally URL-safe) encodes the result.
func generateKeyWithAppendedSignatureAndChecksum(keyValue []byte, base64EncodedSignature string, checksumSeed uint64, encodeForURL bool) string {
	keyLength := len(keyValue)
	checksumOffset := keyLength - 4
	signatureOffset := checksumOffset - 4

	// Compute a signature that will render consistently when base64
	// encoded. This potentially requires consuming bits from the byte
	// that precedes the signature, to keep data aligned on a 6-bit
	// boundary as base64 requires.
	signaturePrefixByte := keyValue[signatureOffset]
	signatureBytes := encodedSignatureBytes(keyLength, base64EncodedSignature, signaturePrefixByte)
	copy(keyValue[signatureOffset:signatureOffset+4], signatureBytes)

	// Disregard the final 4 bytes of the randomized input; they'll be
	// overwritten with the checksum and aren't relevant to its
	// computation.
	checksum := ComputeHash32Bytes(keyValue[:keyLength-checksumSizeInBytes], checksumSeed)
	checksumBytes := []byte{byte(checksum), byte(checksum >> 8), byte(checksum >> 16), byte(checksum >> 24)}
	copy(keyValue[checksumOffset:checksumOffset+4], checksumBytes)

	encoded := base64.StdEncoding.EncodeToString(keyValue)
	if encodeForURL {
		encoded = transformToURL(encoded)
	}
	return encoded
}

// encodedSignatureBytes computes the 4 raw bytes that, once the buffer is
// base64-encoded, render the 4-character signature verbatim regardless of
// the bits already occupying the byte preceding the signature.
func encodedSignatureBytes(keyLengthInBytes int, base64EncodedSignature string, signaturePrefixByte byte) []byte {
	decoded, err := decodeBase64Lenient(base64EncodedSignature)
	if err != nil {
		panic(err)
	}

	var signature uint32 = uint32(signaturePrefixByte) << 24

	// Compute the padding/spillover into the final base64-encoded cell for
	// the random portion of the token: the data array minus 7 bytes (3
	// bytes fixed signature, 4 bytes checksum).
	padding := spillover(keyLengthInBytes - 7)

	var mask uint32 = 0xFFFFFFFF
	switch padding {
	case 2:
		mask = 0xFCFFFFFF
	case 4:
		mask = 0xF0FFFFFF
	}
	signature &= mask

	signature |= uint32(decoded[0]) << (16 + padding)
	signature |= uint32(decoded[1]) << (8 + padding)
	signature |= uint32(decoded[2]) << (0 + padding)

	return []byte{
		byte(signature >> 24),
		byte(signature >> 16),
		byte(signature >> 8),
		byte(signature),
	}
}

// decodeBase64Lenient decodes a possibly URL-safe, possibly unpadded
// base64 string.
func decodeBase64Lenient(s string) ([]byte, error) {
	std := transformToStandard(s)
	std += paddingFor(std)
	return base64.StdEncoding.DecodeString(std)
}

// ValidateBase64Key reports whether key is a valid identifiable secret
// produced by GenerateStandardSafeBase64Key/GenerateURLSafeBase64Key for
// the given checksum seed, signature, and URL-encoding mode.
func ValidateBase64Key(key string, checksumSeed uint64, base64EncodedSignature string, encodeForURL bool) bool {
	if err := validateBase64EncodedSignature(base64EncodedSignature, encodeForURL); err != nil {
		return false
	}

	bytes, err := decodeBase64Lenient(key)
	if err != nil || len(bytes) < checksumSizeInBytes {
		return false
	}

	expectedChecksum := int32(bytes[len(bytes)-4]) |
		int32(bytes[len(bytes)-3])<<8 |
		int32(bytes[len(bytes)-2])<<16 |
		int32(bytes[len(bytes)-1])<<24
	actualChecksum := ComputeHash32Bytes(bytes[:len(bytes)-checksumSizeInBytes], checksumSeed)

	if actualChecksum != expectedChecksum {
		return false
	}

	// Compute the spillover for the random portion of the token (the data
	// array minus the checksum (4 bytes) and fixed signature (3 bytes)).
	signatureSizeInBytes := len(base64EncodedSignature) * 6 / 8
	padding := spillover(len(bytes) - signatureSizeInBytes - checksumSizeInBytes)

	// The encoded length of the 4-byte checksum is always ceil(32/6) = 6
	// characters (no remainder in practice, since 4*8/6 divides evenly
	// enough that the ceiling doesn't change the result).
	lengthOfEncodedChecksum := 6

	equalsSigns := ""
	equalsSignIndex := strings.IndexByte(key, '=')
	prefixLength := len(key) - lengthOfEncodedChecksum - len(base64EncodedSignature)
	if equalsSignIndex > -1 {
		equalsSigns = key[equalsSignIndex:]
		prefixLength = equalsSignIndex - lengthOfEncodedChecksum - len(base64EncodedSignature)
	}

	trimmedKey := strings.TrimRight(key, "=")
	signatureOffset := len(trimmedKey) - lengthOfEncodedChecksum - len(base64EncodedSignature)
	if signatureOffset < 0 || signatureOffset+len(base64EncodedSignature) > len(trimmedKey) {
		return false
	}
	if trimmedKey[signatureOffset:signatureOffset+len(base64EncodedSignature)] != base64EncodedSignature {
		return false
	}

	lastChar := trimmedKey[len(trimmedKey)-1]
	firstChar := trimmedKey[len(trimmedKey)-lengthOfEncodedChecksum]

	specialChars := "\\-_"
	if !encodeForURL {
		specialChars = "\\\\/+"
	}
	secretAlphabet := "[a-zA-Z0-9" + specialChars + "]"

	escapedSignature := strings.ReplaceAll(base64EncodedSignature, "+", "\\+")

	checksumPrefix := ""
	checksumSuffix := ""
	switch padding {
	case 2:
		// The first encoded checksum character has its top two bits
		// forced to zero by the signature right-shift, limiting it to
		// A-P.
		checksumPrefix = "[A-P]"
		if firstChar < 'A' || firstChar > 'P' {
			return false
		}
	case 4:
		// The first encoded checksum character has its top four bits
		// forced to zero, limiting it to A-D.
		checksumPrefix = "[A-D]"
		if firstChar < 'A' || firstChar > 'D' {
			return false
		}
	default:
		// Perfect alignment: two bits of the final checksum byte spill
		// into the final encoded character followed by four zero-padding
		// bits, limiting it to one of A, Q, g, w.
		checksumSuffix = "[AQgw]"
		if lastChar != 'A' && lastChar != 'Q' && lastChar != 'g' && lastChar != 'w' {
			return false
		}
	}

	var pattern strings.Builder
	pattern.WriteString(secretAlphabet)
	pattern.WriteString(fmt.Sprintf("{%d}", prefixLength))
	pattern.WriteString(escapedSignature)
	pattern.WriteString(checksumPrefix)
	pattern.WriteString(secretAlphabet)
	pattern.WriteString("{5}")
	pattern.WriteString(checksumSuffix)
	pattern.WriteString(regexp.QuoteMeta(equalsSigns))

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return false
	}
	return re.MatchString(key)
}
