// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "errors"

// ErrorKind identifies a specific kind of error reported by this package. It
// satisfies the error interface so consumers may compare against these
// values directly or wrap them in an Error for a human-readable description.
type ErrorKind string

// Error satisfies the error interface.
func (e ErrorKind) Error() string {
	return string(e)
}

// These constants identify the kinds of contract violations and input
// rejections this package can report.  A contract violation indicates the
// caller passed arguments that the API can never accept (bad offsets,
// malformed signatures, out-of-range lengths); an input rejection indicates
// a candidate value that is merely not a valid identifiable key.
const (
	// ErrContractViolation is returned when a caller-supplied argument
	// violates a hard precondition of the function (out-of-range offset or
	// length, wrong-sized signature, malformed checksum seed literal).
	ErrContractViolation = ErrorKind("ErrContractViolation")

	// ErrInputRejection is returned when a value is well-formed enough to
	// inspect but fails a structural or character-class check (wrong
	// length, illegal character, mixed-case signature).
	ErrInputRejection = ErrorKind("ErrInputRejection")

	// ErrGenerationRetryExhausted is returned when common-annotated-key
	// generation in deterministic test-character mode cannot avoid
	// producing '+'/'/' in the encoded form and therefore cannot loop to a
	// fresh draw.
	ErrGenerationRetryExhausted = ErrorKind("ErrGenerationRetryExhausted")
)

// Checksum mismatches, signature mismatches, bad reserved-region lengths,
// and empty keys are all reported through the ErrorKind/Error pair above
// (ErrContractViolation, ErrInputRejection) or, for the bool-returning
// validators, by a plain false with no error channel at all. See DESIGN.md
// for why this package carries no second, plain-errors.New sentinel set
// alongside that system.

// Error identifies an error related to identifiable-secret generation or
// validation. It has full support for errors.Is and errors.As, so the caller
// can programmatically determine the kind of failure.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// IsErrorCode returns whether or not the provided error is an Error with the
// provided ErrorKind.
func IsErrorCode(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Err == kind
	}
	return false
}

