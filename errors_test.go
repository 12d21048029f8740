// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import (
	"errors"
	"testing"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrContractViolation, "ErrContractViolation"},
		{ErrInputRejection, "ErrInputRejection"},
		{ErrGenerationRetryExhausted, "ErrGenerationRetryExhausted"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestIsErrorCode(t *testing.T) {
	err := makeError(ErrContractViolation, "bad offset")
	if !IsErrorCode(err, ErrContractViolation) {
		t.Errorf("expected IsErrorCode to match ErrContractViolation")
	}
	if IsErrorCode(err, ErrInputRejection) {
		t.Errorf("expected IsErrorCode not to match ErrInputRejection")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) {
		t.Errorf("expected errors.As to unwrap an ErrorKind")
	}
	if kind != ErrContractViolation {
		t.Errorf("got %v want %v", kind, ErrContractViolation)
	}
}
