// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package idsecrets

import "testing"

func TestSpillover(t *testing.T) {
	tests := []struct {
		bytes int
		want  int
	}{
		{0, 0},
		{3, 0},
		{1, 2},
		{4, 2},
		{2, 4},
		{5, 4},
	}
	for _, test := range tests {
		got := spillover(test.bytes)
		if got != test.want {
			t.Errorf("spillover(%d): got %d want %d", test.bytes, got, test.want)
		}
	}
}

func TestIsBase64Char(t *testing.T) {
	for _, ch := range []byte("abcXYZ012+/") {
		if !IsBase64Char(ch) {
			t.Errorf("%q should be a valid base64 character", ch)
		}
	}
	for _, ch := range []byte("-_ !") {
		if IsBase64Char(ch) {
			t.Errorf("%q should not be a valid standard base64 character", ch)
		}
	}
}

func TestIsBase64URLChar(t *testing.T) {
	for _, ch := range []byte("abcXYZ012-_") {
		if !IsBase64URLChar(ch) {
			t.Errorf("%q should be a valid URL base64 character", ch)
		}
	}
	for _, ch := range []byte("+/ !") {
		if IsBase64URLChar(ch) {
			t.Errorf("%q should not be a valid URL base64 character", ch)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	std := "abc+/=="
	url := transformToURL(std)
	if url != "abc-_==" {
		t.Errorf("transformToURL: got %q", url)
	}
	if transformToStandard(url) != std {
		t.Errorf("transformToStandard: got %q want %q", transformToStandard(url), std)
	}
}

func TestPaddingFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"QQ", "=="},
		{"QQQ", "="},
		{"QQQQ", ""},
		{"QQQQ=", ""},
	}
	for _, test := range tests {
		got := paddingFor(test.in)
		if got != test.want {
			t.Errorf("paddingFor(%q): got %q want %q", test.in, got, test.want)
		}
	}
}
