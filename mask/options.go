// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mask

import "github.com/ModChain/idsecrets/scan"

// Options configures a Masker.
type Options struct {
	defaultToken     string
	validateChecksum bool
	withoutV1        bool
	withoutV2        bool
}

// Option configures a Masker at construction time.
type Option func(*Options)

func newOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDefaultToken overrides the generated "<family>:<c3id>" redaction
// token with a fixed literal string used for every redaction.
func WithDefaultToken(token string) Option {
	return func(o *Options) { o.defaultToken = token }
}

// WithChecksumValidation requires HIS v2 candidates to pass their full
// checksum and provider-signature validation before being redacted;
// candidates that fail are left untouched in the output.
func WithChecksumValidation() Option {
	return func(o *Options) { o.validateChecksum = true }
}

// WithoutV1 disables redaction of HIS v1 (32/64-byte) families.
func WithoutV1() Option {
	return func(o *Options) { o.withoutV1 = true }
}

// WithoutV2 disables redaction of HIS v2 (common-annotated-key) families.
func WithoutV2() Option {
	return func(o *Options) { o.withoutV2 = true }
}

func (o Options) scanOptions() []scan.Option {
	var opts []scan.Option
	if o.withoutV1 {
		opts = append(opts, scan.WithoutV1())
	}
	if o.withoutV2 {
		opts = append(opts, scan.WithoutV2())
	}
	return opts
}
