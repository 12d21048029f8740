// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scan

// Options configures which families an Engine watches for.
type Options struct {
	aad   bool
	his32 bool
	his39 bool
	his40 bool
	his64 bool
	his2  bool
}

// Option configures an Engine at construction time.
type Option func(*Options)

// DefaultOptions watches for every registered family: AAD, the HIS v1
// 32/39/40/64-byte families, and HIS v2 (common-annotated-key).
func DefaultOptions() Options {
	return Options{aad: true, his32: true, his39: true, his40: true, his64: true, his2: true}
}

// WithoutAAD disables scanning for the AAD (SEC101/156) family.
func WithoutAAD() Option { return func(o *Options) { o.aad = false } }

// WithoutHIS32 disables scanning for the 32-byte HIS v1 family.
func WithoutHIS32() Option { return func(o *Options) { o.his32 = false } }

// WithoutHIS39 disables scanning for the 39-byte HIS v1 family.
func WithoutHIS39() Option { return func(o *Options) { o.his39 = false } }

// WithoutHIS40 disables scanning for the 40-byte HIS v1 family.
func WithoutHIS40() Option { return func(o *Options) { o.his40 = false } }

// WithoutHIS64 disables scanning for the 64-byte HIS v1 family.
func WithoutHIS64() Option { return func(o *Options) { o.his64 = false } }

// WithoutV1 disables scanning for every HIS v1 family (AAD, 32/39/40/64-byte).
func WithoutV1() Option {
	return func(o *Options) {
		o.aad = false
		o.his32 = false
		o.his39 = false
		o.his40 = false
		o.his64 = false
	}
}

// WithoutV2 disables scanning for HIS v2 (common-annotated-key) signatures.
func WithoutV2() Option {
	return func(o *Options) { o.his2 = false }
}

// WithOnly restricts scanning to exactly the named families, by their
// SEC101 registry name (e.g. "SEC101/156") or one of the short aliases
// "aad", "his32", "his39", "his40", "his64", "his2". Unknown names are
// ignored.
func WithOnly(names ...string) Option {
	return func(o *Options) {
		*o = Options{}
		for _, name := range names {
			switch name {
			case "aad", "SEC101/156":
				o.aad = true
			case "his32", "SEC101/171-178,154,190":
				o.his32 = true
			case "his39", "SEC101/166,176":
				o.his39 = true
			case "his40", "SEC101/158":
				o.his40 = true
			case "his64", "SEC101/152,160,163,170,181":
				o.his64 = true
			case "his2", "SEC101/200":
				o.his2 = true
			}
		}
	}
}

func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
