// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Fallback is the signature of a custom converter substitutable for the
// default strconv.ParseFloat bridge via SetFallback.
type Fallback func(s string) (float64, error)

// fallbackOverride, when non-nil, replaces the built-in strconv.ParseFloat
// bridge used by the package-level ParseFloat. Set via SetFallback. The
// fctx subpackage does not use this: a per-Context override is passed to
// ParseFloatWithOptions explicitly instead, so it never has to mutate this
// var (see resolveFallback).
var fallbackOverride Fallback

// SetFallback installs f as the converter used whenever the package-level
// ParseFloat's fast paths abstain, replacing strconv.ParseFloat. Passing
// nil restores the default.
func SetFallback(f Fallback) {
	fallbackOverride = f
}

// resolveFallback resolves a decimal literal that neither the Clinger fast
// path nor Eisel-Lemire could settle with certainty. It is
// shared by ParseFloat (which passes the package-level defaults) and
// ParseFloatWithOptions (which passes per-call overrides); it never reads
// or writes any package-level variable itself, so two calls with different
// overrides never race with each other. See DESIGN.md.
//
// Every call is logged at debug level, with or without an override, so
// callers can track how often the fast paths abstain on their actual input
// mix. Absent an override, it hands the original text to
// strconv.ParseFloat, which Go's own runtime treats as its reference
// converter.
//
// s is the original literal text (sign and all); strconv.ParseFloat accepts
// the same decimal and hex-float grammars this package does, so no
// re-formatting is needed.
func resolveFallback(s string, override Fallback, lg *zap.Logger, maxLen int) (float64, error) {
	if lg == nil {
		lg = nopLogger
	}
	lg.Debug("fastfloat: falling back to strconv.ParseFloat", zap.String("input", s))
	if override != nil {
		return override(s)
	}
	// The scanner strips any byte <= 0x20, a wider set than
	// strings.TrimSpace covers (control bytes are not unicode spaces).
	trimmed := strings.TrimFunc(s, func(r rune) bool { return r <= 0x20 })
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// ErrRange still comes with the correctly rounded result (±Inf).
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, nil
		}
		return 0, invalidNumber(s, reasonTrailingJunk, maxLen)
	}
	return f, nil
}
