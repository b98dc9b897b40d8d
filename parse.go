// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import (
	"math"

	"go.uber.org/zap"
)

// ParseFloat converts s to its nearest IEEE-754 binary64 value. The
// conversion is correctly rounded: ParseFloat always returns the binary64
// value closest to the exact mathematical value of s (ties resolved to
// even), never an approximation of it.
//
// ParseFloat accepts leading/trailing ASCII whitespace, an optional sign,
// decimal literals ("1.5e10"), hexadecimal binary-exponent literals
// ("0x1.8p3"), and the symbolic tokens "NaN" and "Infinity" (exact
// capitalization only). Anything else is reported as a *ParseError, which
// satisfies errors.Is(err, ErrInvalidNumber).
//
// ParseFloat uses the package-level SetFallback/SetLogger/SetMaxDiagnosticLen
// defaults. Callers that need a different converter, logger, or diagnostic
// cap on a per-call basis, without mutating state shared by every other
// caller in the process, should use ParseFloatWithOptions instead, or the
// fctx subpackage's Context, which wraps it.
func ParseFloat(s string) (float64, error) {
	r, err := scan(s, maxDiagnosticLen)
	if err != nil {
		return 0, err
	}
	return convertScanResult(r, s, fallbackOverride, logger, maxDiagnosticLen)
}

// ParseFloatOptions carries the per-call overrides available to embedders
// that need something other than ParseFloat's process-wide defaults: the
// fctx subpackage wraps this in a small value-type Context. Every field is
// optional; the zero value reproduces ParseFloat's own behavior for that
// field (no fallback override, a no-op logger, the 1024-byte diagnostic
// cap).
type ParseFloatOptions struct {
	Fallback         Fallback
	Logger           *zap.Logger
	MaxDiagnosticLen int
}

// ParseFloatWithOptions behaves exactly like ParseFloat, except every
// override is taken from opts instead of from package-level state. Two
// concurrent calls with different opts, or one call here alongside a
// concurrent plain ParseFloat call, never race with each other, since
// neither writes any package var; this one reads none beyond the read-only
// tables initialized before any call can run. See DESIGN.md.
func ParseFloatWithOptions(s string, opts ParseFloatOptions) (float64, error) {
	maxLen := opts.MaxDiagnosticLen
	if maxLen <= 0 {
		maxLen = defaultMaxDiagnosticLen
	}
	r, err := scan(s, maxLen)
	if err != nil {
		return 0, err
	}
	return convertScanResult(r, s, opts.Fallback, opts.Logger, maxLen)
}

// convertScanResult dispatches a successfully scanned literal to the
// appropriate back-end, falling back to fb/lg/maxLen only when
// neither the Clinger fast path nor Eisel-Lemire can resolve it with
// certainty.
func convertScanResult(r scanResult, orig string, fb Fallback, lg *zap.Logger, maxLen int) (float64, error) {
	switch r.kind {
	case kindNaN:
		return math.NaN(), nil
	case kindInf:
		if r.neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}

	if r.digits == 0 {
		return signedZero(r.neg), nil
	}

	if r.base == baseHex {
		return hexAssemble(r.neg, r.mant, r.exp, r.truncated && r.droppedNonzero), nil
	}

	if r.mant == 0 {
		return signedZero(r.neg), nil
	}
	if r.exp > pow10MaxExp {
		return signedInf(r.neg), nil
	}
	if r.exp < pow10MinExp {
		return signedZero(r.neg), nil
	}

	if r.truncated && r.droppedNonzero {
		// The kept digits bound the exact value: mant*10^exp from below,
		// (mant+1)*10^exp from above. When both bounds round to the same
		// binary64, every value in between does too; when they disagree, or
		// either multiplication abstains, only the reference converter can
		// decide.
		lo, okLo := eiselLemire(r.neg, r.mant, r.exp, false)
		hi, okHi := eiselLemire(r.neg, r.mant+1, r.exp, false)
		if okLo && okHi && math.Float64bits(lo) == math.Float64bits(hi) {
			return lo, nil
		}
		return resolveFallback(orig, fb, lg, maxLen)
	}

	// mant and exp are exact here: either nothing was dropped, or every
	// dropped digit was a zero the re-scan already folded into exp.
	if f, ok := clingerFastPath(r.neg, r.mant, r.exp, false); ok {
		return f, nil
	}
	if f, ok := eiselLemire(r.neg, r.mant, r.exp, false); ok {
		return f, nil
	}
	return resolveFallback(orig, fb, lg, maxLen)
}
