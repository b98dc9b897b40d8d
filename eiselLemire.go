// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math/bits"

// eiselLemire implements the Eisel-Lemire algorithm: a single
// 64x128-bit multiplication of the normalized significand against a
// precomputed approximation of 10^exp10, accurate enough to determine the
// correctly-rounded binary64 result for all but a narrow band of inputs.
//
// It returns ok=false whenever the result is not provably correct: when the
// decimal significand was truncated (so mantissa/exp10 are themselves only
// approximate), when exp10 falls outside the precomputed table, when the
// result lands in the subnormal range (where the rounding decision needs
// bits of the product below what the 128-bit error bound guarantees), or
// when the multiplication lands on an apparent rounding tie. Resolving a
// genuine tie requires an exact comparison against 10^exp10, not the
// 128-bit approximation used here, so every tie candidate is deferred to
// the fallback bridge, which resolves it exactly. See DESIGN.md.
func eiselLemire(neg bool, mantissa uint64, exp10 int, truncated bool) (float64, bool) {
	if truncated || mantissa == 0 {
		return 0, false
	}
	if exp10 < pow10MinExp || exp10 > pow10MaxExp {
		return 0, false
	}

	lz := bits.LeadingZeros64(mantissa)
	wNorm := mantissa << uint(lz)

	e := pow10Lookup(exp10)

	hi1, lo1 := bits.Mul64(wNorm, e.hi)
	hi2, lo2 := bits.Mul64(wNorm, e.lo)

	sum, carry := bits.Add64(lo1, hi2, 0)
	topHi := hi1 + carry

	// e.lo is only a 128-bit-rounded approximation of 10^exp10's low half,
	// so lo2 (wNorm*e.lo's own low word) is not proof that bits below the
	// window are nonzero: it is virtually never exactly zero whether or not
	// the true decimal value sits exactly on a rounding boundary. It only
	// matters at all when topHi's low 9 bits are already all set, i.e. the
	// computed value sits right at a potential tie; everywhere else the
	// omitted term can't carry into the bits assembleFloat looks at. In
	// that narrow band, check whether the still-lower term could itself
	// flip the tie, and abstain rather than guess if it can.
	if topHi&0x1FF == 0x1FF && sum+1 == 0 && lo2+wNorm < wNorm {
		return 0, false
	}

	msb := topHi >> 63
	shiftT := 9 + msb
	t := topHi >> shiftT

	// Everything below t's round bit (t's own bit 0) is sticky material:
	// the shiftT bits of topHi that were shifted out, plus all of sum.
	sticky := topHi&(uint64(1)<<shiftT-1) != 0 || sum != 0

	if t&1 == 1 && !sticky {
		return 0, false
	}

	e2 := 190 + int(msb) + int(e.exp2) - lz
	if e2 < -1022 {
		// Subnormal result: the rounding decision sits further down the
		// product than the 128-bit error bound pins, so it cannot be made
		// here with certainty.
		return 0, false
	}

	return assembleFloat(neg, t, sticky, e2), true
}
