// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "math/big"

// pow10MinExp and pow10MaxExp bound the decimal exponents the Eisel-Lemire
// table covers. Outside this range the result is unconditionally zero or
// infinity (see convertScanResult in parse.go), and no multiplication is ever attempted:
// the largest 19-digit significand (≈1e19) times 10^-343 is already below
// half a ULP of the smallest subnormal, and the smallest nonzero
// significand (1) times 10^309 already exceeds the largest finite double.
const (
	pow10MinExp = -342
	pow10MaxExp = 308
)

// pow10Entry is the top 128 bits of the normalized value of 10^q: the exact
// value 10^q is approximated by (hi:lo) * 2^exp2, with hi's top bit set
// (2^127 <= hi:lo < 2^128).
type pow10Entry struct {
	hi, lo uint64
	exp2   int32
}

var pow10Table [pow10MaxExp - pow10MinExp + 1]pow10Entry

// pow10Exact holds 10^0 .. 10^22, each exactly representable in binary64.
// These back the Clinger fast path (fastpath.go): when both the significand
// and the relevant power of ten are exact, a single float64 multiplication
// or division is already correctly rounded.
var pow10Exact = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
	1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// The table is materialized at package initialization from exact big.Int
// arithmetic rather than stored as 651 hand-transcribed 128-bit constants:
// each entry is the round-to-nearest-even 128-bit mantissa of 10^q. See
// DESIGN.md.
func init() {
	for q := pow10MinExp; q <= pow10MaxExp; q++ {
		hi, lo, exp2 := computePow10(q)
		pow10Table[q-pow10MinExp] = pow10Entry{hi, lo, exp2}
	}
}

func pow10Lookup(q int) pow10Entry {
	return pow10Table[q-pow10MinExp]
}

// computePow10 returns the round-to-nearest-even 128-bit mantissa of 10^q
// and its binary scale, such that 10^q ≈ (hi:lo) * 2^exp2 and 2^127 <=
// hi:lo < 2^128.
func computePow10(q int) (hi, lo uint64, exp2 int32) {
	if q >= 0 {
		n := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(q)), nil)
		return roundTo128(n)
	}
	d := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-q)), nil)
	return reciprocalTo128(d)
}

// roundTo128 rounds the nonnegative integer n to the nearest 128-bit value
// (ties to even), returning n ≈ (hi:lo) * 2^exp2.
func roundTo128(n *big.Int) (hi, lo uint64, exp2 int32) {
	bl := n.BitLen()
	if bl <= 128 {
		shift := uint(128 - bl)
		m := new(big.Int).Lsh(n, shift)
		hi, lo = splitWords(m)
		return hi, lo, -int32(shift)
	}
	shift := uint(bl - 128)
	top := new(big.Int).Rsh(n, shift)
	rem := new(big.Int).Sub(n, new(big.Int).Lsh(top, shift))
	half := new(big.Int).Lsh(big.NewInt(1), shift-1)
	if cmp := rem.Cmp(half); cmp > 0 || (cmp == 0 && top.Bit(0) == 1) {
		top.Add(top, big.NewInt(1))
		if top.BitLen() > 128 {
			top.Rsh(top, 1)
			shift++
		}
	}
	hi, lo = splitWords(top)
	return hi, lo, int32(shift)
}

// reciprocalTo128 rounds 1/d (d a positive integer) to the nearest 128-bit
// value (ties to even), returning 1/d ≈ (hi:lo) * 2^exp2.
func reciprocalTo128(d *big.Int) (hi, lo uint64, exp2 int32) {
	bl := d.BitLen()
	s := 127 + bl
	num := new(big.Int).Lsh(big.NewInt(1), uint(s))
	q, r := new(big.Int).QuoRem(num, d, new(big.Int))
	twoR := new(big.Int).Lsh(r, 1)
	if cmp := twoR.Cmp(d); cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}
	for q.BitLen() > 128 {
		q.Rsh(q, 1)
		s--
	}
	for q.BitLen() < 128 {
		q.Lsh(q, 1)
		s++
	}
	hi, lo = splitWords(q)
	return hi, lo, -int32(s)
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

func splitWords(n *big.Int) (hi, lo uint64) {
	loBig := new(big.Int).And(n, mask64)
	hiBig := new(big.Int).Rsh(n, 64)
	return hiBig.Uint64(), loBig.Uint64()
}
