// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fastfloat implements a correctly-rounded, allocation-free parser from
textual floating-point literals to IEEE-754 binary64 values.

The parser accepts decimal literals ("1.5e10"), hexadecimal (binary-exponent)
literals ("0x1.8p3"), and the symbolic tokens "NaN" and "Infinity". For the
common case (a significand that fits in 64 bits and an exponent within a
narrow, exactly-representable range) ParseFloat resolves the value with a
single floating point multiplication or division, the Clinger fast path. For
everything else it falls back to the Eisel-Lemire algorithm: one 64x128-bit
multiplication against a precomputed table of powers of ten, plus a
rounding-tie check. Eisel-Lemire itself abstains on a small fraction of
adversarial inputs; those are forwarded to the fallback bridge, which
delegates to Go's own strconv.ParseFloat as the reference converter.

The zero-configuration entry point is ParseFloat. Callers that want to
override the fallback converter, cap diagnostic text length, or attach a
logger should use the fctx subpackage instead:

	f, err := fastfloat.ParseFloat("3.14159")

ParseFloat keeps no state between calls and writes no package-level state
during a call. Besides the read-only tables initialized before any call can
execute, it reads only the package-level settings installed by SetFallback,
SetLogger and SetMaxDiagnosticLen. Concurrent calls require no coordination
with each other; those setters are plain variable writes and are not
synchronized with calls in flight.
*/
package fastfloat
