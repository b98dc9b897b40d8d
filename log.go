// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "go.uber.org/zap"

// nopLogger is the zero-value logger substituted whenever a call site (the
// package-level default or a ParseFloatWithOptions caller) doesn't supply
// one. It never changes, unlike logger below, so it is safe to read from
// concurrent calls with no coordination.
var nopLogger = zap.NewNop()

// logger receives diagnostic events from the fallback bridge for the
// package-level ParseFloat: Eisel-Lemire and the Clinger fast path
// abstaining is routine and expected, but logging it at debug level makes
// it possible to measure fast-path hit rate against a real input corpus
// without instrumenting call sites by hand. This is intentionally
// process-wide, set once at startup; per-call logger overrides go through
// ParseFloatWithOptions instead (see fctx.Context), which never mutates
// this var.
var logger = nopLogger

// SetLogger installs l as the package-wide diagnostic logger used by the
// package-level ParseFloat. The default is a no-op logger, so calling
// SetLogger is entirely optional; most callers that just want ParseFloat to
// work never need it. l must not be nil.
func SetLogger(l *zap.Logger) {
	logger = l
}
