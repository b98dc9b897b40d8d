// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastfloat

import "fmt"

// defaultMaxDiagnosticLen is the cap, in bytes, on the original input text
// retained in a ParseError for diagnostics.
const defaultMaxDiagnosticLen = 1024

// maxDiagnosticLen is the cap used by the package-level ParseFloat. It is
// intentionally process-wide, the same way log.go's default logger is: a
// caller sets it once at startup and every subsequent ParseFloat call picks
// it up. It is not used to thread a per-call override through a concurrent
// batch of calls; that path (ParseFloatWithOptions, used by the fctx
// subpackage) takes the cap as an explicit parameter instead so it never
// races with this var. See DESIGN.md.
var maxDiagnosticLen = defaultMaxDiagnosticLen

// SetMaxDiagnosticLen overrides the cap, in bytes, on input text retained
// in a *ParseError returned by the package-level ParseFloat. A value <= 0
// restores the default (1024).
func SetMaxDiagnosticLen(n int) {
	if n <= 0 {
		n = defaultMaxDiagnosticLen
	}
	maxDiagnosticLen = n
}

// reason classifies why scanning rejected an input. It is unexported:
// callers see only the single ParseError kind, never a reason value.
type reason string

const (
	reasonEmpty          reason = "empty"
	reasonNoDigits       reason = "no digits"
	reasonBadSign        reason = "lone sign"
	reasonTrailingJunk   reason = "trailing characters after number"
	reasonMultiplePoints reason = "multiple '.' in mantissa"
	reasonMissingHexExp  reason = "hexadecimal literal missing 'p' exponent"
	reasonBadExponent    reason = "malformed exponent"
)

// ParseError reports that a string is not a valid floating-point literal
// under the grammar ParseFloat accepts. It is the only error kind ParseFloat
// returns; the distinction between "empty input" and other grammar failures
// lives in the diagnostic text, not in a separate error kind.
type ParseError struct {
	// Input is the original text, truncated to maxDiagnosticLen bytes.
	Input  string
	reason reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fastfloat: invalid number %q: %s", e.Input, e.reason)
}

// Is makes errors.Is(err, fastfloat.ErrInvalidNumber) succeed for any
// *ParseError, without exposing the reason taxonomy as API.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidNumber
}

// ErrInvalidNumber is the sentinel tested via errors.Is(err,
// fastfloat.ErrInvalidNumber); every grammar failure is a *ParseError,
// which matches it through its Is method.
var ErrInvalidNumber = fmt.Errorf("fastfloat: invalid number")

// invalidNumber builds a *ParseError, truncating input to maxLen bytes.
// maxLen is always passed explicitly by the caller (scan, via its own
// maxLen parameter) rather than read from a package var, so a Context-scoped
// cap never has to mutate process-wide state to take effect.
func invalidNumber(input string, r reason, maxLen int) error {
	if maxLen <= 0 {
		maxLen = defaultMaxDiagnosticLen
	}
	if len(input) > maxLen {
		input = input[:maxLen]
	}
	return &ParseError{Input: input, reason: r}
}
