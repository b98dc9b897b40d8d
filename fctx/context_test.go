// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fctx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/dkorman/fastfloat"
)

func TestContextDefaultBehavesLikePackageLevel(t *testing.T) {
	c := New()
	got, err := c.ParseFloat("3.14")
	require.NoError(t, err)
	require.Equal(t, 3.14, got)
}

func TestContextErrTracksLastError(t *testing.T) {
	c := New()
	_, err := c.ParseFloat("not a number")
	require.Error(t, err)
	require.True(t, errors.Is(err, fastfloat.ErrInvalidNumber))
	require.Equal(t, err, c.Err())
	// Err clears the error state.
	require.NoError(t, c.Err())
}

func TestContextSetFallback(t *testing.T) {
	called := false
	c := New().SetFallback(func(s string) (float64, error) {
		called = true
		return 42, nil
	})
	// A 23-digit significand whose kept 19-digit prefix lands exactly on a
	// rounding boundary (9007199254740993 is the midpoint between 2^53 and
	// 2^53+2): the truncation bounds disagree on the rounded result, so the
	// conversion must go through the fallback bridge.
	got, err := c.ParseFloat("90071992547409930000001e-7")
	require.NoError(t, err)
	require.True(t, called, "fallback override was never invoked")
	require.Equal(t, float64(42), got)
}

func TestContextSetLogger(t *testing.T) {
	c := New().SetLogger(zaptest.NewLogger(t))
	got, err := c.ParseFloat("2.5")
	require.NoError(t, err)
	require.Equal(t, 2.5, got)
}

func TestContextSetMaxDiagnosticLen(t *testing.T) {
	c := New().SetMaxDiagnosticLen(8)
	_, err := c.ParseFloat("not-a-number-that-is-quite-long")
	require.Error(t, err)
}
