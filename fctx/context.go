// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fctx provides a configurable wrapper around fastfloat.ParseFloat
// for callers that need something other than the package-level defaults: a
// different fallback converter, a different diagnostic text cap, or their
// own zap logger, without those settings being global mutable state shared
// by every caller in the process.
package fctx

import (
	"go.uber.org/zap"

	"github.com/dkorman/fastfloat"
)

// defaultMaxDiagnosticLen mirrors fastfloat's own default; Context only
// needs to track an override when SetMaxDiagnosticLen has actually been
// called.
const defaultMaxDiagnosticLen = 1024

// FallbackFunc resolves a literal that fastfloat's fast paths could not
// settle with certainty. The default Context uses fastfloat's own bridge
// (strconv.ParseFloat); tests or embedders with stricter requirements can
// substitute their own.
type FallbackFunc func(s string) (float64, error)

// A Context wraps the settings of a single ParseFloat configuration:
// logger, fallback converter, and diagnostic text length. The zero Context
// is ready to use and behaves like fastfloat.ParseFloat with fastfloat's
// package-level settings at their defaults; a Context never reads those
// settings.
type Context struct {
	logger           *zap.Logger
	fallback         FallbackFunc
	maxDiagnosticLen int
	err              error
}

// New returns a ready-to-use Context with fastfloat's defaults.
func New() *Context {
	return &Context{maxDiagnosticLen: defaultMaxDiagnosticLen}
}

// SetLogger sets c's diagnostic logger and returns c. Passing nil restores
// a no-op logger.
func (c *Context) SetLogger(l *zap.Logger) *Context {
	c.logger = l
	return c
}

// SetFallback overrides the converter used when fastfloat's fast paths
// abstain, and returns c. Passing nil restores the default
// (strconv.ParseFloat-backed) bridge.
func (c *Context) SetFallback(f FallbackFunc) *Context {
	c.fallback = f
	return c
}

// SetMaxDiagnosticLen sets the cap, in bytes, on input text retained in a
// *fastfloat.ParseError produced by this Context, and returns c. A value of
// 0 restores the default (1024).
func (c *Context) SetMaxDiagnosticLen(n int) *Context {
	if n <= 0 {
		n = defaultMaxDiagnosticLen
	}
	c.maxDiagnosticLen = n
	return c
}

// Err returns the most recent error encountered since the last call to Err
// and clears the error state. ParseFloat also returns the error directly; Err
// exists for callers that drive a Context across a batch of values and want
// to check once at the end rather than after every call.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

// ParseFloat converts s using c's configuration. Absent any overrides, it
// behaves like fastfloat.ParseFloat with fastfloat's package-level
// settings at their defaults.
//
// Every override is passed to fastfloat.ParseFloatWithOptions as an
// explicit argument; nothing here ever sets fastfloat's package-level
// SetFallback/SetLogger/SetMaxDiagnosticLen state. A prior version of this
// method swapped those globals in and out around the call with a deferred
// reset, which raced: two Contexts (or a Context and a plain
// fastfloat.ParseFloat call) running concurrently could have one Context's
// deferred reset clobber another's override mid-flight. See DESIGN.md.
func (c *Context) ParseFloat(s string) (float64, error) {
	opts := fastfloat.ParseFloatOptions{
		Logger:           c.logger,
		MaxDiagnosticLen: c.maxDiagnosticLen,
	}
	if c.fallback != nil {
		opts.Fallback = fastfloat.Fallback(c.fallback)
	}
	f, err := fastfloat.ParseFloatWithOptions(s, opts)
	if err != nil {
		c.err = err
	}
	return f, err
}
