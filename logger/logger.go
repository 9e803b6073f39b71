// Copyright 2026 the mlpack Go library authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logger defines the diagnostic sink used by the data saving
// and loading routines.
//
// The logrus library satisfies Logger out of the box and backs the
// default sink. Use Nil to silence diagnostics entirely, or plug in
// any implementation of the interface.
package logger

import "github.com/sirupsen/logrus"

// Logger is the interface diagnostics are routed through. Non-fatal
// save and load failures produce exactly one Warnf call each.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Default returns the standard logrus logger.
func Default() Logger {
	return logrus.StandardLogger()
}

// Nil is a pre-defined logger that discards all output.
var Nil Logger = NilLogger{}

// NilLogger discards all messages.
type NilLogger struct{}

// Debugf discards the message.
func (NilLogger) Debugf(format string, args ...any) {}

// Infof discards the message.
func (NilLogger) Infof(format string, args ...any) {}

// Warnf discards the message.
func (NilLogger) Warnf(format string, args ...any) {}

// Errorf discards the message.
func (NilLogger) Errorf(format string, args ...any) {}
