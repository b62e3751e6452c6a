// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package snmpcodec

//go:generate mockgen -destination mocks/logger_mock.go -package mocks github.com/gosnmp/snmpcodec LoggerInterface

// LoggerInterface is used for debugging. Both Print and Printf have the same
// interfaces as Package Log in the std library. The interface is small to
// give you flexibility in how you do your debugging.
//
// For verbose logging to stdout:
//
//	snmpcodec.Default.Logger = snmpcodec.NewLogger(log.New(os.Stdout, "", 0))
type LoggerInterface interface {
	Print(v ...any)
	Printf(format string, v ...any)
}

// Logger wraps a LoggerInterface. The zero value discards everything, and
// building with the snmpcodec_nodebug tag compiles every call out.
type Logger struct {
	logger LoggerInterface
}

// NewLogger returns a Logger writing to logger.
func NewLogger(logger LoggerInterface) Logger {
	return Logger{logger: logger}
}
