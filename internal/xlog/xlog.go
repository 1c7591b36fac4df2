// Package xlog is a thin per-package logger factory over
// github.com/ipfs/go-log/v2: one named logger per subsystem instead of
// a single global logger.
package xlog

import (
	logging "github.com/ipfs/go-log/v2"
)

// Logger returns a named structured logger for subsystem name, e.g.
// xlog.Logger("sync"), xlog.Logger("store"), xlog.Logger("comms").
func Logger(name string) *logging.ZapEventLogger {
	return logging.Logger(name)
}

// SetDebug raises every named logger registered so far to debug level;
// used by --verbose in cmd/ironsyncd.
func SetDebug() {
	logging.SetAllLoggers(logging.LevelDebug)
}
