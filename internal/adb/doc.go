// Package adb wraps the device bridge executable. The launcher never speaks
// to devices directly: everything goes through whole-process invocations of
// the bridge, and this package parses their line-oriented output.
//
// Device records are rebuilt on every query and discarded after use; the
// only device fact the application persists is the chosen serial string.
package adb
