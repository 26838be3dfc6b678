// Package logging provides structured logging for mirrormenu.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the launcher. Logging is silent by default so that the
// interactive menus own the terminal; it is enabled explicitly with a file
// path, in which case leveled, timestamped lines are appended to that file.
//
// # Log Levels
//
//   - Debug: detailed internals (argument lists, raw device list output)
//   - Info: normal operations (launches, device selection, config writes)
//   - Warn: non-fatal issues (remux failure, device retries)
//   - Error: failures that abort an operation
//
// # Rotation
//
// The log file is trimmed once at startup: when it exceeds a configured byte
// threshold, the oldest portion of its lines is dropped before the sink is
// opened. There is no rotation while the process runs.
//
// # Usage
//
//	if err := logging.InitializeFile(path, maxKB, trimPercent); err != nil { ... }
//	defer logging.Sync()
//	logging.Info("Launching", zap.String("preset", name))
package logging
