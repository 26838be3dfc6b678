// Package scrcpy builds argument lists for the external mirroring process
// and launches it. The mapping from preset fields to flags is deterministic:
// the device serial always comes first, fields are emitted only when set,
// and free-form extra options are appended verbatim after every structured
// flag, with an optional record path last.
//
// Two launch modes exist. Pass-through hands the child the terminal
// directly; streaming drains stdout and stderr line by line into the log
// while awaiting exit. The choice affects only I/O handling, never control
// flow.
package scrcpy
