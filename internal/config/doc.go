// Package config owns the persisted configuration document: the ordered
// preset list plus the scalar session settings (selected device, quick
// launch, recording behavior).
//
// The document is a single JSON file, mutated in memory and flushed after
// every logical change. Saves are suppressed when nothing differs from the
// last persisted state, and writes go through a temp file + rename so a
// crash mid-write cannot clobber the previous valid file.
//
// A corrupt file is never fatal: load backs it up under a timestamped name,
// regenerates a single-preset default document, and retries exactly once.
//
// The scalar name references (lastUsedPreset, quickLaunchPreset,
// selectedDevice) are weak: their target may no longer exist, and every
// consumer treats absence as a normal, handled state.
package config
