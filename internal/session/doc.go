// Package session drives mirroring runs: resolving a device, resolving a
// preset, building the argument list, supervising the external process, and
// deciding what happens afterwards (relaunch, back to the menu, or quit).
//
// The controller is a plain state machine over small collaborator
// interfaces. Screen interaction goes through UserInterface, device queries
// through Devices, process launches through Mirror, and recording conversion
// through Remuxer, so every transition is testable with fakes and no
// terminal or child process.
//
// Cancellation is the user's Escape key and nothing else: it unwinds the
// current prompt to the nearest enclosing menu and is never an error. A
// process that has already been launched is always awaited to completion.
package session
