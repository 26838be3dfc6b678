// Package ui provides the interactive terminal components of mirrormenu: a
// scrollable menu, a single-line editor, and a yes/no confirm prompt.
//
// Each component is a Bubble Tea model run as its own short-lived program.
// The application is a sequence of discrete interactions separated by
// external process runs that may own the terminal, so there is no long-lived
// top-level program; a component runs, returns its outcome, and exits.
//
// The menu is the workhorse. It keeps its frame height constant between
// renders (padding short lists, windowing long ones around the selection),
// distinguishes category rows from selectable ones, and can hand
// caller-declared action letters back without treating them as navigation.
// All state transitions live in Update and are exercised directly by tests;
// no terminal is required.
package ui
