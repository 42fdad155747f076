// Package state holds the UI state controller: which view is current,
// which overlay (if any) is open, display preferences, open panels, and
// notification read state. Every operation is total; unknown input falls
// back or is ignored rather than failing.
//
// Mutations happen synchronously on the Bubble Tea update loop, so nothing
// here is safe for concurrent use and nothing needs to be.
package state
