// Package ui implements the terminal interface using Bubble Tea.
//
// # Architecture
//
// The interface follows the Elm architecture: a single Model holds all
// UI state, Update consumes messages, and View renders a frame. The
// model never talks to the network directly. Mutations go through the
// actions.Coordinator on background commands, and the rendered data is
// always a Snapshot read from the state.Store. A periodic tick re-reads
// the snapshot so refreshes running behind a mutation become visible
// without any direct coupling.
//
// # Input ownership
//
// Keyboard input is owned by exactly one surface at a time: the browse
// keymap, an open form, or the confirmation modal. Forms capture all
// text keys; esc cancels and enter submits. Only one book may be edited
// at a time. Starting an edit on another book discards the previous
// unsaved form.
//
// # Mutation guard
//
// While a mutation and its follow-up refreshes are in flight the model
// sets busy and ignores further mutation keys, so two writes cannot
// interleave their reconciling refreshes.
//
// # Themes
//
// Two built-in themes, Paper (light) and Ink (dark), are cycled with T
// and persisted to the preferences file.
package ui
