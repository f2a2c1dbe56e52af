// Package app provides the orchestration layer for the bookdesk application.
//
// # Overview
//
// This package wires together configuration, the API client, state
// management, the action coordinator, and the UI. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Initialization
//
//  1. Load configuration from ~/.config/bookdesk/config.toml
//  2. Load user preferences (theme) from ~/.config/bookdesk/prefs.toml
//  3. Initialize the HTTP client for the library server API
//  4. Create the shared state.Store and actions.Coordinator
//  5. Optionally start the background refresher goroutine
//  6. Start the TUI and block until the user exits or the context cancels
//
// The UI itself issues the initial collection fetch on startup, so a slow
// or unreachable server never delays the first frame.
package app
