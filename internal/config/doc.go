// Package config handles loading and parsing bookdesk configuration files.
//
// # Overview
//
// This package reads bookdesk's TOML configuration to discover the Book
// Rental API endpoint. The file is deliberately tiny; everything else the
// application needs is either a flag or a user preference.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookdesk/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/bookdesk/config.toml
//   - API endpoint: 127.0.0.1:8080
//   - Request timeout: 10 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	api_base = "127.0.0.1:8080"
//	request_timeout_seconds = 30
//
// api_base accepts host:port or a full URL; the API client normalizes
// either form.
//
// # Error Handling
//
// A missing file is not an error. A file that exists but cannot be read or
// parsed is, since silently ignoring a broken config would be confusing.
package config
