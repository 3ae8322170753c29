// Package config provides configuration loading, merging, and validation
// facilities for the fbclient CLI and the local emulator.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON with comments or YAML)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetEmulatorConfig], which
// build validated views over [StructuredConfig].
package config
