// Package config loads, merges and validates favsync configuration.
//
// Configuration is assembled from several sources; for each field the first
// source that sets a non-zero value wins:
//  1. Command-line flags (registered with [BindFlags])
//  2. Environment variables, including a .env file in the working directory
//  3. JSON or YAML config file named by --config or CONFIG
//  4. Built-in defaults
//
// The entry point is [Load].
package config
