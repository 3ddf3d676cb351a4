// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the favsync application runtime.
//
// It wires the local library, the remote adapter, the sync services and the
// terminal UI into a single process lifecycle and exposes one method per
// command line operation.
package client
