// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the operations available from the command line.
type Client interface {
	// Sync runs one sync pass, behind the progress screen unless plain is
	// set, in which case every status is printed as a line of text.
	Sync(ctx context.Context, plain bool) error

	// Watch syncs periodically until ctx is cancelled.
	Watch(ctx context.Context) error

	// ClearSnapshots forgets the last synced state.
	ClearSnapshots(ctx context.Context) error

	// Status reports the local view of the sync state without contacting the
	// remote site.
	Status(ctx context.Context) (StatusReport, error)

	// Close releases the local database.
	Close() error
}
