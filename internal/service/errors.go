package service

import (
	"errors"
	"fmt"
)

var (
	// ErrSyncInProgress is returned by RunSync when another run has not yet
	// reached a terminal state. The status is left untouched.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrUnrecognizedGalleryURL is returned by the importer for URLs that do
	// not address a gallery on a remote-backed source.
	ErrUnrecognizedGalleryURL = errors.New("unrecognized gallery url")

	// errAlreadyReported marks failures whose Error status has already been
	// published, so the orchestrator must not overwrite it.
	errAlreadyReported = errors.New("error already reported")
)

// SyncFailedError is returned by RunSync when a run ends in the Error state.
// Message equals the published status message.
type SyncFailedError struct {
	Message string
	Err     error
}

func (e *SyncFailedError) Error() string {
	return "sync failed: " + e.Message
}

func (e *SyncFailedError) Unwrap() error {
	return e.Err
}

// ImportError is a per-gallery import failure. It is recorded and the run
// continues.
type ImportError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s: %s", e.URL, e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
