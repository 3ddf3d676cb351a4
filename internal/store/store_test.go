package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
)

// newTestStorages returns storages over a migrated in-memory database.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	s, err := NewClientStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}
