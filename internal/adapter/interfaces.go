// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote gallery site on behalf of the sync
// engine: it lists the account's favorites, adds and removes favorites and
// fetches gallery metadata.
//
// The abstractions are split by capability so that each engine component only
// depends on what it calls. [FavoritesAdapter] bundles them for wiring.
// Error values defined in errors.go are mapped from HTTP responses by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrBanned] when the
// site has blocked the client's address).
package adapter

import (
	"context"

	"github.com/MKhiriev/favsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SessionState reports whether the adapter carries an authenticated session.
type SessionState interface {
	// IsLoggedIn returns true when session cookies are configured. It does
	// not contact the remote site.
	IsLoggedIn() bool
}

// FavoritesLister reads the remote favorites list.
type FavoritesLister interface {
	// FetchFavorites walks every favorites page and returns all favorites
	// together with the ordered category names, capped to
	// [models.FavoriteCategoryCount].
	FetchFavorites(ctx context.Context) (models.RemoteFavorites, error)
}

// FavoritesMutator changes the remote favorites list. Callers own retrying.
type FavoritesMutator interface {
	// AddFavorite files the gallery under the category at categoryIndex.
	AddFavorite(ctx context.Context, remoteID, remoteSecret string, categoryIndex int, note string) error
	// RemoveFavorites removes every listed gallery in a single request.
	RemoveFavorites(ctx context.Context, remoteIDs []string) error
}

// MetadataFetcher resolves a gallery to its remote description.
type MetadataFetcher interface {
	GalleryMetadata(ctx context.Context, remoteID, remoteSecret string) (models.GalleryMetadata, error)
}

// FavoritesAdapter is the full remote surface used by the sync engine.
type FavoritesAdapter interface {
	SessionState
	FavoritesLister
	FavoritesMutator
	MetadataFetcher
}
