// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"regexp"
)

// FavoriteCategoryCount is the number of remote favorite categories that take
// part in synchronization. Favorites assigned to a category at or beyond this
// index are ignored by the sync engine.
const FavoriteCategoryCount = 10

// FavoriteKey is the comparable identity of a favorite: the remote gallery id,
// its access token and the category slot it is filed under.
type FavoriteKey struct {
	RemoteID      string
	RemoteSecret  string
	CategoryIndex int
}

// FavoriteIdentity is the unit of synchronization.
//
// Title is carried for display only and never takes part in equality; use
// [FavoriteIdentity.Key] when comparing or indexing identities. Moving a
// favorite to another category yields a different identity, so a move is
// always expressed as one removal plus one addition.
type FavoriteIdentity struct {
	RemoteID      string `db:"remote_id"`
	RemoteSecret  string `db:"remote_secret"`
	CategoryIndex int    `db:"category_index"`
	Title         string `db:"title"`
}

// Key returns the identity tuple without the display title.
func (f FavoriteIdentity) Key() FavoriteKey {
	return FavoriteKey{
		RemoteID:      f.RemoteID,
		RemoteSecret:  f.RemoteSecret,
		CategoryIndex: f.CategoryIndex,
	}
}

// GalleryPath returns the host independent gallery path, e.g. "/g/123/abcdef/".
func (f FavoriteIdentity) GalleryPath() string {
	return GalleryPath(f.RemoteID, f.RemoteSecret)
}

func (f FavoriteIdentity) String() string {
	return fmt.Sprintf("(%s,%s,%d)", f.RemoteID, f.RemoteSecret, f.CategoryIndex)
}

// GalleryPath builds the path under which a gallery is addressed on both
// remote-backed sources.
func GalleryPath(remoteID, remoteSecret string) string {
	return "/g/" + remoteID + "/" + remoteSecret + "/"
}

var galleryPathRe = regexp.MustCompile(`/g/(\d+)/([0-9a-f]+)/?$`)

// ParseGalleryPath extracts the gallery id and token from a gallery path or
// URL. ok is false when s does not address a gallery.
func ParseGalleryPath(s string) (remoteID, remoteSecret string, ok bool) {
	m := galleryPathRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ChangeSet is the difference between an observed favorite set and the last
// synced snapshot. It is produced once per side per run and not modified
// afterwards.
type ChangeSet struct {
	Added   []FavoriteIdentity
	Removed []FavoriteIdentity
}

// IsEmpty reports whether the change set carries no additions and no removals.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// RemoteFavorite is one favorite as reported by the remote listing.
// Category holds the remote category label, nil when the listing did not
// report one. CategoryIndex is the category position the listing reported
// alongside the label, nil when it reported none.
type RemoteFavorite struct {
	RemoteID      string
	RemoteSecret  string
	Title         string
	Category      *string
	CategoryIndex *int
}

// RemoteFavorites is the full remote favorites listing: every favorite plus
// the ordered category names, index = remote category position.
type RemoteFavorites struct {
	Favorites     []RemoteFavorite
	CategoryNames []string
}
