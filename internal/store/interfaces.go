package store

import (
	"context"

	"github.com/MKhiriev/favsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LibraryRepository is the local gallery library: galleries, their favorite
// flag, categories and category assignments.
type LibraryRepository interface {
	// GetFavoriteGalleries returns favorited galleries of the given sources.
	GetFavoriteGalleries(ctx context.Context, sources []models.SourceKind) ([]models.Gallery, error)
	// FindGalleriesByURL returns every gallery stored under url for any of
	// the given sources, or ErrGalleryNotFound.
	FindGalleriesByURL(ctx context.Context, url string, sources []models.SourceKind) ([]models.Gallery, error)
	// SaveGallery inserts the gallery or updates the one with the same
	// source and URL, returning its id.
	SaveGallery(ctx context.Context, gallery models.Gallery) (int64, error)
	SetFavorite(ctx context.Context, galleryID int64, favorite bool) error

	// GetCategories returns categories ordered by their Order field.
	GetCategories(ctx context.Context) ([]models.Category, error)
	InsertCategory(ctx context.Context, category models.Category) (int64, error)
	UpdateCategories(ctx context.Context, categories []models.Category) error

	GetGalleryCategories(ctx context.Context) ([]models.GalleryCategory, error)
	// SetGalleryCategories replaces the category assignments of every gallery
	// mentioned in links with the given ones, in one batch.
	SetGalleryCategories(ctx context.Context, links []models.GalleryCategory) error
	DeleteGalleryCategories(ctx context.Context, galleryID int64) error
}

// SnapshotRepository persists the favorite identities recorded at the end of
// the last successful sync.
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context) ([]models.FavoriteIdentity, error)
	// ReplaceSnapshot atomically swaps the stored snapshot for entries.
	ReplaceSnapshot(ctx context.Context, entries []models.FavoriteIdentity) error
	ClearSnapshot(ctx context.Context) error
}

// Transactor runs a function against repositories bound to one database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}
