package models

import "time"

// Gallery is a locally stored library item.
type Gallery struct {
	ID           int64      `db:"id"`
	Source       SourceKind `db:"source"`
	URL          string     `db:"url"`
	Title        string     `db:"title"`
	Uploader     string     `db:"uploader"`
	Genre        string     `db:"genre"`
	ThumbnailURL string     `db:"thumbnail_url"`
	PageCount    int        `db:"page_count"`
	Favorite     bool       `db:"favorite"`
	DateAdded    time.Time  `db:"date_added"`
}

// Category is a user-defined library category. Order is the 0-based display
// position and maps one to one onto the remote category index.
type Category struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Order int    `db:"sort_order"`
}

// GalleryCategory links a gallery to a category.
type GalleryCategory struct {
	GalleryID  int64 `db:"gallery_id"`
	CategoryID int64 `db:"category_id"`
}

// GalleryMetadata is the remote description of a single gallery.
type GalleryMetadata struct {
	RemoteID     string
	RemoteSecret string
	Title        string
	Uploader     string
	Genre        string
	ThumbnailURL string
	PageCount    int
	Posted       time.Time
}
