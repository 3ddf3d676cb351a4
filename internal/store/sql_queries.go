package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/favsync/models"
)

// snapshotInsertBatch keeps multi-row inserts well below SQLite's bound
// parameter limit.
const snapshotInsertBatch = 200

// linkBatch bounds the gallery ids or category links written per statement.
const linkBatch = 500

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var galleryColumns = []string{
	"id", "source", "url", "title", "uploader", "genre", "thumbnail_url", "page_count", "favorite", "date_added",
}

func sourceValues(sources []models.SourceKind) []int {
	out := make([]int, len(sources))
	for i, s := range sources {
		out[i] = int(s)
	}
	return out
}

func buildSelectFavoriteGalleriesQuery(sources []models.SourceKind) (string, []any, error) {
	return builder.
		Select(galleryColumns...).
		From("galleries").
		Where(sq.Eq{"favorite": true, "source": sourceValues(sources)}).
		OrderBy("id").
		ToSql()
}

func buildSelectGalleriesByURLQuery(url string, sources []models.SourceKind) (string, []any, error) {
	return builder.
		Select(galleryColumns...).
		From("galleries").
		Where(sq.Eq{"url": url, "source": sourceValues(sources)}).
		OrderBy("source").
		ToSql()
}

func buildUpsertGalleryQuery(g models.Gallery) (string, []any, error) {
	return builder.
		Insert("galleries").
		Columns("source", "url", "title", "uploader", "genre", "thumbnail_url", "page_count", "favorite", "date_added").
		Values(int(g.Source), g.URL, g.Title, g.Uploader, g.Genre, g.ThumbnailURL, g.PageCount, g.Favorite, g.DateAdded).
		Suffix(`ON CONFLICT (source, url) DO UPDATE SET
			title = excluded.title,
			uploader = excluded.uploader,
			genre = excluded.genre,
			thumbnail_url = excluded.thumbnail_url,
			page_count = excluded.page_count,
			favorite = excluded.favorite
		RETURNING id`).
		ToSql()
}

func buildSetFavoriteQuery(galleryID int64, favorite bool) (string, []any, error) {
	return builder.
		Update("galleries").
		Set("favorite", favorite).
		Where(sq.Eq{"id": galleryID}).
		ToSql()
}

func buildSelectCategoriesQuery() (string, []any, error) {
	return builder.
		Select("id", "name", "sort_order").
		From("categories").
		OrderBy("sort_order", "id").
		ToSql()
}

func buildInsertCategoryQuery(c models.Category) (string, []any, error) {
	return builder.
		Insert("categories").
		Columns("name", "sort_order").
		Values(c.Name, c.Order).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateCategoryQuery(c models.Category) (string, []any, error) {
	return builder.
		Update("categories").
		Set("name", c.Name).
		Set("sort_order", c.Order).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
}

func buildSelectGalleryCategoriesQuery() (string, []any, error) {
	return builder.
		Select("gallery_id", "category_id").
		From("gallery_categories").
		OrderBy("gallery_id", "category_id").
		ToSql()
}

func buildDeleteGalleryCategoriesQuery(galleryIDs ...int64) (string, []any, error) {
	return builder.
		Delete("gallery_categories").
		Where(sq.Eq{"gallery_id": galleryIDs}).
		ToSql()
}

func buildInsertGalleryCategoriesQuery(links []models.GalleryCategory) (string, []any, error) {
	q := builder.
		Insert("gallery_categories").
		Columns("gallery_id", "category_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, l := range links {
		q = q.Values(l.GalleryID, l.CategoryID)
	}
	return q.ToSql()
}

func buildSelectSnapshotQuery() (string, []any, error) {
	return builder.
		Select("remote_id", "remote_secret", "category_index", "title").
		From("favorite_snapshots").
		OrderBy("category_index", "remote_id").
		ToSql()
}

func buildDeleteSnapshotQuery() (string, []any, error) {
	return builder.Delete("favorite_snapshots").ToSql()
}

func buildInsertSnapshotQuery(entries []models.FavoriteIdentity) (string, []any, error) {
	if len(entries) == 0 {
		return "", nil, fmt.Errorf("%w: no snapshot entries", ErrBuildingSQLQuery)
	}

	q := builder.
		Insert("favorite_snapshots").
		Columns("remote_id", "remote_secret", "category_index", "title").
		Suffix("ON CONFLICT DO NOTHING")
	for _, e := range entries {
		q = q.Values(e.RemoteID, e.RemoteSecret, e.CategoryIndex, e.Title)
	}
	return q.ToSql()
}
