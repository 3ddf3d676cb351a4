package store

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

type libraryRepository struct {
	q sqlx.ExtContext
}

// NewLibraryRepository returns a [LibraryRepository] running its statements
// on q, which is either the database or an open transaction.
func NewLibraryRepository(q sqlx.ExtContext) LibraryRepository {
	return &libraryRepository{q: q}
}

func (r *libraryRepository) GetFavoriteGalleries(ctx context.Context, sources []models.SourceKind) ([]models.Gallery, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoriteGalleriesQuery(sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var galleries []models.Gallery
	if err = sqlx.SelectContext(ctx, r.q, &galleries, query, args...); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.GetFavoriteGalleries").
			Msg("failed to query favorite galleries")
		return nil, fmt.Errorf("%w: favorite galleries: %w", ErrExecutingQuery, err)
	}

	return galleries, nil
}

func (r *libraryRepository) FindGalleriesByURL(ctx context.Context, url string, sources []models.SourceKind) ([]models.Gallery, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGalleriesByURLQuery(url, sources)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var galleries []models.Gallery
	if err = sqlx.SelectContext(ctx, r.q, &galleries, query, args...); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.FindGalleriesByURL").
			Str("url", url).
			Msg("failed to query galleries by url")
		return nil, fmt.Errorf("%w: galleries by url: %w", ErrExecutingQuery, err)
	}

	if len(galleries) == 0 {
		return nil, ErrGalleryNotFound
	}

	return galleries, nil
}

func (r *libraryRepository) SaveGallery(ctx context.Context, gallery models.Gallery) (int64, error) {
	log := logger.FromContext(ctx)

	if gallery.DateAdded.IsZero() {
		gallery.DateAdded = time.Now().UTC()
	}

	query, args, err := buildUpsertGalleryQuery(gallery)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.SaveGallery").
			Str("url", gallery.URL).
			Msg("failed to upsert gallery")
		return 0, fmt.Errorf("%w: save gallery %s: %w", ErrExecutingStatement, gallery.URL, err)
	}

	return id, nil
}

func (r *libraryRepository) SetFavorite(ctx context.Context, galleryID int64, favorite bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetFavoriteQuery(galleryID, favorite)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "libraryRepository.SetFavorite").
			Int64("gallery_id", galleryID).
			Msg("failed to update favorite flag")
		return fmt.Errorf("%w: set favorite: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrGalleryNotFound
	}

	return nil
}

func (r *libraryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var categories []models.Category
	if err = sqlx.SelectContext(ctx, r.q, &categories, query, args...); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.GetCategories").
			Msg("failed to query categories")
		return nil, fmt.Errorf("%w: categories: %w", ErrExecutingQuery, err)
	}

	return categories, nil
}

func (r *libraryRepository) InsertCategory(ctx context.Context, category models.Category) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCategoryQuery(category)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.q.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.InsertCategory").
			Str("name", category.Name).
			Msg("failed to insert category")
		return 0, fmt.Errorf("%w: insert category: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

func (r *libraryRepository) UpdateCategories(ctx context.Context, categories []models.Category) error {
	log := logger.FromContext(ctx)

	for _, c := range categories {
		query, args, err := buildUpdateCategoryQuery(c)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := r.q.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).
				Str("func", "libraryRepository.UpdateCategories").
				Int64("category_id", c.ID).
				Msg("failed to update category")
			return fmt.Errorf("%w: update category %d: %w", ErrExecutingStatement, c.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: id %d", ErrCategoryNotFound, c.ID)
		}
	}

	return nil
}

func (r *libraryRepository) GetGalleryCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGalleryCategoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var links []models.GalleryCategory
	if err = sqlx.SelectContext(ctx, r.q, &links, query, args...); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.GetGalleryCategories").
			Msg("failed to query gallery categories")
		return nil, fmt.Errorf("%w: gallery categories: %w", ErrExecutingQuery, err)
	}

	return links, nil
}

func (r *libraryRepository) SetGalleryCategories(ctx context.Context, links []models.GalleryCategory) error {
	if len(links) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	seen := make(map[int64]struct{}, len(links))
	galleryIDs := make([]int64, 0, len(links))
	for _, l := range links {
		if _, ok := seen[l.GalleryID]; !ok {
			seen[l.GalleryID] = struct{}{}
			galleryIDs = append(galleryIDs, l.GalleryID)
		}
	}

	for ids := range slices.Chunk(galleryIDs, linkBatch) {
		query, args, err := buildDeleteGalleryCategoriesQuery(ids...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "libraryRepository.SetGalleryCategories").
				Int("galleries", len(ids)).
				Msg("failed to clear gallery categories")
			return fmt.Errorf("%w: clear gallery categories: %w", ErrExecutingStatement, err)
		}
	}

	for batch := range slices.Chunk(links, linkBatch) {
		query, args, err := buildInsertGalleryCategoriesQuery(batch)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "libraryRepository.SetGalleryCategories").
				Int("links", len(batch)).
				Msg("failed to insert gallery categories")
			return fmt.Errorf("%w: insert gallery categories: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *libraryRepository) DeleteGalleryCategories(ctx context.Context, galleryID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteGalleryCategoriesQuery(galleryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "libraryRepository.DeleteGalleryCategories").
			Int64("gallery_id", galleryID).
			Msg("failed to delete gallery categories")
		return fmt.Errorf("%w: delete gallery categories: %w", ErrExecutingStatement, err)
	}

	return nil
}
