package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/favsync/models"
)

func TestLibraryRepository_SaveGalleryUpserts(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)

	g := models.Gallery{Source: models.SourceEHentai, URL: "/g/1/a/", Title: "first", Favorite: true}
	id, err := s.Library.SaveGallery(ctx, g)
	require.NoError(t, err)
	require.NotZero(t, id)

	g.Title = "renamed"
	again, err := s.Library.SaveGallery(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	// same url on the other source is a different gallery
	other, err := s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceExHentai, URL: "/g/1/a/"})
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	found, err := s.Library.FindGalleriesByURL(ctx, "/g/1/a/", models.RemoteBackedSources())
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "renamed", found[0].Title)
	assert.Equal(t, models.SourceEHentai, found[0].Source)
	assert.True(t, found[0].Favorite)
	assert.False(t, found[0].DateAdded.IsZero())
	assert.Equal(t, models.SourceExHentai, found[1].Source)
}

func TestLibraryRepository_FindGalleriesByURL_NotFound(t *testing.T) {
	s := newTestStorages(t)

	_, err := s.Library.FindGalleriesByURL(context.Background(), "/g/404/x/", models.RemoteBackedSources())
	assert.ErrorIs(t, err, ErrGalleryNotFound)
}

func TestLibraryRepository_FavoritesFilteredBySource(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)

	_, err := s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceEHentai, URL: "/g/1/a/", Favorite: true})
	require.NoError(t, err)
	_, err = s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceOther, URL: "local://x", Favorite: true})
	require.NoError(t, err)
	notFav, err := s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceExHentai, URL: "/g/2/b/", Favorite: true})
	require.NoError(t, err)
	require.NoError(t, s.Library.SetFavorite(ctx, notFav, false))

	favs, err := s.Library.GetFavoriteGalleries(ctx, models.RemoteBackedSources())
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "/g/1/a/", favs[0].URL)

	assert.ErrorIs(t, s.Library.SetFavorite(ctx, 9999, true), ErrGalleryNotFound)
}

func TestLibraryRepository_Categories(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)

	idB, err := s.Library.InsertCategory(ctx, models.Category{Name: "B", Order: 1})
	require.NoError(t, err)
	idA, err := s.Library.InsertCategory(ctx, models.Category{Name: "A", Order: 0})
	require.NoError(t, err)

	cats, err := s.Library.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{{ID: idA, Name: "A", Order: 0}, {ID: idB, Name: "B", Order: 1}}, cats)

	require.NoError(t, s.Library.UpdateCategories(ctx, []models.Category{{ID: idB, Name: "B2", Order: 0}, {ID: idA, Name: "A", Order: 1}}))
	cats, err = s.Library.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B2", cats[0].Name)

	err = s.Library.UpdateCategories(ctx, []models.Category{{ID: 12345, Name: "ghost"}})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestLibraryRepository_GalleryCategories(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)

	g1, err := s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceEHentai, URL: "/g/1/a/"})
	require.NoError(t, err)
	g2, err := s.Library.SaveGallery(ctx, models.Gallery{Source: models.SourceEHentai, URL: "/g/2/b/"})
	require.NoError(t, err)
	c1, err := s.Library.InsertCategory(ctx, models.Category{Name: "one", Order: 0})
	require.NoError(t, err)
	c2, err := s.Library.InsertCategory(ctx, models.Category{Name: "two", Order: 1})
	require.NoError(t, err)

	require.NoError(t, s.Library.SetGalleryCategories(ctx, []models.GalleryCategory{
		{GalleryID: g1, CategoryID: c1},
		{GalleryID: g2, CategoryID: c1},
	}))
	// replacing g1 leaves g2 alone
	require.NoError(t, s.Library.SetGalleryCategories(ctx, []models.GalleryCategory{{GalleryID: g1, CategoryID: c2}}))
	require.NoError(t, s.Library.SetGalleryCategories(ctx, nil))

	links, err := s.Library.GetGalleryCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryCategory{{GalleryID: g1, CategoryID: c2}, {GalleryID: g2, CategoryID: c1}}, links)

	require.NoError(t, s.Library.DeleteGalleryCategories(ctx, g1))
	links, err = s.Library.GetGalleryCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.GalleryCategory{{GalleryID: g2, CategoryID: c1}}, links)
}

func TestLibraryRepository_SetGalleryCategories_LargeBatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStorages(t)

	const total = 16500

	cat, err := s.Library.InsertCategory(ctx, models.Category{Name: "zero", Order: 0})
	require.NoError(t, err)

	err = s.RunInTransaction(ctx, func(ctx context.Context, repos *Repositories) error {
		links := make([]models.GalleryCategory, 0, total)
		for i := range total {
			id, err := repos.Library.SaveGallery(ctx, models.Gallery{
				Source: models.SourceEHentai,
				URL:    fmt.Sprintf("/g/%d/abc/", i+1),
			})
			if err != nil {
				return err
			}
			links = append(links, models.GalleryCategory{GalleryID: id, CategoryID: cat})
		}
		return repos.Library.SetGalleryCategories(ctx, links)
	})
	require.NoError(t, err)

	links, err := s.Library.GetGalleryCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, links, total)
}

func TestLibraryRepository_SetGalleryCategories_WritesInBatches(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewLibraryRepository(sqlx.NewDb(mockDB, "sqlmock"))

	links := make([]models.GalleryCategory, linkBatch+1)
	for i := range links {
		links[i] = models.GalleryCategory{GalleryID: int64(i + 1), CategoryID: 1}
	}

	mock.ExpectExec("DELETE FROM gallery_categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM gallery_categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO gallery_categories").WillReturnResult(sqlmock.NewResult(0, linkBatch))
	mock.ExpectExec("INSERT INTO gallery_categories").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetGalleryCategories(context.Background(), links))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLibraryRepository_QueryErrors(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewLibraryRepository(sqlx.NewDb(mockDB, "sqlmock"))
	ctx := context.Background()
	boom := errors.New("boom")

	mock.ExpectQuery("SELECT .* FROM galleries").WillReturnError(boom)
	_, err = repo.GetFavoriteGalleries(ctx, models.RemoteBackedSources())
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery("INSERT INTO galleries").WillReturnError(boom)
	_, err = repo.SaveGallery(ctx, models.Gallery{URL: "/g/1/a/"})
	assert.ErrorIs(t, err, ErrExecutingStatement)

	mock.ExpectExec("UPDATE galleries SET favorite").WillReturnError(boom)
	assert.ErrorIs(t, repo.SetFavorite(ctx, 1, false), ErrExecutingStatement)

	mock.ExpectQuery("SELECT id, name, sort_order FROM categories").WillReturnError(boom)
	_, err = repo.GetCategories(ctx)
	assert.ErrorIs(t, err, ErrExecutingQuery)

	mock.ExpectExec("DELETE FROM gallery_categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO gallery_categories").WillReturnError(boom)
	err = repo.SetGalleryCategories(ctx, []models.GalleryCategory{{GalleryID: 1, CategoryID: 2}})
	assert.ErrorIs(t, err, ErrExecutingStatement)

	assert.NoError(t, mock.ExpectationsWereMet())
}
