package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/favsync/internal/clock"
	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/models"
)

// fakeRemote is an in-memory remote favorites list recording every mutation.
type fakeRemote struct {
	mu sync.Mutex

	loggedIn   bool
	categories []string
	favorites  []fakeFavorite
	catalog    map[string]string

	fetchErr    error
	removeErr   error
	addErr      error
	metadataErr map[string]error

	calls       []string
	fetchCalls  int
	removeCalls int
}

type fakeFavorite struct {
	id, secret, title string
	category          int
}

func newFakeRemote(categories ...string) *fakeRemote {
	return &fakeRemote{
		loggedIn:    true,
		categories:  categories,
		catalog:     make(map[string]string),
		metadataErr: make(map[string]error),
	}
}

// favorite files id under the category at index and makes it importable.
func (f *fakeRemote) favorite(id, secret, title string, index int) *fakeRemote {
	f.favorites = append(f.favorites, fakeFavorite{id: id, secret: secret, title: title, category: index})
	f.catalog[id] = title
	return f
}

func (f *fakeRemote) IsLoggedIn() bool { return f.loggedIn }

func (f *fakeRemote) FetchFavorites(_ context.Context) (models.RemoteFavorites, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchCalls++
	if f.fetchErr != nil {
		return models.RemoteFavorites{}, f.fetchErr
	}

	out := models.RemoteFavorites{CategoryNames: append([]string(nil), f.categories...)}
	for _, fav := range f.favorites {
		rf := models.RemoteFavorite{RemoteID: fav.id, RemoteSecret: fav.secret, Title: fav.title}
		if fav.category >= 0 && fav.category < len(f.categories) {
			label := f.categories[fav.category]
			rf.Category = &label
		}
		out.Favorites = append(out.Favorites, rf)
	}
	return out, nil
}

func (f *fakeRemote) AddFavorite(_ context.Context, remoteID, remoteSecret string, categoryIndex int, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, fmt.Sprintf("add:%s:%d", remoteID, categoryIndex))
	if f.addErr != nil {
		return f.addErr
	}
	f.removeLocked(remoteID)
	f.favorites = append(f.favorites, fakeFavorite{id: remoteID, secret: remoteSecret, title: f.catalog[remoteID], category: categoryIndex})
	return nil
}

func (f *fakeRemote) RemoveFavorites(_ context.Context, remoteIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removeCalls++
	f.calls = append(f.calls, "remove:"+strings.Join(remoteIDs, ","))
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, id := range remoteIDs {
		f.removeLocked(id)
	}
	return nil
}

func (f *fakeRemote) removeLocked(id string) {
	kept := f.favorites[:0]
	for _, fav := range f.favorites {
		if fav.id != id {
			kept = append(kept, fav)
		}
	}
	f.favorites = kept
}

func (f *fakeRemote) GalleryMetadata(_ context.Context, remoteID, remoteSecret string) (models.GalleryMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.metadataErr[remoteID]; err != nil {
		return models.GalleryMetadata{}, err
	}
	title, ok := f.catalog[remoteID]
	if !ok {
		return models.GalleryMetadata{}, errors.New("not found")
	}
	return models.GalleryMetadata{RemoteID: remoteID, RemoteSecret: remoteSecret, Title: title, PageCount: 10}, nil
}

func (f *fakeRemote) mutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// ── harness ──────────────────────────────────────────────────────────────────

type syncHarness struct {
	svc     *favoritesSyncService
	remote  *fakeRemote
	storage *store.ClientStorages
	clock   *clock.FakeClock
}

func newSyncHarness(t *testing.T, remote *fakeRemote, opts SyncOptions) *syncHarness {
	t.Helper()

	storage, err := store.NewClientStorages(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	fc := clock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	opts.Clock = fc

	svc := NewFavoritesSyncService(remote, storage, NewGalleryImporter(remote, fc), opts, logger.Nop()).(*favoritesSyncService)
	return &syncHarness{svc: svc, remote: remote, storage: storage, clock: fc}
}

func (h *syncHarness) categories(t *testing.T, names ...string) []models.Category {
	t.Helper()
	ctx := context.Background()

	out := make([]models.Category, 0, len(names))
	for i, name := range names {
		c := models.Category{Name: name, Order: i}
		id, err := h.storage.Library.InsertCategory(ctx, c)
		require.NoError(t, err)
		c.ID = id
		out = append(out, c)
	}
	return out
}

// localFavorite stores a favorited gallery linked to the given categories.
func (h *syncHarness) localFavorite(t *testing.T, id, secret, title string, categories ...models.Category) int64 {
	t.Helper()
	ctx := context.Background()

	galleryID, err := h.storage.Library.SaveGallery(ctx, models.Gallery{
		Source:   models.SourceEHentai,
		URL:      models.GalleryPath(id, secret),
		Title:    title,
		Favorite: true,
	})
	require.NoError(t, err)

	links := make([]models.GalleryCategory, 0, len(categories))
	for _, c := range categories {
		links = append(links, models.GalleryCategory{GalleryID: galleryID, CategoryID: c.ID})
	}
	if len(links) > 0 {
		require.NoError(t, h.storage.Library.SetGalleryCategories(ctx, links))
	}
	return galleryID
}

func (h *syncHarness) setSnapshot(t *testing.T, entries ...models.FavoriteIdentity) {
	t.Helper()
	require.NoError(t, h.storage.Snapshots.ReplaceSnapshot(context.Background(), entries))
}

func (h *syncHarness) snapshotKeys(t *testing.T) []models.FavoriteKey {
	t.Helper()
	entries, err := h.storage.Snapshots.GetSnapshot(context.Background())
	require.NoError(t, err)
	return keysOf(entries)
}

func (h *syncHarness) localKeys(t *testing.T) []models.FavoriteKey {
	t.Helper()
	entries, err := NewSnapshotStore(h.storage.Library, h.storage.Snapshots).CurrentLocalIdentities(context.Background())
	require.NoError(t, err)
	return keysOf(entries)
}

func keysOf(entries []models.FavoriteIdentity) []models.FavoriteKey {
	out := make([]models.FavoriteKey, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key())
	}
	return out
}

func fav(id, secret string, index int) models.FavoriteIdentity {
	return models.FavoriteIdentity{RemoteID: id, RemoteSecret: secret, CategoryIndex: index, Title: "title " + id}
}

func key(id, secret string, index int) models.FavoriteKey {
	return models.FavoriteKey{RemoteID: id, RemoteSecret: secret, CategoryIndex: index}
}
