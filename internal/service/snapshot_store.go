package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/models"
)

// SnapshotStore derives favorite identities from the local library and diffs
// both sides against the stored snapshot.
type SnapshotStore struct {
	library   store.LibraryRepository
	snapshots store.SnapshotRepository
}

func NewSnapshotStore(library store.LibraryRepository, snapshots store.SnapshotRepository) *SnapshotStore {
	return &SnapshotStore{library: library, snapshots: snapshots}
}

// MultiCategoryConflict names a local favorite filed under more than one
// category.
type MultiCategoryConflict struct {
	Title      string
	Categories []string
}

// Message renders the conflict as a status message.
func (c MultiCategoryConflict) Message() string {
	return fmt.Sprintf("Gallery '%s' is in more than one category (%s)!", c.Title, strings.Join(c.Categories, ", "))
}

// localFavorites holds one read of the library's favorite state.
type localFavorites struct {
	galleries  []models.Gallery
	categories []models.Category
	links      map[int64][]int64
	positions  map[int64]int
}

func (s *SnapshotStore) loadLocal(ctx context.Context) (*localFavorites, error) {
	galleries, err := s.library.GetFavoriteGalleries(ctx, models.RemoteBackedSources())
	if err != nil {
		return nil, fmt.Errorf("loading favorite galleries: %w", err)
	}
	categories, err := s.library.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}
	links, err := s.library.GetGalleryCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gallery categories: %w", err)
	}

	local := &localFavorites{
		galleries:  galleries,
		categories: categories,
		links:      make(map[int64][]int64, len(links)),
		positions:  make(map[int64]int, len(categories)),
	}
	for i, c := range categories {
		local.positions[c.ID] = i
	}
	for _, l := range links {
		local.links[l.GalleryID] = append(local.links[l.GalleryID], l.CategoryID)
	}
	return local, nil
}

// MultiCategoryFavorite returns the first favorite assigned to more than one
// category, or nil.
func (s *SnapshotStore) MultiCategoryFavorite(ctx context.Context) (*MultiCategoryConflict, error) {
	local, err := s.loadLocal(ctx)
	if err != nil {
		return nil, err
	}

	for _, g := range local.galleries {
		ids := local.links[g.ID]
		if len(ids) < 2 {
			continue
		}
		names := make([]string, 0, len(ids))
		for _, id := range ids {
			if pos, ok := local.positions[id]; ok {
				names = append(names, local.categories[pos].Name)
			}
		}
		return &MultiCategoryConflict{Title: g.Title, Categories: names}, nil
	}
	return nil, nil
}

// CurrentLocalIdentities returns one identity per favorited remote-backed
// gallery whose category sits at a position below
// models.FavoriteCategoryCount. Galleries without a category are skipped.
func (s *SnapshotStore) CurrentLocalIdentities(ctx context.Context) ([]models.FavoriteIdentity, error) {
	local, err := s.loadLocal(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	out := make([]models.FavoriteIdentity, 0, len(local.galleries))
	for _, g := range local.galleries {
		remoteID, remoteSecret, ok := models.ParseGalleryPath(g.URL)
		if !ok {
			log.Debug().Str("func", "SnapshotStore.CurrentLocalIdentities").Str("url", g.URL).Msg("skipping gallery with unparseable url")
			continue
		}

		index, ok := local.categoryIndex(g.ID)
		if !ok || index >= models.FavoriteCategoryCount {
			continue
		}

		out = append(out, models.FavoriteIdentity{
			RemoteID:      remoteID,
			RemoteSecret:  remoteSecret,
			CategoryIndex: index,
			Title:         g.Title,
		})
	}
	return out, nil
}

// categoryIndex returns the lowest category position of the gallery.
func (l *localFavorites) categoryIndex(galleryID int64) (int, bool) {
	positions := make([]int, 0, len(l.links[galleryID]))
	for _, id := range l.links[galleryID] {
		if pos, ok := l.positions[id]; ok {
			positions = append(positions, pos)
		}
	}
	if len(positions) == 0 {
		return 0, false
	}
	return slices.Min(positions), true
}

// ChangedLocalEntries diffs the local library against the snapshot.
func (s *SnapshotStore) ChangedLocalEntries(ctx context.Context) (models.ChangeSet, error) {
	current, err := s.CurrentLocalIdentities(ctx)
	if err != nil {
		return models.ChangeSet{}, err
	}
	snapshot, err := s.snapshots.GetSnapshot(ctx)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("loading snapshot: %w", err)
	}
	return DiffFavorites(current, snapshot), nil
}

// ChangedRemoteEntries diffs the remote favorites against the snapshot.
// Each remote category label is resolved to the first matching position
// among the first models.FavoriteCategoryCount names; favorites without a
// resolvable label are skipped.
func (s *SnapshotStore) ChangedRemoteEntries(ctx context.Context, remote models.RemoteFavorites) (models.ChangeSet, error) {
	snapshot, err := s.snapshots.GetSnapshot(ctx)
	if err != nil {
		return models.ChangeSet{}, fmt.Errorf("loading snapshot: %w", err)
	}
	return DiffFavorites(RemoteIdentities(remote), snapshot), nil
}

// RemoteIdentities converts the remote favorites into identities.
func RemoteIdentities(remote models.RemoteFavorites) []models.FavoriteIdentity {
	names := remote.CategoryNames
	if len(names) > models.FavoriteCategoryCount {
		names = names[:models.FavoriteCategoryCount]
	}

	out := make([]models.FavoriteIdentity, 0, len(remote.Favorites))
	for _, f := range remote.Favorites {
		if f.Category == nil {
			continue
		}
		index := remoteCategoryIndex(f, names)
		if index < 0 {
			continue
		}
		out = append(out, models.FavoriteIdentity{
			RemoteID:      f.RemoteID,
			RemoteSecret:  f.RemoteSecret,
			CategoryIndex: index,
			Title:         f.Title,
		})
	}
	return out
}

// remoteCategoryIndex prefers the position reported by the listing. Labels
// are only a fallback since category names need not be unique.
func remoteCategoryIndex(f models.RemoteFavorite, names []string) int {
	if f.CategoryIndex != nil && *f.CategoryIndex >= 0 && *f.CategoryIndex < len(names) {
		return *f.CategoryIndex
	}
	return slices.Index(names, *f.Category)
}

// SnapshotEntries replaces the stored snapshot with the current local
// identities.
func (s *SnapshotStore) SnapshotEntries(ctx context.Context) error {
	current, err := s.CurrentLocalIdentities(ctx)
	if err != nil {
		return err
	}
	if err := s.snapshots.ReplaceSnapshot(ctx, current); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// ClearSnapshots erases the stored snapshot.
func (s *SnapshotStore) ClearSnapshots(ctx context.Context) error {
	if err := s.snapshots.ClearSnapshot(ctx); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	return nil
}
