package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/models"
)

// localApplier applies a remote ChangeSet to the local library.
type localApplier struct {
	library  store.LibraryRepository
	importer GalleryImporter
	throttle *Throttler
	status   *StatusPublisher
	source   models.SourceKind
	strict   bool
}

// Apply processes removals before additions. Per-gallery import failures are
// returned as messages; in strict mode the first one fails the run.
func (a *localApplier) Apply(ctx context.Context, changes models.ChangeSet, categories []models.Category) ([]string, error) {
	if len(changes.Removed) > 0 {
		a.status.publish(models.StatusProcessing(fmt.Sprintf("Removing %d galleries from the local library", len(changes.Removed)), false))
		if err := a.remove(ctx, changes.Removed); err != nil {
			return nil, err
		}
	}

	if len(changes.Added) == 0 {
		return nil, nil
	}
	return a.add(ctx, changes.Added, categories)
}

func (a *localApplier) remove(ctx context.Context, removed []models.FavoriteIdentity) error {
	log := logger.FromContext(ctx)

	for _, entry := range removed {
		galleries, err := a.library.FindGalleriesByURL(ctx, entry.GalleryPath(), models.RemoteBackedSources())
		if errors.Is(err, store.ErrGalleryNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("looking up %s: %w", entry, err)
		}

		for _, g := range galleries {
			if !g.Favorite {
				continue
			}
			if err := a.library.SetFavorite(ctx, g.ID, false); err != nil {
				return fmt.Errorf("unfavoriting %s: %w", entry, err)
			}
			if err := a.library.DeleteGalleryCategories(ctx, g.ID); err != nil {
				return fmt.Errorf("unlinking %s: %w", entry, err)
			}
		}
		log.Debug().Str("func", "localApplier.remove").Stringer("favorite", entry).Msg("removed local favorite")
	}
	return nil
}

func (a *localApplier) add(ctx context.Context, added []models.FavoriteIdentity, categories []models.Category) ([]string, error) {
	log := logger.FromContext(ctx)

	var (
		failures []string
		links    []models.GalleryCategory
	)

	a.throttle.Reset()
	for i, entry := range added {
		a.status.publish(models.StatusProcessing(
			fmt.Sprintf("Adding gallery %d of %d to the local library", i+1, len(added)),
			a.throttle.NeedsWarning(),
		))

		if err := a.throttle.Throttle(ctx); err != nil {
			return nil, err
		}

		url := a.source.GalleryURL(entry.RemoteID, entry.RemoteSecret)
		gallery, err := a.importer.ImportByURL(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			msg := importFailureMessage(entry, url, err)
			log.Warn().Str("func", "localApplier.add").Err(err).Msg(msg)
			if a.strict {
				a.status.publish(models.StatusError(msg))
				return nil, errAlreadyReported
			}
			failures = append(failures, msg)
			continue
		}

		gallery.Favorite = true
		id, err := a.library.SaveGallery(ctx, gallery)
		if err != nil {
			return nil, fmt.Errorf("saving %s: %w", entry, err)
		}
		if entry.CategoryIndex < len(categories) {
			links = append(links, models.GalleryCategory{GalleryID: id, CategoryID: categories[entry.CategoryIndex].ID})
		}
	}

	if len(links) > 0 {
		if err := a.library.SetGalleryCategories(ctx, links); err != nil {
			return nil, fmt.Errorf("linking categories: %w", err)
		}
	}
	return failures, nil
}

func importFailureMessage(entry models.FavoriteIdentity, url string, err error) string {
	var importErr *ImportError
	if errors.As(err, &importErr) {
		return fmt.Sprintf("Failed to add gallery to local database: '%s' %s", entry.Title, importErr.Reason)
	}
	if errors.Is(err, ErrUnrecognizedGalleryURL) {
		return fmt.Sprintf("Failed to add gallery to local database: '%s' (%s) is not a valid gallery!", entry.Title, url)
	}
	return fmt.Sprintf("Failed to add gallery to local database: '%s' %s", entry.Title, err)
}
