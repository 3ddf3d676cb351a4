package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/store"
	"github.com/MKhiriev/favsync/models"
)

// CategoryReconciler mirrors the remote category names onto the local
// categories by position.
type CategoryReconciler struct {
	library store.LibraryRepository
}

func NewCategoryReconciler(library store.LibraryRepository) *CategoryReconciler {
	return &CategoryReconciler{library: library}
}

// Reconcile renames local category i to remote name i, creates missing
// categories and renumbers Order to match positions. Categories beyond the
// remote list keep their names. Nothing is written when nothing changed.
// The returned slice is ordered by position.
func (r *CategoryReconciler) Reconcile(ctx context.Context, remoteNames []string) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	local, err := r.library.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	names := remoteNames
	if len(names) > models.FavoriteCategoryCount {
		names = names[:models.FavoriteCategoryCount]
	}

	var changed []models.Category
	for i, name := range names {
		if i >= len(local) {
			category := models.Category{Name: name, Order: i}
			id, err := r.library.InsertCategory(ctx, category)
			if err != nil {
				return nil, fmt.Errorf("creating category %q: %w", name, err)
			}
			category.ID = id
			local = append(local, category)
			continue
		}
		if local[i].Name != name || local[i].Order != i {
			local[i].Name = name
			local[i].Order = i
			changed = append(changed, local[i])
		}
	}
	for i := len(names); i < len(local); i++ {
		if local[i].Order != i {
			local[i].Order = i
			changed = append(changed, local[i])
		}
	}

	if len(changed) > 0 {
		if err := r.library.UpdateCategories(ctx, changed); err != nil {
			return nil, fmt.Errorf("updating categories: %w", err)
		}
	}

	log.Debug().Str("func", "CategoryReconciler.Reconcile").
		Int("remote", len(names)).
		Int("updated", len(changed)).
		Msg("categories reconciled")

	return local, nil
}
