package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/favsync/internal/service"
	"github.com/MKhiriev/favsync/internal/store"
)

// StatusReport summarizes the local sync state.
type StatusReport struct {
	SnapshotEntries int
	LocalFavorites  int
	Categories      []string
	PendingAdded    int
	PendingRemoved  int
}

func (a *App) Status(ctx context.Context) (StatusReport, error) {
	var report StatusReport
	err := a.storages.RunInTransaction(ctx, func(ctx context.Context, repos *store.Repositories) error {
		snapshot, err := repos.Snapshots.GetSnapshot(ctx)
		if err != nil {
			return err
		}
		snapshots := service.NewSnapshotStore(repos.Library, repos.Snapshots)
		current, err := snapshots.CurrentLocalIdentities(ctx)
		if err != nil {
			return err
		}
		categories, err := repos.Library.GetCategories(ctx)
		if err != nil {
			return err
		}

		changes := service.DiffFavorites(current, snapshot)
		report = StatusReport{
			SnapshotEntries: len(snapshot),
			LocalFavorites:  len(current),
			PendingAdded:    len(changes.Added),
			PendingRemoved:  len(changes.Removed),
		}
		for _, c := range categories {
			report.Categories = append(report.Categories, c.Name)
		}
		return nil
	})
	if err != nil {
		return StatusReport{}, fmt.Errorf("read sync status: %w", err)
	}
	return report, nil
}

// Print writes the report in human readable form.
func (r StatusReport) Print(w io.Writer) {
	fmt.Fprintf(w, "Snapshot entries: %d\n", r.SnapshotEntries)
	fmt.Fprintf(w, "Local favorites: %d\n", r.LocalFavorites)
	fmt.Fprintf(w, "Pending local changes: +%d -%d\n", r.PendingAdded, r.PendingRemoved)
	if len(r.Categories) > 0 {
		fmt.Fprintf(w, "\nCategories:\n")
		for i, name := range r.Categories {
			fmt.Fprintf(w, "  %d. %s\n", i, name)
		}
	}
}
