package service

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/MKhiriev/favsync/models"
)

// DiffFavorites returns the entries of current missing from snapshot as Added
// and the entries of snapshot missing from current as Removed. Entries are
// compared by key, titles are ignored. Input order is kept and duplicate keys
// are reported once.
func DiffFavorites(current, snapshot []models.FavoriteIdentity) models.ChangeSet {
	currentKeys := keySet(current)
	snapshotKeys := keySet(snapshot)

	return models.ChangeSet{
		Added:   subtract(current, snapshotKeys),
		Removed: subtract(snapshot, currentKeys),
	}
}

func keySet(entries []models.FavoriteIdentity) mapset.Set[models.FavoriteKey] {
	set := mapset.NewThreadUnsafeSetWithSize[models.FavoriteKey](len(entries))
	for _, e := range entries {
		set.Add(e.Key())
	}
	return set
}

func subtract(entries []models.FavoriteIdentity, exclude mapset.Set[models.FavoriteKey]) []models.FavoriteIdentity {
	var out []models.FavoriteIdentity
	seen := mapset.NewThreadUnsafeSet[models.FavoriteKey]()
	for _, e := range entries {
		key := e.Key()
		if exclude.Contains(key) || !seen.Add(key) {
			continue
		}
		out = append(out, e)
	}
	return out
}
