package service

import (
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/MKhiriev/favsync/internal/adapter"
	"github.com/MKhiriev/favsync/internal/clock"
	"github.com/MKhiriev/favsync/models"
)

var galleryURLRe = regexp.MustCompile(`^/g/(\d+)/([0-9a-f]+)/?$`)

type remoteGalleryImporter struct {
	metadata adapter.MetadataFetcher
	clock    clock.Clock
}

// NewGalleryImporter creates a GalleryImporter that resolves galleries through
// the remote metadata API. Imported galleries are stamped with clk's time; a
// nil clk uses the wall clock.
func NewGalleryImporter(metadata adapter.MetadataFetcher, clk clock.Clock) GalleryImporter {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &remoteGalleryImporter{metadata: metadata, clock: clk}
}

func (i *remoteGalleryImporter) ImportByURL(ctx context.Context, rawURL string) (models.Gallery, error) {
	source, remoteID, remoteSecret, err := parseGalleryURL(rawURL)
	if err != nil {
		return models.Gallery{}, err
	}

	meta, err := i.metadata.GalleryMetadata(ctx, remoteID, remoteSecret)
	if err != nil {
		return models.Gallery{}, &ImportError{URL: rawURL, Reason: err.Error(), Err: err}
	}

	title := meta.Title
	if title == "" {
		return models.Gallery{}, &ImportError{URL: rawURL, Reason: "gallery has no title"}
	}

	return models.Gallery{
		Source:       source,
		URL:          models.GalleryPath(remoteID, remoteSecret),
		Title:        title,
		Uploader:     meta.Uploader,
		Genre:        meta.Genre,
		ThumbnailURL: meta.ThumbnailURL,
		PageCount:    meta.PageCount,
		DateAdded:    i.clock.Now().UTC(),
	}, nil
}

// parseGalleryURL accepts absolute gallery URLs on a remote-backed host.
func parseGalleryURL(rawURL string) (models.SourceKind, string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return models.SourceOther, "", "", fmt.Errorf("%w: %s", ErrUnrecognizedGalleryURL, rawURL)
	}

	var source models.SourceKind
	for _, s := range models.RemoteBackedSources() {
		if u.Host == s.Host() {
			source = s
		}
	}
	m := galleryURLRe.FindStringSubmatch(u.Path)
	if source == models.SourceOther || m == nil {
		return models.SourceOther, "", "", fmt.Errorf("%w: %s", ErrUnrecognizedGalleryURL, rawURL)
	}
	return source, m[1], m[2], nil
}
