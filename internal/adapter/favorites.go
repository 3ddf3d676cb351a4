package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

const favoritesPath = "/favorites.php"

// FetchFavorites implements [FavoritesLister]. It follows the "next" link
// until the last page and never visits the same page twice.
func (h *httpFavoritesAdapter) FetchFavorites(ctx context.Context) (models.RemoteFavorites, error) {
	log := logger.FromContext(ctx)

	var result models.RemoteFavorites
	visited := make(map[string]struct{})

	for next := favoritesPath; next != ""; {
		if _, ok := visited[next]; ok {
			break
		}
		visited[next] = struct{}{}

		resp, err := h.client.R().
			SetContext(ctx).
			Get(next)
		if err != nil {
			return models.RemoteFavorites{}, fmt.Errorf("favorites page request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return models.RemoteFavorites{}, fmt.Errorf("favorites page %s: %w", next, err)
		}

		page, err := parseFavoritesPage(bytes.NewReader(resp.Body()))
		if err != nil {
			return models.RemoteFavorites{}, err
		}

		if result.CategoryNames == nil {
			result.CategoryNames = page.categoryNames
		}
		result.Favorites = append(result.Favorites, page.favorites...)

		log.Debug().
			Str("func", "httpFavoritesAdapter.FetchFavorites").
			Int("page_favorites", len(page.favorites)).
			Msg("fetched favorites page")

		next = page.nextURL
	}

	if len(result.CategoryNames) > models.FavoriteCategoryCount {
		result.CategoryNames = result.CategoryNames[:models.FavoriteCategoryCount]
	}

	return result, nil
}

// AddFavorite implements [FavoritesMutator] through the gallery favorites
// popup form.
func (h *httpFavoritesAdapter) AddFavorite(ctx context.Context, remoteID, remoteSecret string, categoryIndex int, note string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"gid": remoteID,
			"t":   remoteSecret,
			"act": "addfav",
		}).
		SetFormData(map[string]string{
			"favcat":  strconv.Itoa(categoryIndex),
			"favnote": note,
			"apply":   "Add to Favorites",
			"update":  "1",
		}).
		Post("/gallerypopups.php")
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFavorites implements [FavoritesMutator] with the bulk action of the
// favorites page.
func (h *httpFavoritesAdapter) RemoveFavorites(ctx context.Context, remoteIDs []string) error {
	if len(remoteIDs) == 0 {
		return nil
	}

	form := url.Values{
		"ddact": {"delete"},
		"apply": {"Apply"},
	}
	for _, id := range remoteIDs {
		form.Add("modifygids[]", id)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post(favoritesPath)
	if err != nil {
		return fmt.Errorf("remove favorites request: %w", err)
	}

	return mapHTTPError(resp)
}

type gdataRequest struct {
	Method    string  `json:"method"`
	GIDList   [][]any `json:"gidlist"`
	Namespace int     `json:"namespace"`
}

type gdataResponse struct {
	GMetadata []struct {
		GID       int64  `json:"gid"`
		Token     string `json:"token"`
		Error     string `json:"error"`
		Title     string `json:"title"`
		Category  string `json:"category"`
		Thumb     string `json:"thumb"`
		Uploader  string `json:"uploader"`
		Posted    string `json:"posted"`
		FileCount string `json:"filecount"`
	} `json:"gmetadata"`
}

// GalleryMetadata implements [MetadataFetcher] using the JSON "gdata" API.
func (h *httpFavoritesAdapter) GalleryMetadata(ctx context.Context, remoteID, remoteSecret string) (models.GalleryMetadata, error) {
	gid, err := strconv.ParseInt(remoteID, 10, 64)
	if err != nil {
		return models.GalleryMetadata{}, fmt.Errorf("%w: gallery id %q", ErrBadRequest, remoteID)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(gdataRequest{
			Method:    "gdata",
			GIDList:   [][]any{{gid, remoteSecret}},
			Namespace: 1,
		}).
		Post(h.apiURL)
	if err != nil {
		return models.GalleryMetadata{}, fmt.Errorf("gallery metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.GalleryMetadata{}, err
	}

	var body gdataResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.GalleryMetadata{}, fmt.Errorf("%w: decode gallery metadata: %w", ErrUnexpectedResponse, err)
	}
	if len(body.GMetadata) == 0 {
		return models.GalleryMetadata{}, fmt.Errorf("%w: empty gallery metadata", ErrUnexpectedResponse)
	}

	m := body.GMetadata[0]
	if m.Error != "" {
		return models.GalleryMetadata{}, fmt.Errorf("%w: %s", ErrNotFound, m.Error)
	}

	meta := models.GalleryMetadata{
		RemoteID:     remoteID,
		RemoteSecret: remoteSecret,
		Title:        m.Title,
		Uploader:     m.Uploader,
		Genre:        m.Category,
		ThumbnailURL: m.Thumb,
	}
	if n, err := strconv.Atoi(m.FileCount); err == nil {
		meta.PageCount = n
	}
	if sec, err := strconv.ParseInt(m.Posted, 10, 64); err == nil {
		meta.Posted = time.Unix(sec, 0).UTC()
	}

	return meta, nil
}
