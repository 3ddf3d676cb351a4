// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/models"
)

// newTestAdapter creates an adapter pointed at the fake site.
func newTestAdapter(t *testing.T, serverURL string) *httpFavoritesAdapter {
	t.Helper()

	a, err := NewHTTPFavoritesAdapter(config.Adapter{
		BaseURL:        serverURL,
		APIURL:         serverURL + "/api.php",
		RequestTimeout: 5 * time.Second,
		UserAgent:      "favsync-test",
		MemberID:       "42",
		PassHash:       "secret",
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpFavoritesAdapter)
}

func favoritesHeader(names ...string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="nosel"><div class="fp fps"><div class="i"></div><div>Show All Favorites</div></div>`)
	for i, n := range names {
		fmt.Fprintf(&sb, `<div class="fp" onclick="document.location='?favcat=%d'"><div>%d</div><div class="i" title="%s"></div><div>%s</div></div>`, i, i*3, n, n)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// galleryRow renders one listing row; an empty category leaves it
// uncategorised.
func galleryRow(host, gid, token, title, category string, slot int) string {
	posted := fmt.Sprintf(`<div id="posted_%s">2024-01-01 00:00</div>`, gid)
	if category != "" {
		posted = fmt.Sprintf(`<div id="posted_%s" title="%s" style="border-color:%s">2024-01-01 00:00</div>`,
			gid, category, favoriteSlotColors[slot])
	}
	return fmt.Sprintf(`<tr><td class="gl2c">%s</td><td class="gl3c glname"><a href="%s/g/%s/%s/"><div class="glink">%s</div></a></td></tr>`,
		posted, host, gid, token, title)
}

// ── FetchFavorites ──────────────────────────────────────────────────────────

func TestFetchFavorites_FollowsPagination(t *testing.T) {
	r := chi.NewRouter()
	var srvURL string

	r.Get("/favorites.php", func(w http.ResponseWriter, req *http.Request) {
		if c, err := req.Cookie(cookieMemberID); assert.NoError(t, err) {
			assert.Equal(t, "42", c.Value)
		}
		assert.Equal(t, "favsync-test", req.UserAgent())

		if req.URL.Query().Get("next") == "" {
			fmt.Fprintf(w, `<html><body>%s<table class="itg">%s%s</table><a id="dnext" href="%s/favorites.php?next=2">Next</a></body></html>`,
				favoritesHeader("Reading", "Plan"),
				galleryRow(srvURL, "1", "aaa111", "First", "Reading", 0),
				galleryRow(srvURL, "2", "bbb222", "Second", "Plan", 1),
				srvURL)
			return
		}
		fmt.Fprintf(w, `<html><body>%s<table class="itg">%s</table></body></html>`,
			favoritesHeader("Reading", "Plan"),
			galleryRow(srvURL, "3", "ccc333", "Third &amp; more", "", 0))
	})

	srv := httptest.NewServer(r)
	defer srv.Close()
	srvURL = srv.URL

	got, err := newTestAdapter(t, srv.URL).FetchFavorites(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Reading", "Plan"}, got.CategoryNames)
	require.Len(t, got.Favorites, 3)
	assert.Equal(t, "1", got.Favorites[0].RemoteID)
	assert.Equal(t, "aaa111", got.Favorites[0].RemoteSecret)
	assert.Equal(t, "First", got.Favorites[0].Title)
	require.NotNil(t, got.Favorites[1].Category)
	assert.Equal(t, "Plan", *got.Favorites[1].Category)
	require.NotNil(t, got.Favorites[1].CategoryIndex)
	assert.Equal(t, 1, *got.Favorites[1].CategoryIndex)
	assert.Equal(t, "Third & more", got.Favorites[2].Title)
	assert.Nil(t, got.Favorites[2].Category)
	assert.Nil(t, got.Favorites[2].CategoryIndex)
}

func TestParseFavoritesPage_DuplicateCategoryNames(t *testing.T) {
	body := fmt.Sprintf(`<html><body>%s<table class="itg">%s%s</table></body></html>`,
		favoritesHeader("Same", "Same"),
		galleryRow("", "1", "aaa111", "First", "Same", 0),
		galleryRow("", "2", "bbb222", "Second", "Same", 1))

	page, err := parseFavoritesPage(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, page.favorites, 2)
	require.NotNil(t, page.favorites[0].CategoryIndex)
	require.NotNil(t, page.favorites[1].CategoryIndex)
	assert.Equal(t, 0, *page.favorites[0].CategoryIndex)
	assert.Equal(t, 1, *page.favorites[1].CategoryIndex)
}

func TestFavoriteSlot(t *testing.T) {
	tests := []struct {
		style string
		want  *int
	}{
		{style: "border-color:#000", want: ptr(0)},
		{style: "border-color: #E8E; color:red", want: ptr(9)},
		{style: "border-color:#123", want: nil},
		{style: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.want, favoriteSlot(tt.style))
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestFetchFavorites_CapsCategories(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("Favorites %d", i)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>%s</body></html>`, favoritesHeader(names...))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, names[:models.FavoriteCategoryCount], got.CategoryNames)
	assert.Empty(t, got.Favorites)
}

func TestFetchFavorites_StopsOnPageLoop(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `<html><body><a id="dnext" href="/favorites.php">Next</a></body></html>`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchFavorites(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchFavorites_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "banned",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "Your IP address has been temporarily banned for excessive pageloads.\nThe ban expires in 1 hour")
			},
			wantErr: ErrBanned,
		},
		{
			name: "login prompt",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "<html><body>This page requires you to log on.</body></html>")
			},
			wantErr: ErrNotLoggedIn,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrInternalServerError,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: ErrTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).FetchFavorites(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── AddFavorite / RemoveFavorites ───────────────────────────────────────────

func TestAddFavorite_PostsPopupForm(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/gallerypopups.php", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		assert.Equal(t, "7", q.Get("gid"))
		assert.Equal(t, "tok", q.Get("t"))
		assert.Equal(t, "addfav", q.Get("act"))

		assert.NoError(t, req.ParseForm())
		assert.Equal(t, "3", req.PostForm.Get("favcat"))
		assert.Equal(t, "", req.PostForm.Get("favnote"))
		assert.Equal(t, "1", req.PostForm.Get("update"))
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddFavorite(context.Background(), "7", "tok", 3, "")
	assert.NoError(t, err)
}

func TestAddFavorite_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddFavorite(context.Background(), "7", "tok", 0, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveFavorites_SingleBulkRequest(t *testing.T) {
	calls := 0
	r := chi.NewRouter()
	r.Post("/favorites.php", func(w http.ResponseWriter, req *http.Request) {
		calls++
		assert.NoError(t, req.ParseForm())
		assert.Equal(t, "delete", req.PostForm.Get("ddact"))
		assert.Equal(t, []string{"1", "2", "3"}, req.PostForm["modifygids[]"])
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.RemoveFavorites(context.Background(), []string{"1", "2", "3"}))
	require.NoError(t, a.RemoveFavorites(context.Background(), nil))
	assert.Equal(t, 1, calls)
}

// ── GalleryMetadata ─────────────────────────────────────────────────────────

func TestGalleryMetadata_Success(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api.php", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"method":"gdata","gidlist":[[123,"abc"]],"namespace":1}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"gmetadata": []map[string]any{{
				"gid": 123, "token": "abc", "title": "Some Title", "category": "Manga",
				"thumb": "https://thumb/x.jpg", "uploader": "someone", "posted": "1700000000", "filecount": "24",
			}},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).GalleryMetadata(context.Background(), "123", "abc")
	require.NoError(t, err)
	assert.Equal(t, models.GalleryMetadata{
		RemoteID:     "123",
		RemoteSecret: "abc",
		Title:        "Some Title",
		Uploader:     "someone",
		Genre:        "Manga",
		ThumbnailURL: "https://thumb/x.jpg",
		PageCount:    24,
		Posted:       time.Unix(1700000000, 0).UTC(),
	}, got)
}

func TestGalleryMetadata_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"gmetadata":[{"gid":1,"error":"Key missing, or incorrect key provided."}]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.GalleryMetadata(context.Background(), "1", "bad")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = a.GalleryMetadata(context.Background(), "not-a-number", "bad")
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPFavoritesAdapter(t *testing.T) {
	a, err := NewHTTPFavoritesAdapter(config.Adapter{BaseURL: "e-hentai.org/"}, logger.Nop())
	require.NoError(t, err)
	h := a.(*httpFavoritesAdapter)
	assert.False(t, h.IsLoggedIn())
	assert.Equal(t, "https://e-hentai.org/api.php", h.apiURL)

	_, err = NewHTTPFavoritesAdapter(config.Adapter{BaseURL: "  "}, logger.Nop())
	assert.Error(t, err)

	assert.True(t, newTestAdapter(t, "http://127.0.0.1:1").IsLoggedIn())
}
