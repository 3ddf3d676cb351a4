package adapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/favsync/internal/config"
	"github.com/MKhiriev/favsync/internal/logger"
	"github.com/MKhiriev/favsync/internal/utils"
)

// Session cookie names used by the remote site.
const (
	cookieMemberID = "ipb_member_id"
	cookiePassHash = "ipb_pass_hash"
	cookieIgneous  = "igneous"
)

type httpFavoritesAdapter struct {
	client *utils.HTTPClient
	apiURL string

	loggedIn bool
	logger   *logger.Logger
}

// NewHTTPFavoritesAdapter constructs the resty-backed [FavoritesAdapter].
// The session cookies from cfg are attached to every request.
func NewHTTPFavoritesAdapter(cfg config.Adapter, log *logger.Logger) (FavoritesAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	apiURL := strings.TrimSpace(cfg.APIURL)
	if apiURL == "" {
		apiURL = baseURL + "/api.php"
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout, cfg.UserAgent)
	client.SetBaseURL(baseURL)

	var cookies []*http.Cookie
	for name, value := range map[string]string{
		cookieMemberID: cfg.MemberID,
		cookiePassHash: cfg.PassHash,
		cookieIgneous:  cfg.Igneous,
	} {
		if value != "" {
			cookies = append(cookies, &http.Cookie{Name: name, Value: value})
		}
	}
	client.SetCookies(cookies)

	return &httpFavoritesAdapter{
		client:   client,
		apiURL:   apiURL,
		loggedIn: cfg.MemberID != "" && cfg.PassHash != "",
		logger:   log,
	}, nil
}

// IsLoggedIn implements [SessionState].
func (h *httpFavoritesAdapter) IsLoggedIn() bool {
	return h.loggedIn
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
