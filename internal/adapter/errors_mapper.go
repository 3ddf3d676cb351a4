package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	banNotice   = "your ip address has been temporarily banned"
	loginNotice = "this page requires you to log on"
)

// mapHTTPError turns a non-successful response into a sentinel-wrapped error.
// The site reports bans and missing sessions with status 200, so the body is
// inspected even for successful responses.
func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	bodyLower := strings.ToLower(body)

	if strings.Contains(bodyLower, banNotice) {
		return fmt.Errorf("%w: %s", ErrBanned, firstLine(body))
	}

	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		if strings.Contains(bodyLower, loginNotice) {
			return ErrNotLoggedIn
		}
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
