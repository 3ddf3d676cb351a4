package adapter

import "errors"

// Transport errors mapped from remote responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrBanned is returned when the site answers with its temporary IP ban
	// notice instead of the requested page.
	ErrBanned = errors.New("ip address temporarily banned by remote site")

	// ErrNotLoggedIn is returned when a page that needs a session is served
	// as the login prompt.
	ErrNotLoggedIn = errors.New("remote session is not logged in")

	// ErrUnexpectedResponse is returned when a response cannot be parsed.
	ErrUnexpectedResponse = errors.New("unexpected response from remote site")
)
