package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrCatalogUnreachable indicates the catalog API could not be reached
	ErrCatalogUnreachable = errors.New("movie catalog is unreachable")

	// ErrAuthFailed indicates the API token was rejected
	ErrAuthFailed = errors.New("catalog API token is invalid")

	// ErrMovieNotFound indicates the requested movie id does not exist upstream
	ErrMovieNotFound = errors.New("movie not found")
)
