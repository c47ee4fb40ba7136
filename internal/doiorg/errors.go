package doiorg

import "errors"

// Common errors returned by the DOI resolver client.
var (
	// ErrNotFound indicates the DOI does not resolve.
	ErrNotFound = errors.New("DOI not found")

	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("doi.org rate limit exceeded")

	// ErrAPIError indicates a general resolver error.
	ErrAPIError = errors.New("doi.org error")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with doi.org")

	// ErrInvalidResponse indicates an unexpected resolver response.
	ErrInvalidResponse = errors.New("invalid response from doi.org")
)
