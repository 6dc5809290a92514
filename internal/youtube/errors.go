package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrNoChannelIDs is returned when a stats fetch is attempted with an
	// empty ID set.
	ErrNoChannelIDs = errors.New("youtube: at least one channel id is required")

	// ErrPageLimit is returned when a playlist walk hits the configured page
	// cap while the API still reports more pages.
	ErrPageLimit = errors.New("youtube: playlist page limit reached")
)

// APIError is the error envelope the Data API returns on the direct HTTP
// path. Code is the error code from the response body, which usually matches
// the HTTP status.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("youtube: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("youtube: API returned status code %d", e.StatusCode)
}
