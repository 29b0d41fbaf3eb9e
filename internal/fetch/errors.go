package fetch

import (
	"errors"
	"fmt"
)

// Sentinel errors for export service failures.
var (
	ErrNoExportURL     = errors.New("export service URL not configured")
	ErrAuthError       = errors.New("missing or invalid CITEBRIDGE_API_KEY")
	ErrRateLimited     = errors.New("export service rate limit exceeded")
	ErrNotFound        = errors.New("relation not found in export service")
	ErrInvalidResponse = errors.New("invalid export service response")
)

// APIError represents an HTTP-level error from the export service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("export service error (status %d): %s", e.StatusCode, e.Message)
}
