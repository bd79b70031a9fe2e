package internal

import "fmt"

// StorageError represents errors accessing the local state database
type StorageError struct {
	Path string
	Op   string // "open", "init", "read", "write", "delete"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// APIError represents a non-success response from the storefront API
type APIError struct {
	Status   int
	Endpoint string
	Message  string // server-provided message, if any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error [%d] %s: %s", e.Status, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("api error [%d] %s", e.Status, e.Endpoint)
}

// SessionExpiredError signals that an authenticated call came back 401
// and the stored credential has already been cleared.
type SessionExpiredError struct {
	Endpoint string
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("session expired during %s: log in again", e.Endpoint)
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
