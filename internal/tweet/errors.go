package tweet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL matches errors for input that is not a post URL.
	ErrInvalidURL = errors.New("invalid tweet URL")
	// ErrFetch matches errors from the remote fetch.
	ErrFetch = errors.New("fetch failed")
	// ErrMalformedRecord matches errors for records that are missing or have unusable fields.
	ErrMalformedRecord = errors.New("malformed record")
)

// InvalidURLError carries the input rejected by IDFromURL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid tweet URL: %s", e.URL)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

// FetchError reports a failed fetch for a post ID. Status is the HTTP status
// when the server answered, zero otherwise.
type FetchError struct {
	ID     string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("fetch tweet %s: status %d: %v", e.ID, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("fetch tweet %s: status %d", e.ID, e.Status)
	default:
		return fmt.Sprintf("fetch tweet %s: %v", e.ID, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// MalformedRecordError names the record field that could not be used.
// Field is empty when the payload itself did not decode.
type MalformedRecordError struct {
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed record: %v", e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("malformed record: missing field %q", e.Field)
	}
	return fmt.Sprintf("malformed record: field %q: %v", e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
