package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork marks a rejected fetch or a non-success response status.
	ErrNetwork = errors.New("network failure")
	// ErrParse marks a response body that is not valid JSON for the expected shape.
	ErrParse = errors.New("parse failure")
)

// FetchError describes a failed load of one site document.
type FetchError struct {
	Path   string
	Kind   error // ErrNetwork or ErrParse
	Status int   // HTTP status, 0 when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Status != 0 && e.Err == nil:
		return fmt.Sprintf("%s: %v: status %d", e.Path, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause to errors.Is/As.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// retryable reports whether another attempt could succeed. Parse errors and
// client errors other than timeouts and throttling are final.
func retryable(err error) bool {
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != ErrNetwork {
		return false
	}
	if fe.Status >= 400 && fe.Status < 500 {
		return fe.Status == 408 || fe.Status == 429
	}
	return true
}
