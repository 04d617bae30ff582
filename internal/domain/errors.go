package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedHost is returned when no classification rule matches a link.
// This is a normal outcome for links to platforms the service does not know,
// not an upstream failure.
var ErrUnsupportedHost = errors.New("unsupported host")

// MissingFieldError reports that an expected tag, attribute or JSON key was
// absent from the upstream document and the adapter declares no fallback for
// it. Adapters fail immediately on these rather than substituting empty
// strings.
type MissingFieldError struct {
	Host  Host
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Host, e.Field)
}

// ExtractionError reports that an adapter could not turn an upstream document
// or API response into a record. Stage names the step that failed.
type ExtractionError struct {
	Host  Host
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: extraction failed at %s: %v", e.Host, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: extraction failed at %s", e.Host, e.Stage)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a network-level failure reaching the platform,
// including exceeded per-call timeouts.
type UpstreamError struct {
	Host Host
	URL  string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream unavailable (%s): %v", e.Host, e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
