package legalmind

import (
	"errors"
	"fmt"
)

// genericFailureMessage is shown when a failure carries no usable detail.
const genericFailureMessage = "The analysis service could not be reached. Please try again."

// ValidationError reports a request rejected locally; no network call was
// made.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// RemoteError is a non-2xx response from the analysis service, carrying the
// server-supplied message when one was present.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("analysis service returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("analysis service returned %d", e.StatusCode)
}

// TransportError is a network fault or a malformed service response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// errMalformedResponse marks a 2xx response missing its expected fields.
// Treated as a transport fault rather than silently rendering empty output.
var errMalformedResponse = errors.New("unexpected response from analysis service")

// UserMessage converts an error from this package into text fit for display:
// validation reasons and server-supplied messages verbatim, everything else
// collapsed to a generic fallback.
func UserMessage(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Reason
	}
	var rErr *RemoteError
	if errors.As(err, &rErr) && rErr.Message != "" {
		return rErr.Message
	}
	return genericFailureMessage
}
