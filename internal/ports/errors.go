package ports

import "fmt"

// TransportError reports that the routing backend could not be reached:
// dial failure, timeout, or a connection dropped mid-response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("routing backend unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExternalServiceError reports that the backend was reached but declined
// the request. Code is the backend-reported status string ("NoRoute",
// "InvalidQuery", ...); HTTPStatus is the transport status line, 200 when
// the refusal arrived inside a successful response body.
type ExternalServiceError struct {
	Code       string
	HTTPStatus int
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("routing backend declined request: code=%q http_status=%d", e.Code, e.HTTPStatus)
}

// ResponseParseError reports that the backend accepted the request but the
// response body could not be decoded or was missing expected fields.
type ResponseParseError struct {
	Reason string
	Err    error
}

func (e *ResponseParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unusable routing response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unusable routing response: %s", e.Reason)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }
