package client

import "fmt"

// TransportError means a request never produced an HTTP response: connection refused,
// DNS failure, timeout, and the like. It is the only kind of request failure the
// session reports as an error; any response the service actually sent, whatever its
// status code, is returned as an Envelope instead.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure on %s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError means a response body that was promised to be JSON of a particular shape
// could not be decoded into it.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("malformed response body %q: %s", body, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
