package client

import (
	"encoding/json"
	"io"
	"net/http"
)

// Envelope is the normalized capture of one HTTP response. The body is read in full
// and the connection released before the Envelope is handed to the caller, so every
// field stays valid for as long as the caller keeps it. OK is computed once at capture
// time and never recomputed.
type Envelope struct {
	Status int
	OK     bool
	Body   string
}

func newEnvelope(resp *http.Response) (*Envelope, error) {
	var body []byte
	if resp.Body != nil {
		data, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, &TransportError{Method: resp.Request.Method, URL: resp.Request.URL.String(), Err: err}
		}
		body = data
	}
	return &Envelope{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Body:   string(body),
	}, nil
}

// Decode unmarshals a captured response body into the requested type. It is a pure
// function with no knowledge of where the body came from.
func Decode[T any](body string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		var zero T
		return zero, &ParseError{Body: body, Err: err}
	}
	return out, nil
}
