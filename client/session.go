// Package client implements the HTTP side of the booking conformance harness: a
// Session owns one HTTP client pointed at the service under test, attaches
// credentials where a request calls for them, and captures every response as an
// Envelope.
//
// The session deliberately refuses to treat the service's failure responses as
// errors. The harness exists to observe what the service actually does, so a 403 or
// a 500 is data; only a request that never reached the service at all (see
// TransportError) is an error.
package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/bookerqa/booking-contract-tests/framework"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

const (
	authPath    = "/auth"
	bookingPath = "/booking"
)

// SessionOpts configures a Session. BaseURL is required; everything else has a
// usable zero value.
type SessionOpts struct {
	BaseURL string

	// Credentials is the account used by Authenticate and PutWithBasicAuth when the
	// caller does not supply an override.
	Credentials servicedef.Credentials

	// Timeout bounds each request including reading the response body. Zero means no
	// timeout; the orchestration layer normally sets one.
	Timeout time.Duration

	// DefaultHeaders are sent on every request. Accept and Content-Type headers for
	// JSON are always added underneath these.
	DefaultHeaders http.Header

	// Logger receives a reproduction command for each request. Nil disables that.
	Logger framework.Logger
}

// Session is the harness's single point of HTTP egress for one logical test session.
// A session caches at most one auth token, obtained by Authenticate. Sessions are not
// shared between concurrently executing tests; within one test the caller may fan out
// requests, which the underlying http.Client handles safely, each call getting its
// own Envelope.
type Session struct {
	baseURL        string
	credentials    servicedef.Credentials
	defaultHeaders http.Header
	httpClient     *http.Client
	logger         framework.Logger

	tokenLock sync.Mutex
	token     string

	closeOnce sync.Once
}

func NewSession(opts SessionOpts) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	for name, values := range opts.DefaultHeaders {
		for _, v := range values {
			headers.Set(name, v)
		}
	}
	return &Session{
		baseURL:        opts.BaseURL,
		credentials:    opts.Credentials,
		defaultHeaders: headers,
		httpClient:     &http.Client{Timeout: opts.Timeout},
		logger:         logger,
	}
}

// Token returns the auth token cached by the most recent successful Authenticate, or
// "" if there is none.
func (s *Session) Token() string {
	s.tokenLock.Lock()
	defer s.tokenLock.Unlock()
	return s.token
}

// Get issues a GET request. Extra headers, if any, are layered over the session's
// default headers.
func (s *Session) Get(path string, extraHeaders ...http.Header) (*Envelope, error) {
	headers := make(http.Header)
	for _, hs := range extraHeaders {
		for name, values := range hs {
			for _, v := range values {
				headers.Set(name, v)
			}
		}
	}
	return s.do(http.MethodGet, path, nil, headers)
}

// Post issues a POST request with the body serialized as JSON.
func (s *Session) Post(path string, body interface{}) (*Envelope, error) {
	return s.do(http.MethodPost, path, body, nil)
}

// Put issues a PUT request. A non-empty token is attached as the service's
// cookie-style credential header; an empty token sends no credential at all, which is
// how tests exercise the unauthenticated path.
func (s *Session) Put(path string, body interface{}, token string) (*Envelope, error) {
	return s.do(http.MethodPut, path, body, tokenHeader(token))
}

// PutWithBasicAuth issues a PUT request authorized with the Basic scheme for the
// session's configured account, instead of a session token.
func (s *Session) PutWithBasicAuth(path string, body interface{}) (*Envelope, error) {
	headers := make(http.Header)
	creds := s.credentials.Username + ":" + s.credentials.Password
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(creds)))
	return s.do(http.MethodPut, path, body, headers)
}

// Patch issues a PATCH request, with the same credential behavior as Put.
func (s *Session) Patch(path string, body interface{}, token string) (*Envelope, error) {
	return s.do(http.MethodPatch, path, body, tokenHeader(token))
}

// Delete issues a DELETE request, with the same credential behavior as Put.
func (s *Session) Delete(path string, token string) (*Envelope, error) {
	return s.do(http.MethodDelete, path, nil, tokenHeader(token))
}

// Authenticate posts credentials to the auth endpoint. On success the token is cached
// on the session and returned. A rejected login is not an error: it returns ("", nil)
// and leaves any previously cached token in place, because "no token obtainable" is an
// outcome tests assert on. The error return is reserved for transport failures and
// bodies that are not the JSON the endpoint promised.
func (s *Session) Authenticate(creds *servicedef.Credentials) (string, error) {
	body := s.credentials
	if creds != nil {
		body = *creds
	}
	env, err := s.Post(authPath, body)
	if err != nil {
		return "", err
	}
	if !env.OK {
		return "", nil
	}
	auth, err := Decode[servicedef.AuthResponse](env.Body)
	if err != nil {
		return "", err
	}
	if auth.Token == "" {
		// the service reports bad credentials as HTTP 200 with a reason field
		return "", nil
	}
	s.tokenLock.Lock()
	s.token = auth.Token
	s.tokenLock.Unlock()
	return auth.Token, nil
}

// CreateBooking posts a booking and returns the record the service created for it.
// A non-2xx response returns (nil, nil) so negative-path tests can assert on the
// absent record directly.
func (s *Session) CreateBooking(booking servicedef.Booking) (*servicedef.BookingRecord, error) {
	env, err := s.Post(bookingPath, booking)
	if err != nil {
		return nil, err
	}
	if !env.OK {
		return nil, nil
	}
	record, err := Decode[servicedef.BookingRecord](env.Body)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetBooking fetches a booking by id, returning (nil, nil) when the service responds
// non-2xx (normally 404 for an absent id).
func (s *Session) GetBooking(id int) (*servicedef.Booking, error) {
	env, err := s.Get(fmt.Sprintf("%s/%d", bookingPath, id))
	if err != nil {
		return nil, err
	}
	if !env.OK {
		return nil, nil
	}
	booking, err := Decode[servicedef.Booking](env.Body)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Close releases the session's HTTP client. It is safe to call more than once; calls
// after the first do nothing.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.httpClient.CloseIdleConnections()
	})
}

func tokenHeader(token string) http.Header {
	if token == "" {
		return nil
	}
	headers := make(http.Header)
	headers.Set("Cookie", "token="+token)
	return headers
}

func (s *Session) do(method, path string, body interface{}, extraHeaders http.Header) (*Envelope, error) {
	url := s.baseURL + path

	var payload []byte
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not serialize request body for %s %s: %w", method, url, err)
		}
		payload = data
		reader = bytes.NewReader(data)
	}

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequest(method, url, reader)
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s %s: %w", method, url, err)
	}

	for name, values := range s.defaultHeaders {
		for _, v := range values {
			req.Header.Set(name, v)
		}
	}
	for name, values := range extraHeaders {
		for _, v := range values {
			req.Header.Set(name, v)
		}
	}

	s.logger.Printf("%s", reproCommand(method, url, req.Header, payload))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	return newEnvelope(resp)
}
