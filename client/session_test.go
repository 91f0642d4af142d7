package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/bookerqa/booking-contract-tests/servicedef"
)

var testCredentials = servicedef.Credentials{Username: "admin", Password: "password123"}

func newTestSession(server *httptest.Server) *Session {
	return NewSession(SessionOpts{
		BaseURL:     server.URL,
		Credentials: testCredentials,
		Timeout:     5 * time.Second,
	})
}

func testBooking() servicedef.Booking {
	return servicedef.Booking{
		FirstName:   ldvalue.NewOptionalString("John"),
		LastName:    ldvalue.NewOptionalString("Smith"),
		TotalPrice:  111,
		DepositPaid: true,
		Dates:       servicedef.BookingDates{Checkin: "2026-09-01", Checkout: "2026-09-03"},
	}
}

func TestSessionSendsDefaultJSONHeaders(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	_, err := session.Get("/booking")
	require.NoError(t, err)

	req := <-requestsCh
	assert.Equal(t, "application/json", req.Request.Header.Get("Accept"))
	assert.Equal(t, "application/json", req.Request.Header.Get("Content-Type"))
}

func TestGetLayersExtraHeadersOverDefaults(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	extra := make(http.Header)
	extra.Set("Accept", "text/plain")
	extra.Set("X-Custom", "value-1")
	_, err := session.Get("/booking", extra)
	require.NoError(t, err)

	req := <-requestsCh
	assert.Equal(t, "text/plain", req.Request.Header.Get("Accept"))
	assert.Equal(t, "value-1", req.Request.Header.Get("X-Custom"))
}

func TestPostSerializesBodyAsJSON(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	booking := testBooking()
	_, err := session.Post("/booking", booking)
	require.NoError(t, err)

	req := <-requestsCh
	assert.Equal(t, "POST", req.Request.Method)

	var sent servicedef.Booking
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, booking, sent)
}

func TestMutatingVerbsAttachTokenAsCookie(t *testing.T) {
	verbs := map[string]func(s *Session) (*Envelope, error){
		"PUT":    func(s *Session) (*Envelope, error) { return s.Put("/booking/1", testBooking(), "tok123") },
		"PATCH":  func(s *Session) (*Envelope, error) { return s.Patch("/booking/1", testBooking(), "tok123") },
		"DELETE": func(s *Session) (*Envelope, error) { return s.Delete("/booking/1", "tok123") },
	}
	for verb, call := range verbs {
		t.Run(verb, func(t *testing.T) {
			handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
			server := httptest.NewServer(handler)
			defer server.Close()
			session := newTestSession(server)
			defer session.Close()

			_, err := call(session)
			require.NoError(t, err)

			req := <-requestsCh
			assert.Equal(t, verb, req.Request.Method)
			assert.Equal(t, "token=tok123", req.Request.Header.Get("Cookie"))
		})
	}
}

func TestEmptyTokenSendsNoCredentialHeader(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(403))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	env, err := session.Put("/booking/1", testBooking(), "")
	require.NoError(t, err)
	assert.False(t, env.OK)

	req := <-requestsCh
	assert.Empty(t, req.Request.Header.Get("Cookie"))
	assert.Empty(t, req.Request.Header.Get("Authorization"))
}

func TestPutWithBasicAuthSendsEncodedCredentials(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	_, err := session.PutWithBasicAuth("/booking/1", testBooking())
	require.NoError(t, err)

	req := <-requestsCh
	// base64("admin:password123")
	assert.Equal(t, "Basic YWRtaW46cGFzc3dvcmQxMjM=", req.Request.Header.Get("Authorization"))
}

func TestEnvelopeCapturesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithResponse(418, nil, []byte("short and stout")))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	env, err := session.Get("/anything")
	require.NoError(t, err)
	assert.Equal(t, 418, env.Status)
	assert.False(t, env.OK)
	assert.Equal(t, "short and stout", env.Body)
}

func TestEnvelopeOKCoversExactly2xx(t *testing.T) {
	for _, tc := range []struct {
		status int
		ok     bool
	}{
		{200, true}, {201, true}, {204, true}, {299, true},
		{301, false}, {400, false}, {403, false}, {404, false}, {500, false},
	} {
		server := httptest.NewServer(httphelpers.HandlerWithStatus(tc.status))
		session := newTestSession(server)

		env, err := session.Get("/")
		require.NoError(t, err)
		assert.Equal(t, tc.status, env.Status)
		assert.Equal(t, tc.ok, env.OK, "wrong OK value for status %d", tc.status)

		session.Close()
		server.Close()
	}
}

func TestNon2xxResponsesAreNotErrors(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(500))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	env, err := session.Get("/booking")
	require.NoError(t, err, "an HTTP failure response must be data, not an error")
	assert.Equal(t, 500, env.Status)
}

func TestUnreachableServerReturnsTransportError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	session := newTestSession(server)
	defer session.Close()
	server.Close()

	env, err := session.Get("/booking")
	assert.Nil(t, env)
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "GET", transportErr.Method)
}

func TestAuthenticateCachesGrantedToken(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(servicedef.AuthResponse{Token: "abc123"}, nil))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	token, err := session.Authenticate(nil)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
	assert.Equal(t, "abc123", session.Token())

	req := <-requestsCh
	var sent servicedef.Credentials
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, testCredentials, sent, "default credentials should be used when none are supplied")
}

func TestAuthenticateSendsOverrideCredentials(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(servicedef.AuthResponse{Token: "t"}, nil))
	server := httptest.NewServer(handler)
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	override := servicedef.Credentials{Username: "other", Password: "secret"}
	_, err := session.Authenticate(&override)
	require.NoError(t, err)

	req := <-requestsCh
	var sent servicedef.Credentials
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, override, sent)
}

func TestAuthenticateRejectionIsNotAnErrorAndKeepsCachedToken(t *testing.T) {
	granted := httphelpers.HandlerWithJSONResponse(servicedef.AuthResponse{Token: "good"}, nil)
	denied := httphelpers.HandlerWithJSONResponse(servicedef.AuthResponse{Reason: "Bad credentials"}, nil)
	server := httptest.NewServer(httphelpers.SequentialHandler(granted, denied))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	token, err := session.Authenticate(nil)
	require.NoError(t, err)
	require.Equal(t, "good", token)

	token, err = session.Authenticate(nil)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "good", session.Token(), "a rejected login must not disturb the cached token")
}

func TestAuthenticateNon2xxReturnsNoToken(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(503))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	token, err := session.Authenticate(nil)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, session.Token())
}

func TestAuthenticateMalformedBodyReturnsParseError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithResponse(200, nil, []byte("not json")))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	_, err := session.Authenticate(nil)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestCreateBookingReturnsRecord(t *testing.T) {
	record := servicedef.BookingRecord{ID: 42, Booking: testBooking()}
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(record, nil))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	got, err := session.CreateBooking(testBooking())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, testBooking(), got.Booking)
}

func TestCreateBookingReturnsNilOnRejection(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(500))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	record, err := session.CreateBooking(testBooking())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetBookingReturnsNilOn404(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(404))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	booking, err := session.GetBooking(999999999)
	require.NoError(t, err)
	assert.Nil(t, booking)
}

func TestGetBookingParsesBody(t *testing.T) {
	want := testBooking()
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(want, nil))
	defer server.Close()
	session := newTestSession(server)
	defer session.Close()

	got, err := session.GetBooking(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestCloseIsIdempotent(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	defer server.Close()
	session := newTestSession(server)

	session.Close()
	assert.NotPanics(t, func() { session.Close() })
}
