package bookingtests

import (
	"github.com/stretchr/testify/require"

	"github.com/bookerqa/booking-contract-tests/client"
	"github.com/bookerqa/booking-contract-tests/config"
	"github.com/bookerqa/booking-contract-tests/framework"
	"github.com/bookerqa/booking-contract-tests/generator"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

// suiteConfig is the state shared by every test in a run: the run configuration and
// the seed from which each test scope derives its data generator. The warning log is
// shared too, but it lives in the framework environment so the Context can tag
// entries with the current test name.
type suiteConfig struct {
	cfg  config.Config
	seed int64
}

// T represents a test or subtest in the booking conformance suite.
//
// It implements the same basic functionality as Go's testing.T, but outside of the Go
// test runner; assertions from the assert and require packages accept a *T as if it
// were a *testing.T.
//
// Every T owns its own Session against the service under test, created when the test
// starts and closed when it ends, so concurrently running tests never share cached
// credentials. It also owns a Generator seeded deterministically from the run seed,
// so a failing test reproduces with the same data when the run seed is reused.
type T struct {
	context *framework.Context
	suite   *suiteConfig
	session *client.Session
	gen     *generator.Generator
}

func newTestScope(c *framework.Context, suite *suiteConfig) *T {
	t := &T{
		context: c,
		suite:   suite,
		gen:     generator.New(suite.seed + int64(hashTestID(c.ID()))),
	}
	t.session = client.NewSession(client.SessionOpts{
		BaseURL: suite.cfg.BaseURL,
		Credentials: servicedef.Credentials{
			Username: suite.cfg.Username,
			Password: suite.cfg.Password,
		},
		Timeout: suite.cfg.Timeout(),
		Logger:  c.DebugLogger(),
	})
	return t
}

func (t *T) close() {
	t.session.Close()
}

func hashTestID(id framework.TestID) uint32 {
	// FNV-1a over the full test name keeps per-test data stable across filter changes
	var h uint32 = 2166136261
	for _, c := range []byte(id.String()) {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The
// methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. The specified function receives a new T with its own session
// and generator.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.suite)
		defer t1.close()
		action(t1)
	})
}

// Debug logs debug output for the test, shown by the console logger according to its
// settings.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Session returns this test's session with the service under test.
func (t *T) Session() *client.Session {
	return t.session
}

// Generator returns this test's booking data generator.
func (t *T) Generator() *generator.Generator {
	return t.gen
}

// Info, Warn, and Critical record observations about the service's behavior in the
// run's shared warning log, attributed to this test. Observations are reported at the
// end of the run but do not fail the test.
func (t *T) Info(format string, args ...interface{}) {
	t.context.RecordWarning(framework.SeverityInfo, format, args...)
}

func (t *T) Warn(format string, args ...interface{}) {
	t.context.RecordWarning(framework.SeverityWarning, format, args...)
}

func (t *T) Critical(format string, args ...interface{}) {
	t.context.RecordWarning(framework.SeverityCritical, format, args...)
}

// MustAuthenticate obtains an auth token with the configured default credentials,
// failing the test if the service does not grant one.
func (t *T) MustAuthenticate() string {
	token, err := t.session.Authenticate(nil)
	require.NoError(t, err)
	require.NotEmpty(t, token, "service did not grant a token for the default credentials")
	return token
}

// MustCreateBooking creates a booking and fails the test if the service rejects it.
func (t *T) MustCreateBooking(booking servicedef.Booking) *servicedef.BookingRecord {
	record, err := t.session.CreateBooking(booking)
	require.NoError(t, err)
	require.NotNil(t, record, "service rejected a booking the test needed to exist")
	t.Debug("created booking %d", record.ID)
	return record
}

// RequireEnvelope fails the test on a transport error and otherwise returns the
// response envelope, logging its status for the debug output.
func (t *T) RequireEnvelope(env *client.Envelope, err error) *client.Envelope {
	require.NoError(t, err)
	require.NotNil(t, env)
	t.Debug("response status %d (body %d bytes)", env.Status, len(env.Body))
	return env
}
