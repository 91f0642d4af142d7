package bookingtests

import (
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookerqa/booking-contract-tests/client"
)

const concurrentRequestCount = 10
const acceptableResponseTime = 5 * time.Second

func DoErrorHandlingTests(t *T) {
	t.Run("missing fields in the request body", func(t *T) {
		env := t.RequireEnvelope(t.Session().Post("/booking", map[string]interface{}{}))
		if env.OK {
			t.Warn("service created a booking from an empty request body")
		} else {
			t.Info("empty request body rejected with status %d", env.Status)
		}
	})

	t.Run("wrong types in the request body", func(t *T) {
		body := map[string]interface{}{
			"firstname":   "John",
			"lastname":    "Doe",
			"totalprice":  "not-a-number",
			"depositpaid": "maybe",
			"bookingdates": map[string]string{
				"checkin":  "2025-01-01",
				"checkout": "2025-01-02",
			},
		}
		env := t.RequireEnvelope(t.Session().Post("/booking", body))
		t.Info("mistyped booking fields produced status %d", env.Status)
		assert.NotEqual(t, http.StatusInternalServerError, env.Status,
			"mistyped input should not crash the service")
	})

	t.Run("non-numeric booking id in the path", func(t *T) {
		env := t.RequireEnvelope(t.Session().Get("/booking/not-a-number"))
		assert.False(t, env.OK)
		assert.Equal(t, http.StatusNotFound, env.Status)
	})

	t.Run("non-existent booking id returns 404 with a tolerable body", func(t *T) {
		env := t.RequireEnvelope(t.Session().Get("/booking/999999999"))
		assert.Equal(t, http.StatusNotFound, env.Status)
		assert.False(t, env.OK)
		// an empty or plain-text error body is fine; it just must not be a booking
		if env.Body != "" {
			if _, err := client.Decode[map[string]interface{}](env.Body); err != nil {
				t.Debug("404 body is not JSON: %q", env.Body)
			}
		}
	})

	t.Run("unparseable dates in the request body", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.Dates.Checkin = "not-a-date"
		booking.Dates.Checkout = "also-not-a-date"
		env := t.RequireEnvelope(t.Session().Post("/booking", booking))
		if env.OK {
			t.Warn("service accepted unparseable stay dates (status %d)", env.Status)
		} else {
			t.Info("unparseable stay dates rejected with status %d", env.Status)
		}
	})

	t.Run("responds within an acceptable time", func(t *T) {
		start := time.Now()
		env := t.RequireEnvelope(t.Session().Get("/booking"))
		elapsed := time.Since(start)
		require.True(t, env.OK)
		t.Debug("GET /booking took %s", elapsed)
		if elapsed > acceptableResponseTime {
			t.Warn("listing bookings took %s, above the %s threshold", elapsed, acceptableResponseTime)
		}
	})

	t.Run("handles concurrent requests on one session", func(t *T) {
		// fan out parallel reads against a single session; every call must come back
		// with its own envelope and no transport error
		type outcome struct {
			env *client.Envelope
			err error
		}
		results := make(chan outcome, concurrentRequestCount)
		for i := 0; i < concurrentRequestCount; i++ {
			go func() {
				env, err := t.Session().Get("/booking")
				results <- outcome{env: env, err: err}
			}()
		}
		for i := 0; i < concurrentRequestCount; i++ {
			r := <-results
			require.NoError(t, r.err)
			require.NotNil(t, r.env)
			assert.True(t, r.env.OK, "concurrent request returned status %d", r.env.Status)
		}
	})
}
