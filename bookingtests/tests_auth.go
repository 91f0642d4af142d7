package bookingtests

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookerqa/booking-contract-tests/client"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

func DoAuthTests(t *T) {
	t.Run("grants a token for valid credentials", func(t *T) {
		token, err := t.Session().Authenticate(nil)
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, token, t.Session().Token(), "granted token should be cached on the session")
	})

	t.Run("reports bad credentials without granting a token", func(t *T) {
		env := t.RequireEnvelope(t.Session().Post("/auth", servicedef.Credentials{
			Username: "invalid",
			Password: "wrongpassword",
		}))
		// the service reports a rejected login as HTTP 200 with a reason field
		assert.Equal(t, http.StatusOK, env.Status)
		resp, err := client.Decode[servicedef.AuthResponse](env.Body)
		require.NoError(t, err)
		assert.Empty(t, resp.Token)
		assert.Contains(t, resp.Reason, "Bad credentials")
	})

	t.Run("failed authentication does not disturb a cached token", func(t *T) {
		good := t.MustAuthenticate()

		token, err := t.Session().Authenticate(&servicedef.Credentials{
			Username: "invalid",
			Password: "wrongpassword",
		})
		require.NoError(t, err, "a rejected login is an outcome, not an error")
		assert.Empty(t, token)
		assert.Equal(t, good, t.Session().Token())
	})

	t.Run("update with a valid token succeeds", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())
		token := t.MustAuthenticate()

		updated := t.Generator().ValidBooking()
		env := t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), updated, token))
		require.True(t, env.OK, "update with valid token returned status %d", env.Status)

		got, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.Equal(t, updated.FirstName, got.FirstName)
	})

	t.Run("delete with a valid token returns 201", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())
		token := t.MustAuthenticate()

		env := t.RequireEnvelope(t.Session().Delete(bookingPath(record.ID), token))
		assert.Equal(t, http.StatusCreated, env.Status)
	})

	t.Run("update without a token is forbidden", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())

		env := t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), t.Generator().ValidBooking(), ""))
		assert.False(t, env.OK)
		assert.Equal(t, http.StatusForbidden, env.Status)
	})

	t.Run("partial update without a token is forbidden", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())

		env := t.RequireEnvelope(t.Session().Patch(bookingPath(record.ID), t.Generator().ValidBooking(), ""))
		assert.False(t, env.OK)
		assert.Equal(t, http.StatusForbidden, env.Status)
	})

	t.Run("delete without a token is forbidden", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())

		env := t.RequireEnvelope(t.Session().Delete(bookingPath(record.ID), ""))
		assert.False(t, env.OK)
		assert.Equal(t, http.StatusForbidden, env.Status)
	})

	t.Run("update with basic auth succeeds", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())

		updated := t.Generator().ValidBooking()
		env := t.RequireEnvelope(t.Session().PutWithBasicAuth(bookingPath(record.ID), updated))
		require.True(t, env.OK, "update with basic auth returned status %d", env.Status)

		got, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.Equal(t, updated.FirstName, got.FirstName)
	})
}

func bookingPath(id int) string {
	return fmt.Sprintf("/booking/%d", id)
}
