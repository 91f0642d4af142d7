package bookingtests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/bookerqa/booking-contract-tests/client"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

func DoScenarioTests(t *T) {
	t.Run("complete booking lifecycle", func(t *T) {
		token := t.MustAuthenticate()

		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)

		got, err := t.Session().GetBooking(record.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, booking, *got)

		updated := t.Generator().ValidBooking()
		env := t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), updated, token))
		require.True(t, env.OK, "lifecycle update returned status %d", env.Status)

		patch := map[string]interface{}{"additionalneeds": "Champagne"}
		env = t.RequireEnvelope(t.Session().Patch(bookingPath(record.ID), patch, token))
		require.True(t, env.OK, "lifecycle patch returned status %d", env.Status)
		patched, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.Equal(t, "Champagne", patched.AdditionalNeeds.StringValue())

		env = t.RequireEnvelope(t.Session().Delete(bookingPath(record.ID), token))
		assert.Equal(t, http.StatusCreated, env.Status)

		gone, err := t.Session().GetBooking(record.ID)
		require.NoError(t, err)
		assert.Nil(t, gone, "booking still present after the lifecycle delete")
	})

	t.Run("managing several bookings at once", func(t *T) {
		token := t.MustAuthenticate()

		var records []*servicedef.BookingRecord
		for i := 0; i < 3; i++ {
			records = append(records, t.MustCreateBooking(t.Generator().ValidBooking()))
		}

		// ids must be distinct even for back-to-back creates
		seen := map[int]bool{}
		for _, r := range records {
			assert.False(t, seen[r.ID], "service reused booking id %d", r.ID)
			seen[r.ID] = true
		}

		for _, r := range records {
			env := t.RequireEnvelope(t.Session().Delete(bookingPath(r.ID), token))
			assert.Equal(t, http.StatusCreated, env.Status, "cleanup delete of %d failed", r.ID)
		}
	})

	t.Run("guest check-in workflow", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.DepositPaid = false
		record := t.MustCreateBooking(booking)

		// the guest pays the deposit at check-in; the desk marks it via a partial update
		token := t.MustAuthenticate()
		env := t.RequireEnvelope(t.Session().Patch(bookingPath(record.ID),
			map[string]interface{}{"depositpaid": true}, token))
		require.True(t, env.OK, "deposit update returned status %d", env.Status)

		got, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.True(t, got.DepositPaid)
	})

	t.Run("search and modify workflow", func(t *T) {
		name := t.Generator().RandomString(12)
		booking := t.Generator().ValidBooking()
		booking.FirstName = ldvalue.NewOptionalString(name)
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?firstname=" + name)
		require.True(t, containsBookingID(refs, record.ID),
			"search could not find the booking that was just created")

		env := t.RequireEnvelope(t.Session().PutWithBasicAuth(bookingPath(record.ID), t.Generator().ValidBooking()))
		require.True(t, env.OK, "modification after search returned status %d", env.Status)
	})

	t.Run("credential lifecycle across a session", func(t *T) {
		// before authenticating, mutation is forbidden; after, the same call succeeds
		record := t.MustCreateBooking(t.Generator().ValidBooking())
		updated := t.Generator().ValidBooking()

		env := t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), updated, t.Session().Token()))
		assert.Equal(t, http.StatusForbidden, env.Status)

		token := t.MustAuthenticate()
		env = t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), updated, token))
		assert.True(t, env.OK, "authenticated update returned status %d", env.Status)
	})
}
