package bookingtests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookerqa/booking-contract-tests/client"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

func DoBookingCRUDTests(t *T) {
	t.Run("create returns a record with an id", func(t *T) {
		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)
		assert.Greater(t, record.ID, 0)
		assert.Equal(t, booking, record.Booking)
	})

	t.Run("create then get round-trips every field", func(t *T) {
		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)

		got, err := t.Session().GetBooking(record.ID)
		require.NoError(t, err)
		require.NotNil(t, got, "created booking was not retrievable")
		assert.Equal(t, booking, *got)
	})

	t.Run("list returns booking ids", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())

		env := t.RequireEnvelope(t.Session().Get("/booking"))
		require.True(t, env.OK)
		refs, err := client.Decode[[]servicedef.BookingRef](env.Body)
		require.NoError(t, err)
		assert.NotEmpty(t, refs)

		found := false
		for _, ref := range refs {
			if ref.ID == record.ID {
				found = true
				break
			}
		}
		assert.True(t, found, "freshly created booking %d missing from the id list", record.ID)
	})

	t.Run("update replaces the whole booking", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())
		token := t.MustAuthenticate()

		updated := t.Generator().ValidBooking()
		updated.TotalPrice = record.Booking.TotalPrice + 1

		env := t.RequireEnvelope(t.Session().Put(bookingPath(record.ID), updated, token))
		require.True(t, env.OK, "update returned status %d", env.Status)
		got, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("partial update merges the changed fields", func(t *T) {
		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)
		token := t.MustAuthenticate()

		patch := map[string]interface{}{
			"firstname":  "Patched",
			"totalprice": 777,
		}
		env := t.RequireEnvelope(t.Session().Patch(bookingPath(record.ID), patch, token))
		require.True(t, env.OK, "partial update returned status %d", env.Status)

		got, err := client.Decode[servicedef.Booking](env.Body)
		require.NoError(t, err)
		assert.Equal(t, "Patched", got.FirstName.StringValue())
		assert.Equal(t, 777, got.TotalPrice)
		assert.Equal(t, booking.LastName, got.LastName, "untouched field should survive a partial update")
		assert.Equal(t, booking.Dates, got.Dates, "untouched field should survive a partial update")
	})

	t.Run("delete removes the booking", func(t *T) {
		record := t.MustCreateBooking(t.Generator().ValidBooking())
		token := t.MustAuthenticate()

		env := t.RequireEnvelope(t.Session().Delete(bookingPath(record.ID), token))
		assert.Equal(t, http.StatusCreated, env.Status)

		got, err := t.Session().GetBooking(record.ID)
		require.NoError(t, err)
		assert.Nil(t, got, "deleted booking is still retrievable")
	})

	t.Run("get of a non-existent id returns 404", func(t *T) {
		env := t.RequireEnvelope(t.Session().Get("/booking/999999999"))
		assert.False(t, env.OK)
		assert.Equal(t, http.StatusNotFound, env.Status)
	})
}
