package bookingtests

import (
	"net/url"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/bookerqa/booking-contract-tests/client"
	"github.com/bookerqa/booking-contract-tests/servicedef"
)

func DoFilteringTests(t *T) {
	// Each test creates a booking with a unique random name so its id can be picked
	// out of a shared live dataset.

	t.Run("filter by firstname", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.FirstName = ldvalue.NewOptionalString(t.Generator().RandomString(12))
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?firstname=" + booking.FirstName.StringValue())
		assert.True(t, containsBookingID(refs, record.ID),
			"filter by firstname did not return booking %d", record.ID)
	})

	t.Run("filter by lastname", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.LastName = ldvalue.NewOptionalString(t.Generator().RandomString(12))
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?lastname=" + booking.LastName.StringValue())
		assert.True(t, containsBookingID(refs, record.ID),
			"filter by lastname did not return booking %d", record.ID)
	})

	t.Run("filter by checkin date", func(t *T) {
		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)

		// Date filtering semantics (inclusive vs. exclusive) are not documented, so
		// this only asserts the endpoint answers with a well-formed list and records
		// what it observed.
		refs := t.requireBookingList("/booking?checkin=" + booking.Dates.Checkin)
		if !containsBookingID(refs, record.ID) {
			t.Info("checkin filter %s did not include booking %d created with that date",
				booking.Dates.Checkin, record.ID)
		}
	})

	t.Run("filter by checkout date", func(t *T) {
		booking := t.Generator().ValidBooking()
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?checkout=" + booking.Dates.Checkout)
		if !containsBookingID(refs, record.ID) {
			t.Info("checkout filter %s did not include booking %d created with that date",
				booking.Dates.Checkout, record.ID)
		}
	})

	t.Run("combined name filters", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.FirstName = ldvalue.NewOptionalString(t.Generator().RandomString(12))
		booking.LastName = ldvalue.NewOptionalString(t.Generator().RandomString(12))
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?firstname=" + booking.FirstName.StringValue() +
			"&lastname=" + booking.LastName.StringValue())
		assert.True(t, containsBookingID(refs, record.ID),
			"combined filter did not return booking %d", record.ID)
	})

	t.Run("non-matching filter returns an empty list", func(t *T) {
		refs := t.requireBookingList("/booking?firstname=" + t.Generator().RandomString(24))
		assert.Empty(t, refs)
	})

	t.Run("unrecognized filter parameters are ignored", func(t *T) {
		booking := t.Generator().ValidBooking()
		booking.FirstName = ldvalue.NewOptionalString(t.Generator().RandomString(12))
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?firstname=" + booking.FirstName.StringValue() +
			"&nosuchfilter=1")
		assert.True(t, containsBookingID(refs, record.ID),
			"an unknown filter parameter changed the result")
	})

	t.Run("filter values are url-encoded", func(t *T) {
		name := "O'Brien " + t.Generator().RandomString(8)
		booking := t.Generator().ValidBooking()
		booking.FirstName = ldvalue.NewOptionalString(name)
		record := t.MustCreateBooking(booking)

		refs := t.requireBookingList("/booking?firstname=" + url.QueryEscape(name))
		if !containsBookingID(refs, record.ID) {
			t.Warn("filter did not match a name containing a quote and a space (booking %d)", record.ID)
		}
	})
}

func (t *T) requireBookingList(path string) []servicedef.BookingRef {
	env := t.RequireEnvelope(t.Session().Get(path))
	require.True(t, env.OK, "GET %s returned status %d", path, env.Status)
	refs, err := client.Decode[[]servicedef.BookingRef](env.Body)
	require.NoError(t, err)
	return refs
}

func containsBookingID(refs []servicedef.BookingRef, id int) bool {
	for _, ref := range refs {
		if ref.ID == id {
			return true
		}
	}
	return false
}
