package servicedef

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// Booking is the reservation resource as the booking service defines it on the
// wire. The name and needs fields are optional so that tests can deliberately
// send a booking with one of them absent; an undefined OptionalString is
// serialized as null.
type Booking struct {
	FirstName       ldvalue.OptionalString `json:"firstname,omitempty"`
	LastName        ldvalue.OptionalString `json:"lastname,omitempty"`
	TotalPrice      int                    `json:"totalprice"`
	DepositPaid     bool                   `json:"depositpaid"`
	Dates           BookingDates           `json:"bookingdates"`
	AdditionalNeeds ldvalue.OptionalString `json:"additionalneeds,omitempty"`
}

// BookingDates holds the stay interval. Both values are opaque date strings;
// the service owns their interpretation and validation, so we never parse them.
type BookingDates struct {
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
}

// BookingRecord is what the service returns from a create: the booking echoed
// back together with the id it assigned.
type BookingRecord struct {
	ID      int     `json:"bookingid"`
	Booking Booking `json:"booking"`
}

// BookingRef is one element of the list returned by GET /booking.
type BookingRef struct {
	ID int `json:"bookingid"`
}

// Credentials is the request body for POST /auth.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the body returned by POST /auth. The service reports a
// rejected login as HTTP 200 with Reason set and Token empty, so both fields
// are needed to tell the outcomes apart.
type AuthResponse struct {
	Token  string `json:"token,omitempty"`
	Reason string `json:"reason,omitempty"`
}
