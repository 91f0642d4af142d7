// Package generator produces booking payloads for the conformance suite: ordinary
// valid bookings, and a catalogue of adversarial variants that each perturb exactly
// one dimension of an otherwise valid booking, so that whatever the service does with
// one of them can be attributed to that single dimension.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/bookerqa/booking-contract-tests/servicedef"
)

const dateFormat = "2006-01-02"

const oversizedNeedsLength = 1 << 20 // ~1MB, to probe payload size limits

var firstNames = []string{"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Eve", "Frank"}
var lastNames = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis"}
var additionalNeeds = []string{"Breakfast", "Lunch", "Dinner", "Late checkout", "Early checkin", "None"}

const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Generator produces booking data from its own seeded random source. Two generators
// built with the same seed produce the same sequence, which makes a test run
// reproducible from the seed printed at startup. A Generator is not safe for
// concurrent use; each test scope gets its own.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), now: time.Now}
}

// ValidBooking returns a booking that is inside the service's documented domain on
// every field: a stay starting tomorrow lasting 1-9 nights, a price in [50, 999], and
// names drawn from fixed pools.
func (g *Generator) ValidBooking() servicedef.Booking {
	checkin := g.now().AddDate(0, 0, 1)
	checkout := checkin.AddDate(0, 0, 1+g.rnd.Intn(9))
	return servicedef.Booking{
		FirstName:   ldvalue.NewOptionalString(firstNames[g.rnd.Intn(len(firstNames))]),
		LastName:    ldvalue.NewOptionalString(lastNames[g.rnd.Intn(len(lastNames))]),
		TotalPrice:  50 + g.rnd.Intn(950),
		DepositPaid: g.rnd.Intn(2) == 1,
		Dates: servicedef.BookingDates{
			Checkin:  checkin.Format(dateFormat),
			Checkout: checkout.Format(dateFormat),
		},
		AdditionalNeeds: ldvalue.NewOptionalString(additionalNeeds[g.rnd.Intn(len(additionalNeeds))]),
	}
}

// MissingFirstName returns a valid booking with the first name absent, serialized as
// null.
func (g *Generator) MissingFirstName() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.OptionalString{}
	return b
}

// XSSPayload returns a valid booking with script-injection strings in the name and
// needs fields.
func (g *Generator) XSSPayload() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.NewOptionalString(`<script>alert("XSS")</script>`)
	b.AdditionalNeeds = ldvalue.NewOptionalString(`<img src=x onerror=alert('XSS')>`)
	return b
}

// SQLInjectionPayload returns a valid booking with SQL metacharacter strings in the
// name fields.
func (g *Generator) SQLInjectionPayload() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.NewOptionalString(`' OR '1'='1`)
	b.LastName = ldvalue.NewOptionalString(`'; DROP TABLE bookings; --`)
	return b
}

// CommandInjectionPayload returns a valid booking with shell metacharacter strings in
// the name and needs fields.
func (g *Generator) CommandInjectionPayload() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.NewOptionalString(`; ls -la`)
	b.LastName = ldvalue.NewOptionalString(`$(whoami)`)
	b.AdditionalNeeds = ldvalue.NewOptionalString(`| cat /etc/passwd`)
	return b
}

// NegativePrice returns a valid booking whose price is a large negative number. The
// generator passes it through untouched; whether the service clamps, rejects, or
// stores it is exactly what the suite is there to observe.
func (g *Generator) NegativePrice() servicedef.Booking {
	b := g.ValidBooking()
	b.TotalPrice = -999999
	return b
}

// OversizedPayload returns a valid booking whose needs field is around a megabyte of
// repeated text.
func (g *Generator) OversizedPayload() servicedef.Booking {
	b := g.ValidBooking()
	b.AdditionalNeeds = ldvalue.NewOptionalString(strings.Repeat("A", oversizedNeedsLength))
	return b
}

// Unicode returns a booking with multi-script and emoji text in every string field.
func (g *Generator) Unicode() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.NewOptionalString("🔥👍😀")
	b.LastName = ldvalue.NewOptionalString("中文测试")
	b.AdditionalNeeds = ldvalue.NewOptionalString("Unicode test テスト")
	return b
}

// SpecialCharacters returns a booking with punctuation-heavy strings in every string
// field.
func (g *Generator) SpecialCharacters() servicedef.Booking {
	b := g.ValidBooking()
	b.FirstName = ldvalue.NewOptionalString("John@#$%")
	b.LastName = ldvalue.NewOptionalString("Doe!&*()")
	b.AdditionalNeeds = ldvalue.NewOptionalString(`Special chars: <>?{}[]|\`)
	return b
}

// RandomString returns an alphanumeric string of exactly the requested length.
func (g *Generator) RandomString(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphanumerics[g.rnd.Intn(len(alphanumerics))])
	}
	return sb.String()
}
