package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDate(t *testing.T, value string) time.Time {
	parsed, err := time.Parse(dateFormat, value)
	require.NoError(t, err, "generated date %q is not in the expected format", value)
	return parsed
}

func TestValidBookingStaysInsideTheDomain(t *testing.T) {
	g := New(1)
	for i := 0; i < 200; i++ {
		b := g.ValidBooking()

		assert.GreaterOrEqual(t, b.TotalPrice, 50)
		assert.LessOrEqual(t, b.TotalPrice, 999)

		checkin := parseDate(t, b.Dates.Checkin)
		checkout := parseDate(t, b.Dates.Checkout)
		assert.True(t, checkout.After(checkin), "checkout %s is not after checkin %s",
			b.Dates.Checkout, b.Dates.Checkin)
		nights := int(checkout.Sub(checkin).Hours() / 24)
		assert.GreaterOrEqual(t, nights, 1)
		assert.LessOrEqual(t, nights, 9)

		assert.Contains(t, firstNames, b.FirstName.StringValue())
		assert.Contains(t, lastNames, b.LastName.StringValue())
		assert.Contains(t, additionalNeeds, b.AdditionalNeeds.StringValue())
	}
}

func TestSameSeedProducesSameSequence(t *testing.T) {
	g1 := New(99)
	g2 := New(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, g1.ValidBooking(), g2.ValidBooking())
	}
	assert.Equal(t, g1.RandomString(32), g2.RandomString(32))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := New(1)
	g2 := New(2)
	assert.NotEqual(t, g1.RandomString(32), g2.RandomString(32))
}

func TestMissingFirstNamePerturbsOnlyThatField(t *testing.T) {
	b := New(1).MissingFirstName()
	assert.False(t, b.FirstName.IsDefined())
	assert.True(t, b.LastName.IsDefined())
	assert.GreaterOrEqual(t, b.TotalPrice, 50)
}

func TestXSSPayloadContainsScriptTag(t *testing.T) {
	b := New(1).XSSPayload()
	assert.Contains(t, b.FirstName.StringValue(), "<script>")
	assert.Contains(t, b.AdditionalNeeds.StringValue(), "onerror")
	assert.True(t, b.LastName.IsDefined(), "only the attacked fields should change")
}

func TestSQLInjectionPayloadContainsMetacharacters(t *testing.T) {
	b := New(1).SQLInjectionPayload()
	assert.Contains(t, b.FirstName.StringValue(), "' OR '1'='1")
	assert.Contains(t, b.LastName.StringValue(), "DROP TABLE")
}

func TestCommandInjectionPayloadContainsShellText(t *testing.T) {
	b := New(1).CommandInjectionPayload()
	assert.Contains(t, b.FirstName.StringValue(), "ls -la")
	assert.Contains(t, b.LastName.StringValue(), "whoami")
	assert.Contains(t, b.AdditionalNeeds.StringValue(), "/etc/passwd")
}

func TestNegativePriceIsTheDocumentedValue(t *testing.T) {
	b := New(1).NegativePrice()
	assert.Equal(t, -999999, b.TotalPrice)
	assert.True(t, b.FirstName.IsDefined(), "only the price should change")
	parseDate(t, b.Dates.Checkin)
}

func TestOversizedPayloadIsAboutAMegabyte(t *testing.T) {
	b := New(1).OversizedPayload()
	needs := b.AdditionalNeeds.StringValue()
	assert.Equal(t, 1<<20, len(needs))
	assert.Equal(t, strings.Repeat("A", 10), needs[:10])
}

func TestUnicodeBookingUsesMultiScriptText(t *testing.T) {
	b := New(1).Unicode()
	assert.Equal(t, "中文测试", b.LastName.StringValue())
	assert.NotEmpty(t, b.FirstName.StringValue())
}

func TestSpecialCharactersBookingIsPunctuationHeavy(t *testing.T) {
	b := New(1).SpecialCharacters()
	assert.Contains(t, b.FirstName.StringValue(), "@#$%")
	assert.Contains(t, b.AdditionalNeeds.StringValue(), `<>?{}[]|\`)
}

func TestRandomStringHasExactLengthAndCharset(t *testing.T) {
	g := New(7)
	for _, length := range []int{0, 1, 12, 500} {
		s := g.RandomString(length)
		assert.Len(t, s, length)
		for _, c := range s {
			assert.Contains(t, alphanumerics, string(c))
		}
	}
}
