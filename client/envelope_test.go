package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookerqa/booking-contract-tests/servicedef"
)

func TestDecodeIntoStruct(t *testing.T) {
	body := `{"token": "abc123"}`
	resp, err := Decode[servicedef.AuthResponse](body)
	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.Token)
}

func TestDecodeIntoSlice(t *testing.T) {
	body := `[{"bookingid": 1}, {"bookingid": 7}]`
	refs, err := Decode[[]servicedef.BookingRef](body)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, 7, refs[1].ID)
}

func TestDecodeMalformedBodyReturnsParseError(t *testing.T) {
	_, err := Decode[servicedef.AuthResponse](`{"token": `)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Body, `{"token": `)
}

func TestParseErrorTruncatesLongBodies(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'x'
	}
	_, err := Decode[servicedef.AuthResponse](string(long))
	require.Error(t, err)
	assert.Less(t, len(err.Error()), 400)
}
