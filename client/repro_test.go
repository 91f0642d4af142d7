package client

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReproCommandQuotesArguments(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Cookie", "token=abc")

	cmd := reproCommand("PUT", "http://example.com/booking/1", headers, []byte(`{"a": 1}`))

	assert.True(t, strings.HasPrefix(cmd, "curl -s -X PUT "), cmd)
	assert.Contains(t, cmd, "'Cookie: token=abc'")
	assert.Contains(t, cmd, `'{"a": 1}'`)
	assert.True(t, strings.HasSuffix(cmd, "http://example.com/booking/1"), cmd)
}

func TestReproCommandOmitsMethodForGet(t *testing.T) {
	cmd := reproCommand("GET", "http://example.com/ping", nil, nil)
	assert.Equal(t, "curl -s http://example.com/ping", cmd)
}

func TestReproCommandTruncatesHugeBodies(t *testing.T) {
	body := []byte(strings.Repeat("A", 1<<20))
	cmd := reproCommand("POST", "http://example.com/booking", nil, body)
	assert.Less(t, len(cmd), 2000)
}

func TestReproCommandOrdersHeadersDeterministically(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Zeta", "1")
	headers.Set("Alpha", "2")

	cmd := reproCommand("GET", "http://example.com/", headers, nil)
	assert.Less(t, strings.Index(cmd, "Alpha"), strings.Index(cmd, "Zeta"))
}
