package client

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// reproCommand renders a request as an equivalent curl invocation, so a failed test's
// debug output contains something a human can paste into a shell.
func reproCommand(method, url string, headers http.Header, body []byte) string {
	var b commandBuilder
	b.add("curl", "-s")
	if method != http.MethodGet {
		b.add("-X", method)
	}
	for _, name := range sortedHeaderNames(headers) {
		for _, value := range headers[name] {
			b.add("-H", name+": "+value)
		}
	}
	if len(body) > 0 {
		data := string(body)
		if len(data) > 1000 {
			data = data[:1000] // oversized payloads are truncated; the point is the shape
		}
		b.add("--data", data)
	}
	b.add(url)
	return b.String()
}

func sortedHeaderNames(headers http.Header) []string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
