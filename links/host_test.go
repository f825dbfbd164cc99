package links

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Scheme and path", "https://twitter.com/x", "twitter.com"},
		{"Port is stripped", "http://InfoWars.com:8080/a?b=c", "infowars.com"},
		{"Uppercase host is lowercased", "HTTPS://WWW.Reddit.COM/r/x", "www.reddit.com"},
		{"Protocol relative", "//example.com/path", "example.com"},
		{"IPv6 literal", "http://[::1]:80/", "::1"},
		{"Surrounding spaces", "  https://example.com  ", "example.com"},
		// Naive parsing: no scheme means no network location.
		{"Missing scheme", "infowars.com/article", ""},
		{"Not a url", "not a url", ""},
		{"Malformed escape", "http://%zz", ""},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Host(tt.input))
		})
	}
}
