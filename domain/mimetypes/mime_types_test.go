package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"HTML text", "text/html; charset=utf-8", TextHTML, true},
		{"XHTML", "application/xhtml+xml", ApplicationXHTML, true},
		{"XML detected as text/xml", "text/xml; charset=utf-8", ApplicationXML, false},
		{"PDF", "application/pdf", ApplicationPDF, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationJSON, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestReadable(t *testing.T) {
	tests := []struct {
		detected string
		want     bool
	}{
		{"text/html; charset=utf-8", true},
		{"text/plain; charset=utf-8", true},
		{"text/xml; charset=utf-8", true},
		{"application/xhtml+xml", true},
		{"application/pdf", false},
		{"image/png", false},
		{"application/octet-stream", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.detected, func(t *testing.T) {
			require.Equal(t, tt.want, Readable(tt.detected))
		})
	}
}
