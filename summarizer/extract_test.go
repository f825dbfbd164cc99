package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractBlocks(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contentType string
		expected    string
	}{
		{
			name:     "Paragraphs joined with single spaces",
			input:    "<html><body><p>First  paragraph.</p>\n<p>Second\nparagraph.</p></body></html>",
			expected: "First paragraph. Second paragraph.",
		},
		{
			name:     "Nested blocks each contribute their full text",
			input:    "<div><p>Inner</p></div>",
			expected: "Inner Inner",
		},
		{
			name:     "Article with inline markup",
			input:    "<article>Breaking <b>news</b> today</article>",
			expected: "Breaking news today",
		},
		{
			name:     "Scripts and styles are not visible text",
			input:    "<div><script>var x = 1;</script><style>p{}</style>Visible</div>",
			expected: "Visible",
		},
		{
			name:     "Text outside blocks is ignored",
			input:    "<html><head><title>Title</title></head><body><h1>Header</h1><span>loose</span></body></html>",
			expected: "",
		},
		{
			name:     "Empty blocks are skipped",
			input:    "<p>  </p><p>kept</p><div></div>",
			expected: "kept",
		},
		{
			name:     "Empty document",
			input:    "",
			expected: "",
		},
		{
			name:        "Windows-1252 body decoded from the content type charset",
			input:       "<p>Caf\xe9 \x93quoted\x94 na\xefve</p>",
			contentType: "text/html; charset=windows-1252",
			expected:    "Café “quoted” naïve",
		},
		{
			name:        "Latin-1 body decoded from its meta tag",
			input:       "<html><head><meta charset=\"iso-8859-1\"></head><body><p>Gr\xfc\xdfe aus K\xf6ln</p></body></html>",
			contentType: "text/html",
			expected:    "Grüße aus Köln",
		},
		{
			name:        "UTF-8 body kept as is",
			input:       "<p>Café naïve</p>",
			contentType: "text/html; charset=utf-8",
			expected:    "Café naïve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ExtractBlocks([]byte(tt.input), tt.contentType)
			req.NoError(err)
			req.Equal(tt.expected, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	req := require.New(t)

	req.Equal("abc", Truncate("abcdef", 3))
	req.Equal("abc", Truncate("abc", 3))
	req.Equal("", Truncate("abc", 0))
	// Characters, not bytes
	req.Equal("été", Truncate("étés", 3))

	long := strings.Repeat("a", MaxInputLength+100)
	req.Len(Truncate(long, MaxInputLength), MaxInputLength)
}
