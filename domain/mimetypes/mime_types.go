package mimetypes

import "mime"

type MIME string

const (
	Unknown   MIME = "unknown"
	TextPlain MIME = "text/plain"
	TextHTML  MIME = "text/html"
	TextXML   MIME = "text/xml"

	ApplicationXHTML MIME = "application/xhtml+xml"
	ApplicationXML   MIME = "application/xml"
	ApplicationPDF   MIME = "application/pdf"
	ApplicationJSON  MIME = "application/json"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
)

// readable lists the content types the article extractor knows how to read.
var readable = []MIME{TextHTML, ApplicationXHTML, TextPlain, TextXML, ApplicationXML}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Readable reports whether a detected content type holds extractable markup or text.
func Readable(detected string) bool {
	for _, m := range readable {
		if _, ok := Matches(detected, m); ok {
			return true
		}
	}
	return false
}
