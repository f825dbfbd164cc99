package domain

type SummaryKind int

const (
	SummaryOK SummaryKind = iota
	SummaryRejected
	SummaryFailed
)

func (k SummaryKind) String() string {
	switch k {
	case SummaryOK:
		return "ok"
	case SummaryRejected:
		return "rejected"
	default:
		return "failed"
	}
}

const SocialMediaRejection = "I can't summarize social media posts."

// Summary is the typed outcome of a summarization request.
// Err is set only when Kind is SummaryFailed.
type Summary struct {
	URL    string
	Kind   SummaryKind
	Text   string
	Err    error
	Cached bool
}

func Summarized(url, text string, cached bool) Summary {
	return Summary{URL: url, Kind: SummaryOK, Text: text, Cached: cached}
}

func Rejected(url string) Summary {
	return Summary{URL: url, Kind: SummaryRejected, Text: SocialMediaRejection}
}

func Failed(url string, err error) Summary {
	return Summary{URL: url, Kind: SummaryFailed, Err: err}
}

// Display converts the summary into the text sent back to the channel.
func (s Summary) Display() string {
	switch s.Kind {
	case SummaryOK, SummaryRejected:
		return s.Text
	default:
		return FormatError(s.Err)
	}
}

// FormatError renders an error the way the bot reports every failure to users.
func FormatError(err error) string {
	if err == nil {
		return "Error: unknown failure"
	}
	return "Error: " + err.Error()
}

// SummaryOptions configures the external summarization service.
type SummaryOptions struct {
	MaxLength int
	MinLength int
	Sample    bool
}

// DefaultSummaryOptions produces deterministic summaries between 100 and 600 characters.
var DefaultSummaryOptions = SummaryOptions{MaxLength: 600, MinLength: 100, Sample: false}

// Page is the raw result of fetching a URL.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}
