package domain

import "fmt"

type AdvisoryKind int

const (
	NoAdvisory AdvisoryKind = iota
	SocialMediaAdvisory
	BlacklistedAdvisory
)

func (k AdvisoryKind) String() string {
	switch k {
	case SocialMediaAdvisory:
		return "social_media"
	case BlacklistedAdvisory:
		return "blacklisted"
	default:
		return "none"
	}
}

// Advisory is the categorical result of triaging one link.
type Advisory struct {
	Kind AdvisoryKind
	Host string
}

// Text returns the message to send, or an empty string when nothing must be sent.
func (a Advisory) Text() string {
	switch a.Kind {
	case SocialMediaAdvisory:
		return "⚠️ Caution: This link is from a social media platform. Verify any claims or news with trusted sources."
	case BlacklistedAdvisory:
		return Warning(fmt.Sprintf("The domain %s is known for hosting misleading or false information.", a.Host))
	default:
		return ""
	}
}
