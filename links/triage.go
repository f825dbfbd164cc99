package links

import (
	"newswatch/domain"
	"newswatch/lexicon"
	"strings"
)

// Triage classifies a single link as social media, blacklisted or unremarkable.
//
// Unlike message scanning, blacklist matching here is exact membership of the parsed
// host: "www.infowars.com" is not blacklisted, "infowars.com" is. Social matching is a
// substring check on the host so subdomains of social platforms are caught.
type Triage struct {
	registry *lexicon.Registry
}

func NewTriage(registry *lexicon.Registry) *Triage {
	return &Triage{registry: registry}
}

func (t *Triage) Check(rawURL string) domain.Advisory {
	host := Host(rawURL)
	if host == "" {
		return domain.Advisory{Kind: domain.NoAdvisory}
	}

	for _, social := range t.registry.Social() {
		if strings.Contains(host, social) {
			return domain.Advisory{Kind: domain.SocialMediaAdvisory, Host: host}
		}
	}

	if t.registry.IsBlacklisted(host) {
		return domain.Advisory{Kind: domain.BlacklistedAdvisory, Host: host}
	}

	return domain.Advisory{Kind: domain.NoAdvisory, Host: host}
}
