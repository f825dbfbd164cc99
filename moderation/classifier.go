// Package moderation scans chat messages for misinformation markers.
// Everything here is pure: no I/O, no shared mutable state.
package moderation

import (
	"fmt"
	"newswatch/domain"
	"newswatch/lexicon"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const acknowledgementPhrase = "good bot"

// AcknowledgementReply is sent when someone praises one of the bot's own messages.
const AcknowledgementReply = "Thank you!"

type Classifier struct {
	phrases *Matcher
	domains *Matcher
}

// NewClassifier builds one automaton per signal kind from the registry.
func NewClassifier(registry *lexicon.Registry) (*Classifier, error) {
	phrases, err := NewMatcher(registry.Phrases())
	if err != nil {
		return nil, fmt.Errorf("phrase matcher: %w", err)
	}
	domains, err := NewMatcher(registry.Blacklisted())
	if err != nil {
		return nil, fmt.Errorf("domain matcher: %w", err)
	}
	return &Classifier{phrases: phrases, domains: domains}, nil
}

// Classify reports at most one suspicious phrase and at most one blacklisted domain.
// Domains are matched by plain containment in the message text, not by parsing links.
func (c *Classifier) Classify(text string) domain.Classification {
	lowered := strings.ToLower(text)

	var result domain.Classification
	if phrase, ok := c.phrases.First(lowered); ok {
		result.Phrase = phrase
	}
	if d, ok := c.domains.First(lowered); ok {
		result.Domain = d
	}
	if result.Flagged() {
		result.Language = whatlanggo.Detect(text).Lang.Iso6391()
	}
	return result
}

// IsAcknowledgement reports whether text contains the "good bot" praise, in any case.
// The caller still has to check that the message replies to the bot.
func IsAcknowledgement(text string) bool {
	return strings.Contains(strings.ToLower(text), acknowledgementPhrase)
}
