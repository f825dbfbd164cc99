package domain

import "fmt"

// Classification is the outcome of scanning one message.
// It never carries more than one phrase finding and one domain finding.
type Classification struct {
	Phrase   string
	Domain   string
	Language string
}

func (c Classification) HasPhrase() bool { return c.Phrase != "" }

func (c Classification) HasDomain() bool { return c.Domain != "" }

// Flagged reports whether at least one finding is present.
func (c Classification) Flagged() bool {
	return c.HasPhrase() || c.HasDomain()
}

// Warnings renders the findings in send order: phrase first, then domain.
func (c Classification) Warnings() []string {
	var res []string
	if c.HasPhrase() {
		res = append(res, Warning(fmt.Sprintf(
			"Keyword \"%s\" detected. Please verify the information before sharing.", c.Phrase)))
	}
	if c.HasDomain() {
		res = append(res, Warning(fmt.Sprintf(
			"Website \"%s\" is known for potentially misleading content.", c.Domain)))
	}
	return res
}

// Warning prefixes a text with the warning marker shared by every alert.
func Warning(text string) string {
	return "⚠️ Warning: " + text
}
