package moderation

import (
	"newswatch/lexicon"
	"testing"

	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	registry, err := lexicon.Default()
	require.NoError(t, err)
	classifier, err := NewClassifier(registry)
	require.NoError(t, err)
	return classifier
}

func TestClassifier_Classify(t *testing.T) {
	classifier := newClassifier(t)

	tests := []struct {
		name   string
		input  string
		phrase string
		domain string
	}{
		{
			name:   "Single phrase",
			input:  "There is a rumor going around",
			phrase: "rumor",
		},
		{
			name:   "Case insensitive phrase",
			input:  "ALLEGEDLY the mayor resigned",
			phrase: "allegedly",
		},
		{
			// "sources" comes before "unconfirmed" in the registry even if it appears later in the text
			name:   "First phrase in registry order wins",
			input:  "Unconfirmed, but my sources told me",
			phrase: "sources",
		},
		{
			name:   "Multi word phrase",
			input:  "Take this with a grain of salt, ok?",
			phrase: "take this with a grain of salt",
		},
		{
			// "it's rumored" contains "rumor", which is first in the registry
			name:   "Overlapping phrases report the earliest registered one",
			input:  "It's rumored that prices will rise",
			phrase: "rumor",
		},
		{
			name:   "Domain by plain containment",
			input:  "read this https://www.infowars.com/story",
			domain: "infowars.com",
		},
		{
			name:   "Domain without any link syntax",
			input:  "mercola.com says so",
			domain: "mercola.com",
		},
		{
			name:   "First domain in registry order wins",
			input:  "breitbart.com and theonion.com agree",
			domain: "theonion.com",
		},
		{
			name:   "Phrase and domain are independent",
			input:  "Conspiracy confirmed on naturalnews.com",
			phrase: "conspiracy",
			domain: "naturalnews.com",
		},
		{
			name:  "Nothing suspicious",
			input: "Lunch at noon?",
		},
		{
			name:  "Empty message",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := classifier.Classify(tt.input)
			req.Equal(tt.phrase, result.Phrase)
			req.Equal(tt.domain, result.Domain)
			req.Equal(tt.phrase != "" || tt.domain != "", result.Flagged())
		})
	}
}

func TestClassifier_Warnings(t *testing.T) {
	req := require.New(t)
	classifier := newClassifier(t)

	// Given a message holding several phrases and several domains
	result := classifier.Classify("Rumor has it, sources say, theonion.com and infowars.com confirm")

	// Then exactly one warning per category is produced, phrase first
	req.Equal([]string{
		`⚠️ Warning: Keyword "rumor" detected. Please verify the information before sharing.`,
		`⚠️ Warning: Website "theonion.com" is known for potentially misleading content.`,
	}, result.Warnings())
}

func TestClassifier_DetectsLanguageOnlyWhenFlagged(t *testing.T) {
	req := require.New(t)
	classifier := newClassifier(t)

	flagged := classifier.Classify("According to my uncle, there is a huge conspiracy about the weather and the government is hiding everything from us")
	req.Equal("en", flagged.Language)

	clean := classifier.Classify("The weather is nice today and everybody is happy about it")
	req.Empty(clean.Language)
}

func TestClassifier_Idempotent(t *testing.T) {
	req := require.New(t)
	classifier := newClassifier(t)

	input := "Unverified report from babylonbee.com"
	first := classifier.Classify(input)
	for i := 0; i < 10; i++ {
		req.Equal(first, classifier.Classify(input))
	}
}

func TestIsAcknowledgement(t *testing.T) {
	req := require.New(t)

	req.True(IsAcknowledgement("good bot"))
	req.True(IsAcknowledgement("Good Bot!!"))
	req.True(IsAcknowledgement("what a good bot you are"))
	req.False(IsAcknowledgement("goodbot"))
	req.False(IsAcknowledgement("bad bot"))
}
