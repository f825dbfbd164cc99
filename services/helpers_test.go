package services

import (
	"log/slog"
	"newswatch/domain"
	"newswatch/lexicon"
	"newswatch/links"
	"newswatch/moderation"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const (
	botID   = "bot-1"
	channel = "chan-1"
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func defaultRegistry(t *testing.T) *lexicon.Registry {
	t.Helper()
	registry, err := lexicon.Default()
	require.NoError(t, err)
	return registry
}

func defaultClassifier(t *testing.T) *moderation.Classifier {
	t.Helper()
	classifier, err := moderation.NewClassifier(defaultRegistry(t))
	require.NoError(t, err)
	return classifier
}

func defaultTriage(t *testing.T) *links.Triage {
	t.Helper()
	return links.NewTriage(defaultRegistry(t))
}

func message(content string) domain.InboundMessage {
	return domain.InboundMessage{
		ID:         "msg-1",
		ChannelID:  channel,
		Author:     domain.Author{ID: "user-1", Name: "alice"},
		Content:    content,
		ReceivedAt: time.Now(),
	}
}
