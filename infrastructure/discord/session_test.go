package discord

import (
	"log/slog"
	"newswatch/domain"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestToInboundMessage(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		message  *discordgo.Message
		expected domain.InboundMessage
	}{
		{
			name: "plain message",
			message: &discordgo.Message{
				ID: "m1", ChannelID: "c1", Content: "hello", Timestamp: at,
				Author: &discordgo.User{ID: "u1", Username: "alice"},
			},
			expected: domain.InboundMessage{
				ID: "m1", ChannelID: "c1", Content: "hello", ReceivedAt: at,
				Author: domain.Author{ID: "u1", Name: "alice"},
			},
		},
		{
			name: "reply in another channel",
			message: &discordgo.Message{
				ID: "m2", ChannelID: "c1", Content: "good bot", Timestamp: at,
				Author:           &discordgo.User{ID: "u2", Username: "bob", Bot: true},
				MessageReference: &discordgo.MessageReference{MessageID: "m0", ChannelID: "c9"},
			},
			expected: domain.InboundMessage{
				ID: "m2", ChannelID: "c1", Content: "good bot", ReceivedAt: at,
				Author:    domain.Author{ID: "u2", Name: "bob", IsBot: true},
				Reference: &domain.Reference{ChannelID: "c9", MessageID: "m0"},
			},
		},
		{
			name: "reply without channel falls back to the message channel",
			message: &discordgo.Message{
				ID: "m3", ChannelID: "c1", Timestamp: at,
				MessageReference: &discordgo.MessageReference{MessageID: "m0"},
			},
			expected: domain.InboundMessage{
				ID: "m3", ChannelID: "c1", ReceivedAt: at,
				Reference: &domain.Reference{ChannelID: "c1", MessageID: "m0"},
			},
		},
		{
			name: "empty reference is ignored",
			message: &discordgo.Message{
				ID: "m4", ChannelID: "c1", Timestamp: at,
				MessageReference: &discordgo.MessageReference{},
			},
			expected: domain.InboundMessage{ID: "m4", ChannelID: "c1", ReceivedAt: at},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ToInboundMessage(tt.message))
		})
	}
}

func TestToInboundMessage_MissingTimestamp(t *testing.T) {
	msg := ToInboundMessage(&discordgo.Message{ID: "m"})
	require.False(t, msg.ReceivedAt.IsZero())
}

func TestToMessageEmbed(t *testing.T) {
	embed := ToMessageEmbed(domain.Embed{Title: "T", Description: "D", Color: 0x3498db})
	require.Equal(t, "T", embed.Title)
	require.Equal(t, "D", embed.Description)
	require.Equal(t, 0x3498db, embed.Color)
}

func TestNewSession_SetsIntents(t *testing.T) {
	req := require.New(t)

	session, err := NewSession(slog.Default(), "token")

	req.NoError(err)
	req.Equal(Intents, session.session.Identify.Intents)
	req.Equal("Bot token", session.session.Identify.Token)
	req.Empty(session.BotID())
}
