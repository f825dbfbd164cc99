// Package domain contains core concepts of the monitoring bot.
// This file defines inbound chat messages as delivered by the platform adapter.
// Messages are ephemeral: created per event, consumed once, discarded.
package domain

import "time"

// Author identifies who wrote a message on the chat platform.
type Author struct {
	ID    string
	Name  string
	IsBot bool
}

// Reference points at a prior message the inbound message replies to.
type Reference struct {
	ChannelID string
	MessageID string
}

// InboundMessage represents one message event received from the platform.
type InboundMessage struct {
	ID         string
	ChannelID  string
	Author     Author
	Content    string
	Reference  *Reference // nil when the message is not a reply
	ReceivedAt time.Time
}

// IsReply reports whether the message references a prior message.
func (m InboundMessage) IsReply() bool {
	return m.Reference != nil && m.Reference.MessageID != ""
}

// Embed is a rich outbound message, used for the help text.
type Embed struct {
	Title       string
	Description string
	Color       int
}
