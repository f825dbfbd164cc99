package discord

import (
	"context"
	"fmt"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

var (
	_ contract.Sender        = (*Session)(nil)
	_ contract.MessageLookup = (*Session)(nil)
)

// Session adapts a discordgo gateway session to the bot's domain types.
type Session struct {
	log     *slog.Logger
	session *discordgo.Session

	mu    sync.RWMutex
	botID string
}

func NewSession(log *slog.Logger, token string) (*Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = Intents

	session := &Session{log: log, session: s}
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		if r.User != nil {
			session.setBotID(r.User.ID)
			log.Info("Discord session ready", "user", r.User.Username, "id", r.User.ID)
		}
	})
	return session, nil
}

// OnMessage registers fn for every created message. fn runs on the gateway goroutine and must not block.
func (s *Session) OnMessage(fn func(msg domain.InboundMessage)) {
	s.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m == nil || m.Message == nil {
			return
		}
		fn(ToInboundMessage(m.Message))
	})
}

// OnConnectionChange registers fn for gateway connect and disconnect events.
func (s *Session) OnConnectionChange(fn func(connected bool)) {
	s.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Connect) {
		s.log.Info("Discord gateway connected")
		fn(true)
	})
	s.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		s.log.Warn("Discord gateway disconnected")
		fn(false)
	})
}

// Open connects to the gateway and resolves the bot's own user ID.
func (s *Session) Open(ctx context.Context) error {
	if err := s.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	if s.BotID() == "" {
		me, err := s.session.User("@me", discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to resolve bot user: %w", err)
		}
		s.setBotID(me.ID)
	}
	return nil
}

func (s *Session) Close() error {
	return s.session.Close()
}

// BotID returns the bot's user ID, empty until the session is ready.
func (s *Session) BotID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.botID
}

func (s *Session) setBotID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.botID = id
}

func (s *Session) SendText(ctx context.Context, channelID, text string) error {
	_, err := s.session.ChannelMessageSend(channelID, text, discordgo.WithContext(ctx))
	return err
}

func (s *Session) SendEmbed(ctx context.Context, channelID string, embed domain.Embed) error {
	_, err := s.session.ChannelMessageSendEmbed(channelID, ToMessageEmbed(embed), discordgo.WithContext(ctx))
	return err
}

func (s *Session) FetchMessage(ctx context.Context, channelID, messageID string) (domain.InboundMessage, error) {
	m, err := s.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.InboundMessage{}, err
	}
	return ToInboundMessage(m), nil
}

func ToInboundMessage(m *discordgo.Message) domain.InboundMessage {
	msg := domain.InboundMessage{
		ID:         m.ID,
		ChannelID:  m.ChannelID,
		Content:    m.Content,
		ReceivedAt: m.Timestamp,
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now().UTC()
	}
	if m.Author != nil {
		msg.Author = domain.Author{
			ID:    m.Author.ID,
			Name:  m.Author.Username,
			IsBot: m.Author.Bot,
		}
	}
	if ref := m.MessageReference; ref != nil && ref.MessageID != "" {
		channelID := ref.ChannelID
		if channelID == "" {
			channelID = m.ChannelID
		}
		msg.Reference = &domain.Reference{ChannelID: channelID, MessageID: ref.MessageID}
	}
	return msg
}

func ToMessageEmbed(e domain.Embed) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
}
