package services

import (
	"context"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/moderation"
	"newswatch/observability"
	"time"
)

var _ contract.MessageHandler = (*Dispatcher)(nil)

// Dispatcher handles every inbound message: acknowledgement, classification warnings, then commands.
type Dispatcher struct {
	log        *slog.Logger
	classifier *moderation.Classifier
	router     *Router
	sender     contract.Sender
	lookup     contract.MessageLookup
	selfID     func() string
	ackTimeout time.Duration
	stats      *observability.PipelineStats
}

func NewDispatcher(
	log *slog.Logger,
	classifier *moderation.Classifier,
	router *Router,
	sender contract.Sender,
	lookup contract.MessageLookup,
	selfID func() string,
	ackTimeout time.Duration,
	stats *observability.PipelineStats,
) *Dispatcher {
	return &Dispatcher{
		log:        log,
		classifier: classifier,
		router:     router,
		sender:     sender,
		lookup:     lookup,
		selfID:     selfID,
		ackTimeout: ackTimeout,
		stats:      stats,
	}
}

// HandleMessage processes msg fully. Send failures are logged, not returned.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg domain.InboundMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	self := d.selfID()
	if self != "" && msg.Author.ID == self {
		return nil
	}
	d.stats.IncrMessages()

	d.acknowledge(ctx, msg, self)
	d.warn(ctx, msg)

	handled, err := d.router.Route(ctx, msg)
	if handled {
		d.stats.IncrCommands()
	}
	if err != nil {
		d.stats.IncrSendErrors()
		d.log.Warn("Command reply failed", "channel", msg.ChannelID, "error", err)
	}
	return nil
}

func (d *Dispatcher) acknowledge(ctx context.Context, msg domain.InboundMessage, self string) {
	if !msg.IsReply() || self == "" || !moderation.IsAcknowledgement(msg.Content) {
		return
	}

	lookupCtx := ctx
	if d.ackTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, d.ackTimeout)
		defer cancel()
	}

	referenced, err := d.lookup.FetchMessage(lookupCtx, msg.ChannelID, msg.Reference.MessageID)
	if err != nil {
		d.log.Warn("Referenced message lookup failed",
			"channel", msg.ChannelID, "message", msg.Reference.MessageID, "error", err)
		return
	}
	if referenced.Author.ID != self {
		return
	}
	d.send(ctx, msg.ChannelID, moderation.AcknowledgementReply)
}

func (d *Dispatcher) warn(ctx context.Context, msg domain.InboundMessage) {
	classification := d.classifier.Classify(msg.Content)
	if !classification.Flagged() {
		return
	}
	d.log.Info("Message flagged",
		"channel", msg.ChannelID,
		"phrase", classification.Phrase,
		"domain", classification.Domain,
		"language", classification.Language)

	for _, warning := range classification.Warnings() {
		d.stats.IncrWarnings()
		d.send(ctx, msg.ChannelID, warning)
	}
}

func (d *Dispatcher) send(ctx context.Context, channelID, text string) {
	if err := d.sender.SendText(ctx, channelID, text); err != nil {
		d.stats.IncrSendErrors()
		d.log.Warn("Send failed", "channel", channelID, "error", err)
	}
}
