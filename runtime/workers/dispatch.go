package workers

import (
	"context"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
)

// DispatchWorker drains the inbox and handles one message at a time, in arrival order.
type DispatchWorker struct {
	log     *slog.Logger
	inbox   <-chan domain.InboundMessage
	handler contract.MessageHandler
}

func NewDispatchWorker(log *slog.Logger, inbox <-chan domain.InboundMessage,
	handler contract.MessageHandler) *DispatchWorker {
	return &DispatchWorker{log: log, inbox: inbox, handler: handler}
}

func (w *DispatchWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping dispatch worker")
			return ctx.Err()
		case msg, ok := <-w.inbox:
			if !ok {
				w.log.Debug("Inbox is closed")
				return nil
			}
			if err := w.handler.HandleMessage(ctx, msg); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.log.Warn("Message handling failed", "message", msg.ID, "channel", msg.ChannelID, "error", err)
			}
		}
	}
}
