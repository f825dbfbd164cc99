// Package runtime owns the event loop of the bot: the inbox, the summary job queue and the
// supervised workers draining them. It contains no business rules.
package runtime

import (
	"context"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/errors"
	"newswatch/observability"
	"newswatch/runtime/workers"
	"sync"
	"time"
)

var _ contract.JobScheduler = (*Orchestrator)(nil)

type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	supervisor        contract.ISupervisor
	stats             *observability.PipelineStats
	inbox             chan domain.InboundMessage
	jobs              chan domain.SummaryJob
	numWorkers        int
	heartbeatInterval time.Duration
	started           bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, stats *observability.PipelineStats,
	bufferSize, numWorkers int, heartbeatInterval time.Duration) *Orchestrator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		stats:             stats,
		inbox:             make(chan domain.InboundMessage, bufferSize),
		jobs:              make(chan domain.SummaryJob, bufferSize),
		numWorkers:        numWorkers,
		heartbeatInterval: heartbeatInterval,
	}
}

// Submit enqueues an inbound message without blocking. A full inbox drops the message.
func (o *Orchestrator) Submit(msg domain.InboundMessage) bool {
	select {
	case o.inbox <- msg:
		return true
	default:
		o.stats.IncrDroppedMessages()
		o.log.Warn("Inbox full, dropping message", "message", msg.ID, "channel", msg.ChannelID)
		return false
	}
}

// Schedule enqueues a summary job without blocking, or returns ErrQueueFull.
func (o *Orchestrator) Schedule(job domain.SummaryJob) error {
	select {
	case o.jobs <- job:
		return nil
	default:
		return errors.ErrQueueFull
	}
}

// Start registers the dispatch worker, the summary pool and the heartbeat, then blocks
// running the supervisor until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context, handler contract.MessageHandler,
	summarizer contract.Summarizer, sender contract.Sender) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return nil
	}
	o.started = true

	o.supervisor.Add(workers.NewDispatchWorker(o.log, o.inbox, handler))
	for i := 0; i < o.numWorkers; i++ {
		o.supervisor.Add(workers.NewSummaryWorker(o.log, o.jobs, summarizer, sender, o.stats))
	}
	if o.heartbeatInterval > 0 {
		o.supervisor.Add(workers.NewHeartbeatWorker(o.log, o.heartbeatInterval, o.stats,
			workers.NamedChannel{Name: "inbox", Channel: o.inbox},
			workers.NamedChannel{Name: "jobs", Channel: o.jobs},
		))
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "summary_workers", o.numWorkers)
	o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown of the orchestrator.
// Queued messages and jobs that were not picked up are discarded.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
