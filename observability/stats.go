package observability

import (
	"newswatch/domain"
	"sync/atomic"
	"time"
)

// PipelineStats aggregates counters of the message and summary pipelines.
// All methods are safe for concurrent use.
type PipelineStats struct {
	startedAt time.Time

	messages          atomic.Uint64
	warnings          atomic.Uint64
	commands          atomic.Uint64
	droppedMessages   atomic.Uint64
	summariesOK       atomic.Uint64
	summariesCached   atomic.Uint64
	summariesRejected atomic.Uint64
	summariesFailed   atomic.Uint64
	queueFull         atomic.Uint64
	sendErrors        atomic.Uint64
}

func NewPipelineStats() *PipelineStats {
	return &PipelineStats{startedAt: time.Now()}
}

func (s *PipelineStats) IncrMessages()        { s.messages.Add(1) }
func (s *PipelineStats) IncrWarnings()        { s.warnings.Add(1) }
func (s *PipelineStats) IncrCommands()        { s.commands.Add(1) }
func (s *PipelineStats) IncrDroppedMessages() { s.droppedMessages.Add(1) }
func (s *PipelineStats) IncrQueueFull()       { s.queueFull.Add(1) }
func (s *PipelineStats) IncrSendErrors()      { s.sendErrors.Add(1) }

// IncrSummary counts one finished summary by its outcome.
func (s *PipelineStats) IncrSummary(summary domain.Summary) {
	switch summary.Kind {
	case domain.SummaryOK:
		s.summariesOK.Add(1)
		if summary.Cached {
			s.summariesCached.Add(1)
		}
	case domain.SummaryRejected:
		s.summariesRejected.Add(1)
	default:
		s.summariesFailed.Add(1)
	}
}

// Snapshot returns the current counters keyed by name, for logs and the inspector page.
func (s *PipelineStats) Snapshot() map[string]any {
	return map[string]any{
		"uptime":             time.Since(s.startedAt).Round(time.Second).String(),
		"messages":           s.messages.Load(),
		"warnings":           s.warnings.Load(),
		"commands":           s.commands.Load(),
		"dropped_messages":   s.droppedMessages.Load(),
		"summaries_ok":       s.summariesOK.Load(),
		"summaries_cached":   s.summariesCached.Load(),
		"summaries_rejected": s.summariesRejected.Load(),
		"summaries_failed":   s.summariesFailed.Load(),
		"queue_full":         s.queueFull.Load(),
		"send_errors":        s.sendErrors.Load(),
	}
}
