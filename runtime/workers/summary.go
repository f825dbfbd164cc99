package workers

import (
	"context"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/observability"
	"time"
)

// SummaryWorker turns queued jobs into summaries and posts them to the requesting channel.
type SummaryWorker struct {
	log        *slog.Logger
	jobs       <-chan domain.SummaryJob
	summarizer contract.Summarizer
	sender     contract.Sender
	stats      *observability.PipelineStats
}

func NewSummaryWorker(log *slog.Logger, jobs <-chan domain.SummaryJob, summarizer contract.Summarizer,
	sender contract.Sender, stats *observability.PipelineStats) *SummaryWorker {
	return &SummaryWorker{log: log, jobs: jobs, summarizer: summarizer, sender: sender, stats: stats}
}

func (w *SummaryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping summary worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Job channel is closed")
				return nil
			}
			w.process(ctx, job)
		}
	}
}

func (w *SummaryWorker) process(ctx context.Context, job domain.SummaryJob) {
	start := time.Now()
	summary := w.summarizer.Summarize(ctx, job.URL)
	w.stats.IncrSummary(summary)

	w.log.Info("Summary finished",
		"job", job.ID,
		"url", job.URL,
		"kind", summary.Kind.String(),
		"cached", summary.Cached,
		"wait", start.Sub(job.CreatedAt).Round(time.Millisecond),
		"latency", time.Since(start).Round(time.Millisecond))

	if err := w.sender.SendText(ctx, job.ChannelID, summary.Display()); err != nil {
		w.stats.IncrSendErrors()
		w.log.Warn("Summary delivery failed", "job", job.ID, "channel", job.ChannelID, "error", err)
	}
}
