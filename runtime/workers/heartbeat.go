package workers

import (
	"context"
	"log/slog"
	"newswatch/observability"
	"os"
	"reflect"
	"time"

	"github.com/shirou/gopsutil/process"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// HeartbeatWorker periodically logs process resources, queue occupancy and pipeline counters.
// Reading len and cap of a channel is non-blocking, so sampling never interferes with producers.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	stats    *observability.PipelineStats
	channels []NamedChannel
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration,
	stats *observability.PipelineStats, channels ...NamedChannel) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, stats: stats, channels: channels}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping heartbeat")
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	attrs := []any{}
	rss, cpu, err := getSelfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
	}

	for _, q := range QueueUsage(w.channels) {
		attrs = append(attrs, q.Name+"_len", q.Length, q.Name+"_cap", q.Capacity)
	}
	for k, v := range w.stats.Snapshot() {
		attrs = append(attrs, k, v)
	}
	w.log.Info("Heartbeat", attrs...)
}

type ChannelUsage struct {
	Name     string
	Length   int
	Capacity int
}

// QueueUsage samples every named channel. Values that are not channels are skipped.
func QueueUsage(channels []NamedChannel) []ChannelUsage {
	usage := make([]ChannelUsage, 0, len(channels))
	for _, nc := range channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			continue
		}
		usage = append(usage, ChannelUsage{Name: nc.Name, Length: v.Len(), Capacity: v.Cap()})
	}
	return usage
}

// getSelfStats retrieves resident memory and CPU usage of the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
