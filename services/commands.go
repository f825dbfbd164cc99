package services

import (
	"context"
	"fmt"
	"log/slog"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/links"
	"newswatch/observability"
)

const (
	HelpTitle = "Fake News Bot Help"
	HelpColor = 0x3498db
)

// CheckNewsCommand triages a link and answers only when an advisory applies.
type CheckNewsCommand struct {
	log    *slog.Logger
	triage *links.Triage
	sender contract.Sender
}

func NewCheckNewsCommand(log *slog.Logger, triage *links.Triage, sender contract.Sender) *CheckNewsCommand {
	return &CheckNewsCommand{log: log, triage: triage, sender: sender}
}

func (c *CheckNewsCommand) Name() string { return "checknews" }

func (c *CheckNewsCommand) Handle(ctx context.Context, cc *CommandContext) error {
	url, ok := cc.Arg(0)
	if !ok {
		return c.sender.SendText(ctx, cc.Message.ChannelID, cc.Usage())
	}

	advisory := c.triage.Check(url)
	c.log.Debug("Link triaged", "url", url, "advisory", advisory.Kind.String(), "host", advisory.Host)
	if advisory.Kind == domain.NoAdvisory {
		return nil
	}
	return c.sender.SendText(ctx, cc.Message.ChannelID, advisory.Text())
}

// SummaryCommand queues an asynchronous summary job for the channel.
type SummaryCommand struct {
	log       *slog.Logger
	scheduler contract.JobScheduler
	sender    contract.Sender
	stats     *observability.PipelineStats
}

func NewSummaryCommand(log *slog.Logger, scheduler contract.JobScheduler, sender contract.Sender,
	stats *observability.PipelineStats) *SummaryCommand {
	return &SummaryCommand{log: log, scheduler: scheduler, sender: sender, stats: stats}
}

func (c *SummaryCommand) Name() string { return "summary" }

func (c *SummaryCommand) Handle(ctx context.Context, cc *CommandContext) error {
	url, ok := cc.Arg(0)
	if !ok {
		return c.sender.SendText(ctx, cc.Message.ChannelID, cc.Usage())
	}

	job := domain.NewSummaryJob(cc.Message.ChannelID, cc.Message.Author.ID, url)
	if err := c.scheduler.Schedule(job); err != nil {
		c.log.Warn("Summary job rejected", "url", url, "channel", cc.Message.ChannelID, "error", err)
		c.stats.IncrQueueFull()
		return c.sender.SendText(ctx, cc.Message.ChannelID, domain.FormatError(err))
	}
	c.log.Debug("Summary job scheduled", "job", job.ID, "url", url)
	return nil
}

// HelpCommand lists the available commands.
type HelpCommand struct {
	prefix string
	sender contract.Sender
}

func NewHelpCommand(prefix string, sender contract.Sender) *HelpCommand {
	return &HelpCommand{prefix: prefix, sender: sender}
}

func (c *HelpCommand) Name() string { return "commands" }

func (c *HelpCommand) Handle(ctx context.Context, cc *CommandContext) error {
	return c.sender.SendEmbed(ctx, cc.Message.ChannelID, HelpEmbed(c.prefix))
}

func HelpEmbed(prefix string) domain.Embed {
	description := fmt.Sprintf("**Commands:**\n"+
		"- `%ssummary <URL>`: Summarize the content of the given URL.\n"+
		"- `%schecknews <URL>`: Check if the URL is from a blacklisted or social media source.",
		prefix, prefix)
	return domain.Embed{Title: HelpTitle, Description: description, Color: HelpColor}
}
