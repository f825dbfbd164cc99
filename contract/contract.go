//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"newswatch/domain"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Sender delivers outbound messages to a chat channel.
type Sender interface {
	SendText(ctx context.Context, channelID, text string) error
	SendEmbed(ctx context.Context, channelID string, embed domain.Embed) error
}

// MessageLookup fetches a prior message by reference.
type MessageLookup interface {
	FetchMessage(ctx context.Context, channelID, messageID string) (domain.InboundMessage, error)
}

// MessageHandler fully handles one inbound message.
type MessageHandler interface {
	HandleMessage(ctx context.Context, msg domain.InboundMessage) error
}

// JobScheduler queues summary jobs without blocking the caller.
type JobScheduler interface {
	Schedule(job domain.SummaryJob) error
}

// Summarizer turns a URL into a typed summary. It never panics and always returns a value.
type Summarizer interface {
	Summarize(ctx context.Context, url string) domain.Summary
}

// SummaryService is the external summarization collaborator.
type SummaryService interface {
	Summarize(ctx context.Context, text string, opts domain.SummaryOptions) (string, error)
}

// PageFetcher retrieves the raw content of a web page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (domain.Page, error)
}

// SummaryCache stores successful summaries by URL.
// Get returns errors.ErrCacheMiss when nothing valid is stored.
type SummaryCache interface {
	Get(url string) (string, error)
	Put(url, summary string) error
}
