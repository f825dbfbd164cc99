package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptySignals       = fmt.Errorf("no signals have been found")
	ErrDuplicateSignal    = fmt.Errorf("duplicate signal")
	ErrFetchFailed        = fmt.Errorf("fetch failed")
	ErrUnsupportedContent = fmt.Errorf("unsupported content")
	ErrSummaryFailed      = fmt.Errorf("summarization failed")
	ErrTimeout            = fmt.Errorf("timed out")
	ErrQueueFull          = fmt.Errorf("summary queue is full, try again later")
	ErrCacheMiss          = fmt.Errorf("cache miss")
)
