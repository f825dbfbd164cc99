package domain

import (
	"time"

	"github.com/google/uuid"
)

// SummaryJob asks the summary workers to summarize URL and reply in ChannelID.
type SummaryJob struct {
	ID          uuid.UUID
	ChannelID   string
	RequestedBy string
	URL         string
	CreatedAt   time.Time
}

func NewSummaryJob(channelID, requestedBy, url string) SummaryJob {
	return SummaryJob{
		ID:          uuid.New(),
		ChannelID:   channelID,
		RequestedBy: requestedBy,
		URL:         url,
		CreatedAt:   time.Now().UTC(),
	}
}
