package storage

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"newswatch/contract"
	"newswatch/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const SummaryPrefix = "summary:"

var _ contract.SummaryCache = (*SummaryCache)(nil)

// CachedSummary is one stored summary as seen by the inspector tools.
type CachedSummary struct {
	URL       string
	Summary   string
	CachedAt  time.Time
	ExpiresAt time.Time
}

// SummaryCache keeps successful summaries in BadgerDB, keyed by the raw URL.
// Entries expire after ttl; a zero ttl keeps them forever.
type SummaryCache struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

func NewSummaryCache(db *badger.DB, log *slog.Logger, ttl time.Duration) *SummaryCache {
	return &SummaryCache{
		db:  db,
		log: log,
		ttl: ttl,
	}
}

func SummaryKey(url string) []byte {
	return []byte(SummaryPrefix + url)
}

// Get returns the cached summary or ErrCacheMiss.
func (c *SummaryCache) Get(url string) (string, error) {
	var cached CachedSummary
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(SummaryKey(url))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			cached, err = DecodeSummary(v)
			return err
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return "", errors.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("failed to read summary: %w", err)
	}
	return cached.Summary, nil
}

// Put stores the summary for url, replacing any previous entry.
func (c *SummaryCache) Put(url, summary string) error {
	data, err := EncodeSummary(CachedSummary{
		URL:      url,
		Summary:  summary,
		CachedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	entry := badger.NewEntry(SummaryKey(url), data)
	if c.ttl > 0 {
		entry = entry.WithTTL(c.ttl)
	}

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	}); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	c.log.Debug("Summary cached", "url", url, "ttl", c.ttl)
	return nil
}

// List returns at most limit live entries in key order. A non-positive limit returns all of them.
func (c *SummaryCache) List(limit int) ([]CachedSummary, error) {
	var summaries []CachedSummary
	prefix := []byte(SummaryPrefix)

	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(summaries) >= limit {
				break
			}
			item := it.Item()
			err := item.Value(func(v []byte) error {
				cached, err := DecodeSummary(v)
				if err != nil {
					return fmt.Errorf("failed to decode %s: %w", item.Key(), err)
				}
				if exp := item.ExpiresAt(); exp > 0 {
					cached.ExpiresAt = time.Unix(int64(exp), 0).UTC()
				}
				summaries = append(summaries, cached)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during summary listing: %w", err)
	}
	return summaries, nil
}

// EncodeSummary serializes an entry as a protobuf Struct.
func EncodeSummary(s CachedSummary) ([]byte, error) {
	value, err := structpb.NewStruct(map[string]any{
		"url":       s.URL,
		"summary":   s.Summary,
		"cached_at": s.CachedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(value)
}

func DecodeSummary(data []byte) (CachedSummary, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(data, &value); err != nil {
		return CachedSummary{}, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	fields := value.GetFields()
	cached := CachedSummary{
		URL:     fields["url"].GetStringValue(),
		Summary: fields["summary"].GetStringValue(),
	}
	if raw := fields["cached_at"].GetStringValue(); raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return CachedSummary{}, fmt.Errorf("invalid cached_at %q: %w", raw, err)
		}
		cached.CachedAt = at
	}
	return cached, nil
}
