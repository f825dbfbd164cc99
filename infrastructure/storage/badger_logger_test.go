package storage

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestBadgerLogger_LevelsAndNewlines(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	logger := NewBadgerLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	logger.Errorf("compaction failed: %s\n", "disk full")
	logger.Infof("table %d opened\n", 3)

	out := buf.String()
	req.Contains(out, "level=ERROR")
	req.Contains(out, `msg="compaction failed: disk full"`)
	req.Contains(out, "component=badger")
	req.NotContains(out, "table 3 opened")
}

func TestBadgerOptions(t *testing.T) {
	req := require.New(t)

	memory := BadgerOptions("", slog.Default(), false)
	req.True(memory.InMemory)
	req.NotNil(memory.Logger)

	disk := BadgerOptions("/tmp/newswatch-cache", slog.Default(), true)
	req.False(disk.InMemory)
	req.Equal("/tmp/newswatch-cache", disk.Dir)
	req.True(disk.BypassLockGuard)
}

func TestBadgerOptions_OpensInMemory(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(BadgerOptions("", slog.Default(), false))
	req.NoError(err)
	req.NoError(db.Close())
}
