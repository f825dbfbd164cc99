package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"newswatch/infrastructure/storage"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	CachePath string `envconfig:"CACHE_PATH"`
	// INSPECT_LIMIT caps the number of listed entries, 0 lists everything
	Limit int `envconfig:"INSPECT_LIMIT" default:"0"`
	// INSPECT_COLOURS enables a colorized header
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

const maxSummaryWidth = 80

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Error while reading config: ", err)
	}

	dbPath := flag.String("db", cfg.CachePath, "Path to the summary cache (defaults to CACHE_PATH)")
	limit := flag.Int("limit", cfg.Limit, "Maximum number of entries to list")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("No cache path: set CACHE_PATH or -db (an empty path means the bot runs an in-memory cache)")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	summaries, err := storage.NewSummaryCache(db, slog.Default(), 0).List(*limit)
	if err != nil {
		log.Fatal(err)
	}

	header := fmt.Sprintf(" %d cached summaries in %s ", len(summaries), *dbPath)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"URL", "Cached at", "Expires in", "Summary"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows(summaries, time.Now()))
	table.Render()
}

func rows(summaries []storage.CachedSummary, now time.Time) [][]string {
	out := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, []string{
			s.URL,
			s.CachedAt.Local().Format("2006-01-02 15:04:05"),
			expiresIn(s.ExpiresAt, now),
			shorten(s.Summary, maxSummaryWidth),
		})
	}
	return out
}

func expiresIn(at, now time.Time) string {
	if at.IsZero() {
		return "never"
	}
	if !at.After(now) {
		return "expired"
	}
	return at.Sub(now).Round(time.Minute).String()
}

func shorten(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
