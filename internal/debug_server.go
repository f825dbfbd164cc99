package internal

import (
	"context"
	"embed"
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const DefaultPrefix = "summary:"

type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	Expires   string
	Detail    string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type StatEntry struct {
	Name  string
	Value any
}

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  []StatEntry
}

// DebugServer serves an HTML view of the badger keys under a prefix, plus live counters.
type DebugServer struct {
	db            *badger.DB
	log           *slog.Logger
	endpoint      string
	mapper        RowMapper
	statsProvider StatsProvider
	tmpl          *template.Template
	server        *http.Server
}

func NewDebugServer(db *badger.DB, log *slog.Logger, port int, endpoint string,
	mapper RowMapper, statsProvider StatsProvider) *DebugServer {
	if mapper == nil {
		mapper = DefaultMapper
	}
	d := &DebugServer{
		db:            db,
		log:           log,
		endpoint:      endpoint,
		mapper:        mapper,
		statsProvider: statsProvider,
		tmpl:          template.Must(template.ParseFS(templatesFS, "inspect.html")),
	}
	d.server = &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           d.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return d
}

func (d *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(d.endpoint, d.inspect)
	return mux
}

// Start serves in the background until Shutdown.
func (d *DebugServer) Start() {
	go func() {
		if err := d.server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			d.log.Error("Debug server stopped", "error", err)
		}
	}()
}

func (d *DebugServer) Shutdown(ctx context.Context) error {
	return d.server.Shutdown(ctx)
}

func (d *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = DefaultPrefix
	}

	data := PageData{Prefix: prefix}
	if d.statsProvider != nil {
		data.Stats = sortedStats(d.statsProvider())
	}

	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				row := d.mapper(string(item.Key()), val)
				if exp := item.ExpiresAt(); exp > 0 && row.Expires == "" {
					row.Expires = time.Unix(int64(exp), 0).UTC().Format(time.RFC3339)
				}
				data.Items = append(data.Items, row)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.tmpl.Execute(w, data); err != nil {
		d.log.Warn("Inspect page rendering failed", "error", err)
	}
}

func sortedStats(stats map[string]any) []StatEntry {
	entries := make([]StatEntry, 0, len(stats))
	for k, v := range stats {
		entries = append(entries, StatEntry{Name: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

func DefaultMapper(key string, val []byte) InspectRow {
	return InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
}
