// Package lexicon holds the static signals the bot matches messages and links against.
// A Registry never changes after construction and is safe for concurrent use.
package lexicon

import (
	"embed"
	"fmt"
	"newswatch/errors"
	"os"
	"strings"

	"github.com/samber/lo"
)

//go:embed signals/*.txt
var signalsFolder embed.FS

type Registry struct {
	phrases      []string
	blacklisted  []string
	blacklistSet map[string]struct{}
	social       []string
}

// New validates the signal lists and freezes them into a Registry.
// Every list must be non-empty and free of duplicates once lowercased.
func New(phrases, blacklisted, social []string) (*Registry, error) {
	p, err := normalizeSignals("phrases", phrases)
	if err != nil {
		return nil, err
	}
	b, err := normalizeSignals("blacklist", blacklisted)
	if err != nil {
		return nil, err
	}
	s, err := normalizeSignals("social", social)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(b))
	for _, d := range b {
		set[d] = struct{}{}
	}

	return &Registry{phrases: p, blacklisted: b, blacklistSet: set, social: s}, nil
}

// Default returns the registry compiled into the binary.
func Default() (*Registry, error) {
	return NewLoader(signalsFolder).LoadAll("signals")
}

// Load returns the registry found in dir, or the embedded one when dir is empty.
func Load(dir string) (*Registry, error) {
	if dir == "" {
		return Default()
	}
	return NewLoader(os.DirFS(dir)).LoadAll(".")
}

// Phrases returns the suspicious phrases in match order.
func (r *Registry) Phrases() []string { return clone(r.phrases) }

// Blacklisted returns the low-credibility domains in match order.
func (r *Registry) Blacklisted() []string { return clone(r.blacklisted) }

// Social returns the social platform domains.
func (r *Registry) Social() []string { return clone(r.social) }

// IsBlacklisted reports exact membership of host in the blacklist.
func (r *Registry) IsBlacklisted(host string) bool {
	_, ok := r.blacklistSet[host]
	return ok
}

func normalizeSignals(kind string, signals []string) ([]string, error) {
	out := lo.FilterMap(signals, func(s string, _ int) (string, bool) {
		s = strings.ToLower(strings.TrimSpace(s))
		return s, s != ""
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", kind, errors.ErrEmptySignals)
	}
	if dup := lo.FindDuplicates(out); len(dup) > 0 {
		return nil, fmt.Errorf("%s %q: %w", kind, dup[0], errors.ErrDuplicateSignal)
	}
	return out, nil
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
