package moderation

import (
	"newswatch/errors"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher finds the first signal, in declaration order, contained in a text.
//
// The Aho-Corasick automaton answers "is anything present" in a single pass over the
// text, which is the common case to reject quickly. Only when it reports a hit are the
// signals walked in order, so the reported signal never depends on automaton hit order.
type Matcher struct {
	machine *goahocorasick.Machine
	signals []string
}

// NewMatcher builds the automaton over lowercase signals. Signals must be non-empty.
func NewMatcher(signals []string) (*Matcher, error) {
	if len(signals) == 0 {
		return nil, errors.ErrEmptySignals
	}
	ordered := make([]string, len(signals))
	for i, s := range signals {
		ordered[i] = strings.ToLower(s)
	}

	sorted := append([]string(nil), ordered...)
	sort.Strings(sorted)
	patterns := make([][]rune, len(sorted))
	for i, s := range sorted {
		patterns[i] = []rune(s)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m, signals: ordered}, nil
}

// First returns the first signal contained in lowered, which must already be lowercase.
func (m *Matcher) First(lowered string) (string, bool) {
	if lowered == "" {
		return "", false
	}
	if len(m.machine.MultiPatternSearch([]rune(lowered), true)) == 0 {
		return "", false
	}
	for _, s := range m.signals {
		if strings.Contains(lowered, s) {
			return s, true
		}
	}
	return "", false
}
