package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"newswatch/errors"
	"path"
	"strings"
)

const (
	PhrasesFile   = "phrases.txt"
	BlacklistFile = "blacklist.txt"
	SocialFile    = "social.txt"
)

// Loader reads signal lists from a filesystem holding one file per signal kind.
type Loader struct {
	fs fs.FS
}

func NewLoader(f fs.FS) *Loader {
	return &Loader{fs: f}
}

// LoadAll reads the three signal files found under dir and builds a Registry.
func (l *Loader) LoadAll(dir string) (*Registry, error) {
	phrases, err := l.LoadFile(dir, PhrasesFile)
	if err != nil {
		return nil, err
	}
	blacklisted, err := l.LoadFile(dir, BlacklistFile)
	if err != nil {
		return nil, err
	}
	social, err := l.LoadFile(dir, SocialFile)
	if err != nil {
		return nil, err
	}
	return New(phrases, blacklisted, social)
}

// LoadFile parses one signal file, keeping file order.
// Blank lines and lines starting with '#' are skipped; entries are trimmed and lowercased.
func (l *Loader) LoadFile(dir, name string) ([]string, error) {
	data, err := fs.ReadFile(l.fs, path.Join(dir, name))
	if err != nil {
		return nil, err
	}

	var entries []string
	// ⚠️Don't use strings.Split, \r\n endings would leak into the entries
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrEmptySignals)
	}
	return entries, nil
}
