// Package links normalizes link strings and triages them against the domain registry.
package links

import (
	"net/url"
	"strings"
)

// Host extracts the lowercase network location of raw, without port.
//
// Parsing is deliberately naive: a link without a scheme ("infowars.com/a") has no
// network location and yields an empty host, as does any malformed input. Callers
// treat an empty host as "no match possible".
func Host(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
