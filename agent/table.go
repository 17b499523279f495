package agent

import "strings"

// tableEntry pairs a set of trigger keywords with a canned response. Any
// keyword matching as a case-insensitive substring of the query selects the
// entry.
type tableEntry struct {
	keywords []string
	response string
}

// lookupTable is an ordered-priority response table. Entry order is
// significant: the first entry with a matching keyword wins, so narrower
// triggers must precede broader ones (e.g. "chargeback" before "charge").
type lookupTable []tableEntry

// match returns the response of the first matching entry. ok is false on a
// table miss.
func (t lookupTable) match(query string) (response string, ok bool) {
	q := strings.ToLower(query)
	for _, e := range t {
		for _, kw := range e.keywords {
			if strings.Contains(q, kw) {
				return e.response, true
			}
		}
	}
	return "", false
}

// containsAny reports whether any keyword occurs in the query
// (case-insensitive substring).
func containsAny(query string, keywords []string) bool {
	q := strings.ToLower(query)
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
