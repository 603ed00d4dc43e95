// Package listkit is the shared filter/search contract used by the
// filterable list lessons and the classroom roster view. It has no state
// of its own; callers own the query string.
package listkit

import "strings"

// Filter returns the items matching the query, preserving order. The
// query is trimmed first; an empty query matches everything. The match
// predicate receives the trimmed query.
func Filter[T any](items []T, query string, match func(item T, query string) bool) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, query) {
			out = append(out, item)
		}
	}
	return out
}

// MatchFold reports whether haystack contains the query ignoring case.
// The common predicate for name searches.
func MatchFold(haystack, query string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(query))
}

// CountAnnouncement renders the live-region result count text.
func CountAnnouncement(n int) string {
	if n == 1 {
		return "Намерен 1 резултат"
	}
	return "Намерени " + itoa(n) + " резултата"
}

// EmptyMessage picks between the two distinct empty states: the list has
// no items at all, or the filter matched nothing.
func EmptyMessage(hasItems bool, emptyMsg, noMatchMsg string) string {
	if hasItems {
		return noMatchMsg
	}
	return emptyMsg
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
