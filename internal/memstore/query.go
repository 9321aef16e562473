package memstore

import (
	"context"
	"sort"
	"time"
)

// Query describes a read as plain data: an optional single-field equality
// filter, an optional descending order field, and an optional limit.
// That is the entire query surface the emulated backend offers: no
// ranges, no compound filters, no ascending sorts.
type Query struct {
	Collection string
	Field      string // equality filter field; empty means no filter
	Equals     any
	OrderBy    string // descending sort field; empty keeps insertion order
	Limit      int    // 0 means unbounded
}

// Find runs the descriptor against the store. Ordering is stable:
// documents with equal sort values keep their insertion order. An unknown
// collection or field yields an empty result, never an error.
func (s *Store) Find(ctx context.Context, q Query) ([]Document, error) {
	s.delay()
	s.mu.RLock()

	var matched []Document
	for _, d := range s.collections[q.Collection] {
		if q.Field != "" && d[q.Field] != q.Equals {
			continue
		}
		matched = append(matched, copyDoc(d))
	}
	s.mu.RUnlock()

	if q.OrderBy != "" {
		field := q.OrderBy
		sort.SliceStable(matched, func(i, j int) bool {
			return compare(matched[i][field], matched[j][field]) > 0
		})
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

// compare orders the timestamp-like values that appear in documents:
// time.Time, RFC 3339 strings (lexicographic order is chronological),
// and numerics. Mismatched or unknown types compare equal, which leaves
// their relative insertion order untouched.
func compare(a, b any) int {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0
		}
		return av.Compare(bv)
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case int:
		if bv, ok := b.(int); ok {
			return cmpInt64(int64(av), int64(bv))
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return cmpInt64(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}
	return 0
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
