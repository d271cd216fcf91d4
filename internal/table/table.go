// Package table implements the in-memory search, sort and pagination layer
// shared by the dashboard's list endpoints. Records are filtered and ordered
// after a full collection load; nothing here touches the store.
package table

import (
	"sort"
	"strings"
	"time"
)

// Direction selects a sort order.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection maps a query-string value to a Direction. Anything other
// than "desc" sorts ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "desc") {
		return Desc
	}
	return Asc
}

// Filter returns the records whose searchable fields contain search,
// case-insensitively. An empty search keeps every record. fields projects a
// record's searchable values; empty values never match.
func Filter[T any](records []T, search string, fields func(T) []string) []T {
	if search == "" {
		return records
	}
	q := strings.ToLower(search)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		for _, f := range fields(rec) {
			if f != "" && strings.Contains(strings.ToLower(f), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// Key is a projected sort key, either a string or a number. Booleans project
// to 0/1 and timestamps to epoch milliseconds, so every column type reduces
// to one of the two.
type Key struct {
	str     string
	num     float64
	numeric bool
}

// String projects a string column value.
func String(s string) Key {
	return Key{str: s}
}

// Number projects a numeric column value.
func Number(n float64) Key {
	return Key{num: n, numeric: true}
}

// Bool projects a boolean column value as 0 or 1.
func Bool(b bool) Key {
	if b {
		return Number(1)
	}
	return Number(0)
}

// Time projects a timestamp column value as epoch milliseconds. A missing
// timestamp sorts as epoch 0.
func Time(t *time.Time) Key {
	if t == nil {
		return Number(0)
	}
	return Number(float64(t.UnixMilli()))
}

func (k Key) less(other Key) bool {
	if k.numeric || other.numeric {
		return k.num < other.num
	}
	return k.str < other.str
}

// SortBy returns a copy of records ordered by the projected key. The sort is
// stable: records with equal keys keep their relative input order in both
// directions, because Desc reverses only the comparison.
func SortBy[T any](records []T, key func(T) Key, dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if dir == Desc {
			return b.less(a)
		}
		return a.less(b)
	})
	return out
}

// Reverse returns a reversed copy of records. It implements descending order
// for the positional column, where the key is the original position itself.
func Reverse[T any](records []T) []T {
	out := make([]T, len(records))
	for i, rec := range records {
		out[len(records)-1-i] = rec
	}
	return out
}

// Paginate slices records into 1-indexed fixed-size pages. totalPages is
// ceil(len(records)/size) with a minimum of 1. A page number outside
// 1..totalPages yields an empty slice; clamping is the caller's business.
func Paginate[T any](records []T, page, size int) (pageRecords []T, totalPages int) {
	if size < 1 {
		size = 1
	}
	totalPages = (len(records) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * size
	if page < 1 || start >= len(records) {
		return []T{}, totalPages
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], totalPages
}
