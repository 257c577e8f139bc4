// Package filter implements the predicate chain shared by every listing endpoint:
// a case-insensitive free-text match over designated fields ANDed with categorical
// equality selectors, where the sentinel All disables a selector.
package filter

import "strings"

// All is the selector value that matches every record.
const All = "all"

// Field extracts a string attribute from a record.
type Field[T any] func(T) string

// Predicate reports whether a record is kept.
type Predicate[T any] func(T) bool

// Chain is a conjunction of predicates. The zero value matches everything.
type Chain[T any] struct {
	preds []Predicate[T]
}

// New returns an empty chain.
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Text keeps records where query is a case-insensitive substring of at least one field.
// A blank query adds no predicate.
func (c *Chain[T]) Text(query string, fields ...Field[T]) *Chain[T] {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || len(fields) == 0 {
		return c
	}
	c.preds = append(c.preds, func(r T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), needle) {
				return true
			}
		}
		return false
	})
	return c
}

// Equals keeps records whose field equals the trimmed selector exactly. All or a blank
// selector adds no predicate.
func (c *Chain[T]) Equals(selected string, field Field[T]) *Chain[T] {
	want := strings.TrimSpace(selected)
	if IsAll(want) {
		return c
	}
	c.preds = append(c.preds, func(r T) bool {
		return field(r) == want
	})
	return c
}

// Where appends an arbitrary predicate.
func (c *Chain[T]) Where(pred Predicate[T]) *Chain[T] {
	if pred != nil {
		c.preds = append(c.preds, pred)
	}
	return c
}

// Match reports whether r satisfies every predicate.
func (c *Chain[T]) Match(r T) bool {
	for _, pred := range c.preds {
		if !pred(r) {
			return false
		}
	}
	return true
}

// Apply returns the matching records in input order. The result is never nil.
func (c *Chain[T]) Apply(records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// IsAll reports whether a selector value disables its filter.
func IsAll(selected string) bool {
	s := strings.TrimSpace(selected)
	return s == "" || s == All
}

// Count returns how many records satisfy pred.
func Count[T any](records []T, pred Predicate[T]) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// Distinct returns the distinct non-empty field values in first-seen order.
func Distinct[T any](records []T, field Field[T]) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
