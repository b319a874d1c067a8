package controller

import "strings"

type keyed interface {
	Key() string
}

// MergeByID replaces the entry with the same id, or appends the item.
// The input slice is not modified.
func MergeByID[T keyed](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if out[i].Key() == item.Key() {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// PrependByID is MergeByID for lists shown newest first.
func PrependByID[T keyed](list []T, item T) []T {
	for i := range list {
		if list[i].Key() == item.Key() {
			return MergeByID(list, item)
		}
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

func RemoveByID[T keyed](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, entry := range list {
		if entry.Key() != id {
			out = append(out, entry)
		}
	}
	return out
}

// matchesAny is the client-side search fallback: a case-insensitive
// substring test over the given fields.
func matchesAny(search string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
