package store

import (
	"github.com/google/uuid"
)

// Record is anything kept in a collection by string id.
type Record interface {
	GetID() string
}

// Add returns a new collection with r appended. list is left untouched.
func Add[T Record](list []T, r T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, r)
}

// Replace returns a new collection where the record sharing r's id is
// swapped for r. ok is false, and list is returned as is, when no record
// matches.
func Replace[T Record](list []T, r T) (out []T, ok bool) {
	idx := indexOf(list, r.GetID())
	if idx < 0 {
		return list, false
	}
	out = make([]T, len(list))
	copy(out, list)
	out[idx] = r
	return out, true
}

// Remove returns a new collection without the record with the given id.
func Remove[T Record](list []T, id string) (out []T, ok bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out = make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), true
}

// Find looks a record up by id.
func Find[T Record](list []T, id string) (T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return list[idx], true
}

// Filter returns the records keep accepts, in their original order.
func Filter[T Record](list []T, keep func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, r := range list {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func indexOf[T Record](list []T, id string) int {
	for i, r := range list {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

func clone[T any](list []T) []T {
	out := make([]T, len(list))
	copy(out, list)
	return out
}

// NewID returns a time-ordered UUIDv7 string.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// uniqueID draws ids from gen until one is free in list.
func uniqueID[T Record](list []T, gen func() string) string {
	for {
		id := gen()
		if id == "" {
			continue
		}
		if indexOf(list, id) < 0 {
			return id
		}
	}
}
