// Package store provides the in-memory record collections backing every
// domain. Records live in an append-only slice with an id index; updates
// replace the whole record. Mutating a missing id returns ErrNotFound.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// NewID returns a fresh collision-free record identifier.
func NewID() string {
	return uuid.NewString()
}

// Collection is a generic in-memory record set. The key func must return a
// pointer to the record's id field so Insert can assign fresh ids.
type Collection[T any] struct {
	mu      sync.RWMutex
	records []T
	index   map[string]int
	key     func(*T) *string
}

func NewCollection[T any](key func(*T) *string) *Collection[T] {
	return &Collection[T]{
		index: make(map[string]int),
		key:   key,
	}
}

// Insert appends the record, assigning a fresh id when none is set, and
// returns the stored record.
func (c *Collection[T]) Insert(record T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(&record)
	if *id == "" {
		*id = NewID()
	}
	c.index[*id] = len(c.records)
	c.records = append(c.records, record)
	return record
}

func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return c.records[pos], nil
}

// Update replaces the record stored under id. The stored id wins over
// whatever the replacement carries.
func (c *Collection[T]) Update(id string, record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	*c.key(&record) = id
	c.records[pos] = record
	return record, nil
}

// Mutate applies fn to the record under id in a read-modify-write step and
// returns the stored result.
func (c *Collection[T]) Mutate(id string, fn func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	record := c.records[pos]
	fn(&record)
	*c.key(&record) = id
	c.records[pos] = record
	return record, nil
}

// List returns records in insertion order, keeping only those matching
// every predicate.
func (c *Collection[T]) List(predicates ...func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.records))
next:
	for _, record := range c.records {
		for _, match := range predicates {
			if !match(record) {
				continue next
			}
		}
		out = append(out, record)
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}
