// Package store provides a bounded, insertion-ordered record container
// with monotonic integer id allocation.
package store

import "errors"

// ErrFull is returned by Add once the store holds its full capacity.
var ErrFull = errors.New("store is full")

// Record is implemented by entities held in a Store. WithID returns a
// copy of the record with the given id set.
type Record[T any] interface {
	RecordID() int
	WithID(id int) T
}

// Store holds up to a fixed number of records in insertion order and
// owns the id counter for its entity type. Assigned ids strictly
// increase and are never reused, even after deletes; only Replace
// re-seeds the counter, from the ids it is given.
type Store[T Record[T]] struct {
	capacity int
	nextID   int
	records  []T
}

// New creates an empty store with the given fixed capacity.
func New[T Record[T]](capacity int) *Store[T] {
	return &Store[T]{capacity: capacity, nextID: 1}
}

func (s *Store[T]) Len() int { return len(s.records) }

func (s *Store[T]) Cap() int { return s.capacity }

// Full reports whether the store holds its full capacity.
func (s *Store[T]) Full() bool { return len(s.records) >= s.capacity }

// Add assigns the next id to r and appends it, returning the id.
func (s *Store[T]) Add(r T) (int, error) {
	if s.Full() {
		return 0, ErrFull
	}
	id := s.nextID
	s.nextID++
	s.records = append(s.records, r.WithID(id))
	return id, nil
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id int) (T, bool) {
	for _, r := range s.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the record holding the given id, keeping that id.
func (s *Store[T]) Update(id int, r T) bool {
	for i := range s.records {
		if s.records[i].RecordID() == id {
			s.records[i] = r.WithID(id)
			return true
		}
	}
	return false
}

// Delete removes the record with the given id, shifting every later
// record one position toward the front. The id counter is not rewound.
func (s *Store[T]) Delete(id int) bool {
	for i := range s.records {
		if s.records[i].RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a copy of the records in insertion order.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Replace resets the store to the given records, keeping their stored
// ids, and moves the id counter past the highest of them. Records
// beyond capacity are dropped; the count of dropped records is
// returned.
func (s *Store[T]) Replace(records []T) int {
	s.records = s.records[:0]
	s.nextID = 1

	dropped := 0
	for _, r := range records {
		if len(s.records) >= s.capacity {
			dropped++
			continue
		}
		s.records = append(s.records, r)
		if r.RecordID() >= s.nextID {
			s.nextID = r.RecordID() + 1
		}
	}
	return dropped
}
