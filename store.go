package cellgrid

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrOrdinalOutOfRange is returned for a row ordinal outside the store.
var ErrOrdinalOutOfRange = errors.New("row ordinal out of range")

// RowStore owns the canonical, mutable row sequence. Ordinals are
// zero-based positions in Rows().
type RowStore interface {
	Rows() []Record
	Append(r Record) error
	Remove(ordinal int) error
	Update(ordinal int, r Record) error
}

// MemoryStore is the default local RowStore. Every mutation replaces the
// row slice, so a Memo keyed on Rows() sees each change. Rows without an
// identity, or with one already held by another row, get a random one
// under IdentityKey.
type MemoryStore struct {
	rows []Record
}

// NewMemoryStore creates a store seeded with a copy of rows.
func NewMemoryStore(rows []Record) *MemoryStore {
	seeded := make([]Record, 0, len(rows))
	for _, r := range rows {
		seeded = append(seeded, uniqueIdentity(r, seeded))
	}
	return &MemoryStore{rows: seeded}
}

// uniqueIdentity returns r with an identity no row of taken holds.
func uniqueIdentity(r Record, taken []Record) Record {
	if id := r.ID(); id != "" && indexOf(taken, id) < 0 {
		return r
	}
	return r.With(IdentityKey, uuid.NewString())
}

// Rows returns the live row sequence.
func (s *MemoryStore) Rows() []Record { return s.rows }

// Len returns the number of rows.
func (s *MemoryStore) Len() int { return len(s.rows) }

// Append adds r at the end.
func (s *MemoryStore) Append(r Record) error {
	next := make([]Record, len(s.rows), len(s.rows)+1)
	copy(next, s.rows)
	s.rows = append(next, uniqueIdentity(r, s.rows))
	return nil
}

// Remove deletes the row at ordinal.
func (s *MemoryStore) Remove(ordinal int) error {
	if err := s.check(ordinal); err != nil {
		return err
	}
	next := make([]Record, 0, len(s.rows)-1)
	next = append(next, s.rows[:ordinal]...)
	s.rows = append(next, s.rows[ordinal+1:]...)
	return nil
}

// Update replaces the row at ordinal. The stored row always keeps its
// identity.
func (s *MemoryStore) Update(ordinal int, r Record) error {
	if err := s.check(ordinal); err != nil {
		return err
	}
	next := make([]Record, len(s.rows))
	copy(next, s.rows)
	next[ordinal] = r.With(IdentityKey, s.rows[ordinal].ID())
	s.rows = next
	return nil
}

// IndexOf returns the ordinal of the row with identity id, or -1.
func (s *MemoryStore) IndexOf(id string) int {
	return indexOf(s.rows, id)
}

func indexOf(rows []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range rows {
		if r.ID() == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) check(ordinal int) error {
	if ordinal < 0 || ordinal >= len(s.rows) {
		return fmt.Errorf("ordinal %d of %d rows: %w", ordinal, len(s.rows), ErrOrdinalOutOfRange)
	}
	return nil
}
