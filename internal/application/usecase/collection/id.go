package collection

import (
	"errors"

	"github.com/finance-tracker/budget/internal/application/adapter"
)

const maxIDAttempts = 5

// ErrIDExhausted is returned when the generator keeps producing identifiers
// that already exist in the collection.
var ErrIDExhausted = errors.New("could not allocate a unique identifier")

// NewUniqueID draws identifiers from ids until one is not used by any record.
func NewUniqueID[T any](s *Store[T], ids adapter.IDGenerator, idOf func(item T) string) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := ids.NewID()
		_, _, taken := s.Find(func(item T) bool { return idOf(item) == id })
		if !taken {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}
