package adapters

import (
	"github.com/google/uuid"

	"github.com/finance-tracker/budget/internal/application/adapter"
)

// uuidGenerator implements adapter.IDGenerator with random (v4) UUIDs.
type uuidGenerator struct{}

// NewUUIDGenerator creates an identifier generator producing UUID strings.
func NewUUIDGenerator() adapter.IDGenerator {
	return uuidGenerator{}
}

// NewID returns a new random UUID in its canonical string form.
func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
