package adapter

// IDGenerator produces identifiers for new records. Successive identifiers
// carry no ordering guarantee.
type IDGenerator interface {
	NewID() string
}
