package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator allocates identifiers for elements and relationships.
type IDGenerator interface {
	NextID() string
}

// SequentialIDGenerator renders a monotonically increasing counter, starting
// at 1, as decimal text.
type SequentialIDGenerator struct {
	next uint64
}

// NewSequentialIDGenerator creates a generator whose first ID is "1".
func NewSequentialIDGenerator() *SequentialIDGenerator {
	return &SequentialIDGenerator{next: 1}
}

func (g *SequentialIDGenerator) NextID() string {
	id := strconv.FormatUint(g.next, 10)
	g.next++
	return id
}

// UUIDGenerator allocates random (version 4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}
