package uuidx

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Source produces message identifiers.
type Source func() string

// New generates a new UUID using the version 7 format and returns it.
// It panics if the UUID generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString generates a new version 7 UUID and returns it as a string.
// It is the default Source.
func NewString() string {
	return New().String()
}

// Sequence returns a Source that yields prefix-1, prefix-2, ... It is safe
// for concurrent use and meant for deterministic tests.
func Sequence(prefix string) Source {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
