package utils

import (
	"github.com/google/uuid"
)

// IDGenerator produces identifiers for newly created entities.
type IDGenerator func() string

func NewID() string {
	return uuid.New().String()
}
