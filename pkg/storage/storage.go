// Package storage provides the key-value capability the persistence gateway
// writes partitions through.
package storage

import (
	"context"
	"fmt"
)

type KeyValueStorage interface {
	Put(ctx context.Context, key, value string) error
	// Get reports found=false with a nil error when key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Remove(ctx context.Context, keys ...string) error
}

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// ErrUnknownDriver is returned for a STORAGE_DRIVER value with no backend.
type ErrUnknownDriver struct {
	Driver string
}

func (e ErrUnknownDriver) Error() string {
	return fmt.Sprintf("unknown storage driver %q", e.Driver)
}
