package persistence

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/pkg/codec"
	"Go-Pantry-Tracker/pkg/storage"
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
)

type (
	// Gateway reads and writes state partitions through a key-value storage.
	// Every error it returns has already been logged; callers may drop it.
	Gateway interface {
		Save(ctx context.Context, partition domain.Partition, value any) error
		Load(ctx context.Context, partition domain.Partition, out any) error
		SaveAll(ctx context.Context, bundle domain.StateBundle) error
		SavePartitions(ctx context.Context, bundle domain.StateBundle, partitions ...domain.Partition) error
		LoadAll(ctx context.Context, defaults domain.StateBundle) (domain.StateBundle, error)
		ClearAll(ctx context.Context) error
		ClearPartition(ctx context.Context, partition domain.Partition) error
	}

	gateway struct {
		storage storage.KeyValueStorage
	}
)

func NewGateway(kv storage.KeyValueStorage) Gateway {
	return &gateway{storage: kv}
}

func (g *gateway) Save(ctx context.Context, partition domain.Partition, value any) error {
	encoded, err := codec.Encode(value)
	if err != nil {
		log.Errorf("persistence: encode %s: %v", partition, err)
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorageWrite, partition, err)
	}

	if err := g.storage.Put(ctx, string(partition), encoded); err != nil {
		log.Errorf("persistence: save %s: %v", partition, err)
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageWrite, partition, err)
	}
	return nil
}

// Load decodes the stored partition into out. out is left untouched on error,
// so a caller that pre-filled it with a default keeps that default.
func (g *gateway) Load(ctx context.Context, partition domain.Partition, out any) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("persistence: load %s: out must be a non-nil pointer", partition)
	}

	raw, found, err := g.storage.Get(ctx, string(partition))
	if err != nil {
		log.Errorf("persistence: load %s: %v", partition, err)
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageRead, partition, err)
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrPartitionMissing, partition)
	}

	decoded := reflect.New(target.Elem().Type())
	if err := codec.Decode(raw, decoded.Interface()); err != nil {
		log.Warnf("persistence: discarding unreadable %s: %v", partition, err)
		return fmt.Errorf("%w: %s: %v", domain.ErrDecode, partition, err)
	}

	target.Elem().Set(decoded.Elem())
	return nil
}

// LoadOrDefault returns the stored partition or def when it is missing or unreadable.
func LoadOrDefault[T any](ctx context.Context, g Gateway, partition domain.Partition, def T) (T, error) {
	var value T
	if err := g.Load(ctx, partition, &value); err != nil {
		return def, err
	}
	return value, nil
}

func (g *gateway) SaveAll(ctx context.Context, bundle domain.StateBundle) error {
	return g.SavePartitions(ctx, bundle, domain.AllPartitions...)
}

// SavePartitions writes the listed partitions of bundle concurrently. A failed
// partition does not stop or roll back the others.
func (g *gateway) SavePartitions(ctx context.Context, bundle domain.StateBundle, partitions ...domain.Partition) error {
	errs := make([]error, len(partitions))

	var eg errgroup.Group
	for i, partition := range partitions {
		i, partition := i, partition
		eg.Go(func() error {
			value, err := field(&bundle, partition)
			if err != nil {
				errs[i] = err
				return nil
			}
			errs[i] = g.Save(ctx, partition, value)
			return nil
		})
	}
	_ = eg.Wait()

	return errors.Join(errs...)
}

// LoadAll reads every partition concurrently. Each partition falls back to its
// own entry in defaults; a missing partition is not reported as an error.
func (g *gateway) LoadAll(ctx context.Context, defaults domain.StateBundle) (domain.StateBundle, error) {
	result := defaults
	errs := make([]error, len(domain.AllPartitions))

	var eg errgroup.Group
	for i, partition := range domain.AllPartitions {
		i, partition := i, partition
		eg.Go(func() error {
			out, err := field(&result, partition)
			if err != nil {
				errs[i] = err
				return nil
			}
			if err := g.Load(ctx, partition, out); err != nil && !errors.Is(err, domain.ErrPartitionMissing) {
				errs[i] = err
			}
			return nil
		})
	}
	_ = eg.Wait()

	return result, errors.Join(errs...)
}

func (g *gateway) ClearAll(ctx context.Context) error {
	keys := make([]string, 0, len(domain.AllPartitions))
	for _, partition := range domain.AllPartitions {
		keys = append(keys, string(partition))
	}

	if err := g.storage.Remove(ctx, keys...); err != nil {
		log.Errorf("persistence: clear all partitions: %v", err)
		return fmt.Errorf("%w: clear all: %v", domain.ErrStorageWrite, err)
	}
	return nil
}

func (g *gateway) ClearPartition(ctx context.Context, partition domain.Partition) error {
	if err := g.storage.Remove(ctx, string(partition)); err != nil {
		log.Errorf("persistence: clear %s: %v", partition, err)
		return fmt.Errorf("%w: clear %s: %v", domain.ErrStorageWrite, partition, err)
	}
	return nil
}

func field(bundle *domain.StateBundle, partition domain.Partition) (any, error) {
	switch partition {
	case domain.PartitionFoodItems:
		return &bundle.FoodItems, nil
	case domain.PartitionRecipes:
		return &bundle.Recipes, nil
	case domain.PartitionMealPlans:
		return &bundle.MealPlans, nil
	case domain.PartitionUserProfile:
		return &bundle.UserProfile, nil
	case domain.PartitionShoppingList:
		return &bundle.ShoppingList, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPartition, partition)
	}
}
