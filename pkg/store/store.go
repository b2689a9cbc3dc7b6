// Package store holds the in-memory pantry state, applies every mutation to it
// synchronously and persists the affected partitions in the background.
//
// Values returned by accessors share nested slices with the store and must be
// treated as read-only. The store never mutates nested data in place; updates
// always assign fresh slices and pointers.
package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"Go-Pantry-Tracker/pkg/persistence"
	"Go-Pantry-Tracker/pkg/recipe"
	"Go-Pantry-Tracker/pkg/seed"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	Store struct {
		mu     sync.RWMutex
		state  domain.LifecycleState
		ready  chan struct{}
		bundle domain.StateBundle

		// number of recipe fetches in flight
		recipeFetches int

		gateway persistence.Gateway
		recipes recipe.RecipeService
		now     func() time.Time
		newID   utils.IDGenerator
		seed    func(time.Time) domain.StateBundle

		persister *persister
	}

	Option func(*Store)
)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func WithIDGenerator(newID utils.IDGenerator) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithSeed replaces the dataset used on first run and after ClearAllData.
func WithSeed(seed func(time.Time) domain.StateBundle) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

// NewStore builds an uninitialized store and starts its persistence worker.
// Call Initialize before use and Close on shutdown.
func NewStore(gateway persistence.Gateway, recipes recipe.RecipeService, opts ...Option) *Store {
	s := &Store{
		state:   domain.StateUninitialized,
		ready:   make(chan struct{}),
		gateway: gateway,
		recipes: recipes,
		now:     time.Now,
		newID:   utils.NewID,
		seed:    seed.Bundle,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.persister = newPersister(gateway, s.snapshot)
	go s.persister.run()

	return s
}

// Initialize loads persisted state, falling back to seed data per partition.
// Only the first call loads; later calls wait until the store is ready.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.state != domain.StateUninitialized {
		s.mu.Unlock()
		select {
		case <-s.ready:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.state = domain.StateLoading
	s.mu.Unlock()

	log.Infof("store: loading persisted state")
	loaded, err := s.gateway.LoadAll(ctx, s.seed(s.clock()))
	if err != nil {
		log.Warnf("store: some partitions fell back to defaults: %v", err)
	}

	s.mu.Lock()
	s.bundle = loaded
	s.state = domain.StateReady
	close(s.ready)
	s.mu.Unlock()

	log.Infof("store: ready with %d food items and %d recipes", len(loaded.FoodItems), len(loaded.Recipes))
	return nil
}

func (s *Store) State() domain.LifecycleState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// RecipesLoading reports whether a recipe fetch or search is in flight.
func (s *Store) RecipesLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recipeFetches > 0
}

// Flush blocks until every mutation issued before the call has been written.
func (s *Store) Flush(ctx context.Context) error {
	return s.persister.flush(ctx)
}

// Close drains pending writes and stops the persistence worker.
func (s *Store) Close() {
	s.persister.close()
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() domain.StateBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBundle(s.bundle)
}

// clock returns now in UTC at millisecond precision, the resolution storage keeps.
func (s *Store) clock() time.Time {
	return normalizeTime(s.now())
}

// mutable must be called with s.mu held.
func (s *Store) mutable() error {
	if s.state != domain.StateReady {
		return domain.ErrStoreNotReady
	}
	return nil
}

// markDirty must be called with s.mu held.
func (s *Store) markDirty(partitions ...domain.Partition) {
	s.persister.save(partitions...)
}

func (s *Store) snapshot(partitions []domain.Partition) domain.StateBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out domain.StateBundle
	for _, p := range partitions {
		switch p {
		case domain.PartitionFoodItems:
			out.FoodItems = slices.Clone(s.bundle.FoodItems)
		case domain.PartitionRecipes:
			out.Recipes = slices.Clone(s.bundle.Recipes)
		case domain.PartitionMealPlans:
			out.MealPlans = slices.Clone(s.bundle.MealPlans)
		case domain.PartitionUserProfile:
			out.UserProfile = s.bundle.UserProfile
		case domain.PartitionShoppingList:
			out.ShoppingList = slices.Clone(s.bundle.ShoppingList)
		}
	}
	return out
}

func cloneBundle(b domain.StateBundle) domain.StateBundle {
	return domain.StateBundle{
		FoodItems:    nonNil(slices.Clone(b.FoodItems)),
		Recipes:      nonNil(slices.Clone(b.Recipes)),
		MealPlans:    nonNil(slices.Clone(b.MealPlans)),
		UserProfile:  b.UserProfile,
		ShoppingList: nonNil(slices.Clone(b.ShoppingList)),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func indexOf[T any](items []T, id string, key func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return key(item) == id })
}

func foodID(f entities.FoodItem) string { return f.ID }
func recipeID(r entities.Recipe) string { return r.ID }
func mealPlanID(m entities.MealPlan) string { return m.ID }
func shoppingID(i entities.ShoppingItem) string { return i.ID }
