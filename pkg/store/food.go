package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"Go-Pantry-Tracker/pkg/freshness"
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2/log"
)

func (s *Store) FoodItems() []entities.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.bundle.FoodItems))
}

func (s *Store) FoodItem(id string) (entities.FoodItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.bundle.FoodItems, id, foodID); i >= 0 {
		return s.bundle.FoodItems[i], true
	}
	return entities.FoodItem{}, false
}

// FoodItemsByLocation returns the items stored in the fridge or the pantry.
func (s *Store) FoodItemsByLocation(location string) []entities.FoodItem {
	return s.filterFood(func(item entities.FoodItem) bool {
		return item.Location == location
	})
}

// ExpiringFoodItems returns items whose stored status is expiring.
func (s *Store) ExpiringFoodItems() []entities.FoodItem {
	return s.filterFood(func(item entities.FoodItem) bool {
		return item.Status == string(domain.StatusExpiring)
	})
}

func (s *Store) InventoryStats() domain.InventoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats domain.InventoryStats
	for _, item := range s.bundle.FoodItems {
		stats.TotalItems++
		switch domain.FreshnessStatus(item.Status) {
		case domain.StatusFresh:
			stats.FreshItems++
		case domain.StatusWatch:
			stats.WatchItems++
		case domain.StatusExpiring:
			stats.ExpiringItems++
		case domain.StatusExpired:
			stats.ExpiredItems++
		}
		switch item.Location {
		case domain.LocationFresh:
			stats.FridgeItems++
		case domain.LocationPantry:
			stats.PantryItems++
		}
	}
	return stats
}

func (s *Store) filterFood(keep func(entities.FoodItem) bool) []entities.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.FoodItem{}
	for _, item := range s.bundle.FoodItems {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) AddFoodItem(draft domain.FoodItemDraft) (entities.FoodItem, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		log.Warnf("store: rejected food item %q: %v", draft.Name, err)
		return entities.FoodItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidFoodItem, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.FoodItem{}, err
	}

	now := s.clock()
	exp := normalizeTime(draft.ExpirationDate)
	item := entities.FoodItem{
		ID:               s.newID(),
		Name:             draft.Name,
		Quantity:         draft.Quantity,
		OriginalQuantity: draft.Quantity,
		Unit:             draft.Unit,
		Category:         draft.Category,
		Calories:         copyFloat(draft.Calories),
		ExpirationDate:   exp,
		AddedDate:        now,
		Status:           string(freshness.Classify(exp, now)),
		Notes:            draft.Notes,
		Barcode:          draft.Barcode,
		Location:         draft.Location,
	}

	s.bundle.FoodItems = append(slices.Clip(s.bundle.FoodItems), item)
	s.markDirty(domain.PartitionFoodItems)
	return item, nil
}

// UpdateFoodItem merges patch into the item. A new expiration date without an
// explicit status re-derives the status.
func (s *Store) UpdateFoodItem(id string, patch domain.FoodItemPatch) (entities.FoodItem, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		log.Warnf("store: rejected patch for food item %s: %v", id, err)
		return entities.FoodItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidFoodPatch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.FoodItem{}, err
	}

	i := indexOf(s.bundle.FoodItems, id, foodID)
	if i < 0 {
		return entities.FoodItem{}, domain.ErrFoodItemNotFound
	}

	item := s.bundle.FoodItems[i]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Calories != nil {
		item.Calories = copyFloat(patch.Calories)
	}
	if patch.ExpirationDate != nil {
		item.ExpirationDate = normalizeTime(*patch.ExpirationDate)
		item.Status = string(freshness.Classify(item.ExpirationDate, s.clock()))
	}
	if patch.Status != nil {
		item.Status = string(*patch.Status)
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	if patch.Barcode != nil {
		item.Barcode = *patch.Barcode
	}
	if patch.Location != nil {
		item.Location = *patch.Location
	}

	s.replaceFood(i, item)
	return item, nil
}

func (s *Store) DeleteFoodItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}

	i := indexOf(s.bundle.FoodItems, id, foodID)
	if i < 0 {
		return domain.ErrFoodItemNotFound
	}
	s.bundle.FoodItems = removeAt(s.bundle.FoodItems, i)
	s.markDirty(domain.PartitionFoodItems)
	return nil
}

// ConsumeFoodItem takes one portion of the item. Percentage units lose a tenth
// of the original quantity, other units lose one. An item that reaches its
// effectively-zero threshold is deleted.
func (s *Store) ConsumeFoodItem(id string) (domain.ConsumeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return domain.ConsumeResult{}, err
	}

	i := indexOf(s.bundle.FoodItems, id, foodID)
	if i < 0 {
		return domain.ConsumeResult{}, domain.ErrFoodItemNotFound
	}

	item := s.bundle.FoodItems[i]
	d := freshness.Consume(item.Quantity, item.OriginalQuantity, item.Unit)
	result := domain.ConsumeResult{
		ID:       id,
		Deleted:  d.Deleted,
		Quantity: d.Quantity,
		Display:  freshness.FormatQuantity(d.Quantity),
	}

	if d.Deleted {
		s.bundle.FoodItems = removeAt(s.bundle.FoodItems, i)
		s.markDirty(domain.PartitionFoodItems)
		return result, nil
	}

	item.Quantity = d.Quantity
	s.replaceFood(i, item)
	return result, nil
}

// RefreshFoodItemStatuses re-derives every status from its expiration date and
// returns how many changed.
func (s *Store) RefreshFoodItemStatuses() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil {
		return 0
	}

	now := s.clock()
	items := slices.Clone(s.bundle.FoodItems)
	changed := 0
	for i := range items {
		status := string(freshness.Classify(items[i].ExpirationDate, now))
		if items[i].Status != status {
			items[i].Status = status
			changed++
		}
	}

	s.bundle.FoodItems = items
	s.markDirty(domain.PartitionFoodItems)
	return changed
}

// replaceFood must be called with s.mu held.
func (s *Store) replaceFood(i int, item entities.FoodItem) {
	items := slices.Clone(s.bundle.FoodItems)
	items[i] = item
	s.bundle.FoodItems = items
	s.markDirty(domain.PartitionFoodItems)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
