package store

import (
	"Go-Pantry-Tracker/domain"
	"Go-Pantry-Tracker/entities"
	"Go-Pantry-Tracker/internal/utils"
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2/log"
)

func (s *Store) ShoppingList() []entities.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nonNil(slices.Clone(s.bundle.ShoppingList))
}

func (s *Store) CompletedShoppingItems() []entities.ShoppingItem {
	return s.filterShopping(true)
}

func (s *Store) PendingShoppingItems() []entities.ShoppingItem {
	return s.filterShopping(false)
}

func (s *Store) filterShopping(completed bool) []entities.ShoppingItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.ShoppingItem{}
	for _, item := range s.bundle.ShoppingList {
		if item.Completed == completed {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) AddShoppingItem(draft domain.ShoppingItemDraft) (entities.ShoppingItem, error) {
	if err := utils.ValidateStruct(draft); err != nil {
		log.Warnf("store: rejected shopping item %q: %v", draft.Name, err)
		return entities.ShoppingItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidShoppingItem, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.ShoppingItem{}, err
	}

	item := entities.ShoppingItem{
		ID:        s.newID(),
		Name:      draft.Name,
		Quantity:  draft.Quantity,
		Unit:      draft.Unit,
		Category:  draft.Category,
		AddedDate: s.clock(),
		Notes:     draft.Notes,
	}
	s.bundle.ShoppingList = append(slices.Clip(s.bundle.ShoppingList), item)
	s.markDirty(domain.PartitionShoppingList)
	return item, nil
}

func (s *Store) UpdateShoppingItem(id string, patch domain.ShoppingItemPatch) (entities.ShoppingItem, error) {
	if err := utils.ValidateStruct(patch); err != nil {
		log.Warnf("store: rejected patch for shopping item %s: %v", id, err)
		return entities.ShoppingItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidShoppingItemPatch, err)
	}

	return s.editShopping(id, func(item *entities.ShoppingItem) {
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
		if patch.Completed != nil {
			item.Completed = *patch.Completed
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
	})
}

func (s *Store) ToggleShoppingItem(id string) (entities.ShoppingItem, error) {
	return s.editShopping(id, func(item *entities.ShoppingItem) {
		item.Completed = !item.Completed
	})
}

func (s *Store) DeleteShoppingItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return err
	}

	i := indexOf(s.bundle.ShoppingList, id, shoppingID)
	if i < 0 {
		return domain.ErrShoppingItemNotFound
	}
	s.bundle.ShoppingList = removeAt(s.bundle.ShoppingList, i)
	s.markDirty(domain.PartitionShoppingList)
	return nil
}

// GenerateShoppingList adds one suggested item per expiring food item and
// returns the added items.
func (s *Store) GenerateShoppingList() []entities.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutable() != nil {
		return []entities.ShoppingItem{}
	}

	now := s.clock()
	added := []entities.ShoppingItem{}
	for _, food := range s.bundle.FoodItems {
		if food.Status != string(domain.StatusExpiring) {
			continue
		}
		added = append(added, entities.ShoppingItem{
			ID:        s.newID(),
			Name:      food.Name,
			Quantity:  food.Quantity,
			Unit:      food.Unit,
			Category:  food.Category,
			AddedDate: now,
			Notes:     fmt.Sprintf("%s %s expires %s", domain.SuggestedNotePrefix, food.Name, food.ExpirationDate.Format("2006-01-02")),
		})
	}

	s.bundle.ShoppingList = append(slices.Clip(s.bundle.ShoppingList), added...)
	s.markDirty(domain.PartitionShoppingList)
	return added
}

func (s *Store) editShopping(id string, edit func(*entities.ShoppingItem)) (entities.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mutable(); err != nil {
		return entities.ShoppingItem{}, err
	}

	i := indexOf(s.bundle.ShoppingList, id, shoppingID)
	if i < 0 {
		return entities.ShoppingItem{}, domain.ErrShoppingItemNotFound
	}

	list := slices.Clone(s.bundle.ShoppingList)
	edit(&list[i])
	s.bundle.ShoppingList = list
	s.markDirty(domain.PartitionShoppingList)
	return list[i], nil
}
