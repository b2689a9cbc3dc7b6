package domain

import (
	"errors"
)

// SuggestedNotePrefix marks shopping items created by GenerateShoppingList.
const SuggestedNotePrefix = "Suggested:"

var (
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessToggleShoppingItem = "shopping item toggled"
	MessageSuccessGenerateShopping   = "shopping list generated from expiring items"

	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"

	ErrShoppingItemNotFound     = errors.New("shopping item not found")
	ErrInvalidShoppingItemPatch = errors.New("invalid shopping item patch")
	ErrInvalidShoppingItem      = errors.New("invalid shopping item")
)

type (
	ShoppingItemDraft struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"gte=0"`
		Unit     string  `json:"unit"`
		Category string  `json:"category" validate:"omitempty,oneof=Vegetables Fruits Meat Dairy Bakery Pantry Condiments Spices Oils Other"`
		Notes    string  `json:"notes,omitempty"`
	}

	ShoppingItemPatch struct {
		Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
		Quantity  *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
		Unit      *string  `json:"unit,omitempty"`
		Category  *string  `json:"category,omitempty" validate:"omitempty,oneof=Vegetables Fruits Meat Dairy Bakery Pantry Condiments Spices Oils Other"`
		Completed *bool    `json:"completed,omitempty"`
		Notes     *string  `json:"notes,omitempty"`
	}
)
