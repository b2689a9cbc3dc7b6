package domain

import (
	"errors"
	"time"
)

type FreshnessStatus string

const (
	StatusFresh    FreshnessStatus = "fresh"
	StatusWatch    FreshnessStatus = "watch"
	StatusExpiring FreshnessStatus = "expiring"
	StatusExpired  FreshnessStatus = "expired"
)

const (
	LocationFresh  = "fresh"
	LocationPantry = "pantry"
)

const (
	CategoryVegetables = "Vegetables"
	CategoryFruits     = "Fruits"
	CategoryMeat       = "Meat"
	CategoryDairy      = "Dairy"
	CategoryBakery     = "Bakery"
	CategoryPantry     = "Pantry"
	CategoryCondiments = "Condiments"
	CategorySpices     = "Spices"
	CategoryOils       = "Oils"
	CategoryOther      = "Other"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessConsumeFoodItem   = "food item consumed successfully"
	MessageSuccessRefreshStatuses   = "food item statuses refreshed"
	MessageSuccessGetInventoryStats = "inventory statistics retrieved successfully"
	MessageSuccessLookupProduct     = "product lookup completed"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedConsumeFoodItem = "failed to consume food item"
	MessageFailedLookupProduct   = "failed to look up product"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must not be negative")
	ErrInvalidLocation   = errors.New("location must be fresh or pantry")
	ErrInvalidFoodPatch  = errors.New("invalid food item patch")
	ErrInvalidFoodItem   = errors.New("invalid food item")
	ErrStoreNotReady     = errors.New("store is not initialized")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidBarcode    = errors.New("invalid barcode")
)

type (
	FoodItemDraft struct {
		Name           string    `json:"name" validate:"required"`
		Quantity       float64   `json:"quantity" validate:"gte=0"`
		Unit           string    `json:"unit" validate:"required"`
		Category       string    `json:"category" validate:"required,oneof=Vegetables Fruits Meat Dairy Bakery Pantry Condiments Spices Oils Other"`
		Calories       *float64  `json:"calories,omitempty" validate:"omitempty,gte=0"`
		ExpirationDate time.Time `json:"expiration_date" validate:"required"`
		Notes          string    `json:"notes,omitempty"`
		Barcode        string    `json:"barcode,omitempty"`
		Location       string    `json:"location" validate:"required,oneof=fresh pantry"`
	}

	// FoodItemPatch carries only the fields to change. OriginalQuantity and
	// AddedDate are not patchable.
	FoodItemPatch struct {
		Name           *string          `json:"name,omitempty" validate:"omitempty,min=1"`
		Quantity       *float64         `json:"quantity,omitempty" validate:"omitempty,gte=0"`
		Unit           *string          `json:"unit,omitempty" validate:"omitempty,min=1"`
		Category       *string          `json:"category,omitempty" validate:"omitempty,oneof=Vegetables Fruits Meat Dairy Bakery Pantry Condiments Spices Oils Other"`
		Calories       *float64         `json:"calories,omitempty" validate:"omitempty,gte=0"`
		ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
		Status         *FreshnessStatus `json:"status,omitempty" validate:"omitempty,oneof=fresh watch expiring expired"`
		Notes          *string          `json:"notes,omitempty"`
		Barcode        *string          `json:"barcode,omitempty"`
		Location       *string          `json:"location,omitempty" validate:"omitempty,oneof=fresh pantry"`
	}

	ConsumeResult struct {
		ID       string  `json:"id"`
		Deleted  bool    `json:"deleted"`
		Quantity float64 `json:"quantity"`
		Display  string  `json:"display"`
	}

	InventoryStats struct {
		TotalItems    int `json:"total_items"`
		FreshItems    int `json:"fresh_items"`
		WatchItems    int `json:"watch_items"`
		ExpiringItems int `json:"expiring_items"`
		ExpiredItems  int `json:"expired_items"`
		FridgeItems   int `json:"fridge_items"`
		PantryItems   int `json:"pantry_items"`
	}
)
